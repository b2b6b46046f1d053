// Command hexgrid generates a hex map and either explores it in the terminal
// or logs a summary of it.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/talgya/hexgrid/internal/config"
	"github.com/talgya/hexgrid/internal/hex"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// ── Flags & Config ────────────────────────────────────────────────
	fs := pflag.NewFlagSet("hexgrid", pflag.ExitOnError)
	configDir := fs.StringP("config-dir", "c", defaultConfigDir(), "directory holding hexgrid.yaml and logs")
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(*configDir, fs)
	switch {
	case errors.Is(err, config.ErrCreatedDefault):
		slog.Info("no config found, created one with defaults", "dir", *configDir)
	case err != nil:
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client := cfg.Client
	if client == config.ClientAuto {
		client = config.ClientLogger
		if isTerminal(os.Stdout) {
			client = config.ClientTUI
		}
	}

	// ── Logging ───────────────────────────────────────────────────────
	// The terminal belongs to tcell while the TUI runs, so it logs to a file.
	var logOut io.Writer = os.Stdout
	if client == config.ClientTUI {
		f, err := openLogFile(filepath.Join(*configDir, cfg.Log.File))
		if err != nil {
			slog.Error("failed to open log file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	level, _ := cfg.Log.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level})))

	mapCtx := hex.MapContext{Width: cfg.Map.Width, Height: cfg.Map.Height, WrapX: cfg.Map.WrapX}
	slog.Info("hexgrid starting", "client", client, "map", mapCtx, "seed", cfg.Terrain.Seed)

	// ── Run ───────────────────────────────────────────────────────────
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			slog.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	g.Go(func() error {
		defer cancel()
		if client == config.ClientTUI {
			return runTUI(gctx, cfg, mapCtx)
		}
		return runLogger(gctx, cfg, mapCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("hexgrid failed", "error", err)
		if client == config.ClientTUI {
			fmt.Fprintln(os.Stderr, "hexgrid:", err)
		}
		os.Exit(1)
	}
	slog.Info("hexgrid stopped")
}

func defaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "hexgrid")
	}
	return ".hexgrid"
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
