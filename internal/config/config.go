// Package config loads program settings from a YAML file in the config
// directory, HEXGRID_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/talgya/hexgrid/internal/engine"
	"github.com/talgya/hexgrid/internal/terrain"
	"github.com/talgya/hexgrid/internal/tui"
)

// FileName is the config file looked up in the config directory.
const FileName = "hexgrid.yaml"

// EnvPrefix prefixes environment overrides, e.g. HEXGRID_MAP_WIDTH.
const EnvPrefix = "HEXGRID"

// Client names.
const (
	ClientAuto   = ""
	ClientTUI    = "tui"
	ClientLogger = "logger"
)

// ErrCreatedDefault is returned, together with the defaults, when no config
// file existed and one was written.
var ErrCreatedDefault = errors.New("config: wrote default config file")

// Config is the full program configuration.
type Config struct {
	Map     MapConfig     `mapstructure:"map" yaml:"map"`
	Terrain TerrainConfig `mapstructure:"terrain" yaml:"terrain"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Client  string        `mapstructure:"client" yaml:"client"` // tui, logger, or empty to pick by terminal
}

// MapConfig sizes the hex map.
type MapConfig struct {
	Width  uint8 `mapstructure:"width" yaml:"width"`
	Height uint8 `mapstructure:"height" yaml:"height"`
	WrapX  bool  `mapstructure:"wrap_x" yaml:"wrap_x"`
}

// TerrainConfig mirrors terrain.GenConfig.
type TerrainConfig struct {
	Seed          int64   `mapstructure:"seed" yaml:"seed"` // 0 = random
	SeaLevel      float64 `mapstructure:"sea_level" yaml:"sea_level"`
	HillLevel     float64 `mapstructure:"hill_level" yaml:"hill_level"`
	MountainLevel float64 `mapstructure:"mountain_level" yaml:"mountain_level"`
	Octaves       int     `mapstructure:"octaves" yaml:"octaves"`
	Frequency     float64 `mapstructure:"frequency" yaml:"frequency"`
}

// TUIConfig tunes the terminal front end.
type TUIConfig struct {
	FrameRate        int `mapstructure:"frame_rate" yaml:"frame_rate"` // frames per second
	MaxEventsPerTick int `mapstructure:"max_events_per_tick" yaml:"max_events_per_tick"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn, error
	File  string `mapstructure:"file" yaml:"file"`   // TUI log file, relative to the config dir
}

// Default returns the built-in configuration.
func Default() Config {
	gen := terrain.DefaultGenConfig()
	return Config{
		Map: MapConfig{Width: 64, Height: 20, WrapX: true},
		Terrain: TerrainConfig{
			Seed:          gen.Seed,
			SeaLevel:      gen.SeaLevel,
			HillLevel:     gen.HillLvl,
			MountainLevel: gen.MountainLvl,
			Octaves:       gen.Octaves,
			Frequency:     gen.Frequency,
		},
		TUI: TUIConfig{
			FrameRate:        int(time.Second / engine.DefaultInterval),
			MaxEventsPerTick: tui.MaxEventsPerTick,
		},
		Log:    LogConfig{Level: "info", File: filepath.Join("logs", "hexgrid.log")},
		Client: ClientAuto,
	}
}

// GenConfig converts the terrain section for the generator.
func (c TerrainConfig) GenConfig() terrain.GenConfig {
	return terrain.GenConfig{
		Seed:        c.Seed,
		SeaLevel:    c.SeaLevel,
		HillLvl:     c.HillLevel,
		MountainLvl: c.MountainLevel,
		Octaves:     c.Octaves,
		Frequency:   c.Frequency,
	}
}

// Interval is the frame period for the configured rate.
func (c TUIConfig) Interval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// SlogLevel parses the configured level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log level %q: %w", c.Level, err)
	}
	return lvl, nil
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"width":     "map.width",
	"height":    "map.height",
	"wrap-x":    "map.wrap_x",
	"seed":      "terrain.seed",
	"log-level": "log.level",
	"client":    "client",
}

// RegisterFlags adds the overridable settings to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.Uint8("width", def.Map.Width, "map width in cells")
	fs.Uint8("height", def.Map.Height, "map height in cells")
	fs.Bool("wrap-x", def.Map.WrapX, "wrap the map horizontally")
	fs.Int64("seed", def.Terrain.Seed, "terrain seed (0 = random)")
	fs.StringP("log-level", "l", def.Log.Level, "log level: debug, info, warn, error")
	fs.String("client", def.Client, "front end: tui or logger (default: tui on a terminal)")
}

// Load reads dir/hexgrid.yaml, applying environment and flag overrides. flags
// may be nil. If the file does not exist it is created from Default and the
// result is returned with ErrCreatedDefault.
func Load(dir string, flags *pflag.FlagSet) (*Config, error) {
	path := filepath.Join(dir, FileName)

	created := false
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := WriteDefault(path); err != nil {
			return nil, err
		}
		created = true
	} else if err != nil {
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.SetEnvPrefix(EnvPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()
	setDefaults(vp, Default())

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := vp.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := &Config{}
	if err := vp.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if created {
		return cfg, ErrCreatedDefault
	}
	return cfg, nil
}

// setDefaults registers every key so environment overrides apply to keys the
// file leaves out.
func setDefaults(vp *viper.Viper, def Config) {
	vp.SetDefault("map.width", def.Map.Width)
	vp.SetDefault("map.height", def.Map.Height)
	vp.SetDefault("map.wrap_x", def.Map.WrapX)
	vp.SetDefault("terrain.seed", def.Terrain.Seed)
	vp.SetDefault("terrain.sea_level", def.Terrain.SeaLevel)
	vp.SetDefault("terrain.hill_level", def.Terrain.HillLevel)
	vp.SetDefault("terrain.mountain_level", def.Terrain.MountainLevel)
	vp.SetDefault("terrain.octaves", def.Terrain.Octaves)
	vp.SetDefault("terrain.frequency", def.Terrain.Frequency)
	vp.SetDefault("tui.frame_rate", def.TUI.FrameRate)
	vp.SetDefault("tui.max_events_per_tick", def.TUI.MaxEventsPerTick)
	vp.SetDefault("log.level", def.Log.Level)
	vp.SetDefault("log.file", def.Log.File)
	vp.SetDefault("client", def.Client)
}

// WriteDefault writes Default as YAML to path, creating parent directories.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("config: encode defaults: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	slog.Info("wrote default config", "path", path)
	return nil
}

// Validate rejects settings no component can run with.
func (c *Config) Validate() error {
	if c.Map.Width == 0 || c.Map.Height == 0 {
		return fmt.Errorf("config: map must be at least 1x1, got %dx%d", c.Map.Width, c.Map.Height)
	}
	if c.Terrain.Octaves < 1 {
		return fmt.Errorf("config: terrain octaves must be positive, got %d", c.Terrain.Octaves)
	}
	if c.TUI.FrameRate < 1 {
		return fmt.Errorf("config: tui frame rate must be positive, got %d", c.TUI.FrameRate)
	}
	switch c.Client {
	case ClientAuto, ClientTUI, ClientLogger:
	default:
		return fmt.Errorf("config: unknown client %q", c.Client)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}
