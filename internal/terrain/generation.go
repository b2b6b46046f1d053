// Package terrain derives an elevation field for a hex map using layered simplex
// noise sampled at cell centres, and classifies each cell from it.
package terrain

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hexgrid/internal/hex"
)

// GenConfig holds terrain generation parameters.
type GenConfig struct {
	Seed        int64   // Random seed (0 = random)
	SeaLevel    float64 // Elevation threshold for ocean (0.0–1.0)
	HillLvl     float64 // Elevation threshold for hills (0.0–1.0)
	MountainLvl float64 // Elevation threshold for mountains (0.0–1.0)
	Octaves     int
	Frequency   float64
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Seed:        0,
		SeaLevel:    0.35,
		HillLvl:     0.60,
		MountainLvl: 0.75,
		Octaves:     4,
		Frequency:   0.08,
	}
}

// Kind classifies a cell.
type Kind uint8

const (
	KindOcean Kind = iota
	KindPlains
	KindHills
	KindMountain
)

// String returns a human-readable name for a terrain kind.
func (k Kind) String() string {
	switch k {
	case KindOcean:
		return "Ocean"
	case KindPlains:
		return "Plains"
	case KindHills:
		return "Hills"
	case KindMountain:
		return "Mountain"
	default:
		return "Unknown"
	}
}

// Glyph returns the character a text front end draws for the kind.
func (k Kind) Glyph() rune {
	switch k {
	case KindOcean:
		return '~'
	case KindPlains:
		return '.'
	case KindHills:
		return 'n'
	case KindMountain:
		return '^'
	default:
		return '?'
	}
}

// Field holds elevation for every storage cell of a map context.
type Field struct {
	Context   hex.MapContext
	Elevation []float64 // 0.0 (deep) to 1.0 (peak), by storage index
	Kinds     []Kind
}

// Generate samples the field for ctx.
//
// On a wrapping map the x axis is sampled around a cylinder whose circumference
// is the map's pixel width, so the seam between q=Width and q=0 is continuous.
func Generate(ctx hex.MapContext, cfg GenConfig) *Field {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	noise := opensimplex.NewNormalized(seed)

	f := &Field{
		Context:   ctx,
		Elevation: make([]float64, ctx.Cells()),
		Kinds:     make([]Kind, ctx.Cells()),
	}

	circumference := float64(ctx.Width) + 1
	radius := circumference / (2 * math.Pi)

	for c := range ctx.Coords() {
		idx, ok := c.Idx(ctx)
		if !ok {
			continue
		}
		x, y := c.ToLinear()

		var elev float64
		if ctx.WrapX {
			theta := 2 * math.Pi * x / circumference
			elev = octaveNoise3(noise, radius*math.Cos(theta), radius*math.Sin(theta), y, cfg.Octaves, cfg.Frequency, 0.5)
		} else {
			elev = octaveNoise2(noise, x, y, cfg.Octaves, cfg.Frequency, 0.5)
		}

		f.Elevation[idx] = elev
		f.Kinds[idx] = classify(elev, cfg)
	}

	return f
}

// At returns the kind of the cell at c.
func (f *Field) At(c hex.Coord) (Kind, bool) {
	idx, ok := c.Idx(f.Context)
	if !ok || idx >= len(f.Kinds) {
		return KindOcean, false
	}
	return f.Kinds[idx], true
}

// Counts returns a summary of terrain kind distribution.
func (f *Field) Counts() map[Kind]int {
	counts := make(map[Kind]int)
	for _, k := range f.Kinds {
		counts[k]++
	}
	return counts
}

func classify(elev float64, cfg GenConfig) Kind {
	switch {
	case elev < cfg.SeaLevel:
		return KindOcean
	case elev > cfg.MountainLvl:
		return KindMountain
	case elev > cfg.HillLvl:
		return KindHills
	default:
		return KindPlains
	}
}

// octaveNoise2 generates fractal noise by layering multiple frequencies.
func octaveNoise2(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	if maxVal == 0 {
		return 0
	}
	return total / maxVal
}

func octaveNoise3(noise opensimplex.Noise, x, y, z float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval3(x*frequency, y*frequency, z*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	if maxVal == 0 {
		return 0
	}
	return total / maxVal
}
