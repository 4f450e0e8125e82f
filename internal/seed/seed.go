// Package seed builds initial channel states: uniform fills, noise, and
// rectangular pattern injection.
package seed

import (
	"errors"
	"fmt"
	"math/rand"

	"lenia/internal/grid"
)

var (
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrChannelCount   = errors.New("pattern channel count mismatch")
	ErrBounds         = errors.New("pattern exceeds field bounds")
)

// Pattern is a per-channel rectangular patch, indexed [channel][row][col].
// All channels share one footprint.
type Pattern [][][]float64

// Shape returns the pattern's channel count and footprint. A zero pattern
// reports all zeros.
func (p Pattern) Shape() (channels, rows, cols int) {
	if len(p) == 0 || len(p[0]) == 0 {
		return len(p), 0, 0
	}
	return len(p), len(p[0]), len(p[0][0])
}

func (p Pattern) validate() error {
	channels, rows, cols := p.Shape()
	if channels == 0 || rows == 0 || cols == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPattern)
	}
	for c, ch := range p {
		if len(ch) != rows {
			return fmt.Errorf("%w: channel %d has %d rows, want %d", ErrInvalidPattern, c, len(ch), rows)
		}
		for r, row := range ch {
			if len(row) != cols {
				return fmt.Errorf("%w: channel %d row %d has %d cols, want %d", ErrInvalidPattern, c, r, len(row), cols)
			}
		}
	}
	return nil
}

// Uniform fills the field with v clamped into [0,1].
func Uniform(f *grid.Field, v float64) {
	f.Fill(clamp01(v))
}

// Noise fills the field with uniform [0,1) samples from rng.
func Noise(f *grid.Field, rng *rand.Rand) {
	for i := range f.Data {
		f.Data[i] = rng.Float64()
	}
}

// NoiseChannels fills every field with independent noise.
func NoiseChannels(fields []*grid.Field, rng *rand.Rand) {
	for _, f := range fields {
		Noise(f, rng)
	}
}

// Inject writes the pattern into the fields with its top-left corner at
// (y, x). Cells are overwritten, not accumulated, and pattern values are
// clamped into [0,1]. The pattern must fit without wrapping.
func Inject(fields []*grid.Field, p Pattern, y, x int) error {
	if err := p.validate(); err != nil {
		return err
	}
	channels, rows, cols := p.Shape()
	if channels != len(fields) {
		return fmt.Errorf("%w: pattern has %d channels, fields have %d", ErrChannelCount, channels, len(fields))
	}
	for c, f := range fields {
		if y < 0 || x < 0 || y+rows > f.H || x+cols > f.W {
			return fmt.Errorf("%w: %dx%d patch at (%d,%d) on channel %d of %dx%d", ErrBounds, rows, cols, y, x, c, f.H, f.W)
		}
	}

	for c, f := range fields {
		for r, row := range p[c] {
			for col, v := range row {
				f.Set(y+r, x+col, clamp01(v))
			}
		}
	}
	return nil
}

// InjectRandom places the pattern at a position drawn uniformly from all
// positions where it fits, and reports where it landed.
func InjectRandom(fields []*grid.Field, p Pattern, rng *rand.Rand) (y, x int, err error) {
	if err := p.validate(); err != nil {
		return 0, 0, err
	}
	if len(fields) == 0 {
		return 0, 0, fmt.Errorf("%w: no fields", ErrChannelCount)
	}
	_, rows, cols := p.Shape()
	maxY := fields[0].H - rows
	maxX := fields[0].W - cols
	if maxY < 0 || maxX < 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d patch on %dx%d field", ErrBounds, rows, cols, fields[0].H, fields[0].W)
	}

	y = rng.Intn(maxY + 1)
	x = rng.Intn(maxX + 1)
	return y, x, Inject(fields, p, y, x)
}

// InitAquarium zeroes every channel and drops two aquarium creatures at
// independent random positions.
func InitAquarium(fields []*grid.Field, rng *rand.Rand) error {
	for _, f := range fields {
		f.Zero()
	}
	for i := 0; i < 2; i++ {
		if _, _, err := InjectRandom(fields, Aquarium(), rng); err != nil {
			return err
		}
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
