package grid

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrInvalidShape  = errors.New("invalid grid shape")
	ErrShapeMismatch = errors.New("grid shape mismatch")
)

// Field is one channel of the world: an H by W torus of float64 stored
// row-major in a single slice. Hot paths index Data directly as y*W+x.
type Field struct {
	H, W int
	Data []float64
}

func New(h, w int) (*Field, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, h, w)
	}
	return &Field{H: h, W: w, Data: make([]float64, h*w)}, nil
}

// MustNew is for fixed-size construction in tests and builtin presets.
func MustNew(h, w int) *Field {
	f, err := New(h, w)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Field) At(y, x int) float64 {
	return f.Data[y*f.W+x]
}

func (f *Field) Set(y, x int, v float64) {
	f.Data[y*f.W+x] = v
}

func (f *Field) Clone() *Field {
	out := &Field{H: f.H, W: f.W, Data: make([]float64, len(f.Data))}
	copy(out.Data, f.Data)
	return out
}

func (f *Field) Zero() {
	for i := range f.Data {
		f.Data[i] = 0
	}
}

func (f *Field) Fill(v float64) {
	for i := range f.Data {
		f.Data[i] = v
	}
}

// Clip01 clamps every cell into [0,1] in place.
func (f *Field) Clip01() {
	for i, v := range f.Data {
		if v < 0 {
			f.Data[i] = 0
		} else if v > 1 {
			f.Data[i] = 1
		}
	}
}

func (f *Field) Sum() float64 {
	return floats.Sum(f.Data)
}

func (f *Field) Max() float64 {
	return floats.Max(f.Data)
}

func (f *Field) Min() float64 {
	return floats.Min(f.Data)
}

func (f *Field) Mean() float64 {
	return floats.Sum(f.Data) / float64(len(f.Data))
}

// CopyFrom overwrites f with src, which must have the same shape.
func (f *Field) CopyFrom(src *Field) error {
	if err := SameShape(f, src); err != nil {
		return err
	}
	copy(f.Data, src.Data)
	return nil
}

// SameShape reports a wrapped ErrShapeMismatch naming both shapes when the
// two fields disagree.
func SameShape(a, b *Field) error {
	if a.H != b.H || a.W != b.W {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, a.H, a.W, b.H, b.W)
	}
	return nil
}
