// Package spectral provides fixed-shape 2D Fourier transforms over real
// fields, built from gonum's 1D transforms: a real FFT across rows followed
// by a complex FFT down columns. Real-input symmetry keeps only W/2+1
// coefficients per row. Both directions are unnormalized; Inverse applies
// the 1/(H*W) factor.
package spectral

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"

	"lenia/internal/grid"
)

// Spectrum holds the packed transform of an H by W real field: H rows of
// W/2+1 complex coefficients, row-major.
type Spectrum struct {
	H, W  int
	HalfW int
	Data  []complex128
}

func NewSpectrum(h, w int) (*Spectrum, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", grid.ErrInvalidShape, h, w)
	}
	half := w/2 + 1
	return &Spectrum{H: h, W: w, HalfW: half, Data: make([]complex128, h*half)}, nil
}

func sameSpectrumShape(a, b *Spectrum) error {
	if a.H != b.H || a.W != b.W {
		return fmt.Errorf("%w: spectrum %dx%d vs %dx%d", grid.ErrShapeMismatch, a.H, a.W, b.H, b.W)
	}
	return nil
}

// MulTo writes the pointwise product a*b into dst. All three spectra must
// share one shape; dst may alias a or b.
func MulTo(dst, a, b *Spectrum) error {
	if err := sameSpectrumShape(a, b); err != nil {
		return err
	}
	if err := sameSpectrumShape(dst, a); err != nil {
		return err
	}
	for i := range dst.Data {
		dst.Data[i] = a.Data[i] * b.Data[i]
	}
	return nil
}

// Plan owns the transforms and scratch for one grid shape. A Plan is not
// safe for concurrent use; callers that fan out keep one Plan per worker.
type Plan struct {
	h, w    int
	halfW   int
	row     *fourier.FFT
	col     *fourier.CmplxFFT
	rowBuf  []float64    // length w
	colBuf  []complex128 // length h
	freqBuf []complex128 // length h*halfW, staging for the inverse passes
	normInv float64
}

func NewPlan(h, w int) (*Plan, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", grid.ErrInvalidShape, h, w)
	}
	halfW := w/2 + 1
	return &Plan{
		h:       h,
		w:       w,
		halfW:   halfW,
		row:     fourier.NewFFT(w),
		col:     fourier.NewCmplxFFT(h),
		rowBuf:  make([]float64, w),
		colBuf:  make([]complex128, h),
		freqBuf: make([]complex128, h*halfW),
		normInv: 1.0 / float64(h*w),
	}, nil
}

func (p *Plan) Shape() (h, w int) {
	return p.h, p.w
}

// NewSpectrum allocates a spectrum matching the plan's shape.
func (p *Plan) NewSpectrum() *Spectrum {
	s, err := NewSpectrum(p.h, p.w)
	if err != nil {
		panic(err) // plan shape already validated
	}
	return s
}

func (p *Plan) checkField(f *grid.Field) error {
	if f.H != p.h || f.W != p.w {
		return fmt.Errorf("%w: field %dx%d vs plan %dx%d", grid.ErrShapeMismatch, f.H, f.W, p.h, p.w)
	}
	return nil
}

func (p *Plan) checkSpectrum(s *Spectrum) error {
	if s.H != p.h || s.W != p.w {
		return fmt.Errorf("%w: spectrum %dx%d vs plan %dx%d", grid.ErrShapeMismatch, s.H, s.W, p.h, p.w)
	}
	return nil
}

// Forward writes the packed 2D transform of src into dst.
func (p *Plan) Forward(dst *Spectrum, src *grid.Field) error {
	if err := p.checkField(src); err != nil {
		return err
	}
	if err := p.checkSpectrum(dst); err != nil {
		return err
	}

	// Rows first: real FFT of each row into halfW packed coefficients.
	for y := 0; y < p.h; y++ {
		p.row.Coefficients(dst.Data[y*p.halfW:(y+1)*p.halfW], src.Data[y*p.w:(y+1)*p.w])
	}
	// Then columns: complex FFT down each packed column.
	for x := 0; x < p.halfW; x++ {
		for y := 0; y < p.h; y++ {
			p.colBuf[y] = dst.Data[y*p.halfW+x]
		}
		p.col.Coefficients(p.colBuf, p.colBuf)
		for y := 0; y < p.h; y++ {
			dst.Data[y*p.halfW+x] = p.colBuf[y]
		}
	}
	return nil
}

// Inverse writes the real inverse transform of src into dst, applying the
// 1/(H*W) normalization. src is left unmodified.
func (p *Plan) Inverse(dst *grid.Field, src *Spectrum) error {
	if err := p.checkField(dst); err != nil {
		return err
	}
	if err := p.checkSpectrum(src); err != nil {
		return err
	}
	copy(p.freqBuf, src.Data)
	p.inverseFromScratch(dst)
	return nil
}

// Convolve writes the circular convolution ifft(a*b) into dst without
// touching a or b. This is the per-kernel hot path.
func (p *Plan) Convolve(dst *grid.Field, a, b *Spectrum) error {
	if err := p.checkField(dst); err != nil {
		return err
	}
	if err := p.checkSpectrum(a); err != nil {
		return err
	}
	if err := p.checkSpectrum(b); err != nil {
		return err
	}
	for i := range p.freqBuf {
		p.freqBuf[i] = a.Data[i] * b.Data[i]
	}
	p.inverseFromScratch(dst)
	return nil
}

// inverseFromScratch inverts the contents of freqBuf into dst, consuming
// the scratch in place.
func (p *Plan) inverseFromScratch(dst *grid.Field) {
	// Columns first: complex inverse down each packed column.
	for x := 0; x < p.halfW; x++ {
		for y := 0; y < p.h; y++ {
			p.colBuf[y] = p.freqBuf[y*p.halfW+x]
		}
		p.col.Sequence(p.colBuf, p.colBuf)
		for y := 0; y < p.h; y++ {
			p.freqBuf[y*p.halfW+x] = p.colBuf[y]
		}
	}
	// Then rows: real inverse of each row, normalized.
	for y := 0; y < p.h; y++ {
		p.row.Sequence(p.rowBuf, p.freqBuf[y*p.halfW:(y+1)*p.halfW])
		for x := 0; x < p.w; x++ {
			dst.Data[y*p.w+x] = p.rowBuf[x] * p.normInv
		}
	}
}
