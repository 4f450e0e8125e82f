package kernel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"lenia/internal/grid"
	"lenia/internal/growth"
)

// Shell bump parameters. Every ring carries the same gaussian cross-section;
// only its peak value varies with the ring entry.
const (
	shellMu    = 0.5
	shellSigma = 0.15
)

// Build renders the descriptor's ring stack as a centered spatial kernel of
// the given shape and normalizes it to unit mass. The kernel center sits at
// (h/2, w/2); cells beyond the outermost ring are zero.
func Build(h, w int, d Descriptor) (*grid.Field, error) {
	if len(d.Rings) == 0 || d.Radius <= 0 {
		return nil, fmt.Errorf("%w: rings=%d radius=%g", ErrInvalid, len(d.Rings), d.Radius)
	}
	f, err := grid.New(h, w)
	if err != nil {
		return nil, err
	}

	ringCount := len(d.Rings)
	cy, cx := h/2, w/2
	for yi := 0; yi < h; yi++ {
		dy := float64(yi - cy)
		for xi := 0; xi < w; xi++ {
			dx := float64(xi - cx)
			// Normalized radial position: ring i occupies [i, i+1).
			r := math.Sqrt(dx*dx+dy*dy) / d.Radius * float64(ringCount)
			ring := int(r)
			if ring >= ringCount {
				continue
			}
			frac := r - math.Floor(r)
			f.Data[yi*w+xi] = d.Rings[ring] * growth.Gauss(frac, shellMu, shellSigma)
		}
	}

	mass := floats.Sum(f.Data)
	if math.IsNaN(mass) || math.IsInf(mass, 0) || mass <= 0 {
		return nil, fmt.Errorf("%w: mass=%g for radius=%g rings=%d on %dx%d",
			ErrDegenerate, mass, d.Radius, ringCount, h, w)
	}
	floats.Scale(1/mass, f.Data)
	return f, nil
}

// wrapToOrigin translates the centered kernel so its center lands on cell
// (0,0), wrapping around the torus. Convolution with the wrapped kernel is
// then position preserving.
func wrapToOrigin(src *grid.Field) *grid.Field {
	h, w := src.H, src.W
	cy, cx := h/2, w/2
	dst := grid.MustNew(h, w)
	for y := 0; y < h; y++ {
		wy := ((y-cy)%h + h) % h
		for x := 0; x < w; x++ {
			wx := ((x-cx)%w + w) % w
			dst.Data[wy*w+wx] = src.Data[y*w+x]
		}
	}
	return dst
}
