// Package kernel builds the convolution filters of the world: concentric
// ring stacks laid out on the torus, normalized to unit mass, cached in the
// frequency domain.
package kernel

import (
	"errors"
	"fmt"
)

var (
	ErrInvalid    = errors.New("invalid kernel descriptor")
	ErrDegenerate = errors.New("degenerate kernel")
)

// Descriptor is the full parameterization of one kernel: the ring stack and
// radius fix its spatial footprint, mean/sigma/height shape the growth
// response, and the channel pair routes the convolution.
type Descriptor struct {
	Rings       []float64 `json:"rings"`
	Radius      float64   `json:"radius"`
	Mean        float64   `json:"mean"`
	Sigma       float64   `json:"sigma"`
	Height      float64   `json:"height"`
	Source      int       `json:"source_channel"`
	Destination int       `json:"destination_channel"`
}

// Validate checks the descriptor against a channel count. Height may be any
// sign (negative kernels suppress their destination) and ring values may be
// zero, as long as the built kernel keeps positive mass.
func (d Descriptor) Validate(channels int) error {
	if len(d.Rings) == 0 {
		return fmt.Errorf("%w: no rings", ErrInvalid)
	}
	if d.Radius <= 0 {
		return fmt.Errorf("%w: radius=%g", ErrInvalid, d.Radius)
	}
	if d.Sigma <= 0 {
		return fmt.Errorf("%w: sigma=%g", ErrInvalid, d.Sigma)
	}
	if d.Source < 0 || d.Source >= channels {
		return fmt.Errorf("%w: source channel %d out of [0,%d)", ErrInvalid, d.Source, channels)
	}
	if d.Destination < 0 || d.Destination >= channels {
		return fmt.Errorf("%w: destination channel %d out of [0,%d)", ErrInvalid, d.Destination, channels)
	}
	return nil
}
