package growth

import "math"

// Func is a growth profile over a neighborhood potential. Implementations
// map x into [0,1] (or close to it) with a peak positioned by mu and a
// width controlled by sigma.
type Func func(x, mu, sigma float64) float64

// Gauss is the canonical Lenia bump exp(-((x-mu)/sigma)^2 / 2).
func Gauss(x, mu, sigma float64) float64 {
	d := (x - mu) / sigma
	return math.Exp(-0.5 * d * d)
}

// Sigmoid is a smooth step centered on mu with slope width sigma.
func Sigmoid(x, mu, sigma float64) float64 {
	return 1.0 / (1.0 + math.Exp(-(x-mu)/sigma))
}

// Sinusoidal is sin^2(pi (x-mu)/sigma), a periodic bump train.
func Sinusoidal(x, mu, sigma float64) float64 {
	s := math.Sin(math.Pi * (x - mu) / sigma)
	return s * s
}

// multiPeak sums two gaussian bumps at fixed positions 0.15 and 0.6. The mu
// and sigma arguments are ignored; the peak layout is the profile's identity.
func multiPeak(x, _, _ float64) float64 {
	d1 := (x - 0.15) / 0.02
	d2 := (x - 0.6) / 0.05
	return math.Exp(-0.5*d1*d1) + math.Exp(-0.5*d2*d2)
}

// soft adds a faint secondary bump at 0.5 to the primary gaussian.
func soft(x, mu, sigma float64) float64 {
	d1 := (x - mu) / sigma
	d2 := (x - 0.5) / 0.05
	return math.Exp(-0.5*d1*d1) + 0.3*math.Exp(-0.5*d2*d2)
}

// multiPeakSoft is soft lifted by a constant floor.
func multiPeakSoft(x, mu, sigma float64) float64 {
	return soft(x, mu, sigma) + 0.3
}

// Activation maps a growth profile into the signed range [-1,1].
func Activation(fn Func, x, mu, sigma float64) float64 {
	return 2*fn(x, mu, sigma) - 1
}
