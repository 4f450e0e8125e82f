package config

import "lenia/internal/kernel"

// Default returns the builtin three-channel "aquarium" world. The kernel
// table pairs fifteen short-range kernels with ten wide-radius ones, most
// of them suppressive; 684 is the 16:9 width for 384 rows, rounded up to
// even.
func Default() Preset {
	const baseRadius = 12.0

	return Preset{
		SchemaVersion: CurrentSchemaVersion,
		Name:          "aquarium",
		Height:        384,
		Width:         684,
		Channels:      3,
		DT:            0.5,
		Growth:        "gauss",
		Kernels: []kernel.Descriptor{
			{Rings: []float64{1}, Radius: 0.91 * baseRadius, Mean: 0.272, Sigma: 0.0595, Height: 0.138, Source: 0, Destination: 0},
			{Rings: []float64{1}, Radius: 0.62 * baseRadius, Mean: 0.349, Sigma: 0.1585, Height: 0.48, Source: 0, Destination: 0},
			{Rings: []float64{1, 1.0 / 4}, Radius: 0.5 * baseRadius, Mean: 0.2, Sigma: 0.0332, Height: 0.284, Source: 0, Destination: 0},
			{Rings: []float64{0, 1}, Radius: 0.97 * baseRadius, Mean: 0.114, Sigma: 0.0528, Height: 0.256, Source: 1, Destination: 1},
			{Rings: []float64{1}, Radius: 0.72 * baseRadius, Mean: 0.447, Sigma: 0.0777, Height: 0.5, Source: 1, Destination: 1},
			{Rings: []float64{5.0 / 6, 1}, Radius: 0.8 * baseRadius, Mean: 0.247, Sigma: 0.0342, Height: 0.622, Source: 1, Destination: 1},
			{Rings: []float64{1}, Radius: 0.96 * baseRadius, Mean: 0.21, Sigma: 0.0617, Height: 0.35, Source: 2, Destination: 2},
			{Rings: []float64{1}, Radius: 0.56 * baseRadius, Mean: 0.462, Sigma: 0.1192, Height: 0.218, Source: 2, Destination: 2},
			{Rings: []float64{1}, Radius: 0.78 * baseRadius, Mean: 0.446, Sigma: 0.1793, Height: 0.556, Source: 2, Destination: 2},
			{Rings: []float64{11.0 / 12, 1}, Radius: 0.79 * baseRadius, Mean: 0.327, Sigma: 0.1408, Height: 0.344, Source: 0, Destination: 1},
			{Rings: []float64{3.0 / 4, 1}, Radius: 0.5 * baseRadius, Mean: 0.476, Sigma: 0.0995, Height: 0.456, Source: 0, Destination: 2},
			{Rings: []float64{11.0 / 12, 1}, Radius: 0.72 * baseRadius, Mean: 0.379, Sigma: 0.0697, Height: 0.67, Source: 1, Destination: 0},
			{Rings: []float64{1}, Radius: 0.68 * baseRadius, Mean: 0.262, Sigma: 0.0877, Height: 0.42, Source: 1, Destination: 2},
			{Rings: []float64{1.0 / 6, 1, 0}, Radius: 0.82 * baseRadius, Mean: 0.412, Sigma: 0.1101, Height: 0.43, Source: 2, Destination: 0},
			{Rings: []float64{1}, Radius: 0.82 * baseRadius, Mean: 0.201, Sigma: 0.0786, Height: 0.278, Source: 2, Destination: 1},
			{Rings: []float64{1.0 / 4, 1}, Radius: 1.2 * baseRadius, Mean: 0.3, Sigma: 0.1, Height: -0.4, Source: 0, Destination: 0},
			{Rings: []float64{1.0 / 10, 1}, Radius: 2.0 * baseRadius, Mean: 0.3, Sigma: 0.2, Height: -0.6, Source: 1, Destination: 1},
			{Rings: []float64{3.0 / 4, 1}, Radius: 6.0 * baseRadius, Mean: 0.15, Sigma: 0.05, Height: -0.5, Source: 2, Destination: 2},
			{Rings: []float64{3.0 / 4, 1}, Radius: 6.0 * baseRadius, Mean: 0.15, Sigma: 0.05, Height: -0.5, Source: 0, Destination: 0},
			{Rings: []float64{1, 1.0 / 4}, Radius: 2.5 * baseRadius, Mean: 0.3, Sigma: 0.1, Height: -0.2, Source: 0, Destination: 1},
			{Rings: []float64{1, 1.0 / 4}, Radius: 2.5 * baseRadius, Mean: 0.3, Sigma: 0.1, Height: -0.1, Source: 1, Destination: 0},
			{Rings: []float64{1, 1.0 / 6}, Radius: 3.0 * baseRadius, Mean: 0.3, Sigma: 0.15, Height: 0.4, Source: 2, Destination: 0},
			{Rings: []float64{1, 1.0 / 6}, Radius: 2.0 * baseRadius, Mean: 0.3, Sigma: 0.15, Height: 0.4, Source: 2, Destination: 0},
			{Rings: []float64{1, 1.0 / 6}, Radius: 3.0 * baseRadius, Mean: 0.3, Sigma: 0.15, Height: -0.1, Source: 2, Destination: 2},
			{Rings: []float64{1, 1.0 / 6}, Radius: 3.0 * baseRadius, Mean: 0.3, Sigma: 0.15, Height: 0.5, Source: 0, Destination: 0},
		},
		Interaction: [][]float64{
			{0.3, 0.45, 0.37},
			{-0.2, 0.35, 0.03},
			{0.25, -0.22, 0.3},
		},
	}
}
