package stats

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"

	"lenia/internal/growth"
	"lenia/internal/kernel"
)

const (
	growthSamples = 256
	profileWindow = 20

	chartWidth  = 800
	chartHeight = 600
)

// GrowthCurves renders one line per kernel: the scaled activation
// h*(2*g(x, m, s) - 1) over potentials x in [0,1].
func GrowthCurves(w io.Writer, fn growth.Func, kernels []kernel.Descriptor) error {
	if len(kernels) == 0 {
		return fmt.Errorf("no kernels to plot")
	}

	xs := make([]float64, growthSamples)
	floats.Span(xs, 0, 1)

	series := make([]chart.Series, 0, len(kernels))
	for i, d := range kernels {
		ys := make([]float64, len(xs))
		for j, x := range xs {
			ys[j] = d.Height * growth.Activation(fn, x, d.Mean, d.Sigma)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("kernel %d", i),
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: chart.GetDefaultColor(i), StrokeWidth: 1.5},
		})
	}

	graph := chart.Chart{
		Title:  "scaled growth per kernel",
		Width:  chartWidth,
		Height: chartHeight,
		Series: series,
	}
	return graph.Render(chart.PNG, w)
}

// KernelProfiles renders the center-row cross-section of each kernel built
// at the given grid shape, within profileWindow cells of the center column.
func KernelProfiles(w io.Writer, height, width int, kernels []kernel.Descriptor) error {
	if len(kernels) == 0 {
		return fmt.Errorf("no kernels to plot")
	}

	cy, cx := height/2, width/2
	window := profileWindow
	if cx < window {
		window = cx
	}
	if width-1-cx < window {
		window = width - 1 - cx
	}

	xs := make([]float64, 2*window+1)
	floats.Span(xs, float64(-window), float64(window))

	series := make([]chart.Series, 0, len(kernels))
	for i, d := range kernels {
		built, err := kernel.Build(height, width, d)
		if err != nil {
			return fmt.Errorf("kernel %d: %w", i, err)
		}
		ys := make([]float64, 0, len(xs))
		for col := cx - window; col <= cx+window; col++ {
			ys = append(ys, built.At(cy, col))
		}
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("kernel %d", i),
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: chart.GetDefaultColor(i), StrokeWidth: 1.5},
		})
	}

	graph := chart.Chart{
		Title:  "kernel center-row cross-sections",
		Width:  chartWidth,
		Height: chartHeight,
		Series: series,
	}
	return graph.Render(chart.PNG, w)
}
