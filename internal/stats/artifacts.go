package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"lenia/internal/growth"
	"lenia/internal/kernel"
)

// RunSummary is the JSON artifact written next to the charts after a run.
type RunSummary struct {
	Preset    string           `json:"preset"`
	Steps     uint64           `json:"steps"`
	ElapsedMS int64            `json:"elapsed_ms"`
	Channels  []ChannelSummary `json:"channels"`
}

// WriteCharts renders the growth-curve and kernel-profile charts into dir,
// creating it if needed, and returns the paths written.
func WriteCharts(dir, prefix string, fn growth.Func, height, width int, kernels []kernel.Descriptor) ([]string, error) {
	if prefix == "" {
		return nil, fmt.Errorf("artifact prefix is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	growthPath := filepath.Join(dir, prefix+"_growth.png")
	if err := renderToFile(growthPath, func(f *os.File) error {
		return GrowthCurves(f, fn, kernels)
	}); err != nil {
		return nil, err
	}

	profilePath := filepath.Join(dir, prefix+"_kernels.png")
	if err := renderToFile(profilePath, func(f *os.File) error {
		return KernelProfiles(f, height, width, kernels)
	}); err != nil {
		return nil, err
	}

	return []string{growthPath, profilePath}, nil
}

// WriteArtifacts renders the charts plus the run summary into dir and
// returns the paths written.
func WriteArtifacts(dir, prefix string, fn growth.Func, height, width int, kernels []kernel.Descriptor, summary RunSummary) ([]string, error) {
	paths, err := WriteCharts(dir, prefix, fn, height, width, kernels)
	if err != nil {
		return nil, err
	}

	summaryPath := filepath.Join(dir, prefix+"_summary.json")
	if err := writeJSON(summaryPath, summary); err != nil {
		return nil, err
	}

	return append(paths, summaryPath), nil
}

func renderToFile(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
