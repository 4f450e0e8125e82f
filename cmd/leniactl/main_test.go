package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lenia/internal/config"
	"lenia/internal/kernel"
	"lenia/internal/stats"
)

func writeTestPreset(t *testing.T, dir string) string {
	t.Helper()

	preset := config.Preset{
		Name:     "mini",
		Height:   32,
		Width:    48,
		Channels: 3,
		DT:       0.5,
		Growth:   "gauss",
		Kernels: []kernel.Descriptor{
			{Rings: []float64{1}, Radius: 3, Mean: 0.5, Sigma: 0.15, Height: 0.12, Source: 0, Destination: 1},
			{Rings: []float64{0.5, 1}, Radius: 4, Mean: 0.35, Sigma: 0.1, Height: -0.05, Source: 1, Destination: 2},
		},
		Interaction: [][]float64{
			{0, 0.1, 0},
			{0, 0, 0.05},
			{-0.05, 0, 0},
		},
	}

	path := filepath.Join(dir, "mini.json")
	if err := config.SaveFile(path, preset); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	return path
}

func captureStdout(fn func() error) (string, error) {
	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}

	os.Stdout = w
	runErr := fn()
	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		_ = r.Close()
		return "", err
	}
	_ = r.Close()
	return buf.String(), runErr
}

func TestRunCommandWritesArtifacts(t *testing.T) {
	origWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	workdir := t.TempDir()
	if err := os.Chdir(workdir); err != nil {
		t.Fatalf("chdir tempdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(origWD)
	})

	presetPath := writeTestPreset(t, workdir)
	args := []string{
		"run",
		"--preset", presetPath,
		"--steps", "3",
		"--seed", "7",
		"--workers", "2",
		"--out", "artifacts",
	}

	if _, err := captureStdout(func() error {
		return run(context.Background(), args)
	}); err != nil {
		t.Fatalf("run command: %v", err)
	}

	entries, err := os.ReadDir("artifacts")
	if err != nil {
		t.Fatalf("read artifacts dir: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 artifacts, got %d", len(entries))
	}

	var summaryPath string
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, "_growth.png"), strings.HasSuffix(name, "_kernels.png"):
		case strings.HasSuffix(name, "_summary.json"):
			summaryPath = filepath.Join("artifacts", name)
		default:
			t.Fatalf("unexpected artifact %s", name)
		}
	}
	if summaryPath == "" {
		t.Fatal("missing summary artifact")
	}

	data, err := os.ReadFile(summaryPath)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	var summary stats.RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Preset != "mini" || summary.Steps != 3 {
		t.Fatalf("unexpected summary header: %+v", summary)
	}
	if len(summary.Channels) != 3 {
		t.Fatalf("expected 3 channel summaries, got %d", len(summary.Channels))
	}
}

func TestRunCommandJSONOutput(t *testing.T) {
	presetPath := writeTestPreset(t, t.TempDir())
	out, err := captureStdout(func() error {
		return run(context.Background(), []string{
			"run",
			"--preset", presetPath,
			"--steps", "2",
			"--seed", "5",
			"--json",
		})
	})
	if err != nil {
		t.Fatalf("run command: %v", err)
	}

	var result struct {
		RunID    string                 `json:"run_id"`
		Preset   string                 `json:"preset"`
		Steps    uint64                 `json:"steps"`
		Channels []stats.ChannelSummary `json:"channels"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode run output: %v\n%s", err, out)
	}
	if result.RunID == "" {
		t.Fatal("expected non-empty run id")
	}
	if result.Preset != "mini" || result.Steps != 2 {
		t.Fatalf("unexpected result header: %+v", result)
	}
	if len(result.Channels) != 3 {
		t.Fatalf("expected 3 channel summaries, got %d", len(result.Channels))
	}
}

func TestRunCommandRejectsNonPositiveSteps(t *testing.T) {
	err := run(context.Background(), []string{"run", "--steps", "0"})
	if err == nil || !strings.Contains(err.Error(), "steps must be > 0") {
		t.Fatalf("expected steps validation error, got %v", err)
	}
}

func TestMissingCommandShowsUsage(t *testing.T) {
	err := run(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "missing command") {
		t.Fatalf("expected missing command error, got %v", err)
	}
	if !strings.Contains(err.Error(), "usage: leniactl") {
		t.Fatalf("expected usage hint, got %v", err)
	}
}

func TestUnknownCommandShowsUsage(t *testing.T) {
	err := run(context.Background(), []string{"bogus"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: bogus") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestInfoCommandPrintsKernelTable(t *testing.T) {
	out, err := captureStdout(func() error {
		return run(context.Background(), []string{"info"})
	})
	if err != nil {
		t.Fatalf("info command: %v", err)
	}

	for _, want := range []string{
		"preset=aquarium",
		"kernels=25",
		"kernel=0 ",
		"kernel=24 ",
		"interaction=2 ",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("info output missing %q:\n%s", want, out)
		}
	}
}

func TestPlotCommandWritesCharts(t *testing.T) {
	workdir := t.TempDir()
	presetPath := writeTestPreset(t, workdir)
	outDir := filepath.Join(workdir, "charts")

	if _, err := captureStdout(func() error {
		return run(context.Background(), []string{
			"plot",
			"--preset", presetPath,
			"--out", outDir,
		})
	}); err != nil {
		t.Fatalf("plot command: %v", err)
	}

	for _, name := range []string{"mini_growth.png", "mini_kernels.png"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Fatalf("expected chart %s: %v", name, err)
		}
	}
}

func TestPresetsListIncludesBuiltin(t *testing.T) {
	out, err := captureStdout(func() error {
		return run(context.Background(), []string{"presets"})
	})
	if err != nil {
		t.Fatalf("presets command: %v", err)
	}
	if !strings.Contains(out, "preset=aquarium source=builtin") {
		t.Fatalf("presets output missing builtin entry:\n%s", out)
	}
}

func TestPresetsExportBuiltin(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "exported.json")
	if _, err := captureStdout(func() error {
		return run(context.Background(), []string{
			"presets",
			"--export", "aquarium",
			"-o", outPath,
		})
	}); err != nil {
		t.Fatalf("presets export: %v", err)
	}

	preset, err := config.LoadFile(outPath)
	if err != nil {
		t.Fatalf("load exported preset: %v", err)
	}
	if preset.Name != "aquarium" || len(preset.Kernels) != 25 {
		t.Fatalf("unexpected exported preset: name=%s kernels=%d", preset.Name, len(preset.Kernels))
	}
}

func TestPresetsRejectsConflictingActions(t *testing.T) {
	err := run(context.Background(), []string{"presets", "--list", "--show", "aquarium"})
	if err == nil || !strings.Contains(err.Error(), "exactly one") {
		t.Fatalf("expected conflicting action error, got %v", err)
	}
}
