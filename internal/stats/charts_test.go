package stats

import (
	"bytes"
	"errors"
	"testing"

	"lenia/internal/growth"
	"lenia/internal/kernel"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func testKernels() []kernel.Descriptor {
	return []kernel.Descriptor{
		{Rings: []float64{1}, Radius: 4, Mean: 0.3, Sigma: 0.05, Height: 0.5, Source: 0, Destination: 0},
		{Rings: []float64{0.5, 1}, Radius: 6, Mean: 0.2, Sigma: 0.1, Height: -0.4, Source: 0, Destination: 0},
	}
}

func TestGrowthCurvesRendersPNG(t *testing.T) {
	fn, err := growth.Get("gauss")
	if err != nil {
		t.Fatalf("get growth: %v", err)
	}

	var buf bytes.Buffer
	if err := GrowthCurves(&buf, fn, testKernels()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Fatalf("output is not a PNG, first bytes: %x", buf.Bytes()[:8])
	}
}

func TestGrowthCurvesRequiresKernels(t *testing.T) {
	fn, err := growth.Get("gauss")
	if err != nil {
		t.Fatalf("get growth: %v", err)
	}

	var buf bytes.Buffer
	if err := GrowthCurves(&buf, fn, nil); err == nil {
		t.Fatal("expected error for empty kernel table")
	}
}

func TestKernelProfilesRendersPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := KernelProfiles(&buf, 64, 64, testKernels()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Fatalf("output is not a PNG, first bytes: %x", buf.Bytes()[:8])
	}
}

func TestKernelProfilesHandlesNarrowGrids(t *testing.T) {
	var buf bytes.Buffer
	if err := KernelProfiles(&buf, 16, 16, testKernels()[:1]); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Fatal("output is not a PNG")
	}
}

func TestKernelProfilesPropagatesBuildErrors(t *testing.T) {
	degenerate := []kernel.Descriptor{
		{Rings: []float64{0}, Radius: 4, Mean: 0.3, Sigma: 0.05, Height: 0.5},
	}

	var buf bytes.Buffer
	err := KernelProfiles(&buf, 32, 32, degenerate)
	if !errors.Is(err, kernel.ErrDegenerate) {
		t.Fatalf("expected ErrDegenerate, got: %v", err)
	}
}
