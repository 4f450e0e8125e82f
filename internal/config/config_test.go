package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"lenia/internal/kernel"
)

func TestDefaultPresetIsValid(t *testing.T) {
	p := Default()
	if err := p.Validate(); err != nil {
		t.Fatalf("validate builtin preset: %v", err)
	}
	if p.Name != "aquarium" {
		t.Fatalf("unexpected name: %s", p.Name)
	}
	if p.Height != 384 || p.Width != 684 {
		t.Fatalf("unexpected shape: %dx%d", p.Height, p.Width)
	}
	if p.Width%2 != 0 {
		t.Fatalf("width must be even, got %d", p.Width)
	}
	if p.Channels != 3 {
		t.Fatalf("unexpected channel count: %d", p.Channels)
	}
	if len(p.Kernels) != 25 {
		t.Fatalf("unexpected kernel count: got=%d want=25", len(p.Kernels))
	}
	for i, d := range p.Kernels {
		if d.Radius <= 0 {
			t.Fatalf("kernel %d has non-positive radius %v", i, d.Radius)
		}
	}
}

func TestDefaultPresetBalancesSigns(t *testing.T) {
	var growthKernels, suppressKernels int
	for _, d := range Default().Kernels {
		if d.Height >= 0 {
			growthKernels++
		} else {
			suppressKernels++
		}
	}
	if growthKernels != 18 || suppressKernels != 7 {
		t.Fatalf("unexpected sign split: growth=%d suppress=%d", growthKernels, suppressKernels)
	}
}

func TestEngineConfigCarriesPresetFields(t *testing.T) {
	p := Default()
	cfg := p.EngineConfig()

	if cfg.Height != p.Height || cfg.Width != p.Width || cfg.Channels != p.Channels {
		t.Fatalf("shape mismatch: got=%dx%dx%d", cfg.Channels, cfg.Height, cfg.Width)
	}
	if cfg.DT != p.DT || cfg.Growth != p.Growth {
		t.Fatalf("dt/growth mismatch: got dt=%v growth=%s", cfg.DT, cfg.Growth)
	}
	if len(cfg.Kernels) != len(p.Kernels) {
		t.Fatalf("kernel count mismatch: got=%d want=%d", len(cfg.Kernels), len(p.Kernels))
	}
	if !reflect.DeepEqual(cfg.Interaction, p.Interaction) {
		t.Fatalf("interaction mismatch: got=%v want=%v", cfg.Interaction, p.Interaction)
	}
	if cfg.Workers != 0 {
		t.Fatalf("workers should default to zero, got %d", cfg.Workers)
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := Default()
	c := p.Clone()

	c.Kernels[0].Rings[0] = 99
	c.Kernels[1].Height = 99
	c.Interaction[0][0] = 99

	if p.Kernels[0].Rings[0] == 99 || p.Kernels[1].Height == 99 || p.Interaction[0][0] == 99 {
		t.Fatal("clone shares state with original")
	}
	if c.Active != nil {
		t.Fatalf("clone invented an active set: %v", c.Active)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	input := Default()

	var buf bytes.Buffer
	if err := Save(&buf, input); err != nil {
		t.Fatalf("save: %v", err)
	}

	output, err := Load(&buf)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(output, input) {
		t.Fatalf("roundtrip mismatch\ngot=%+v\nwant=%+v", output, input)
	}
}

func TestSaveStampsSchemaVersion(t *testing.T) {
	p := Default()
	p.SchemaVersion = 0

	var buf bytes.Buffer
	if err := Save(&buf, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.SchemaVersion != CurrentSchemaVersion {
		t.Fatalf("schema version not stamped: got=%d want=%d", loaded.SchemaVersion, CurrentSchemaVersion)
	}
}

func TestLoadRejectsSchemaVersionMismatch(t *testing.T) {
	p := Default()

	var buf bytes.Buffer
	if err := Save(&buf, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	tampered := strings.Replace(buf.String(), `"schema_version": 1`, `"schema_version": 2`, 1)

	_, err := Load(strings.NewReader(tampered))
	if !errors.Is(err, ErrSchemaVersion) {
		t.Fatalf("expected ErrSchemaVersion, got: %v", err)
	}
}

func TestLoadRejectsInvalidPreset(t *testing.T) {
	const raw = `{"schema_version":1,"name":"broken","height":8,"width":8,"channels":1,"dt":0,"growth":"gauss","interaction":[[0]]}`

	_, err := Load(strings.NewReader(raw))
	if !errors.Is(err, ErrInvalidPreset) {
		t.Fatalf("expected ErrInvalidPreset, got: %v", err)
	}
}

func TestValidateRejectsBrokenPresets(t *testing.T) {
	base := func() Preset {
		return Preset{
			SchemaVersion: CurrentSchemaVersion,
			Name:          "t",
			Height:        8,
			Width:         8,
			Channels:      2,
			DT:            0.5,
			Growth:        "gauss",
			Kernels: []kernel.Descriptor{
				{Rings: []float64{1}, Radius: 2, Mean: 0.5, Sigma: 0.15, Height: 0.1, Source: 0, Destination: 1},
			},
			Interaction: [][]float64{{0, 0}, {0, 0}},
		}
	}

	cases := []struct {
		name   string
		mutate func(*Preset)
	}{
		{"empty name", func(p *Preset) { p.Name = "" }},
		{"zero height", func(p *Preset) { p.Height = 0 }},
		{"zero channels", func(p *Preset) { p.Channels = 0 }},
		{"zero dt", func(p *Preset) { p.DT = 0 }},
		{"empty growth", func(p *Preset) { p.Growth = "" }},
		{"kernel channel out of range", func(p *Preset) { p.Kernels[0].Destination = 2 }},
		{"missing interaction row", func(p *Preset) { p.Interaction = p.Interaction[:1] }},
		{"ragged interaction row", func(p *Preset) { p.Interaction[1] = []float64{0} }},
		{"active index out of range", func(p *Preset) { p.Active = []int{1} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base()
			tc.mutate(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidPreset) {
				t.Fatalf("expected ErrInvalidPreset, got: %v", err)
			}
		})
	}
}

func TestLoadPresetFixture(t *testing.T) {
	path := filepath.Join("..", "..", "testdata", "fixtures", "minimal_preset_v1.json")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	if p.Name != "minimal" {
		t.Fatalf("unexpected preset name: %s", p.Name)
	}
	if len(p.Kernels) != 1 || p.Kernels[0].Destination != 1 {
		t.Fatalf("unexpected kernels: %+v", p.Kernels)
	}
	if p.Interaction[1][0] != 0.2 {
		t.Fatalf("unexpected interaction: %+v", p.Interaction)
	}
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.json")
	input := Default()

	if err := SaveFile(path, input); err != nil {
		t.Fatalf("save file: %v", err)
	}
	output, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if !reflect.DeepEqual(output, input) {
		t.Fatalf("file roundtrip mismatch")
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
