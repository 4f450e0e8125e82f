// Package config defines simulation presets and their JSON form.
//
// A preset is the serializable description of a world: grid shape, time
// step, growth function, kernel table, and interaction matrix. Presets are
// what commands load, edit, and hand to the engine; the engine itself never
// reads files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"lenia/internal/engine"
	"lenia/internal/kernel"
)

// CurrentSchemaVersion is stamped on every preset this package writes and
// required on every preset it reads.
const CurrentSchemaVersion = 1

var (
	ErrSchemaVersion = errors.New("preset schema version mismatch")
	ErrInvalidPreset = errors.New("invalid preset")
)

// Preset mirrors engine.Config with a name and a schema version so it can
// live in files and stores.
type Preset struct {
	SchemaVersion int    `json:"schema_version"`
	Name          string `json:"name"`

	Height   int     `json:"height"`
	Width    int     `json:"width"`
	Channels int     `json:"channels"`
	DT       float64 `json:"dt"`
	Growth   string  `json:"growth"`

	Kernels     []kernel.Descriptor `json:"kernels"`
	Interaction [][]float64         `json:"interaction"`

	// Active lists kernel indices to enable; nil means all kernels.
	Active []int `json:"active,omitempty"`
}

// Validate checks the parts the engine cannot express as types: positive
// shape and dt, a named growth function, per-kernel validity, and a square
// Channels-by-Channels interaction matrix.
func (p Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidPreset)
	}
	if p.Height <= 0 || p.Width <= 0 {
		return fmt.Errorf("%w: grid shape %dx%d must be positive", ErrInvalidPreset, p.Height, p.Width)
	}
	if p.Channels <= 0 {
		return fmt.Errorf("%w: channel count %d must be positive", ErrInvalidPreset, p.Channels)
	}
	if p.DT <= 0 {
		return fmt.Errorf("%w: dt %v must be positive", ErrInvalidPreset, p.DT)
	}
	if p.Growth == "" {
		return fmt.Errorf("%w: growth function name is required", ErrInvalidPreset)
	}
	for i, d := range p.Kernels {
		if err := d.Validate(p.Channels); err != nil {
			return fmt.Errorf("%w: kernel %d: %v", ErrInvalidPreset, i, err)
		}
	}
	if len(p.Interaction) != p.Channels {
		return fmt.Errorf("%w: interaction matrix has %d rows, want %d", ErrInvalidPreset, len(p.Interaction), p.Channels)
	}
	for i, row := range p.Interaction {
		if len(row) != p.Channels {
			return fmt.Errorf("%w: interaction row %d has %d entries, want %d", ErrInvalidPreset, i, len(row), p.Channels)
		}
	}
	for _, k := range p.Active {
		if k < 0 || k >= len(p.Kernels) {
			return fmt.Errorf("%w: active kernel index %d out of range [0,%d)", ErrInvalidPreset, k, len(p.Kernels))
		}
	}
	return nil
}

// Clone returns a deep copy sharing no slices with the receiver.
func (p Preset) Clone() Preset {
	out := p
	if p.Kernels != nil {
		out.Kernels = make([]kernel.Descriptor, len(p.Kernels))
		for i, d := range p.Kernels {
			d.Rings = append([]float64(nil), d.Rings...)
			out.Kernels[i] = d
		}
	}
	if p.Interaction != nil {
		out.Interaction = make([][]float64, len(p.Interaction))
		for i, row := range p.Interaction {
			out.Interaction[i] = append([]float64(nil), row...)
		}
	}
	if p.Active != nil {
		out.Active = append([]int(nil), p.Active...)
	}
	return out
}

// EngineConfig converts the preset into an engine configuration. Workers is
// left zero so the engine picks its own default.
func (p Preset) EngineConfig() engine.Config {
	return engine.Config{
		Height:      p.Height,
		Width:       p.Width,
		Channels:    p.Channels,
		DT:          p.DT,
		Growth:      p.Growth,
		Kernels:     p.Kernels,
		Interaction: p.Interaction,
		Active:      p.Active,
	}
}

// Load decodes a preset from r, enforcing the schema version and validating
// the result.
func Load(r io.Reader) (Preset, error) {
	var p Preset
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return Preset{}, fmt.Errorf("decode preset: %w", err)
	}
	if p.SchemaVersion != CurrentSchemaVersion {
		return Preset{}, fmt.Errorf("%w: got %d, want %d", ErrSchemaVersion, p.SchemaVersion, CurrentSchemaVersion)
	}
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}
	return p, nil
}

func LoadFile(path string) (Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Preset{}, err
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return Preset{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Save writes the preset as indented JSON. The schema version is stamped
// regardless of what the caller set.
func Save(w io.Writer, p Preset) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.SchemaVersion = CurrentSchemaVersion

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func SaveFile(path string, p Preset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(f, p); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
