package storage

import (
	"encoding/json"
	"errors"

	"lenia/internal/config"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

// Versioned stamps persisted records with the schema and codec versions they
// were written under.
type Versioned struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// CurrentVersions returns the stamp for records written now.
func CurrentVersions() Versioned {
	return Versioned{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion}
}

type presetEnvelope struct {
	CodecVersion int           `json:"codec_version"`
	Preset       config.Preset `json:"preset"`
}

func EncodePreset(p config.Preset) ([]byte, error) {
	p.SchemaVersion = config.CurrentSchemaVersion
	return json.Marshal(presetEnvelope{CodecVersion: CurrentCodecVersion, Preset: p})
}

func DecodePreset(data []byte) (config.Preset, error) {
	var env presetEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return config.Preset{}, err
	}
	if env.CodecVersion != CurrentCodecVersion {
		return config.Preset{}, ErrVersionMismatch
	}
	if env.Preset.SchemaVersion != config.CurrentSchemaVersion {
		return config.Preset{}, ErrVersionMismatch
	}
	if err := env.Preset.Validate(); err != nil {
		return config.Preset{}, err
	}
	return env.Preset, nil
}

func EncodeRunRecord(r RunRecord) ([]byte, error) {
	return json.Marshal(r)
}

func DecodeRunRecord(data []byte) (RunRecord, error) {
	var record RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return RunRecord{}, err
	}
	if err := checkVersion(record.Versioned); err != nil {
		return RunRecord{}, err
	}
	return record, nil
}

func checkVersion(v Versioned) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
