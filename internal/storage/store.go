package storage

import (
	"context"
	"time"

	"lenia/internal/config"
	"lenia/internal/stats"
)

// RunRecord is the persisted summary of a finished run. Raw channel state is
// never stored, only aggregates.
type RunRecord struct {
	Versioned
	ID        string                 `json:"id"`
	Preset    string                 `json:"preset"`
	Steps     uint64                 `json:"steps"`
	Elapsed   time.Duration          `json:"elapsed_ns"`
	Channels  []stats.ChannelSummary `json:"channels"`
	CreatedAt time.Time              `json:"created_at"`
}

// Store defines persistence operations for presets and run records.
type Store interface {
	Init(ctx context.Context) error
	SavePreset(ctx context.Context, preset config.Preset) error
	Preset(ctx context.Context, name string) (config.Preset, bool, error)
	Presets(ctx context.Context) ([]string, error)
	DeletePreset(ctx context.Context, name string) error
	SaveRun(ctx context.Context, record RunRecord) error
	Runs(ctx context.Context, limit int) ([]RunRecord, error)
}
