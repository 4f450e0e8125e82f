// Package lenia is the public entry point: it assembles a preset, an
// engine, and an optional store behind one client.
package lenia

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"lenia/internal/config"
	"lenia/internal/engine"
	"lenia/internal/grid"
	"lenia/internal/seed"
	"lenia/internal/stats"
	"lenia/internal/storage"
)

const defaultSteps = 100

type Options struct {
	// Preset selects the world; nil means the builtin aquarium preset.
	Preset *config.Preset
	// Store, when set, receives a run record after every Run call. The
	// caller owns the store and must have initialized it.
	Store   storage.Store
	Workers int
}

type Client struct {
	preset config.Preset
	store  storage.Store
	engine *engine.Engine
}

type RunRequest struct {
	// Steps to advance; defaults to 100.
	Steps int
	// SeedAquarium zeroes the world and drops two creatures at random
	// positions before stepping.
	SeedAquarium bool
	// Seed drives creature placement. Runs with equal seeds and presets
	// produce identical worlds.
	Seed int64
}

type RunResult struct {
	RunID    string
	Steps    uint64
	Elapsed  time.Duration
	Channels []stats.ChannelSummary
}

func New(opts Options) (*Client, error) {
	preset := config.Default()
	if opts.Preset != nil {
		preset = opts.Preset.Clone()
	}
	if err := preset.Validate(); err != nil {
		return nil, err
	}

	cfg := preset.EngineConfig()
	cfg.Workers = opts.Workers
	eng, err := engine.New(cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		preset: preset,
		store:  opts.Store,
		engine: eng,
	}, nil
}

func (c *Client) Close() error {
	if c.store == nil {
		return nil
	}
	return storage.CloseIfSupported(c.store)
}

// Preset returns a copy of the preset the client was built with.
func (c *Client) Preset() config.Preset {
	return c.preset.Clone()
}

// Engine exposes the underlying engine for live editing and channel access.
func (c *Client) Engine() *engine.Engine {
	return c.engine
}

// Run optionally seeds the world, advances it, and summarizes the result.
// With a store configured the summary is also persisted.
func (c *Client) Run(ctx context.Context, req RunRequest) (RunResult, error) {
	if req.Steps <= 0 {
		req.Steps = defaultSteps
	}

	if req.SeedAquarium {
		if err := c.seedAquarium(req.Seed); err != nil {
			return RunResult{}, err
		}
	}

	start := time.Now()
	if err := c.engine.Run(ctx, req.Steps); err != nil {
		return RunResult{}, err
	}
	elapsed := time.Since(start)

	now := time.Now().UTC()
	result := RunResult{
		RunID:    fmt.Sprintf("%s-%d-%d", c.preset.Name, req.Seed, now.Unix()),
		Steps:    c.engine.StepCount(),
		Elapsed:  elapsed,
		Channels: stats.Summarize(c.engine.Channels()),
	}

	if c.store != nil {
		record := storage.RunRecord{
			Versioned: storage.CurrentVersions(),
			ID:        result.RunID,
			Preset:    c.preset.Name,
			Steps:     result.Steps,
			Elapsed:   elapsed,
			Channels:  result.Channels,
			CreatedAt: now,
		}
		if err := c.store.SaveRun(ctx, record); err != nil {
			return RunResult{}, fmt.Errorf("record run: %w", err)
		}
	}
	return result, nil
}

func (c *Client) seedAquarium(seedValue int64) error {
	h, w := c.engine.Shape()
	fields := make([]*grid.Field, c.engine.ChannelCount())
	for i := range fields {
		fields[i] = grid.MustNew(h, w)
	}

	rng := rand.New(rand.NewSource(seedValue))
	if err := seed.InitAquarium(fields, rng); err != nil {
		return err
	}
	for i, f := range fields {
		if err := c.engine.SetChannel(i, f); err != nil {
			return err
		}
	}
	return nil
}
