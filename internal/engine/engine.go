// Package engine advances multi-channel Lenia worlds: spectral convolution
// per active kernel, growth activation, destination accumulation, linear
// cross-channel coupling, and the per-step clip to [0,1].
package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"lenia/internal/grid"
	"lenia/internal/growth"
	"lenia/internal/kernel"
	"lenia/internal/spectral"
)

var (
	ErrInvalidConfig = errors.New("invalid engine config")
	ErrChannelIndex  = errors.New("channel index out of range")
	ErrKernelIndex   = errors.New("kernel index out of range")
)

type Config struct {
	Height   int
	Width    int
	Channels int
	// DT is the integration step applied to the accumulated growth.
	DT float64
	// Growth names a registered profile; empty selects the default.
	Growth  string
	Kernels []kernel.Descriptor
	// Interaction is a Channels x Channels coupling matrix. The diagonal is
	// carried but never applied; nil means no coupling.
	Interaction [][]float64
	// Active lists contributing kernel indices; nil activates all kernels.
	Active []int
	// Workers bounds the per-step fan-out; <=0 uses GOMAXPROCS.
	Workers int
}

type compiledKernel struct {
	desc     kernel.Descriptor
	spectrum *spectral.Spectrum
	response *grid.Field
}

// Engine owns the channel state and all precomputed transforms. All methods
// are safe for concurrent use; Step holds the write lock for the full
// transition so a step either completes or leaves the channels untouched.
type Engine struct {
	mu sync.RWMutex

	h, w       int
	dt         float64
	growthName string
	growthFn   growth.Func

	channels    []*grid.Field
	kernels     []compiledKernel
	active      []bool
	interaction [][]float64

	workers   int
	plans     chan *spectral.Plan
	chanSpecs []*spectral.Spectrum
	accum     []*grid.Field
	steps     uint64
}

func New(cfg Config) (*Engine, error) {
	if cfg.Height <= 0 || cfg.Width <= 0 {
		return nil, fmt.Errorf("%w: shape %dx%d", ErrInvalidConfig, cfg.Height, cfg.Width)
	}
	if cfg.Channels <= 0 {
		return nil, fmt.Errorf("%w: channels=%d", ErrInvalidConfig, cfg.Channels)
	}
	if cfg.DT <= 0 {
		return nil, fmt.Errorf("%w: dt=%g", ErrInvalidConfig, cfg.DT)
	}
	growthFn, err := growth.Get(cfg.Growth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	growthName := cfg.Growth
	if growthName == "" {
		growthName = growth.DefaultName
	}

	interaction := make([][]float64, cfg.Channels)
	if cfg.Interaction != nil && len(cfg.Interaction) != cfg.Channels {
		return nil, fmt.Errorf("%w: interaction matrix has %d rows, want %d", ErrInvalidConfig, len(cfg.Interaction), cfg.Channels)
	}
	for i := range interaction {
		interaction[i] = make([]float64, cfg.Channels)
		if cfg.Interaction == nil {
			continue
		}
		if len(cfg.Interaction[i]) != cfg.Channels {
			return nil, fmt.Errorf("%w: interaction row %d has %d columns, want %d", ErrInvalidConfig, i, len(cfg.Interaction[i]), cfg.Channels)
		}
		copy(interaction[i], cfg.Interaction[i])
	}

	for i, d := range cfg.Kernels {
		if err := d.Validate(cfg.Channels); err != nil {
			return nil, fmt.Errorf("%w: kernel %d: %v", ErrInvalidConfig, i, err)
		}
	}

	active := make([]bool, len(cfg.Kernels))
	if cfg.Active == nil {
		for i := range active {
			active[i] = true
		}
	} else {
		for _, idx := range cfg.Active {
			if idx < 0 || idx >= len(cfg.Kernels) {
				return nil, fmt.Errorf("%w: active kernel index %d out of [0,%d)", ErrInvalidConfig, idx, len(cfg.Kernels))
			}
			active[idx] = true
		}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	plans := make(chan *spectral.Plan, workers)
	for i := 0; i < workers; i++ {
		p, err := spectral.NewPlan(cfg.Height, cfg.Width)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		plans <- p
	}

	// Descriptors sharing a footprint share one spectrum through the cache.
	cache := kernel.NewCache()
	buildPlan := <-plans
	kernels := make([]compiledKernel, len(cfg.Kernels))
	for i, d := range cfg.Kernels {
		spec, err := cache.Spectrum(buildPlan, d)
		if err != nil {
			plans <- buildPlan
			return nil, fmt.Errorf("kernel %d: %w", i, err)
		}
		resp, err := grid.New(cfg.Height, cfg.Width)
		if err != nil {
			plans <- buildPlan
			return nil, err
		}
		kernels[i] = compiledKernel{desc: d, spectrum: spec, response: resp}
	}
	plans <- buildPlan

	channels := make([]*grid.Field, cfg.Channels)
	accum := make([]*grid.Field, cfg.Channels)
	chanSpecs := make([]*spectral.Spectrum, cfg.Channels)
	for i := 0; i < cfg.Channels; i++ {
		ch, err := grid.New(cfg.Height, cfg.Width)
		if err != nil {
			return nil, err
		}
		ac, err := grid.New(cfg.Height, cfg.Width)
		if err != nil {
			return nil, err
		}
		sp, err := spectral.NewSpectrum(cfg.Height, cfg.Width)
		if err != nil {
			return nil, err
		}
		channels[i], accum[i], chanSpecs[i] = ch, ac, sp
	}

	return &Engine{
		h:           cfg.Height,
		w:           cfg.Width,
		dt:          cfg.DT,
		growthName:  growthName,
		growthFn:    growthFn,
		channels:    channels,
		kernels:     kernels,
		active:      active,
		interaction: interaction,
		workers:     workers,
		plans:       plans,
		chanSpecs:   chanSpecs,
		accum:       accum,
	}, nil
}

// Step advances every channel by one dt. The transition is atomic: on error
// (only context cancellation can occur after construction) no channel has
// been mutated.
func (e *Engine) Step(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stepLocked(ctx)
}

// Run performs n consecutive steps, checking the context between steps.
func (e *Engine) Run(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := e.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) stepLocked(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Phase 1: forward transform of every channel, reused by each kernel
	// reading that channel as source.
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range e.channels {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			plan := <-e.plans
			defer func() { e.plans <- plan }()
			return plan.Forward(e.chanSpecs[i], e.channels[i])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Phase 2: per-kernel convolution and activation, each into its own
	// response buffer so phase 3 can accumulate in a fixed order.
	g, gCtx = errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for k := range e.kernels {
		if !e.active[k] {
			continue
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			plan := <-e.plans
			defer func() { e.plans <- plan }()
			ck := &e.kernels[k]
			if err := plan.Convolve(ck.response, e.chanSpecs[ck.desc.Source], ck.spectrum); err != nil {
				return err
			}
			mean, sigma := ck.desc.Mean, ck.desc.Sigma
			data := ck.response.Data
			for i, u := range data {
				data[i] = growth.Activation(e.growthFn, u, mean, sigma)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Phase 3: sequential accumulation in ascending kernel order keeps the
	// summation stable across runs and worker counts.
	for i := range e.accum {
		e.accum[i].Zero()
	}
	for k := range e.kernels {
		if !e.active[k] {
			continue
		}
		ck := &e.kernels[k]
		floats.AddScaled(e.accum[ck.desc.Destination].Data, ck.desc.Height, ck.response.Data)
	}

	// Phase 4: linear coupling on current channel values, diagonal skipped.
	for i := range e.channels {
		for j := range e.channels {
			if i == j {
				continue
			}
			if c := e.interaction[i][j]; c != 0 {
				floats.AddScaled(e.accum[i].Data, c, e.channels[j].Data)
			}
		}
	}

	// Phase 5: integrate and clip.
	for i := range e.channels {
		floats.AddScaled(e.channels[i].Data, e.dt, e.accum[i].Data)
		e.channels[i].Clip01()
	}
	e.steps++
	return nil
}
