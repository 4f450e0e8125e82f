package engine

import (
	"fmt"

	"lenia/internal/grid"
	"lenia/internal/kernel"
)

func (e *Engine) checkKernelIndex(i int) error {
	if i < 0 || i >= len(e.kernels) {
		return fmt.Errorf("%w: %d of %d", ErrKernelIndex, i, len(e.kernels))
	}
	return nil
}

func (e *Engine) checkChannelIndex(i int) error {
	if i < 0 || i >= len(e.channels) {
		return fmt.Errorf("%w: %d of %d", ErrChannelIndex, i, len(e.channels))
	}
	return nil
}

// ToggleKernel flips one kernel's membership in the active set and reports
// the new state.
func (e *Engine) ToggleKernel(i int) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkKernelIndex(i); err != nil {
		return false, err
	}
	e.active[i] = !e.active[i]
	return e.active[i], nil
}

func (e *Engine) SetKernelActive(i int, on bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkKernelIndex(i); err != nil {
		return err
	}
	e.active[i] = on
	return nil
}

// ActiveKernels returns the contributing kernel indices in ascending order.
func (e *Engine) ActiveKernels() []int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]int, 0, len(e.active))
	for i, on := range e.active {
		if on {
			out = append(out, i)
		}
	}
	return out
}

func (e *Engine) KernelCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.kernels)
}

func (e *Engine) Descriptor(i int) (kernel.Descriptor, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if err := e.checkKernelIndex(i); err != nil {
		return kernel.Descriptor{}, err
	}
	d := e.kernels[i].desc
	d.Rings = append([]float64(nil), d.Rings...)
	return d, nil
}

// SetKernelHeight edits a kernel's strength live. The cached transform only
// depends on the footprint, so no rebuild happens.
func (e *Engine) SetKernelHeight(i int, height float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkKernelIndex(i); err != nil {
		return err
	}
	e.kernels[i].desc.Height = height
	return nil
}

// SetKernelGrowth edits a kernel's activation parameters live.
func (e *Engine) SetKernelGrowth(i int, mean, sigma float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkKernelIndex(i); err != nil {
		return err
	}
	if sigma <= 0 {
		return fmt.Errorf("%w: sigma=%g", kernel.ErrInvalid, sigma)
	}
	e.kernels[i].desc.Mean = mean
	e.kernels[i].desc.Sigma = sigma
	return nil
}

// SetCoefficient edits one interaction entry. Diagonal entries are legal to
// set but never applied by the step.
func (e *Engine) SetCoefficient(i, j int, v float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkChannelIndex(i); err != nil {
		return err
	}
	if err := e.checkChannelIndex(j); err != nil {
		return err
	}
	e.interaction[i][j] = v
	return nil
}

func (e *Engine) Coefficient(i, j int) (float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if err := e.checkChannelIndex(i); err != nil {
		return 0, err
	}
	if err := e.checkChannelIndex(j); err != nil {
		return 0, err
	}
	return e.interaction[i][j], nil
}

func (e *Engine) InteractionMatrix() [][]float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([][]float64, len(e.interaction))
	for i, row := range e.interaction {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// SetChannel copies f into channel i, clamping values into [0,1].
func (e *Engine) SetChannel(i int, f *grid.Field) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkChannelIndex(i); err != nil {
		return err
	}
	if err := e.channels[i].CopyFrom(f); err != nil {
		return err
	}
	e.channels[i].Clip01()
	return nil
}

// Channel returns a copy of channel i.
func (e *Engine) Channel(i int) (*grid.Field, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if err := e.checkChannelIndex(i); err != nil {
		return nil, err
	}
	return e.channels[i].Clone(), nil
}

// Channels returns copies of every channel in index order.
func (e *Engine) Channels() []*grid.Field {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*grid.Field, len(e.channels))
	for i, ch := range e.channels {
		out[i] = ch.Clone()
	}
	return out
}

// Reset zeroes every channel and the step counter. Kernels, the active set,
// and the interaction matrix are left as configured.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, ch := range e.channels {
		ch.Zero()
	}
	e.steps = 0
}

func (e *Engine) StepCount() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.steps
}

func (e *Engine) Shape() (h, w int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.h, e.w
}

func (e *Engine) ChannelCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.channels)
}

func (e *Engine) DT() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.dt
}

func (e *Engine) GrowthName() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.growthName
}
