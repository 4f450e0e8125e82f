package growth

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

const SupportedSchemaVersion = 1

// DefaultName is the profile used when a preset leaves the growth field empty.
const DefaultName = "gauss"

var (
	ErrFunctionExists   = errors.New("growth function already registered")
	ErrFunctionNotFound = errors.New("growth function not found")
	ErrFunctionVersion  = errors.New("growth function version mismatch")
)

// Spec registers a growth profile under a stable name. Preset files refer to
// profiles by name, so the schema version guards against loading a preset
// written for an incompatible profile contract.
type Spec struct {
	Name          string
	Func          Func
	SchemaVersion int
}

var registry = struct {
	mu sync.RWMutex
	m  map[string]Func
}{
	m: make(map[string]Func),
}

func init() {
	initializeBuiltIns()
}

func initializeBuiltIns() {
	MustRegister("gauss", Gauss)
	MustRegister("sigmoid", Sigmoid)
	MustRegister("sinusoidal", Sinusoidal)
	MustRegister("multi_peak", multiPeak)
	MustRegister("soft", soft)
	MustRegister("multi_peak_soft", multiPeakSoft)
}

func Register(name string, fn Func) error {
	return RegisterWithSpec(Spec{
		Name:          name,
		Func:          fn,
		SchemaVersion: SupportedSchemaVersion,
	})
}

func MustRegister(name string, fn Func) {
	if err := Register(name, fn); err != nil {
		panic(err)
	}
}

func RegisterWithSpec(spec Spec) error {
	if spec.Name == "" {
		return errors.New("growth function name is required")
	}
	if spec.Func == nil {
		return errors.New("growth function is required")
	}
	if spec.SchemaVersion != SupportedSchemaVersion {
		return fmt.Errorf("%w: schema=%d", ErrFunctionVersion, spec.SchemaVersion)
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.m[spec.Name]; exists {
		return fmt.Errorf("%w: %s", ErrFunctionExists, spec.Name)
	}
	registry.m[spec.Name] = spec.Func
	return nil
}

func Get(name string) (Func, error) {
	if name == "" {
		name = DefaultName
	}
	registry.mu.RLock()
	fn, ok := registry.m[name]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFunctionNotFound, name)
	}
	return fn, nil
}

func List() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	names := make([]string, 0, len(registry.m))
	for name := range registry.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func resetRegistryForTests() {
	registry.mu.Lock()
	registry.m = make(map[string]Func)
	registry.mu.Unlock()
	initializeBuiltIns()
}
