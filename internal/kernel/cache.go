package kernel

import (
	"strconv"
	"strings"
	"sync"

	"lenia/internal/spectral"
)

// Cache memoizes kernel spectra. The key covers exactly the inputs that
// determine the transform: grid shape, radius, and the ring stack. Growth
// parameters and channel routing never enter the key, so descriptors that
// share a footprint share one spectrum.
type Cache struct {
	mu sync.RWMutex
	m  map[string]*spectral.Spectrum
}

func NewCache() *Cache {
	return &Cache{m: make(map[string]*spectral.Spectrum)}
}

func cacheKey(h, w int, d Descriptor) string {
	parts := []string{
		"shape=" + strconv.Itoa(h) + "x" + strconv.Itoa(w),
		"r=" + strconv.FormatFloat(d.Radius, 'g', -1, 64),
	}
	ring := make([]string, len(d.Rings))
	for i, v := range d.Rings {
		ring[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	parts = append(parts, "b="+strings.Join(ring, ","))
	return strings.Join(parts, "|")
}

// Spectrum returns the frequency-domain kernel for the descriptor at the
// plan's shape, building and memoizing it on first use. The returned
// spectrum is shared; callers must treat it as read-only.
func (c *Cache) Spectrum(p *spectral.Plan, d Descriptor) (*spectral.Spectrum, error) {
	h, w := p.Shape()
	key := cacheKey(h, w, d)

	c.mu.RLock()
	spec, ok := c.m[key]
	c.mu.RUnlock()
	if ok {
		return spec, nil
	}

	built, err := Build(h, w, d)
	if err != nil {
		return nil, err
	}
	spec = p.NewSpectrum()
	if err := p.Forward(spec, wrapToOrigin(built)); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.m[key]; ok {
		return cached, nil
	}
	c.m[key] = spec
	return spec, nil
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = make(map[string]*spectral.Spectrum)
}
