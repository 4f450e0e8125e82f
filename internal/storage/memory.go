package storage

import (
	"context"
	"errors"
	"sort"
	"sync"

	"lenia/internal/config"
	"lenia/internal/stats"
)

var errNotInitialized = errors.New("store is not initialized")

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	presets     map[string]config.Preset
	runs        []RunRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.presets = make(map[string]config.Preset)
	s.runs = nil
	return nil
}

func (s *MemoryStore) SavePreset(_ context.Context, preset config.Preset) error {
	if err := preset.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errNotInitialized
	}
	s.presets[preset.Name] = preset.Clone()
	return nil
}

func (s *MemoryStore) Preset(_ context.Context, name string) (config.Preset, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return config.Preset{}, false, errNotInitialized
	}
	preset, ok := s.presets[name]
	if !ok {
		return config.Preset{}, false, nil
	}
	return preset.Clone(), true, nil
}

func (s *MemoryStore) Presets(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, errNotInitialized
	}
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) DeletePreset(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errNotInitialized
	}
	delete(s.presets, name)
	return nil
}

func (s *MemoryStore) SaveRun(_ context.Context, record RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errNotInitialized
	}
	record.Channels = append([]stats.ChannelSummary(nil), record.Channels...)
	for i := range s.runs {
		if s.runs[i].ID == record.ID {
			s.runs[i] = record
			return nil
		}
	}
	s.runs = append(s.runs, record)
	return nil
}

func (s *MemoryStore) Runs(_ context.Context, limit int) ([]RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, errNotInitialized
	}
	records := make([]RunRecord, len(s.runs))
	copy(records, s.runs)
	// Newest first.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	for i := range records {
		records[i].Channels = append([]stats.ChannelSummary(nil), records[i].Channels...)
	}
	return records, nil
}
