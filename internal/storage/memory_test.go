package storage

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"lenia/internal/config"
	"lenia/internal/stats"
)

func initMemoryStore(t *testing.T) *MemoryStore {
	t.Helper()

	store := NewMemoryStore()
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	return store
}

func testRunRecord(id string, createdAt time.Time) RunRecord {
	return RunRecord{
		Versioned: CurrentVersions(),
		ID:        id,
		Preset:    "aquarium",
		Steps:     40,
		Elapsed:   3 * time.Second,
		Channels: []stats.ChannelSummary{
			{Channel: 0, Min: 0, Max: 1, Mean: 0.2, Mass: 819.2},
		},
		CreatedAt: createdAt,
	}
}

func TestMemoryStorePresetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := initMemoryStore(t)
	input := config.Default()

	if err := store.SavePreset(ctx, input); err != nil {
		t.Fatalf("save preset: %v", err)
	}

	output, ok, err := store.Preset(ctx, input.Name)
	if err != nil {
		t.Fatalf("get preset: %v", err)
	}
	if !ok {
		t.Fatalf("expected preset %s", input.Name)
	}
	if !reflect.DeepEqual(output, input) {
		t.Fatalf("preset mismatch\ngot=%+v\nwant=%+v", output, input)
	}
}

func TestMemoryStorePresetCopyOut(t *testing.T) {
	ctx := context.Background()
	store := initMemoryStore(t)

	if err := store.SavePreset(ctx, config.Default()); err != nil {
		t.Fatalf("save preset: %v", err)
	}
	first, _, err := store.Preset(ctx, "aquarium")
	if err != nil {
		t.Fatalf("get preset: %v", err)
	}
	first.Kernels[0].Rings[0] = 99
	first.Interaction[0][0] = 99

	second, _, err := store.Preset(ctx, "aquarium")
	if err != nil {
		t.Fatalf("get preset again: %v", err)
	}
	if second.Kernels[0].Rings[0] == 99 || second.Interaction[0][0] == 99 {
		t.Fatal("mutating a loaded preset leaked into the store")
	}
}

func TestMemoryStoreRejectsInvalidPreset(t *testing.T) {
	store := initMemoryStore(t)

	broken := config.Default()
	broken.DT = 0
	err := store.SavePreset(context.Background(), broken)
	if !errors.Is(err, config.ErrInvalidPreset) {
		t.Fatalf("expected ErrInvalidPreset, got: %v", err)
	}
}

func TestMemoryStorePresetsSortedAndDelete(t *testing.T) {
	ctx := context.Background()
	store := initMemoryStore(t)

	b := config.Default()
	b.Name = "beta"
	a := config.Default()
	a.Name = "alpha"
	for _, p := range []config.Preset{b, a} {
		if err := store.SavePreset(ctx, p); err != nil {
			t.Fatalf("save %s: %v", p.Name, err)
		}
	}

	names, err := store.Presets(ctx)
	if err != nil {
		t.Fatalf("list presets: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"alpha", "beta"}) {
		t.Fatalf("unexpected names: %v", names)
	}

	if err := store.DeletePreset(ctx, "alpha"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, ok, err := store.Preset(ctx, "alpha")
	if err != nil {
		t.Fatalf("get deleted: %v", err)
	}
	if ok {
		t.Fatal("expected alpha to be deleted")
	}
}

func TestMemoryStoreRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := initMemoryStore(t)

	base := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"run-1", "run-2", "run-3"} {
		if err := store.SaveRun(ctx, testRunRecord(id, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	records, err := store.Runs(ctx, 0)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].ID != "run-3" || records[2].ID != "run-1" {
		t.Fatalf("unexpected order: %s, %s, %s", records[0].ID, records[1].ID, records[2].ID)
	}

	limited, err := store.Runs(ctx, 2)
	if err != nil {
		t.Fatalf("runs limited: %v", err)
	}
	if len(limited) != 2 || limited[0].ID != "run-3" {
		t.Fatalf("unexpected limited runs: %+v", limited)
	}
}

func TestMemoryStoreSaveRunReplacesByID(t *testing.T) {
	ctx := context.Background()
	store := initMemoryStore(t)

	createdAt := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	if err := store.SaveRun(ctx, testRunRecord("run-1", createdAt)); err != nil {
		t.Fatalf("save: %v", err)
	}
	updated := testRunRecord("run-1", createdAt)
	updated.Steps = 99
	if err := store.SaveRun(ctx, updated); err != nil {
		t.Fatalf("save updated: %v", err)
	}

	records, err := store.Runs(ctx, 0)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(records) != 1 || records[0].Steps != 99 {
		t.Fatalf("expected single updated record, got %+v", records)
	}
}

func TestMemoryStoreRequiresInit(t *testing.T) {
	store := NewMemoryStore()

	if err := store.SavePreset(context.Background(), config.Default()); err == nil {
		t.Fatal("expected error before Init")
	}
	if _, err := store.Runs(context.Background(), 0); err == nil {
		t.Fatal("expected error before Init")
	}
}
