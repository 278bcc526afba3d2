package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Record(ctx, RunRecord{
		StartedAt:  time.Now().Add(-time.Minute),
		InputPath:  "components.csv",
		OutputPath: "ATTRIBUTIONS.txt",
		Components: 12,
		Groups:     4,
		Missing:    []string{"BSD-3-Clause"},
		Duration:   42 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if first.ID == "" {
		t.Error("Record() should assign a run id")
	}

	if _, err := store.Record(ctx, RunRecord{
		InputPath:  "components.csv",
		OutputPath: "ATTRIBUTIONS.txt",
		Components: 13,
		Groups:     4,
	}); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	records, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	// Newest first.
	if records[0].Components != 13 {
		t.Errorf("records[0].Components = %d, want 13", records[0].Components)
	}
	if len(records[1].Missing) != 1 || records[1].Missing[0] != "BSD-3-Clause" {
		t.Errorf("records[1].Missing = %v", records[1].Missing)
	}
	if records[1].Duration != 42*time.Millisecond {
		t.Errorf("records[1].Duration = %v", records[1].Duration)
	}
}

func TestList_Limit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := store.Record(ctx, RunRecord{
			StartedAt: time.Now().Add(time.Duration(i) * time.Second),
			InputPath: "components.csv",
		}); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	records, err := store.List(ctx, 3)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("len(records) = %d, want 3", len(records))
	}
}

func TestPruner_RetentionDays(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	old := RunRecord{StartedAt: time.Now().AddDate(0, 0, -30), InputPath: "a"}
	recent := RunRecord{StartedAt: time.Now(), InputPath: "b"}
	for _, record := range []RunRecord{old, recent} {
		if _, err := store.Record(ctx, record); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	pruner := NewPruner(store, PrunerConfig{RetentionDays: 7})
	deleted, err := pruner.Prune(ctx)
	if err != nil {
		t.Fatalf("Prune() failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestPruner_MaxRecords(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := store.Record(ctx, RunRecord{
			StartedAt: time.Now().Add(time.Duration(i-5) * time.Hour),
			InputPath: "components.csv",
		}); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	pruner := NewPruner(store, PrunerConfig{MaxRecords: 2})
	deleted, err := pruner.Prune(ctx)
	if err != nil {
		t.Fatalf("Prune() failed: %v", err)
	}
	if deleted != 3 {
		t.Errorf("deleted = %d, want 3", deleted)
	}

	records, err := store.List(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Errorf("len(records) = %d, want 2", len(records))
	}
}

func TestPruner_Disabled(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Record(ctx, RunRecord{StartedAt: time.Now().AddDate(-1, 0, 0)}); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	deleted, err := NewPruner(store, PrunerConfig{}).Prune(ctx)
	if err != nil {
		t.Fatalf("Prune() failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleted = %d, want 0 with pruning disabled", deleted)
	}
}

func TestScheduler_NoSchedule(t *testing.T) {
	store := newTestStore(t)
	scheduler := NewScheduler(NewPruner(store, PrunerConfig{}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := scheduler.Start(ctx); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if scheduler.IsRunning() {
		t.Error("scheduler should not run without a schedule")
	}
}

func TestScheduler_StartStop(t *testing.T) {
	store := newTestStore(t)
	scheduler := NewScheduler(NewPruner(store, PrunerConfig{
		RetentionDays: 7,
		PruneSchedule: "0 3 * * *",
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := scheduler.Start(ctx); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if !scheduler.IsRunning() {
		t.Error("scheduler should be running")
	}

	scheduler.Stop()
	if scheduler.IsRunning() {
		t.Error("scheduler should stop")
	}
}
