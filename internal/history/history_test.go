package history

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"build-a", "build-b", "build-c"} {
		err := store.Record(ctx, Record{
			BuildID:       id,
			ScriptPath:    "/scripts/ep.md",
			Title:         "Episode",
			Voice:         "narrator",
			Language:      "en",
			SegmentCount:  3,
			CachedCount:   i,
			TotalDuration: 10.5,
			Mock:          i == 2,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("record %s: %v", id, err)
		}
	}

	records, err := store.List(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].BuildID != "build-c" || records[1].BuildID != "build-b" {
		t.Errorf("order = %s, %s; want most recent first", records[0].BuildID, records[1].BuildID)
	}
	if !records[0].Mock || records[0].CachedCount != 2 {
		t.Errorf("fields not round-tripped: %+v", records[0])
	}
	if !records[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("created_at = %v", records[0].CreatedAt)
	}
}

func TestListDefaultLimit(t *testing.T) {
	store := openTestStore(t)
	records, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("empty store should list nothing, got %d", len(records))
	}
}

func TestDuplicateBuildIDRejected(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	rec := Record{BuildID: "dup", ScriptPath: "/s.md", Title: "T", Voice: "v", Language: "en"}
	if err := store.Record(ctx, rec); err != nil {
		t.Fatal(err)
	}
	if err := store.Record(ctx, rec); err == nil {
		t.Error("duplicate build_id should fail")
	}
}
