package storage

import (
	"testing"
	"time"

	"github.com/kawaii-hq/kawaii-go/internal/domain"
	bolt "go.etcd.io/bbolt"
)

func openTestBolt(t *testing.T, opts Options) *boltStore {
	t.Helper()
	storeRaw, err := openBolt(t.TempDir()+"/history.db", normalizeOptions(opts))
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	store := storeRaw.(*boltStore)
	t.Cleanup(func() { store.Close() })
	return store
}

func storedKeys(t *testing.T, b *boltStore) int {
	t.Helper()
	n := 0
	if err := b.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(historyBucket)).Stats().KeyN
		return nil
	}); err != nil {
		t.Fatalf("view: %v", err)
	}
	return n
}

func TestBoltStoreRecentNewestFirst(t *testing.T) {
	store := openTestBolt(t, Options{})

	for _, u := range []string{"https://x/1.gif", "https://x/2.gif", "https://x/3.gif"} {
		if err := store.Record(domain.Gif{Category: "hug", URL: u}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].URL != "https://x/3.gif" || got[1].URL != "https://x/2.gif" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[0].FetchedAt.IsZero() {
		t.Fatalf("expected fetched_at to be stamped")
	}
}

func TestBoltStoreExpiresHistory(t *testing.T) {
	store := openTestBolt(t, Options{
		HistoryTTL:      time.Minute,
		CleanupInterval: time.Hour,
	})

	clock := time.Now()
	store.now = func() time.Time { return clock }

	if err := store.Record(domain.Gif{Category: "wave", URL: "https://x/old.gif"}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	clock = clock.Add(2 * time.Minute)
	got, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected expired entry to be hidden, got %+v", got)
	}
	if storedKeys(t, store) != 1 {
		t.Fatalf("entry should stay on disk until the cleanup cadence elapses")
	}

	clock = clock.Add(2 * time.Hour)
	if _, err := store.Recent(10); err != nil {
		t.Fatalf("Recent after cleanup window: %v", err)
	}
	if n := storedKeys(t, store); n != 0 {
		t.Fatalf("expected cleanup to purge expired entry, %d left", n)
	}
}

func TestNewStoreSupportsNoop(t *testing.T) {
	store, err := NewStore("none", "", Options{})
	if err != nil {
		t.Fatalf("NewStore none: %v", err)
	}
	if err := store.Record(domain.Gif{URL: "x"}); err != nil {
		t.Fatalf("noop store Record: %v", err)
	}
	if got, _ := store.Recent(5); len(got) != 0 {
		t.Fatalf("noop store should not remember anything")
	}
}

func TestNewStoreRejectsUnknownType(t *testing.T) {
	if _, err := NewStore("redis", "", Options{}); err == nil {
		t.Fatalf("expected error for unsupported storage type")
	}
	if _, err := NewStore("bbolt", " ", Options{}); err == nil {
		t.Fatalf("expected error for missing bbolt path")
	}
}
