package reconcile

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/terraincognita07/potsy/internal/localcache"
	"github.com/terraincognita07/potsy/internal/models"
)

var errRemoteDown = errors.New("remote down")

// fakeRemote dedupes by client id the way the server does.
type fakeRemote struct {
	mu       sync.Mutex
	byClient map[string]models.Symptom
	calls    int
	failFor  map[string]bool
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{byClient: map[string]models.Symptom{}, failFor: map[string]bool{}}
}

func (fake *fakeRemote) CreateSymptom(_ context.Context, input models.SymptomInput) (models.Symptom, bool, error) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.calls++
	if fake.failFor[input.ClientID] {
		return models.Symptom{}, false, errRemoteDown
	}
	if existing, ok := fake.byClient[input.ClientID]; ok {
		return existing, false, nil
	}
	symptom := input.ToSymptom(time.Now())
	symptom.ID = uint(len(fake.byClient) + 100)
	fake.byClient[input.ClientID] = symptom
	return symptom, true, nil
}

type invalidations struct {
	keys []string
}

func (recorded *invalidations) Invalidate(keys ...string) {
	recorded.keys = append(recorded.keys, keys...)
}

func openTestCache(t *testing.T) *localcache.Cache {
	t.Helper()
	cache, err := localcache.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func storePending(t *testing.T, cache *localcache.Cache, count int) []string {
	t.Helper()
	clientIDs := make([]string, 0, count)
	for i := 0; i < count; i++ {
		clientID := fmt.Sprintf("00000000-0000-4000-8000-%012d", i+1)
		record := localcache.Record{Symptom: models.Symptom{
			ID:           uint(1700000000000 + i),
			ClientID:     clientID,
			Name:         "Dizziness",
			Severity:     5,
			Duration:     30,
			DurationType: models.DurationMinutes,
			Date:         time.Date(2026, time.March, 10+i, 9, 0, 0, 0, time.UTC),
			Triggers:     []string{"Heat"},
		}}
		if err := cache.StoreSymptom(context.Background(), record); err != nil {
			t.Fatalf("store pending record: %v", err)
		}
		clientIDs = append(clientIDs, clientID)
	}
	return clientIDs
}

func TestRun_NothingToSync(t *testing.T) {
	cache := openTestCache(t)
	fake := newFakeRemote()
	reconciler := New(cache, fake, nil)

	report, err := reconciler.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if !report.NothingToSync || report.RunID == "" {
		t.Fatalf("unexpected report %#v", report)
	}
	if fake.calls != 0 {
		t.Fatalf("expected no remote calls, got %d", fake.calls)
	}
	if _, ok, _ := cache.LastSync(context.Background()); ok {
		t.Fatal("expected last sync to stay unset")
	}
}

func TestRun_PushesMarksAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	cache := openTestCache(t)
	storePending(t, cache, 3)
	fake := newFakeRemote()
	recorded := &invalidations{}
	reconciler := New(cache, fake, recorded, "symptoms")
	syncedAt := time.Date(2026, time.March, 14, 8, 0, 0, 0, time.UTC)
	reconciler.now = func() time.Time { return syncedAt }

	report, err := reconciler.Run(ctx)
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if report.Pushed != 3 || report.Failed != 0 || report.NothingToSync {
		t.Fatalf("unexpected report %#v", report)
	}
	if len(recorded.keys) != 1 || recorded.keys[0] != "symptoms" {
		t.Fatalf("expected symptoms query invalidation, got %v", recorded.keys)
	}

	records := cache.Symptoms(ctx)
	if len(records) != 3 {
		t.Fatalf("expected synced records to stay cached, got %d", len(records))
	}
	for _, record := range records {
		if record.Pending() || record.RemoteID == nil || !record.SyncedAt.Equal(syncedAt) {
			t.Fatalf("expected record marked synced, got %#v", record)
		}
	}
	lastSync, ok, err := cache.LastSync(ctx)
	if err != nil || !ok || !lastSync.Equal(syncedAt) {
		t.Fatalf("expected last sync %v, got %v ok=%v err=%v", syncedAt, lastSync, ok, err)
	}

	second, err := reconciler.Run(ctx)
	if err != nil {
		t.Fatalf("second Run() unexpected error: %v", err)
	}
	if !second.NothingToSync {
		t.Fatalf("expected nothing to sync on second run, got %#v", second)
	}
	if len(fake.byClient) != 3 || fake.calls != 3 {
		t.Fatalf("expected 3 remote records from 3 calls, got %d from %d", len(fake.byClient), fake.calls)
	}
	if second.RunID == report.RunID {
		t.Fatal("expected a fresh run id per run")
	}
}

func TestRun_RepushAfterLostMarkDoesNotDuplicate(t *testing.T) {
	ctx := context.Background()
	cache := openTestCache(t)
	clientIDs := storePending(t, cache, 1)
	fake := newFakeRemote()
	if _, _, err := fake.CreateSymptom(ctx, models.SymptomInput{ClientID: clientIDs[0], Name: "Dizziness"}); err != nil {
		t.Fatalf("seed remote: %v", err)
	}

	report, err := New(cache, fake, nil).Run(ctx)
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if report.Pushed != 1 || report.Duplicates != 1 {
		t.Fatalf("unexpected report %#v", report)
	}
	if len(fake.byClient) != 1 {
		t.Fatalf("expected no duplicate remote records, got %d", len(fake.byClient))
	}
}

func TestRun_PartialFailure(t *testing.T) {
	ctx := context.Background()
	cache := openTestCache(t)
	clientIDs := storePending(t, cache, 3)
	fake := newFakeRemote()
	fake.failFor[clientIDs[1]] = true

	report, err := New(cache, fake, nil).Run(ctx)
	var syncErr *SyncError
	if !errors.As(err, &syncErr) {
		t.Fatalf("expected SyncError, got %v", err)
	}
	if syncErr.Operation != "push" || syncErr.Pushed != 2 || syncErr.Failed != 1 {
		t.Fatalf("unexpected sync error %#v", syncErr)
	}
	if !errors.Is(err, errRemoteDown) {
		t.Fatalf("expected wrapped remote error, got %v", err)
	}
	if report.Pushed != 2 || report.Failed != 1 {
		t.Fatalf("unexpected report %#v", report)
	}
	if _, ok, _ := cache.LastSync(ctx); ok {
		t.Fatal("expected last sync to stay unset after partial failure")
	}

	for _, record := range cache.Symptoms(ctx) {
		wantPending := record.ClientID == clientIDs[1]
		if record.Pending() != wantPending {
			t.Fatalf("record %s pending=%v, want %v", record.ClientID, record.Pending(), wantPending)
		}
	}

	delete(fake.failFor, clientIDs[1])
	retry, err := New(cache, fake, nil).Run(ctx)
	if err != nil {
		t.Fatalf("retry Run() unexpected error: %v", err)
	}
	if retry.Pushed != 1 {
		t.Fatalf("expected only the failed record on retry, got %#v", retry)
	}
}

func TestPruneAndStatus(t *testing.T) {
	ctx := context.Background()
	cache := openTestCache(t)
	storePending(t, cache, 2)
	reconciler := New(cache, newFakeRemote(), nil)

	status, err := reconciler.Status(ctx)
	if err != nil {
		t.Fatalf("Status() unexpected error: %v", err)
	}
	if status.Pending != 2 || status.Synced != 0 || status.LastSync != nil {
		t.Fatalf("unexpected status %#v", status)
	}

	if _, err := reconciler.Run(ctx); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	status, err = reconciler.Status(ctx)
	if err != nil || status.Synced != 2 || status.Pending != 0 || status.LastSync == nil {
		t.Fatalf("unexpected status after run %#v (%v)", status, err)
	}

	removed, err := reconciler.Prune(ctx)
	if err != nil || removed != 2 {
		t.Fatalf("Prune() = %d, %v; want 2", removed, err)
	}
	if records := cache.Symptoms(ctx); len(records) != 0 {
		t.Fatalf("expected empty cache after prune, got %d", len(records))
	}
}
