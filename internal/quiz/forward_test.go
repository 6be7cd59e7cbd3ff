package quiz

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/model"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/storage"
)

type fakePoster struct {
	userID  string
	results []model.RankedResult
	calls   int
	err     error
}

func (f *fakePoster) AttachResults(_ context.Context, userID string, results []model.RankedResult) error {
	f.calls++
	f.userID = userID
	f.results = results
	return f.err
}

func TestForwardResults_SendsPersistedResults(t *testing.T) {
	store := storage.NewMemoryStore()
	results := []model.RankedResult{
		{ID: "sg-001", Similarity: 0.92},
		{ID: "sg-004", Similarity: 0.87},
	}
	if err := store.SaveResults(context.Background(), results); err != nil {
		t.Fatalf("SaveResults: %v", err)
	}

	poster := &fakePoster{}
	if err := ForwardResults(context.Background(), store, poster, "user-7", nil); err != nil {
		t.Fatalf("ForwardResults: %v", err)
	}

	if poster.calls != 1 {
		t.Fatalf("AttachResults calls = %d, want 1", poster.calls)
	}
	if poster.userID != "user-7" {
		t.Fatalf("userID = %q, want user-7", poster.userID)
	}
	if !reflect.DeepEqual(poster.results, results) {
		t.Fatalf("forwarded %v, want %v", poster.results, results)
	}

	// The local slot stays populated after a successful hand-off.
	kept, err := store.LoadResults(context.Background())
	if err != nil {
		t.Fatalf("LoadResults: %v", err)
	}
	if !reflect.DeepEqual(kept, results) {
		t.Fatalf("local slot = %v, want %v", kept, results)
	}
}

func TestForwardResults_EmptySlotIsNoOp(t *testing.T) {
	store := storage.NewMemoryStore()
	poster := &fakePoster{}

	if err := ForwardResults(context.Background(), store, poster, "user-7", nil); err != nil {
		t.Fatalf("ForwardResults: %v", err)
	}
	if poster.calls != 0 {
		t.Fatalf("AttachResults called %d times on empty slot", poster.calls)
	}
}

func TestForwardResults_PropagatesAPIError(t *testing.T) {
	store := storage.NewMemoryStore()
	if err := store.SaveResults(context.Background(), []model.RankedResult{{ID: "sg-001"}}); err != nil {
		t.Fatalf("SaveResults: %v", err)
	}

	wantErr := errors.New("server unreachable")
	poster := &fakePoster{err: wantErr}

	if err := ForwardResults(context.Background(), store, poster, "user-7", nil); !errors.Is(err, wantErr) {
		t.Fatalf("ForwardResults = %v, want %v", err, wantErr)
	}
}

func TestForwardResults_PropagatesStoreError(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Err = errors.New("storage down")
	poster := &fakePoster{}

	if err := ForwardResults(context.Background(), store, poster, "user-7", nil); err == nil {
		t.Fatal("ForwardResults did not surface the storage error")
	}
	if poster.calls != 0 {
		t.Fatal("AttachResults called despite load failure")
	}
}
