package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/model"
)

// MemoryStore keeps the two slots in process memory. It backs unit tests and
// serves as a degraded fallback when no durable backend is reachable.
// Values go through JSON so load always returns an independent copy, exactly
// like the durable implementations.
type MemoryStore struct {
	mu      sync.Mutex
	session []byte
	results []byte

	// Err, when set, is returned by every operation. Tests use it to
	// exercise the storage-unavailable path.
	Err error
}

// NewMemoryStore creates an empty in-memory slot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveSession(_ context.Context, session *model.QuizSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.session = data
	return nil
}

func (s *MemoryStore) LoadSession(_ context.Context) (*model.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.session == nil {
		return nil, nil
	}
	var session model.QuizSession
	if err := json.Unmarshal(s.session, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *MemoryStore) ClearSession(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.session = nil
	return nil
}

func (s *MemoryStore) SaveResults(_ context.Context, results []model.RankedResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	data, err := json.Marshal(results)
	if err != nil {
		return err
	}
	s.results = data
	return nil
}

func (s *MemoryStore) LoadResults(_ context.Context) ([]model.RankedResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.results == nil {
		return nil, nil
	}
	var results []model.RankedResult
	if err := json.Unmarshal(s.results, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *MemoryStore) ClearResults(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.results = nil
	return nil
}
