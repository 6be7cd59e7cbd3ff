package service

import (
	"context"
	"errors"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/repository"
)

// Result service errors.
var (
	ErrNoResults        = errors.New("no quiz results found")
	ErrEmptyResults     = errors.New("resultIds cannot be empty")
	ErrInvalidResultIDs = errors.New("all resultIds must be non-empty strings")
)

// ResultService stores and retrieves each user's latest completed quiz run.
// This is the hand-off target when an anonymous result set is forwarded
// after login or registration.
type ResultService struct {
	repo repository.ResultRepo
}

// NewResultService creates a result service.
func NewResultService(repo repository.ResultRepo) *ResultService {
	return &ResultService{repo: repo}
}

// Save replaces the user's stored result ids with the given set.
func (s *ResultService) Save(ctx context.Context, userID string, resultIDs []string) error {
	if len(resultIDs) == 0 {
		return ErrEmptyResults
	}
	for _, id := range resultIDs {
		if id == "" {
			return ErrInvalidResultIDs
		}
	}
	return s.repo.Save(ctx, userID, resultIDs)
}

// Get returns the user's stored result ids, or ErrNoResults.
func (s *ResultService) Get(ctx context.Context, userID string) ([]string, error) {
	resultIDs, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if resultIDs == nil {
		return nil, ErrNoResults
	}
	return resultIDs, nil
}
