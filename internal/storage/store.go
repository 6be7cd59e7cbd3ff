// Package storage persists the in-progress quiz session and the most recent
// completed result set in two independent durable slots. The two slots have
// independent lifecycles: results outlive the session that produced them, so
// they survive navigation to login or registration.
package storage

import (
	"context"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/model"
)

// Slot keys in the durable store.
const (
	SessionKey = "latest-session"
	ResultsKey = "latest-results"
)

// Store is the durable slot port. Load methods return nil without error when
// a slot is empty. Implementations must round-trip values unchanged.
type Store interface {
	SaveSession(ctx context.Context, session *model.QuizSession) error
	LoadSession(ctx context.Context) (*model.QuizSession, error)
	ClearSession(ctx context.Context) error

	SaveResults(ctx context.Context, results []model.RankedResult) error
	LoadResults(ctx context.Context) ([]model.RankedResult, error)
	ClearResults(ctx context.Context) error
}
