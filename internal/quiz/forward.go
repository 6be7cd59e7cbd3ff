package quiz

import (
	"context"
	"log/slog"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/model"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/storage"
)

// ResultPoster is the slice of the API used on login success.
type ResultPoster interface {
	AttachResults(ctx context.Context, userID string, results []model.RankedResult) error
}

// ForwardResults sends the locally persisted latest results to the server
// after a successful login or registration, so an anonymous quiz run
// survives the switch to an account. An empty slot is a no-op. The local
// copy is intentionally left in place after forwarding (see DESIGN.md on
// result-slot staleness).
func ForwardResults(ctx context.Context, store storage.Store, api ResultPoster, userID string, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	results, err := store.LoadResults(ctx)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return nil
	}

	if err := api.AttachResults(ctx, userID, results); err != nil {
		return err
	}
	log.Info("forwarded quiz results", "userId", userID, "count", len(results))
	return nil
}
