package quiz

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/model"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/storage"
)

// DefaultSaveDelay is how long a session mutation may sit unsaved before the
// debounced write fires.
const DefaultSaveDelay = 300 * time.Millisecond

const saveTimeout = 5 * time.Second

// Saver debounces session writes: each Schedule call replaces any pending
// save, so a burst of mutations produces a single write. Stop abandons
// whatever is pending; that last increment of progress is then not durable.
type Saver struct {
	store storage.Store
	delay time.Duration
	log   *slog.Logger

	// after is swappable so tests can fire the timer deterministically.
	after func(time.Duration, func()) *time.Timer

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NewSaver creates a saver writing to store. delay <= 0 falls back to
// DefaultSaveDelay.
func NewSaver(store storage.Store, delay time.Duration, log *slog.Logger) *Saver {
	if delay <= 0 {
		delay = DefaultSaveDelay
	}
	if log == nil {
		log = slog.Default()
	}
	return &Saver{store: store, delay: delay, log: log, after: time.AfterFunc}
}

// Schedule queues a save of the given session, replacing any pending save.
// The snapshot is taken now, so mutations after this call do not leak into
// an already-scheduled write.
func (s *Saver) Schedule(session *model.QuizSession) {
	snapshot := session.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = s.after(s.delay, func() {
		s.save(snapshot)
	})
}

// Stop cancels any pending save and rejects future schedules.
func (s *Saver) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Saver) save(snapshot *model.QuizSession) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := s.store.SaveSession(ctx, snapshot); err != nil {
		// Non-fatal: the quiz keeps running in memory, resume is lost.
		s.log.Warn("session save failed", "sessionId", snapshot.SessionID, "error", err)
	}
}
