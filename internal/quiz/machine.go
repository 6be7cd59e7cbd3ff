// Package quiz drives one user's journey through the multi-level preference
// quiz: it owns the session record, records answers in the ledger, gates
// level transitions on the filtering pipeline and keeps the session durable
// through the storage port.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/model"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/riasec"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/storage"
)

// Phase identifies one state of the quiz flow.
type Phase int

const (
	PhaseLevel1           Phase = iota // waiting for the categorical answer
	PhaseLevel1Success                 // timed encouragement screen after level 1
	PhaseLevel2                        // stepping through the trait questions
	PhaseLevel2Success                 // timed encouragement screen before results
	PhaseResults                       // terminal: ranked results available
	PhaseFilterError                   // a level gate failed; Retry re-runs it
	PhaseQuestionsMissing              // server had no level-2 questions
)

// String returns the phase name for logs.
func (p Phase) String() string {
	switch p {
	case PhaseLevel1:
		return "level1"
	case PhaseLevel1Success:
		return "level1-success"
	case PhaseLevel2:
		return "level2"
	case PhaseLevel2Success:
		return "level2-success"
	case PhaseResults:
		return "results"
	case PhaseFilterError:
		return "filter-error"
	case PhaseQuestionsMissing:
		return "questions-missing"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// DefaultSuccessDuration is how long the success screens stay up before the
// machine auto-advances on the next Tick.
const DefaultSuccessDuration = 2500 * time.Millisecond

// Level1QuestionID is the ledger key of the single level-1 question.
const Level1QuestionID = "level1.studientyp"

// ErrInvalidPhase reports an operation that the current phase does not allow.
var ErrInvalidPhase = errors.New("quiz: operation not allowed in current phase")

// QuestionLedgerID builds the ledger key for a level-2 question. The RIASEC
// code rides in the last segment so scoring can recover it.
func QuestionLedgerID(index int, t model.RiasecType) string {
	return fmt.Sprintf("level2.q%d.%s", index, t)
}

// Options configures a Machine. Only Client is mandatory (passed
// separately); everything here has a usable zero value.
type Options struct {
	// Store persists the session and latest results. Nil means in-memory
	// only: the quiz works but does not survive a reload.
	Store storage.Store
	// SaveDelay is the session-save debounce window.
	SaveDelay time.Duration
	// SuccessDuration is how long the timed success phases last.
	SuccessDuration time.Duration
	// Now is the clock, injectable for tests.
	Now    func() time.Time
	Logger *slog.Logger
}

// Machine is the quiz session state machine. All mutations are synchronous
// reactions to caller events, strictly ordered by arrival; the only blocking
// points are the level-completion filter calls, which gate the transition to
// the next phase. Machine is not safe for concurrent use.
type Machine struct {
	session *model.QuizSession
	phase   Phase

	client FilterClient
	store  storage.Store
	saver  *Saver
	log    *slog.Logger
	now    func() time.Time

	successDuration time.Duration
	phaseEnteredAt  time.Time

	lastErr error
	// retry re-runs the gate that failed, set while in PhaseFilterError.
	retry func(ctx context.Context) error
}

// NewMachine hydrates the most recent session from the store, or starts a
// fresh one when nothing resumable exists. Hydration happens here, before
// any new session is created, so a reload never clobbers saved progress.
// A failing store is logged and degraded to in-memory play.
func NewMachine(ctx context.Context, client FilterClient, opts Options) *Machine {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	successDuration := opts.SuccessDuration
	if successDuration <= 0 {
		successDuration = DefaultSuccessDuration
	}

	m := &Machine{
		client:          client,
		store:           opts.Store,
		log:             log,
		now:             now,
		successDuration: successDuration,
	}
	if opts.Store != nil {
		m.saver = NewSaver(opts.Store, opts.SaveDelay, log)
	}

	if opts.Store != nil {
		session, err := opts.Store.LoadSession(ctx)
		switch {
		case err != nil:
			log.Warn("session hydration failed, starting fresh", "error", err)
		case session != nil:
			m.session = session
			m.phase = phaseForSession(session)
			log.Info("session resumed", "sessionId", session.SessionID, "phase", m.phase.String())
			return m
		}
	}

	m.session = NewSession(now())
	m.phase = PhaseLevel1
	return m
}

// NewSession creates a fresh session record.
func NewSession(now time.Time) *model.QuizSession {
	return &model.QuizSession{
		SessionID:            uuid.NewString(),
		CurrentLevel:         model.Level1,
		CurrentQuestionIndex: 0,
		Answers:              model.AnswerLedger{},
		StartedAt:            now,
		UpdatedAt:            now,
	}
}

// phaseForSession derives the resume phase from a persisted session.
func phaseForSession(s *model.QuizSession) Phase {
	switch {
	case len(s.Results) > 0 || s.CurrentLevel == model.Level3:
		return PhaseResults
	case s.CurrentLevel == model.Level2:
		return PhaseLevel2
	default:
		return PhaseLevel1
	}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Session exposes the session record. Callers must treat it as read-only.
func (m *Machine) Session() *model.QuizSession { return m.session }

// LastErr returns the error behind the current error phase, if any.
func (m *Machine) LastErr() error { return m.lastErr }

// Results returns the ranked result set once the machine reached results.
func (m *Machine) Results() []model.RankedResult { return m.session.Results }

// CurrentQuestion returns the level-2 question under the cursor, or nil.
func (m *Machine) CurrentQuestion() *model.Question {
	idx := m.session.CurrentQuestionIndex
	if idx < 0 || idx >= len(m.session.Level2Questions) {
		return nil
	}
	q := m.session.Level2Questions[idx]
	return &q
}

// AnswerLevel1 records the categorical study-type choice and runs the
// level-1 gate: filter the catalog, fetch the trait questions and advance
// into the level-1 success screen.
func (m *Machine) AnswerLevel1(ctx context.Context, studyType string) error {
	if m.phase != PhaseLevel1 {
		return ErrInvalidPhase
	}
	m.record(Level1QuestionID, studyType)
	return m.completeLevel1(ctx, studyType)
}

func (m *Machine) completeLevel1(ctx context.Context, studyType string) error {
	res, err := m.client.FilterLevel(ctx, model.FilterRequest{
		Level:   model.Level1,
		Answers: []model.FilterAnswer{{StudyType: studyType}},
	})
	if err != nil {
		m.fail(err, func(ctx context.Context) error {
			return m.completeLevel1(ctx, studyType)
		})
		return err
	}
	m.session.Level1CandidateIDs = res.IDs

	// Fetch the question bank once per session; resumed sessions keep the
	// set they started with.
	if len(m.session.Level2Questions) == 0 {
		questions, err := m.client.Level2Questions(ctx)
		if err != nil {
			if errors.Is(err, ErrNoQuestions) {
				m.lastErr = err
				m.phase = PhaseQuestionsMissing
				m.touch()
				return err
			}
			m.fail(err, func(ctx context.Context) error {
				return m.completeLevel1(ctx, studyType)
			})
			return err
		}
		m.session.Level2Questions = questions
	}

	m.session.CurrentLevel = model.Level2
	m.session.CurrentQuestionIndex = 0
	m.clearError()
	m.enterTimed(PhaseLevel1Success)
	m.touch()
	return nil
}

// AnswerLevel2 records the answer to the question under the cursor and
// advances. The final question triggers the scoring and the level-2/level-3
// gates before the machine moves toward results.
func (m *Machine) AnswerLevel2(ctx context.Context, value string) error {
	if m.phase != PhaseLevel2 {
		return ErrInvalidPhase
	}
	q := m.CurrentQuestion()
	if q == nil {
		return fmt.Errorf("quiz: no question at index %d", m.session.CurrentQuestionIndex)
	}

	m.record(QuestionLedgerID(m.session.CurrentQuestionIndex, q.RiasecType), value)

	if m.session.CurrentQuestionIndex < len(m.session.Level2Questions)-1 {
		m.session.CurrentQuestionIndex++
		m.touch()
		return nil
	}
	return m.completeLevel2(ctx)
}

func (m *Machine) completeLevel2(ctx context.Context) error {
	// Scores are always a pure projection of the ledger, never accumulated
	// on the side, so edits made through Back are already accounted for.
	raw, err := riasec.CalculateScores(m.session.Answers)
	if err != nil {
		// Malformed question id: a content bug, not user input. Propagate.
		return err
	}
	answers := model.ScoreAnswers(riasec.ToPairs(riasec.Normalize(raw)))

	level2Res, err := m.client.FilterLevel(ctx, model.FilterRequest{
		Level:             model.Level2,
		Answers:           answers,
		StudyProgrammeIDs: m.session.Level1CandidateIDs,
	})
	if err != nil {
		m.fail(err, m.completeLevel2)
		return err
	}

	level3Res, err := m.client.FilterLevel(ctx, model.FilterRequest{
		Level:             model.Level3,
		Answers:           answers,
		StudyProgrammeIDs: level2Res.IDs,
	})
	if err != nil {
		m.fail(err, m.completeLevel2)
		return err
	}

	results := level3Res.Results
	if len(results) == 0 {
		results = make([]model.RankedResult, 0, len(level3Res.IDs))
		for _, id := range level3Res.IDs {
			results = append(results, model.RankedResult{ID: id})
		}
	}
	m.session.Results = results
	m.session.CurrentLevel = model.Level3

	// Latest results live in their own slot, independent of the session,
	// so they survive the jump to login or registration.
	if m.store != nil {
		if err := m.store.SaveResults(ctx, results); err != nil {
			m.log.Warn("result save failed", "sessionId", m.session.SessionID, "error", err)
		}
	}

	m.clearError()
	m.enterTimed(PhaseLevel2Success)
	m.touch()
	return nil
}

// Back steps to the previous question. At the first level-2 question it
// transitions back to level 1 instead of decrementing below zero.
func (m *Machine) Back() {
	if m.phase != PhaseLevel2 {
		return
	}
	if m.session.CurrentQuestionIndex > 0 {
		m.session.CurrentQuestionIndex--
	} else {
		m.session.CurrentLevel = model.Level1
		m.phase = PhaseLevel1
	}
	m.touch()
}

// Retry re-runs the level gate that failed. This is the explicit
// retry-by-re-navigation affordance; there is no automatic retry or backoff.
func (m *Machine) Retry(ctx context.Context) error {
	if m.phase != PhaseFilterError || m.retry == nil {
		return ErrInvalidPhase
	}
	return m.retry(ctx)
}

// Tick advances the time-bounded phases. Call it with the current time; once
// a success screen has been up for its full duration the machine moves on.
func (m *Machine) Tick(now time.Time) {
	if now.Sub(m.phaseEnteredAt) < m.successDuration {
		return
	}
	switch m.phase {
	case PhaseLevel1Success:
		m.phase = PhaseLevel2
	case PhaseLevel2Success:
		m.phase = PhaseResults
	}
}

// Restart discards the current session and begins a fresh quiz. This is the
// only way an existing session is dropped.
func (m *Machine) Restart(ctx context.Context) {
	if m.store != nil {
		if err := m.store.ClearSession(ctx); err != nil {
			m.log.Warn("session clear failed", "error", err)
		}
	}
	m.session = NewSession(m.now())
	m.phase = PhaseLevel1
	m.clearError()
	m.touch()
}

// Close abandons any pending debounced save. Progress since the last fired
// save is not durable, matching navigation-away semantics.
func (m *Machine) Close() {
	if m.saver != nil {
		m.saver.Stop()
	}
}

func (m *Machine) record(questionID, value string) {
	m.session.Answers.Record(model.Answer{
		QuestionID: questionID,
		Value:      value,
		AnsweredAt: m.now(),
	})
	m.touch()
}

func (m *Machine) touch() {
	m.session.UpdatedAt = m.now()
	if m.saver != nil {
		m.saver.Schedule(m.session)
	}
}

func (m *Machine) fail(err error, retry func(ctx context.Context) error) {
	m.lastErr = err
	m.retry = retry
	m.phase = PhaseFilterError
	m.log.Warn("level gate failed", "sessionId", m.session.SessionID, "error", err)
}

func (m *Machine) clearError() {
	m.lastErr = nil
	m.retry = nil
}

func (m *Machine) enterTimed(p Phase) {
	m.phase = p
	m.phaseEnteredAt = m.now()
}
