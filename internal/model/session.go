package model

import "time"

// Quiz levels.
const (
	Level1 = 1 // single categorical study-type question
	Level2 = 2 // RIASEC trait questions
	Level3 = 3 // similarity ranking
)

// QuizSession is the orchestration record for one quiz run. There is one
// active session per browser profile; it is mutated only through state
// machine transitions and discarded only when a new quiz is explicitly
// started.
type QuizSession struct {
	SessionID            string         `json:"sessionId"`
	CurrentLevel         int            `json:"currentLevel"`
	CurrentQuestionIndex int            `json:"currentQuestionIndex"`
	Answers              AnswerLedger   `json:"answers"`
	Level1CandidateIDs   []string       `json:"level1CandidateIds,omitempty"`
	Level2Questions      []Question     `json:"level2Questions,omitempty"`
	Results              []RankedResult `json:"resultIds,omitempty"`
	StartedAt            time.Time      `json:"startedAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}

// Clone returns a deep copy of the session. The debounced saver snapshots
// through this so an already-scheduled write never sees later mutations.
func (s *QuizSession) Clone() *QuizSession {
	if s == nil {
		return nil
	}
	out := *s
	out.Answers = s.Answers.Snapshot()
	out.Level1CandidateIDs = append([]string(nil), s.Level1CandidateIDs...)
	out.Level2Questions = append([]Question(nil), s.Level2Questions...)
	out.Results = append([]RankedResult(nil), s.Results...)
	return &out
}
