package model

import "time"

// Level-2 answer values. Level 1 stores the study-type choice instead.
const (
	AnswerYes  = "yes"
	AnswerNo   = "no"
	AnswerSkip = "skip"
)

// Answer is a user's most recent response to one question. An Answer is
// immutable; answering the same question again replaces the ledger entry.
type Answer struct {
	QuestionID string    `json:"questionId"`
	Value      string    `json:"value"`
	AnsweredAt time.Time `json:"answeredAt"`
}

// AnswerLedger maps question ids to the latest answer for that question.
// Iteration order is irrelevant to scoring.
type AnswerLedger map[string]Answer

// Record inserts or overwrites the entry for a.QuestionID.
func (l AnswerLedger) Record(a Answer) {
	l[a.QuestionID] = a
}

// Snapshot returns a copy of the full ledger.
func (l AnswerLedger) Snapshot() AnswerLedger {
	out := make(AnswerLedger, len(l))
	for id, a := range l {
		out[id] = a
	}
	return out
}
