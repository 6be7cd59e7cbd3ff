package model

// FilterRequest is the body of POST /quiz/filter.
type FilterRequest struct {
	Level             int            `json:"level"`
	Answers           []FilterAnswer `json:"answers"`
	StudyProgrammeIDs []string       `json:"studyProgrammeIds,omitempty"`
}

// FilterAnswer is one entry of the level-specific answers payload: level 1
// sends the study-type choice, levels 2 and 3 send score pairs.
type FilterAnswer struct {
	StudyType string     `json:"studyType,omitempty"`
	Type      RiasecType `json:"type,omitempty"`
	Score     float64    `json:"score,omitempty"`
}

// ScoreAnswers wraps score pairs as a filter payload.
func ScoreAnswers(pairs []ScorePair) []FilterAnswer {
	answers := make([]FilterAnswer, len(pairs))
	for i, p := range pairs {
		answers[i] = FilterAnswer{Type: p.Type, Score: p.Score}
	}
	return answers
}

// ScorePairs extracts the score pairs from a level-2/3 answers payload.
// Entries that do not carry a valid RIASEC type are ignored.
func (r FilterRequest) ScorePairs() []ScorePair {
	pairs := make([]ScorePair, 0, len(r.Answers))
	for _, a := range r.Answers {
		if a.Type.Valid() {
			pairs = append(pairs, ScorePair{Type: a.Type, Score: a.Score})
		}
	}
	return pairs
}

// RankedResult is one result id, with its cosine similarity to the user's
// vector when it came out of the level-3 ranking stage.
type RankedResult struct {
	ID         string  `json:"id" bson:"id"`
	Similarity float64 `json:"similarity,omitempty" bson:"similarity,omitempty"`
}

// FilterResponse is the reply of POST /quiz/filter. Results is populated at
// level 3 only.
type FilterResponse struct {
	IDs     []string       `json:"ids"`
	Results []RankedResult `json:"results,omitempty"`
}

// QuestionsResponse is the reply of GET /quiz/level/{level}/questions.
type QuestionsResponse struct {
	Questions []Question `json:"questions"`
}
