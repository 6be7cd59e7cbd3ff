// Package riasec derives the six-dimensional Holland trait vector from quiz
// answers and prepares it for comparison against catalog programmes.
package riasec

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/model"
)

// Raw level-2 scores accumulate within [RawMin, RawMax]; normalized scores
// live on the catalog's fixed 1-5 scale so they are comparable against
// programme vectors.
const (
	RawMin   = -6.0
	RawMax   = 6.0
	ScaleMin = 1.0
	ScaleMax = 5.0
)

// scoringPrefix marks the question ids that contribute to the trait vector.
const scoringPrefix = "level2"

// DefaultDominantCount is how many top traits describe a user at level 2.
const DefaultDominantCount = 3

// ExtractType reads the RIASEC code from the last dot-delimited segment of a
// question id, e.g. "level2.q4.A" -> A. A malformed id is a content bug, not
// user input; callers must propagate the error, never swallow it.
func ExtractType(questionID string) (model.RiasecType, error) {
	parts := strings.Split(questionID, ".")
	candidate := model.RiasecType(parts[len(parts)-1])
	if !candidate.Valid() {
		return "", fmt.Errorf("riasec: invalid question id %q: %q is not a RIASEC type", questionID, string(candidate))
	}
	return candidate, nil
}

// Points converts an answer value to its score contribution.
func Points(value string) float64 {
	switch value {
	case model.AnswerYes:
		return 1
	case model.AnswerNo:
		return -1
	default: // skip and anything unrecognized
		return 0
	}
}

// CalculateScores projects the full ledger into a raw trait vector. Only
// level-2 entries contribute; iteration order does not matter. The vector is
// recomputed from scratch on every call, so ledger edits after
// back-navigation are always reflected.
func CalculateScores(ledger model.AnswerLedger) (model.ScoreVector, error) {
	scores := model.NewScoreVector()
	for id, answer := range ledger {
		if !strings.HasPrefix(id, scoringPrefix) {
			continue
		}
		t, err := ExtractType(id)
		if err != nil {
			return nil, err
		}
		scores[t] += Points(answer.Value)
	}
	return scores, nil
}

// Normalize clamps each component to [RawMin, RawMax] and maps it linearly
// onto [ScaleMin, ScaleMax]. A raw 0 lands on the scale midpoint 3, the
// endpoints map exactly to 1 and 5.
func Normalize(v model.ScoreVector) model.ScoreVector {
	out := model.NewScoreVector()
	for _, t := range model.RiasecTypes {
		clamped := math.Max(RawMin, math.Min(RawMax, v[t]))
		out[t] = ScaleMin + ((clamped-RawMin)/(RawMax-RawMin))*(ScaleMax-ScaleMin)
	}
	return out
}

// ToPairs converts a vector into its unordered wire form.
func ToPairs(v model.ScoreVector) []model.ScorePair {
	pairs := make([]model.ScorePair, 0, len(model.RiasecTypes))
	for _, t := range model.RiasecTypes {
		pairs = append(pairs, model.ScorePair{Type: t, Score: v[t]})
	}
	return pairs
}

// FromPairs rebuilds a vector from its wire form. Inverse of ToPairs.
func FromPairs(pairs []model.ScorePair) model.ScoreVector {
	v := model.NewScoreVector()
	for _, p := range pairs {
		if p.Type.Valid() {
			v[p.Type] = p.Score
		}
	}
	return v
}

// DominantTypes returns the n highest-scoring types. Equal scores fall back
// to the canonical R,I,A,S,E,C order so the result is stable.
func DominantTypes(v model.ScoreVector, n int) []model.RiasecType {
	types := make([]model.RiasecType, len(model.RiasecTypes))
	copy(types, model.RiasecTypes[:])
	sort.SliceStable(types, func(i, j int) bool {
		return v[types[i]] > v[types[j]]
	})
	if n < 0 || n > len(types) {
		n = len(types)
	}
	return types[:n]
}
