package riasec

import (
	"testing"
	"time"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/model"
)

func answer(id, value string) model.Answer {
	return model.Answer{QuestionID: id, Value: value, AnsweredAt: time.Now()}
}

func TestCalculateScores_EmptyLedgerIsFreshZeroVector(t *testing.T) {
	first, err := CalculateScores(model.AnswerLedger{})
	if err != nil {
		t.Fatalf("CalculateScores: %v", err)
	}
	for _, typ := range model.RiasecTypes {
		if first[typ] != 0 {
			t.Errorf("score[%s] = %v, want 0", typ, first[typ])
		}
	}

	// Mutating one result must not leak into the next call.
	first[model.TypeR] = 99
	second, err := CalculateScores(model.AnswerLedger{})
	if err != nil {
		t.Fatalf("CalculateScores: %v", err)
	}
	if second[model.TypeR] != 0 {
		t.Errorf("zero vector was aliased: score[R] = %v after mutating a previous result", second[model.TypeR])
	}
}

func TestCalculateScores_SumsPerType(t *testing.T) {
	ledger := model.AnswerLedger{}
	ledger.Record(answer("level2.q0.R", model.AnswerYes))
	ledger.Record(answer("level2.q1.R", model.AnswerYes))

	scores, err := CalculateScores(ledger)
	if err != nil {
		t.Fatalf("CalculateScores: %v", err)
	}
	if scores[model.TypeR] != 2 {
		t.Errorf("score[R] = %v, want 2", scores[model.TypeR])
	}
	for _, typ := range model.RiasecTypes[1:] {
		if scores[typ] != 0 {
			t.Errorf("score[%s] = %v, want 0", typ, scores[typ])
		}
	}
}

func TestCalculateScores_IgnoresNonScoringEntries(t *testing.T) {
	ledger := model.AnswerLedger{}
	ledger.Record(answer("level1.studientyp", model.StudyTypeUndergraduate))
	ledger.Record(answer("level2.q0.I", model.AnswerNo))
	ledger.Record(answer("level2.q1.S", model.AnswerSkip))

	scores, err := CalculateScores(ledger)
	if err != nil {
		t.Fatalf("CalculateScores: %v", err)
	}
	if scores[model.TypeI] != -1 {
		t.Errorf("score[I] = %v, want -1", scores[model.TypeI])
	}
	if scores[model.TypeS] != 0 {
		t.Errorf("score[S] = %v, want 0 (skip)", scores[model.TypeS])
	}
}

func TestCalculateScores_OrderIndependent(t *testing.T) {
	ids := []string{"level2.q0.R", "level2.q1.I", "level2.q2.A", "level2.q3.R", "level2.q4.C"}
	values := []string{model.AnswerYes, model.AnswerNo, model.AnswerYes, model.AnswerYes, model.AnswerNo}

	forward := model.AnswerLedger{}
	for i, id := range ids {
		forward.Record(answer(id, values[i]))
	}
	backward := model.AnswerLedger{}
	for i := len(ids) - 1; i >= 0; i-- {
		backward.Record(answer(ids[i], values[i]))
	}

	a, err := CalculateScores(forward)
	if err != nil {
		t.Fatalf("CalculateScores(forward): %v", err)
	}
	b, err := CalculateScores(backward)
	if err != nil {
		t.Fatalf("CalculateScores(backward): %v", err)
	}
	for _, typ := range model.RiasecTypes {
		if a[typ] != b[typ] {
			t.Errorf("score[%s] differs by insertion order: %v vs %v", typ, a[typ], b[typ])
		}
	}
}

func TestCalculateScores_MalformedIDFails(t *testing.T) {
	ledger := model.AnswerLedger{}
	ledger.Record(answer("level2.q0.X", model.AnswerYes))

	if _, err := CalculateScores(ledger); err == nil {
		t.Fatal("expected error for malformed question id, got nil")
	}
}

func TestExtractType(t *testing.T) {
	typ, err := ExtractType("level2.q4.A")
	if err != nil {
		t.Fatalf("ExtractType: %v", err)
	}
	if typ != model.TypeA {
		t.Errorf("ExtractType = %s, want A", typ)
	}

	for _, id := range []string{"level2.q4", "level2.q4.Z", "", "R.level2"} {
		if _, err := ExtractType(id); err == nil {
			t.Errorf("ExtractType(%q): expected error, got nil", id)
		}
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		value string
		want  float64
	}{
		{model.AnswerYes, 1},
		{model.AnswerNo, -1},
		{model.AnswerSkip, 0},
		{"maybe", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := Points(tt.value); got != tt.want {
			t.Errorf("Points(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  float64
		want float64
	}{
		{-6, 1},
		{-10, 1}, // clamped before mapping
		{-3, 2},
		{0, 3},
		{3, 4},
		{6, 5},
		{12, 5}, // clamped before mapping
	}
	for _, tt := range tests {
		v := model.NewScoreVector()
		v[model.TypeE] = tt.raw
		got := Normalize(v)[model.TypeE]
		if got != tt.want {
			t.Errorf("Normalize(%v) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestNormalize_MonotonicAndComplete(t *testing.T) {
	prev := 0.0
	for raw := -8.0; raw <= 8.0; raw++ {
		v := model.NewScoreVector()
		v[model.TypeR] = raw
		out := Normalize(v)
		if len(out) != len(model.RiasecTypes) {
			t.Fatalf("Normalize produced %d keys, want %d", len(out), len(model.RiasecTypes))
		}
		if raw > -8.0 && out[model.TypeR] < prev {
			t.Errorf("Normalize not monotonic at raw=%v: %v < %v", raw, out[model.TypeR], prev)
		}
		prev = out[model.TypeR]
	}
}

func TestPairsRoundTrip(t *testing.T) {
	v := model.ScoreVector{
		model.TypeR: 1, model.TypeI: 3.5, model.TypeA: -2,
		model.TypeS: 0, model.TypeE: 5, model.TypeC: 2.25,
	}
	got := FromPairs(ToPairs(v))
	for _, typ := range model.RiasecTypes {
		if got[typ] != v[typ] {
			t.Errorf("round trip score[%s] = %v, want %v", typ, got[typ], v[typ])
		}
	}
}

func TestDominantTypes_TieBreakIsCanonicalOrder(t *testing.T) {
	v := model.NewScoreVector()
	v[model.TypeS] = 4
	v[model.TypeC] = 4
	v[model.TypeI] = 2
	// Everything else ties at 0.

	got := DominantTypes(v, 3)
	want := []model.RiasecType{model.TypeS, model.TypeC, model.TypeI}
	if len(got) != len(want) {
		t.Fatalf("DominantTypes returned %d types, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DominantTypes[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	// All-zero vector: canonical order decides everything.
	flat := DominantTypes(model.NewScoreVector(), 3)
	wantFlat := []model.RiasecType{model.TypeR, model.TypeI, model.TypeA}
	for i := range wantFlat {
		if flat[i] != wantFlat[i] {
			t.Errorf("flat DominantTypes[%d] = %s, want %s", i, flat[i], wantFlat[i])
		}
	}
}
