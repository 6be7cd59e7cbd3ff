package model

// RiasecType is one of the six Holland interest codes used to score both
// users and catalog programmes.
type RiasecType string

const (
	TypeR RiasecType = "R" // Realistic
	TypeI RiasecType = "I" // Investigative
	TypeA RiasecType = "A" // Artistic
	TypeS RiasecType = "S" // Social
	TypeE RiasecType = "E" // Enterprising
	TypeC RiasecType = "C" // Conventional
)

// RiasecTypes lists the six codes in canonical order. The order doubles as
// the tie-break when ranking dominant traits.
var RiasecTypes = [6]RiasecType{TypeR, TypeI, TypeA, TypeS, TypeE, TypeC}

// Valid reports whether t is one of the six RIASEC codes.
func (t RiasecType) Valid() bool {
	switch t {
	case TypeR, TypeI, TypeA, TypeS, TypeE, TypeC:
		return true
	}
	return false
}

// ScoreVector maps each RIASEC type to a score. A well-formed vector carries
// exactly the six keys, never more or fewer.
type ScoreVector map[RiasecType]float64

// NewScoreVector returns a fresh zero vector. Every caller gets its own copy;
// vectors are never aliased to a shared default.
func NewScoreVector() ScoreVector {
	v := make(ScoreVector, len(RiasecTypes))
	for _, t := range RiasecTypes {
		v[t] = 0
	}
	return v
}

// Clone returns an independent copy of the vector.
func (v ScoreVector) Clone() ScoreVector {
	out := make(ScoreVector, len(v))
	for t, score := range v {
		out[t] = score
	}
	return out
}

// ScorePair is the wire form of one vector component.
type ScorePair struct {
	Type  RiasecType `json:"type"`
	Score float64    `json:"score"`
}
