package model

// Study types for the level-1 categorical question.
const (
	StudyTypeUndergraduate = "undergraduate"
	StudyTypeGraduate      = "graduate"
	StudyTypeAll           = "all"
)

// StudyProgramme is one catalog entry. TraitTags carries the programme's
// assigned RIASEC types for level-2 matching; Riasec is its full vector on
// the 1-5 scale for level-3 similarity ranking.
type StudyProgramme struct {
	ID         string       `json:"id" bson:"_id,omitempty"`
	Name       string       `json:"name" bson:"name"`
	University string       `json:"university" bson:"university"`
	Degree     string       `json:"degree" bson:"degree"`
	StudyType  string       `json:"studyType" bson:"studyType"`
	Homepage   string       `json:"homepage,omitempty" bson:"homepage,omitempty"`
	TraitTags  []RiasecType `json:"traitTags" bson:"traitTags"`
	Riasec     ScoreVector  `json:"riasec" bson:"riasec"`
}
