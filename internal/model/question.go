package model

// Question is one level-2 quiz question. The question set is fetched once per
// session, cached in the session record and never mutated afterward.
type Question struct {
	ID         string     `json:"id" bson:"_id,omitempty"`
	Text       string     `json:"text" bson:"text"`
	RiasecType RiasecType `json:"riasecType" bson:"riasecType"`
}
