package model

// Priority classifies how urgently a question's results need attention
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is the per-question output of the insight pipeline.
// Degraded is set when the AI call failed and the deterministic
// fallback texts were used instead.
type Recommendation struct {
	QuestionNumber string   `json:"questionNumber"`
	QuestionText   string   `json:"questionText"`
	Field          string   `json:"field"`
	Analysis       string   `json:"analysis"`
	Recommendation string   `json:"recommendation"`
	Priority       Priority `json:"priority"`
	Degraded       bool     `json:"degraded"`
}
