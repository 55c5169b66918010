package aggregate

import (
	"fmt"

	"github.com/sebasotodlp/schoolar/internal/model"
)

// Frequency summarizes the answers to one question. Order preserves the
// option encounter order across responses so ties resolve to the first
// option seen, and map iteration never changes results.
type Frequency struct {
	Counts      map[string]int    `json:"counts"`
	Order       []string          `json:"-"`
	Total       int               `json:"total"`
	Percentages map[string]string `json:"percentages"`
	TopResponse string            `json:"topResponse"`
	TopCount    int               `json:"topCount"`
}

// Analyze tallies the answers to field across responses. Responses that
// left the question unanswered do not count toward the total.
func Analyze(responses []*model.SurveyResponse, field string) Frequency {
	f := Frequency{
		Counts:      make(map[string]int),
		Percentages: make(map[string]string),
		TopResponse: "Sin datos",
	}
	for _, r := range responses {
		v := r.Answers[field]
		if v == "" {
			continue
		}
		if _, seen := f.Counts[v]; !seen {
			f.Order = append(f.Order, v)
		}
		f.Counts[v]++
		f.Total++
	}
	for _, opt := range f.Order {
		count := f.Counts[opt]
		f.Percentages[opt] = fmt.Sprintf("%.1f%%", float64(count)/float64(f.Total)*100)
		if count > f.TopCount {
			f.TopCount = count
			f.TopResponse = opt
		}
	}
	return f
}

// Share returns the fraction of the total answering opt, 0 when empty.
func (f Frequency) Share(opt string) float64 {
	if f.Total == 0 {
		return 0
	}
	return float64(f.Counts[opt]) / float64(f.Total)
}

// CrossTab counts co-occurrences of two answers. A response contributes
// only when it answered both questions.
func CrossTab(responses []*model.SurveyResponse, fieldA, fieldB string) map[string]map[string]int {
	out := make(map[string]map[string]int)
	for _, r := range responses {
		a, b := r.Answers[fieldA], r.Answers[fieldB]
		if a == "" || b == "" {
			continue
		}
		if out[a] == nil {
			out[a] = make(map[string]int)
		}
		out[a][b]++
	}
	return out
}

// Filter returns the responses matching pred, preserving order.
func Filter(responses []*model.SurveyResponse, pred func(*model.SurveyResponse) bool) []*model.SurveyResponse {
	var out []*model.SurveyResponse
	for _, r := range responses {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// FilterSegment narrows responses by course and letter; empty values
// match everything.
func FilterSegment(responses []*model.SurveyResponse, course, letter string) []*model.SurveyResponse {
	return Filter(responses, func(r *model.SurveyResponse) bool {
		if course != "" && r.Course != course {
			return false
		}
		if letter != "" && r.Letter != letter {
			return false
		}
		return true
	})
}
