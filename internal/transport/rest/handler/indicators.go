package handler

import (
	"net/http"

	"github.com/sebasotodlp/schoolar/internal/aggregate"
	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/schema"
	"github.com/sebasotodlp/schoolar/internal/service"
	"github.com/sebasotodlp/schoolar/internal/transport/rest/middleware"
)

// IndicatorHandler serves aggregated results for the dashboard
type IndicatorHandler struct {
	responseSvc *service.ResponseService
	codeSvc     *service.CodeService
}

// NewIndicatorHandler creates a new indicator handler
func NewIndicatorHandler(responseSvc *service.ResponseService, codeSvc *service.CodeService) *IndicatorHandler {
	return &IndicatorHandler{responseSvc: responseSvc, codeSvc: codeSvc}
}

// QuestionIndicator is the aggregated view of one question
type QuestionIndicator struct {
	Number    string              `json:"number"`
	Text      string              `json:"text"`
	Field     string              `json:"field"`
	Section   schema.Section      `json:"section"`
	Frequency aggregate.Frequency `json:"frequency"`
	Priority  model.Priority      `json:"priority"`
}

// Get handles GET /v1/indicators?surveyCode=..&course=..&letter=..
func (h *IndicatorHandler) Get(w http.ResponseWriter, r *http.Request) {
	schoolCode := middleware.GetSchoolCode(r.Context())
	surveyCode := r.URL.Query().Get("surveyCode")
	if surveyCode == "" {
		writeError(w, http.StatusBadRequest, "surveyCode is required")
		return
	}

	validation, err := h.codeSvc.ValidateSurveyCode(r.Context(), surveyCode, schoolCode)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	responses, err := h.responseSvc.ListBySurvey(r.Context(), schoolCode, surveyCode)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	responses = aggregate.FilterSegment(responses, r.URL.Query().Get("course"), r.URL.Query().Get("letter"))

	var indicators []QuestionIndicator
	for _, section := range schema.Sections {
		for _, q := range schema.Questions(validation.Type, section) {
			freq := aggregate.Analyze(responses, q.Field)
			indicators = append(indicators, QuestionIndicator{
				Number:    q.Number,
				Text:      q.Text,
				Field:     q.Field,
				Section:   section,
				Frequency: freq,
				Priority:  aggregate.Priority(q.Field, freq),
			})
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"surveyType":     validation.Type,
		"totalResponses": len(responses),
		"indicators":     indicators,
	})
}
