package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sebasotodlp/schoolar/internal/aggregate"
	"github.com/sebasotodlp/schoolar/internal/service"
	"github.com/sebasotodlp/schoolar/internal/transport/rest/middleware"
)

// RecommendationHandler runs the AI-assisted report pipeline
type RecommendationHandler struct {
	insightSvc  *service.InsightService
	responseSvc *service.ResponseService
	codeSvc     *service.CodeService
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(insightSvc *service.InsightService, responseSvc *service.ResponseService, codeSvc *service.CodeService) *RecommendationHandler {
	return &RecommendationHandler{
		insightSvc:  insightSvc,
		responseSvc: responseSvc,
		codeSvc:     codeSvc,
	}
}

// GenerateRequest is the request body for a recommendations run
type GenerateRequest struct {
	SurveyCode string `json:"surveyCode"`
	Course     string `json:"course"`
	Letter     string `json:"letter"`
}

// Generate handles POST /v1/recommendations
func (h *RecommendationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	schoolCode := middleware.GetSchoolCode(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SurveyCode == "" {
		writeError(w, http.StatusBadRequest, "surveyCode is required")
		return
	}

	school, err := h.codeSvc.ValidateSchoolCode(schoolCode)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	validation, err := h.codeSvc.ValidateSurveyCode(r.Context(), req.SurveyCode, schoolCode)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	responses, err := h.responseSvc.ListBySurvey(r.Context(), schoolCode, req.SurveyCode)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	responses = aggregate.FilterSegment(responses, req.Course, req.Letter)

	recommendations, err := h.insightSvc.GenerateRecommendations(r.Context(), responses, validation.Type, school.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"totalResponses":  len(responses),
		"recommendations": recommendations,
	})
}
