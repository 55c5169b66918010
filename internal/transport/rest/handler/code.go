package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sebasotodlp/schoolar/internal/service"
)

// CodeHandler handles access code validation endpoints
type CodeHandler struct {
	codeSvc *service.CodeService
}

// NewCodeHandler creates a new code handler
func NewCodeHandler(codeSvc *service.CodeService) *CodeHandler {
	return &CodeHandler{codeSvc: codeSvc}
}

// ValidateSchoolRequest is the request body for school code validation
type ValidateSchoolRequest struct {
	SchoolCode string `json:"schoolCode"`
}

// ValidateSurveyRequest is the request body for survey code validation
type ValidateSurveyRequest struct {
	SchoolCode string `json:"schoolCode"`
	SurveyCode string `json:"surveyCode"`
}

// ValidateSchool handles POST /v1/codes/school
func (h *CodeHandler) ValidateSchool(w http.ResponseWriter, r *http.Request) {
	var req ValidateSchoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	school, err := h.codeSvc.ValidateSchoolCode(req.SchoolCode)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, school)
}

// ValidateSurvey handles POST /v1/codes/survey
func (h *CodeHandler) ValidateSurvey(w http.ResponseWriter, r *http.Request) {
	var req ValidateSurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SchoolCode == "" || req.SurveyCode == "" {
		writeError(w, http.StatusBadRequest, "school and survey codes are required")
		return
	}

	validation, err := h.codeSvc.ValidateSurveyCode(r.Context(), req.SurveyCode, req.SchoolCode)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, validation)
}
