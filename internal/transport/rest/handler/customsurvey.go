package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/service"
	"github.com/sebasotodlp/schoolar/internal/transport/rest/middleware"
)

// CustomSurveyHandler handles school-authored survey endpoints
type CustomSurveyHandler struct {
	surveySvc *service.CustomSurveyService
	codeSvc   *service.CodeService
}

// NewCustomSurveyHandler creates a new custom survey handler
func NewCustomSurveyHandler(surveySvc *service.CustomSurveyService, codeSvc *service.CodeService) *CustomSurveyHandler {
	return &CustomSurveyHandler{surveySvc: surveySvc, codeSvc: codeSvc}
}

// Create handles POST /v1/surveys/custom
func (h *CustomSurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	schoolCode := middleware.GetSchoolCode(r.Context())
	userID := middleware.GetUserID(r.Context())

	var req model.CustomSurvey
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "survey name is required")
		return
	}

	created, err := h.surveySvc.Create(r.Context(), schoolCode, userID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /v1/surveys: the predefined surveys available to the
// school plus its own custom surveys.
func (h *CustomSurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	schoolCode := middleware.GetSchoolCode(r.Context())

	custom, err := h.surveySvc.List(r.Context(), schoolCode)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"predefined": h.codeSvc.SurveysForSchool(schoolCode),
		"custom":     custom,
	})
}

// Get handles GET /v1/surveys/custom/{surveyId}
func (h *CustomSurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	schoolCode := middleware.GetSchoolCode(r.Context())
	surveyID := mux.Vars(r)["surveyId"]

	sv, err := h.surveySvc.Get(r.Context(), schoolCode, surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sv)
}

// Update handles PUT /v1/surveys/custom/{surveyId}
func (h *CustomSurveyHandler) Update(w http.ResponseWriter, r *http.Request) {
	schoolCode := middleware.GetSchoolCode(r.Context())
	surveyID := mux.Vars(r)["surveyId"]

	var req model.CustomSurvey
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.ID = surveyID

	if err := h.surveySvc.Update(r.Context(), schoolCode, &req); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &req)
}

// Delete handles DELETE /v1/surveys/custom/{surveyId}
func (h *CustomSurveyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	schoolCode := middleware.GetSchoolCode(r.Context())
	surveyID := mux.Vars(r)["surveyId"]

	if err := h.surveySvc.Delete(r.Context(), schoolCode, surveyID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
