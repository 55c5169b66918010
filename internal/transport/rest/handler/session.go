package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/schema"
	"github.com/sebasotodlp/schoolar/internal/service"
	"github.com/sebasotodlp/schoolar/internal/transport/rest/middleware"
)

// SessionHandler handles the public questionnaire flow
type SessionHandler struct {
	responseSvc *service.ResponseService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(responseSvc *service.ResponseService) *SessionHandler {
	return &SessionHandler{responseSvc: responseSvc}
}

// StartSessionRequest is the request body for opening a session
type StartSessionRequest struct {
	SchoolCode string `json:"schoolCode"`
	SurveyCode string `json:"surveyCode"`
	Course     string `json:"course"`
	Letter     string `json:"letter"`
}

// AnswerRequest is the request body for recording one answer
type AnswerRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// NavigateRequest is the request body for moving between sections
type NavigateRequest struct {
	Section schema.Section `json:"section"`
}

// Start handles POST /v1/sessions
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SchoolCode == "" || req.SurveyCode == "" {
		writeError(w, http.StatusBadRequest, "school and survey codes are required")
		return
	}

	session, err := h.responseSvc.StartSession(r.Context(), req.SchoolCode, req.SurveyCode, req.Course, req.Letter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// Get handles GET /v1/sessions/{sessionId}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.responseSvc.GetSession(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Answer handles PUT /v1/sessions/{sessionId}/answers
func (h *SessionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Field == "" {
		writeError(w, http.StatusBadRequest, "field is required")
		return
	}

	session, err := h.responseSvc.SetAnswer(r.Context(), sessionID, req.Field, req.Value)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Navigate handles POST /v1/sessions/{sessionId}/navigate
func (h *SessionHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.responseSvc.Navigate(r.Context(), sessionID, req.Section)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Submit handles POST /v1/sessions/{sessionId}/submit
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	response, err := h.responseSvc.Submit(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

// ListAll handles GET /v1/responses, the cross-school admin view
func (h *SessionHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	userType := model.UserType(middleware.GetUserType(r.Context()))

	responses, err := h.responseSvc.ListAll(r.Context(), userType)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total":     len(responses),
		"responses": responses,
	})
}
