package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/service"
	"github.com/sebasotodlp/schoolar/internal/transport/rest/middleware"
)

// AgentHandler handles the conversational consultant endpoint
type AgentHandler struct {
	agentSvc    *service.AgentService
	responseSvc *service.ResponseService
	codeSvc     *service.CodeService
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(agentSvc *service.AgentService, responseSvc *service.ResponseService, codeSvc *service.CodeService) *AgentHandler {
	return &AgentHandler{
		agentSvc:    agentSvc,
		responseSvc: responseSvc,
		codeSvc:     codeSvc,
	}
}

// ChatRequest is the request body for one consultant turn
type ChatRequest struct {
	Message string              `json:"message"`
	History []model.ChatMessage `json:"history"`
}

// Chat handles POST /v1/agent/chat
func (h *AgentHandler) Chat(w http.ResponseWriter, r *http.Request) {
	schoolCode := middleware.GetSchoolCode(r.Context())

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	school, err := h.codeSvc.ValidateSchoolCode(schoolCode)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	responses, err := h.responseSvc.ListBySchool(r.Context(), schoolCode)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	reply, err := h.agentSvc.Chat(r.Context(), responses, school.Name, req.Message, req.History)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
