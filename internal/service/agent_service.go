package service

import (
	"context"
	"errors"

	"github.com/sebasotodlp/schoolar/internal/model"
)

var ErrNoResponses = errors.New("no survey responses available")

// AgentService answers free-form questions about a school's results.
// The full aggregate picture is re-embedded in the system prompt on
// every turn, so the assistant never answers from stale data.
type AgentService struct {
	ai *OpenAIClient
}

// NewAgentService creates a new agent service
func NewAgentService(ai *OpenAIClient) *AgentService {
	return &AgentService{ai: ai}
}

// Chat sends one conversation turn. History beyond the last 10 messages
// is dropped by the client. Unlike the recommendation pipeline, chat has
// no deterministic fallback; AI failures surface to the caller.
func (s *AgentService) Chat(ctx context.Context, responses []*model.SurveyResponse, schoolName, userMessage string, history []model.ChatMessage) (string, error) {
	if len(responses) == 0 {
		return "", ErrNoResponses
	}
	systemPrompt := BuildConsultantPrompt(responses, schoolName)
	return s.ai.Complete(ctx, systemPrompt, history, userMessage)
}
