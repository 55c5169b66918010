package service

import (
	"context"
	"errors"

	"github.com/sebasotodlp/schoolar/internal/cache"
	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/repository"
	"github.com/sebasotodlp/schoolar/internal/schema"
	"github.com/sebasotodlp/schoolar/internal/survey"
)

var ErrSessionNotFound = errors.New("survey session not found")

// ResponseService drives questionnaire sessions and owns the frozen
// submissions.
type ResponseService struct {
	sessions  cache.SessionStore
	responses repository.ResponseRepo
	codes     *CodeService
	surveys   repository.CustomSurveyRepo
}

// NewResponseService creates a new response service
func NewResponseService(sessions cache.SessionStore, responses repository.ResponseRepo, codes *CodeService, surveys repository.CustomSurveyRepo) *ResponseService {
	return &ResponseService{
		sessions:  sessions,
		responses: responses,
		codes:     codes,
		surveys:   surveys,
	}
}

// StartSession validates both codes and opens a new session. Custom
// survey codes load the school-authored questionnaire; a custom code
// without configured questions still opens a session.
func (s *ResponseService) StartSession(ctx context.Context, schoolCode, surveyCode, course, letter string) (*survey.Session, error) {
	if _, err := s.codes.ValidateSchoolCode(schoolCode); err != nil {
		return nil, err
	}
	validation, err := s.codes.ValidateSurveyCode(ctx, surveyCode, schoolCode)
	if err != nil {
		return nil, err
	}

	var session *survey.Session
	if validation.IsCustom {
		custom, err := s.surveys.GetActiveByCode(ctx, surveyCode, schoolCode)
		if err != nil {
			return nil, err
		}
		session = survey.NewCustomSession(validation.Type, schoolCode, surveyCode, course, letter, custom)
	} else {
		session = survey.NewSession(validation.Type, schoolCode, surveyCode, course, letter)
	}

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession loads an in-progress session.
func (s *ResponseService) GetSession(ctx context.Context, id string) (*survey.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// SetAnswer records one answer on a session.
func (s *ResponseService) SetAnswer(ctx context.Context, sessionID, field, value string) (*survey.Session, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.SetAnswer(field, value)
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Navigate moves the session to another section, enforcing the gating
// rules.
func (s *ResponseService) Navigate(ctx context.Context, sessionID string, target schema.Section) (*survey.Session, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.NavigateTo(target); err != nil {
		return nil, err
	}
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Submit freezes a complete session into an immutable response and
// persists it. The session is discarded afterwards.
func (s *ResponseService) Submit(ctx context.Context, sessionID string) (*model.SurveyResponse, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	response, err := session.Complete()
	if err != nil {
		return nil, err
	}
	if err := s.responses.Save(ctx, response); err != nil {
		return nil, err
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return nil, err
	}
	return response, nil
}

// ListBySchool returns all submissions for a school.
func (s *ResponseService) ListBySchool(ctx context.Context, schoolCode string) ([]*model.SurveyResponse, error) {
	return s.responses.ListBySchool(ctx, schoolCode)
}

// ListBySurvey returns the submissions of one survey within a school.
func (s *ResponseService) ListBySurvey(ctx context.Context, schoolCode, surveyCode string) ([]*model.SurveyResponse, error) {
	return s.responses.ListBySurvey(ctx, schoolCode, surveyCode)
}

// ListAll returns every submission across all schools. Restricted to
// full admin accounts.
func (s *ResponseService) ListAll(ctx context.Context, userType model.UserType) ([]*model.SurveyResponse, error) {
	if userType != model.UserTypeAdmin {
		return nil, ErrNotAuthorized
	}
	return s.responses.ListAll(ctx)
}
