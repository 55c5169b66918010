package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sebasotodlp/schoolar/internal/config"
	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/schema"
	"github.com/sebasotodlp/schoolar/internal/survey"
)

type sessionStubStore struct {
	sessions map[string]*survey.Session
}

func newSessionStubStore() *sessionStubStore {
	return &sessionStubStore{sessions: map[string]*survey.Session{}}
}

func (s *sessionStubStore) Get(ctx context.Context, id string) (*survey.Session, error) {
	return s.sessions[id], nil
}

func (s *sessionStubStore) Set(ctx context.Context, session *survey.Session) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *sessionStubStore) Delete(ctx context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

type responseStubRepo struct {
	saved []*model.SurveyResponse
}

func (r *responseStubRepo) Save(ctx context.Context, resp *model.SurveyResponse) error {
	r.saved = append(r.saved, resp)
	return nil
}

func (r *responseStubRepo) ListBySchool(ctx context.Context, schoolCode string) ([]*model.SurveyResponse, error) {
	return r.saved, nil
}

func (r *responseStubRepo) ListBySurvey(ctx context.Context, schoolCode, surveyCode string) ([]*model.SurveyResponse, error) {
	return r.saved, nil
}

func (r *responseStubRepo) ListAll(ctx context.Context) ([]*model.SurveyResponse, error) {
	return r.saved, nil
}

func newTestResponseService() (*ResponseService, *sessionStubStore, *responseStubRepo) {
	sessions := newSessionStubStore()
	responses := &responseStubRepo{}
	surveys := newSurveyStubStore()
	codes := NewCodeService(config.NewDirectory(), surveys)
	return NewResponseService(sessions, responses, codes, surveys), sessions, responses
}

func TestStartSessionValidatesCodes(t *testing.T) {
	svc, _, _ := newTestResponseService()
	ctx := context.Background()

	if _, err := svc.StartSession(ctx, "BAD999", "EAE123", "", ""); !errors.Is(err, ErrInvalidSchoolCode) {
		t.Fatalf("bad school = %v", err)
	}
	if _, err := svc.StartSession(ctx, "CSA123", "BAD", "", ""); !errors.Is(err, ErrInvalidSurveyCode) {
		t.Fatalf("bad survey = %v", err)
	}

	session, err := svc.StartSession(ctx, "CSA123", "EAE123", "1° Medio", "A")
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if session.SurveyType != model.SurveyTypeStudent || session.IsCustom {
		t.Fatalf("unexpected session: %+v", session)
	}
	if session.Current != schema.SectionGeneral {
		t.Fatalf("session starts at %q", session.Current)
	}
}

func TestSubmitLifecycle(t *testing.T) {
	svc, sessions, responses := newTestResponseService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "CSA123", "EAE123", "1° Medio", "A")
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	// Submitting an incomplete survey keeps the session alive.
	if _, err := svc.Submit(ctx, session.ID); !errors.Is(err, survey.ErrSurveyIncomplete) {
		t.Fatalf("incomplete submit = %v", err)
	}
	if sessions.sessions[session.ID] == nil {
		t.Fatal("session dropped on failed submit")
	}

	for _, sec := range schema.Sections {
		for pass := 0; pass < 4; pass++ {
			for _, q := range schema.Questions(model.SurveyTypeStudent, sec) {
				if !q.Required || !q.IsVisible(session.Answers) || session.Answers[q.Field] != "" {
					continue
				}
				if _, err := svc.SetAnswer(ctx, session.ID, q.Field, q.Options[0]); err != nil {
					t.Fatalf("SetAnswer(%s): %v", q.Field, err)
				}
			}
		}
	}

	resp, err := svc.Submit(ctx, session.ID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(responses.saved) != 1 || responses.saved[0].ID != resp.ID {
		t.Fatalf("response not persisted: %+v", responses.saved)
	}
	if sessions.sessions[session.ID] != nil {
		t.Fatal("session not discarded after submit")
	}
	if _, err := svc.GetSession(ctx, session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("GetSession after submit = %v", err)
	}
}

func TestListAllRequiresAdmin(t *testing.T) {
	svc, _, responses := newTestResponseService()
	ctx := context.Background()

	responses.Save(ctx, &model.SurveyResponse{ID: "r1", SchoolCode: "CSA123"})
	responses.Save(ctx, &model.SurveyResponse{ID: "r2", SchoolCode: "CSJ123"})

	if _, err := svc.ListAll(ctx, model.UserTypeSecondary); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("secondary ListAll = %v", err)
	}

	all, err := svc.ListAll(ctx, model.UserTypeAdmin)
	if err != nil {
		t.Fatalf("admin ListAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d responses, want 2", len(all))
	}
}

func TestStartCustomSession(t *testing.T) {
	sessions := newSessionStubStore()
	responses := &responseStubRepo{}
	surveys := newSurveyStubStore()
	surveys.Create(context.Background(), &model.CustomSurvey{
		ID:         "sv1",
		Name:       "Propia",
		SurveyCode: "CSA123-123456-ABC",
		SchoolCode: "CSA123",
		SurveyType: model.SurveyTypeStudent,
		IsActive:   true,
	})
	codes := NewCodeService(config.NewDirectory(), surveys)
	svc := NewResponseService(sessions, responses, codes, surveys)

	session, err := svc.StartSession(context.Background(), "CSA123", "CSA123-123456-ABC", "", "")
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if !session.IsCustom || session.Custom == nil || session.Custom.ID != "sv1" {
		t.Fatalf("custom survey not attached: %+v", session)
	}
}
