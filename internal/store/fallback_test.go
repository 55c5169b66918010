package store

import (
	"context"
	"errors"
	"testing"

	"github.com/sebasotodlp/schoolar/internal/model"
)

var errRemoteDown = errors.New("remote down")

type memResponseRepo struct {
	fail      bool
	responses []*model.SurveyResponse
}

func (m *memResponseRepo) Save(ctx context.Context, r *model.SurveyResponse) error {
	if m.fail {
		return errRemoteDown
	}
	m.responses = append(m.responses, r)
	return nil
}

func (m *memResponseRepo) ListBySchool(ctx context.Context, schoolCode string) ([]*model.SurveyResponse, error) {
	if m.fail {
		return nil, errRemoteDown
	}
	var out []*model.SurveyResponse
	for _, r := range m.responses {
		if r.SchoolCode == schoolCode {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memResponseRepo) ListBySurvey(ctx context.Context, schoolCode, surveyCode string) ([]*model.SurveyResponse, error) {
	if m.fail {
		return nil, errRemoteDown
	}
	var out []*model.SurveyResponse
	for _, r := range m.responses {
		if r.SchoolCode == schoolCode && r.SurveyCode == surveyCode {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memResponseRepo) ListAll(ctx context.Context) ([]*model.SurveyResponse, error) {
	if m.fail {
		return nil, errRemoteDown
	}
	return m.responses, nil
}

type memSurveyRepo struct {
	fail    bool
	surveys []*model.CustomSurvey
}

func (m *memSurveyRepo) Create(ctx context.Context, s *model.CustomSurvey) error {
	if m.fail {
		return errRemoteDown
	}
	m.surveys = append(m.surveys, s)
	return nil
}

func (m *memSurveyRepo) GetByID(ctx context.Context, id string) (*model.CustomSurvey, error) {
	if m.fail {
		return nil, errRemoteDown
	}
	for _, s := range m.surveys {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memSurveyRepo) ListBySchool(ctx context.Context, schoolCode string) ([]*model.CustomSurvey, error) {
	if m.fail {
		return nil, errRemoteDown
	}
	var out []*model.CustomSurvey
	for _, s := range m.surveys {
		if s.SchoolCode == schoolCode {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSurveyRepo) GetActiveByCode(ctx context.Context, surveyCode, schoolCode string) (*model.CustomSurvey, error) {
	if m.fail {
		return nil, errRemoteDown
	}
	for _, s := range m.surveys {
		if s.SurveyCode == surveyCode && s.SchoolCode == schoolCode && s.IsActive {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memSurveyRepo) Update(ctx context.Context, s *model.CustomSurvey) error {
	if m.fail {
		return errRemoteDown
	}
	return nil
}

func (m *memSurveyRepo) Delete(ctx context.Context, id string) error {
	if m.fail {
		return errRemoteDown
	}
	return nil
}

func TestResponseStoreFallsBackOnRemoteFailure(t *testing.T) {
	primary := &memResponseRepo{fail: true}
	local := &memResponseRepo{}
	s := NewFallbackResponseStore(primary, local)
	ctx := context.Background()

	r := &model.SurveyResponse{ID: "r1", SchoolCode: "CSA123", SurveyCode: "EAE123"}
	if err := s.Save(ctx, r); err != nil {
		t.Fatalf("Save with remote down: %v", err)
	}
	if len(local.responses) != 1 {
		t.Fatalf("local store holds %d responses, want 1", len(local.responses))
	}

	got, err := s.ListBySurvey(ctx, "CSA123", "EAE123")
	if err != nil {
		t.Fatalf("ListBySurvey with remote down: %v", err)
	}
	if len(got) != 1 || got[0].ID != "r1" {
		t.Fatalf("unexpected listing: %+v", got)
	}
}

func TestResponseStorePrefersRemoteWhenHealthy(t *testing.T) {
	primary := &memResponseRepo{}
	local := &memResponseRepo{}
	s := NewFallbackResponseStore(primary, local)

	if err := s.Save(context.Background(), &model.SurveyResponse{ID: "r1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(primary.responses) != 1 || len(local.responses) != 0 {
		t.Fatalf("save went to the wrong tier: primary=%d local=%d",
			len(primary.responses), len(local.responses))
	}
}

func TestSurveyLookupChecksLocalTierFirst(t *testing.T) {
	primary := &memSurveyRepo{fail: true}
	local := &memSurveyRepo{surveys: []*model.CustomSurvey{
		{ID: "sv1", SurveyCode: "CSA123-111111-AAA", SchoolCode: "CSA123", IsActive: true},
	}}
	s := NewFallbackCustomSurveyStore(primary, local)

	sv, err := s.GetActiveByCode(context.Background(), "CSA123-111111-AAA", "CSA123")
	if err != nil {
		t.Fatalf("GetActiveByCode: %v", err)
	}
	if sv == nil || sv.ID != "sv1" {
		t.Fatalf("local survey not found: %+v", sv)
	}

	// Remote failure on an unknown code degrades to not-found, not error.
	sv, err = s.GetActiveByCode(context.Background(), "NOPE", "CSA123")
	if err != nil || sv != nil {
		t.Fatalf("unknown code with remote down = %+v, %v", sv, err)
	}
}
