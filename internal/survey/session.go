package survey

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/schema"
)

var (
	ErrUnknownSection   = errors.New("unknown section")
	ErrSectionLocked    = errors.New("section not reachable yet")
	ErrSurveyIncomplete = errors.New("survey has incomplete sections")
)

// Session is an in-progress questionnaire for one respondent. Standard
// sessions answer the static catalogue; custom sessions answer the
// school-authored survey instead. A custom session whose survey has no
// configured questions treats every section as complete.
type Session struct {
	ID         string              `json:"id"`
	SurveyType model.SurveyType    `json:"surveyType"`
	SchoolCode string              `json:"schoolCode"`
	SurveyCode string              `json:"surveyCode"`
	Course     string              `json:"course"`
	Letter     string              `json:"letter"`
	Current    schema.Section      `json:"current"`
	Answers    map[string]string   `json:"answers"`
	Custom     *model.CustomSurvey `json:"custom,omitempty"`
	IsCustom   bool                `json:"isCustom"`
	StartedAt  int64               `json:"startedAt"`
}

// NewSession starts a standard questionnaire session.
func NewSession(t model.SurveyType, schoolCode, surveyCode, course, letter string) *Session {
	return &Session{
		ID:         uuid.NewString(),
		SurveyType: t,
		SchoolCode: schoolCode,
		SurveyCode: surveyCode,
		Course:     course,
		Letter:     letter,
		Current:    schema.SectionGeneral,
		Answers:    make(map[string]string),
		StartedAt:  time.Now().UnixMilli(),
	}
}

// NewCustomSession starts a session for a custom survey. custom may be
// nil when the code resolved to a custom survey that has no questions
// configured yet.
func NewCustomSession(t model.SurveyType, schoolCode, surveyCode, course, letter string, custom *model.CustomSurvey) *Session {
	s := NewSession(t, schoolCode, surveyCode, course, letter)
	s.IsCustom = true
	s.Custom = custom
	return s
}

// SetAnswer stores one answer. Any field and value are accepted; fields
// outside the active catalogue (the custom_* extension convention) are
// kept on the response but never counted by the completion checks.
func (s *Session) SetAnswer(field, value string) {
	s.Answers[field] = value
}

// IsSectionComplete reports whether every required question of the
// section that is visible under the current answers has been answered.
func (s *Session) IsSectionComplete(sec schema.Section) bool {
	if s.IsCustom {
		return s.isCustomSectionComplete(sec)
	}
	for _, q := range schema.Questions(s.SurveyType, sec) {
		if !q.Required || !q.IsVisible(s.Answers) {
			continue
		}
		if s.Answers[q.Field] == "" {
			return false
		}
	}
	return true
}

// Custom sections map onto the fixed section order by position; sections
// beyond the configured ones count as complete.
func (s *Session) isCustomSectionComplete(sec schema.Section) bool {
	if s.Custom == nil || !s.Custom.IsConfigured() {
		return true
	}
	idx := schema.Index(sec)
	if idx < 0 || idx >= len(s.Custom.Sections) {
		return true
	}
	for _, q := range s.Custom.Sections[idx].Questions {
		if !q.Required {
			continue
		}
		if q.ConditionalField != "" && s.Answers[q.ConditionalField] != q.ConditionalValue {
			continue
		}
		if s.Answers[q.Field] == "" {
			return false
		}
	}
	return true
}

// CanNavigateTo applies the gating rules: the current section and any
// earlier one are always reachable, the immediate next section requires
// the current one to be complete, and a further jump requires every
// section before the target to be complete.
func (s *Session) CanNavigateTo(target schema.Section) bool {
	targetIdx := schema.Index(target)
	if targetIdx < 0 {
		return false
	}
	currentIdx := schema.Index(s.Current)
	if targetIdx <= currentIdx {
		return true
	}
	if targetIdx == currentIdx+1 {
		return s.IsSectionComplete(s.Current)
	}
	for i := 0; i < targetIdx; i++ {
		if !s.IsSectionComplete(schema.Sections[i]) {
			return false
		}
	}
	return true
}

// NavigateTo moves the session to target if the gating rules allow it.
func (s *Session) NavigateTo(target schema.Section) error {
	if schema.Index(target) < 0 {
		return ErrUnknownSection
	}
	if !s.CanNavigateTo(target) {
		return ErrSectionLocked
	}
	s.Current = target
	return nil
}

// AllComplete reports whether every section is complete.
func (s *Session) AllComplete() bool {
	for _, sec := range schema.Sections {
		if !s.IsSectionComplete(sec) {
			return false
		}
	}
	return true
}

// Complete freezes the session into an immutable response. It fails if
// any section still has unanswered required questions.
func (s *Session) Complete() (*model.SurveyResponse, error) {
	if !s.AllComplete() {
		return nil, ErrSurveyIncomplete
	}
	answers := make(map[string]string, len(s.Answers))
	for k, v := range s.Answers {
		answers[k] = v
	}
	return &model.SurveyResponse{
		ID:          uuid.NewString(),
		SchoolCode:  s.SchoolCode,
		SurveyCode:  s.SurveyCode,
		SurveyType:  s.SurveyType,
		Course:      s.Course,
		Letter:      s.Letter,
		Answers:     answers,
		SubmittedAt: time.Now().UnixMilli(),
	}, nil
}
