package survey

import (
	"errors"
	"testing"

	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/schema"
)

func newStudentSession() *Session {
	return NewSession(model.SurveyTypeStudent, "CSA123", "EAE123", "1° Medio", "A")
}

// fillSection answers every visible required question of a section with
// its first option, re-scanning until conditionals settle.
func fillSection(t *testing.T, s *Session, sec schema.Section) {
	t.Helper()
	for pass := 0; pass < 4; pass++ {
		done := true
		for _, q := range schema.Questions(s.SurveyType, sec) {
			if !q.Required || !q.IsVisible(s.Answers) || s.Answers[q.Field] != "" {
				continue
			}
			s.SetAnswer(q.Field, q.Options[0])
			done = false
		}
		if done {
			return
		}
	}
}

func TestSetAnswerStoresAnyString(t *testing.T) {
	s := newStudentSession()

	// Values outside the option set are stored as given.
	s.SetAnswer("gender", "texto libre")
	if s.Answers["gender"] != "texto libre" {
		t.Fatalf("gender = %q", s.Answers["gender"])
	}

	// Fields outside the catalogue are stored too, but never gate
	// completion.
	s.SetAnswer("custom_extraField", "cualquier cosa")
	if s.Answers["custom_extraField"] != "cualquier cosa" {
		t.Fatalf("extension field = %q", s.Answers["custom_extraField"])
	}
	fillSection(t, s, schema.SectionGeneral)
	if !s.IsSectionComplete(schema.SectionGeneral) {
		t.Fatal("extension fields must not affect section completion")
	}
}

func TestSectionCompleteSkipsHiddenConditionals(t *testing.T) {
	s := newStudentSession()
	s.SetAnswer("gender", "Femenino")
	s.SetAnswer("disability", "No")
	s.SetAnswer("absenceDays", "0 días")

	if !s.IsSectionComplete(schema.SectionGeneral) {
		t.Fatal("general section should be complete with disability=No")
	}

	s.SetAnswer("disability", "Sí")
	if s.IsSectionComplete(schema.SectionGeneral) {
		t.Fatal("disability=Sí should require the follow-up question")
	}

	s.SetAnswer("disabilityType", "Física")
	if !s.IsSectionComplete(schema.SectionGeneral) {
		t.Fatal("general section should be complete with the follow-up answered")
	}
}

func TestNavigationGating(t *testing.T) {
	s := newStudentSession()

	// Forward is locked while the current section is incomplete.
	if err := s.NavigateTo(schema.SectionExperience); !errors.Is(err, ErrSectionLocked) {
		t.Fatalf("forward on incomplete section = %v", err)
	}

	fillSection(t, s, schema.SectionGeneral)
	if err := s.NavigateTo(schema.SectionExperience); err != nil {
		t.Fatalf("immediate next after completion: %v", err)
	}

	// A jump past unanswered sections stays locked.
	if err := s.NavigateTo(schema.SectionCleanliness); !errors.Is(err, ErrSectionLocked) {
		t.Fatalf("jump over incomplete sections = %v", err)
	}

	// Backward is always allowed.
	if err := s.NavigateTo(schema.SectionGeneral); err != nil {
		t.Fatalf("backward navigation: %v", err)
	}

	if err := s.NavigateTo(schema.Section("bogus")); !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("unknown section = %v", err)
	}
}

func TestJumpAfterAllPriorComplete(t *testing.T) {
	s := newStudentSession()
	for _, sec := range schema.Sections[:5] {
		fillSection(t, s, sec)
	}

	if err := s.NavigateTo(schema.SectionCleanliness); err != nil {
		t.Fatalf("jump with all prior sections complete: %v", err)
	}
}

func TestCompleteFreezesAnswers(t *testing.T) {
	s := newStudentSession()

	if _, err := s.Complete(); !errors.Is(err, ErrSurveyIncomplete) {
		t.Fatalf("incomplete submit = %v", err)
	}

	for _, sec := range schema.Sections {
		fillSection(t, s, sec)
	}

	resp, err := s.Complete()
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.ID == "" || resp.SubmittedAt == 0 {
		t.Fatalf("missing identity on response: %+v", resp)
	}
	if resp.SchoolCode != "CSA123" || resp.SurveyCode != "EAE123" {
		t.Fatalf("codes not carried over: %+v", resp)
	}

	before := resp.Answers["gender"]
	s.Answers["gender"] = "Otro"
	if resp.Answers["gender"] != before {
		t.Fatal("response answers must not alias the session map")
	}
}

func TestUnconfiguredCustomSurvey(t *testing.T) {
	s := NewCustomSession(model.SurveyTypeStudent, "CSA123", "CSA123-123456-ABC", "", "", nil)

	for _, sec := range schema.Sections {
		if !s.IsSectionComplete(sec) {
			t.Fatalf("section %s should be trivially complete", sec)
		}
	}
	if err := s.NavigateTo(schema.SectionCleanliness); err != nil {
		t.Fatalf("navigation on unconfigured survey: %v", err)
	}

	// Answers are still recorded even with no questions configured.
	s.SetAnswer("custom_opinion", "me gusta")

	resp, err := s.Complete()
	if err != nil {
		t.Fatalf("Complete on unconfigured survey: %v", err)
	}
	if resp.Answers["custom_opinion"] != "me gusta" {
		t.Fatalf("answer dropped on submit: %+v", resp.Answers)
	}
}

func TestConfiguredCustomSurvey(t *testing.T) {
	custom := &model.CustomSurvey{
		Sections: []model.CustomSection{
			{Title: "Sección propia", Questions: []model.CustomQuestion{
				{Number: "1", Text: "¿Comentarios?", Field: "custom_comments", Required: true},
				{Number: "2", Text: "¿Nota?", Field: "custom_grade", Options: []string{"1", "2", "3"}, Required: true},
			}},
		},
	}
	s := NewCustomSession(model.SurveyTypeStudent, "CSA123", "CSA123-123456-ABC", "", "", custom)

	if s.IsSectionComplete(schema.SectionGeneral) {
		t.Fatal("configured first section should start incomplete")
	}
	if !s.IsSectionComplete(schema.SectionExperience) {
		t.Fatal("sections beyond the configured ones count as complete")
	}

	s.SetAnswer("custom_comments", "todo bien")
	// Answers outside the configured options are stored as given.
	s.SetAnswer("custom_grade", "7")
	if s.Answers["custom_grade"] != "7" {
		t.Fatalf("custom_grade = %q", s.Answers["custom_grade"])
	}
	s.SetAnswer("custom_grade", "3")

	if !s.IsSectionComplete(schema.SectionGeneral) {
		t.Fatal("first section should be complete after both answers")
	}
	if _, err := s.Complete(); err != nil {
		t.Fatalf("Complete on configured custom survey: %v", err)
	}
}
