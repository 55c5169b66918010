package service

import (
	"strings"
	"testing"

	"github.com/sebasotodlp/schoolar/internal/model"
)

func TestBuildConsultantPromptEmbedsData(t *testing.T) {
	responses := []*model.SurveyResponse{
		{
			SurveyType: model.SurveyTypeStudent,
			Course:     "1° Medio",
			Answers:    map[string]string{"gender": "Femenino", "schoolSafety": "De Acuerdo", "bullyingProblem": "Sí"},
		},
		{
			SurveyType: model.SurveyTypeTeacher,
			Answers:    map[string]string{"teacherHappiness": "De Acuerdo", "bullyingProblemTeacher": "No"},
		},
	}

	prompt := BuildConsultantPrompt(responses, "Colegio Saucache")

	for _, want := range []string{
		"Colegio Saucache",
		"1° Medio",
		"schoolSafety",
		"bullyingProblem",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}

	// Money advice is explicitly forbidden in the consultant instructions.
	if !strings.Contains(prompt, "NUNCA") {
		t.Fatal("prompt missing the hard restrictions block")
	}
}

func TestBuildConsultantPromptStudentOnly(t *testing.T) {
	responses := []*model.SurveyResponse{
		{SurveyType: model.SurveyTypeStudent, Answers: map[string]string{"gender": "Otro"}},
	}

	prompt := BuildConsultantPrompt(responses, "Colegio")
	if !strings.Contains(prompt, "ESTUDIANTES") {
		t.Fatal("prompt missing the student block")
	}
}

func TestYesPercentage(t *testing.T) {
	if got := yesPercentage(map[string]int{"Sí": 1, "No": 3}, 4); got != "25.0%" {
		t.Fatalf("yesPercentage = %q, want 25.0%%", got)
	}
	if got := yesPercentage(nil, 0); got != "0%" {
		t.Fatalf("empty yesPercentage = %q, want 0%%", got)
	}
}
