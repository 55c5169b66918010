package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sebasotodlp/schoolar/internal/aggregate"
	"github.com/sebasotodlp/schoolar/internal/config"
	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/schema"
)

func disabledAIClient() *OpenAIClient {
	return NewOpenAIClient(&config.AIConfig{})
}

func studentResponse(answers map[string]string) *model.SurveyResponse {
	return &model.SurveyResponse{
		SchoolCode: "CSA123",
		SurveyCode: "EAE123",
		SurveyType: model.SurveyTypeStudent,
		Answers:    answers,
	}
}

func TestGenerateRecommendationsRequiresResponses(t *testing.T) {
	svc := NewInsightService(disabledAIClient())

	if _, err := svc.GenerateRecommendations(context.Background(), nil, model.SurveyTypeStudent, "Colegio"); !errors.Is(err, ErrNoResponses) {
		t.Fatalf("empty input = %v", err)
	}
}

func TestGenerateRecommendationsFallsBackWhenAIUnavailable(t *testing.T) {
	svc := NewInsightService(disabledAIClient())
	responses := []*model.SurveyResponse{
		studentResponse(map[string]string{"bullyingProblem": "Sí", "stressFrequency": "Constantemente"}),
		studentResponse(map[string]string{"bullyingProblem": "Sí"}),
		studentResponse(map[string]string{"bullyingProblem": "No"}),
	}

	recs, err := svc.GenerateRecommendations(context.Background(), responses, model.SurveyTypeStudent, "Colegio Saucache")
	if err != nil {
		t.Fatalf("GenerateRecommendations: %v", err)
	}

	// Only the two answered questions produce entries.
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	for _, rec := range recs {
		if !rec.Degraded {
			t.Fatalf("%s: expected degraded result without an API key", rec.Field)
		}
		if rec.Analysis == "" || rec.Recommendation == "" {
			t.Fatalf("%s: empty text in degraded result", rec.Field)
		}
	}
}

func TestGenerateRecommendationsOrderedByQuestionNumber(t *testing.T) {
	svc := NewInsightService(disabledAIClient())
	responses := []*model.SurveyResponse{
		studentResponse(map[string]string{
			"improveFacilitiesCleanliness": "Sí",
			"gender":                       "Femenino",
			"stressFrequency":              "Constantemente",
		}),
	}

	recs, err := svc.GenerateRecommendations(context.Background(), responses, model.SurveyTypeStudent, "Colegio")
	if err != nil {
		t.Fatalf("GenerateRecommendations: %v", err)
	}
	for i := 1; i < len(recs); i++ {
		if schema.OrderKey(recs[i-1].QuestionNumber) > schema.OrderKey(recs[i].QuestionNumber) {
			t.Fatalf("recommendations out of order: %s before %s",
				recs[i-1].QuestionNumber, recs[i].QuestionNumber)
		}
	}
}

func TestGenerateRecommendationsPriorityAttached(t *testing.T) {
	svc := NewInsightService(disabledAIClient())
	responses := []*model.SurveyResponse{
		studentResponse(map[string]string{"bullyingProblem": "Sí"}),
		studentResponse(map[string]string{"bullyingProblem": "Sí"}),
		studentResponse(map[string]string{"bullyingProblem": "No"}),
	}

	recs, err := svc.GenerateRecommendations(context.Background(), responses, model.SurveyTypeStudent, "Colegio")
	if err != nil {
		t.Fatalf("GenerateRecommendations: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	rec := recs[0]
	if rec.Priority != model.PriorityHigh {
		t.Fatalf("priority = %q, want high", rec.Priority)
	}
	if !strings.Contains(rec.Analysis, "66.7%") {
		t.Fatalf("analysis lacks the top percentage: %q", rec.Analysis)
	}
	if !strings.Contains(rec.Recommendation, "Convivencia Escolar") {
		t.Fatalf("unexpected bullying fallback text: %q", rec.Recommendation)
	}
}

func TestFallbackAnalysisWording(t *testing.T) {
	responses := []*model.SurveyResponse{
		studentResponse(map[string]string{"q": "Sí"}),
		studentResponse(map[string]string{"q": "Sí"}),
		studentResponse(map[string]string{"q": "No"}),
	}
	f := aggregate.Analyze(responses, "q")

	got := fallbackAnalysis(model.SurveyTypeStudent, f)
	want := `El 66.7% de los estudiantes respondió "Sí" (2 de 3 respuestas). Las respuestas se distribuyen entre 2 opciones diferentes.`
	if got != want {
		t.Fatalf("fallbackAnalysis =\n%q\nwant\n%q", got, want)
	}

	got = fallbackAnalysis(model.SurveyTypeTeacher, f)
	if !strings.Contains(got, "docentes") {
		t.Fatalf("teacher analysis should mention docentes: %q", got)
	}
}
