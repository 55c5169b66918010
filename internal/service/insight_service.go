package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/sebasotodlp/schoolar/internal/aggregate"
	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/schema"
)

// InsightService builds the per-question recommendation report. Every
// question gets both an analysis and a recommendation; when the AI call
// fails the deterministic templates take over and the result is marked
// degraded instead of aborting the run.
type InsightService struct {
	ai *OpenAIClient
}

// NewInsightService creates a new insight service
func NewInsightService(ai *OpenAIClient) *InsightService {
	return &InsightService{ai: ai}
}

// GenerateRecommendations produces one recommendation per answered
// question, ordered by question number.
func (s *InsightService) GenerateRecommendations(ctx context.Context, responses []*model.SurveyResponse, surveyType model.SurveyType, schoolName string) ([]model.Recommendation, error) {
	if len(responses) == 0 {
		return nil, ErrNoResponses
	}

	systemPrompt := BuildConsultantPrompt(responses, schoolName)

	var recs []model.Recommendation
	for _, q := range schema.AllQuestions(surveyType) {
		f := aggregate.Analyze(responses, q.Field)
		if f.Total == 0 {
			continue
		}

		rec := model.Recommendation{
			QuestionNumber: q.Number,
			QuestionText:   q.Text,
			Field:          q.Field,
			Priority:       aggregate.Priority(q.Field, f),
		}

		analysis, err := s.analysisFor(ctx, systemPrompt, q, f)
		if err != nil {
			log.Printf("insight: ai analysis failed for %s, using template: %v", q.Field, err)
			rec.Degraded = true
			analysis = fallbackAnalysis(surveyType, f)
		}
		rec.Analysis = analysis

		recommendation, err := s.recommendationFor(ctx, systemPrompt, q, f)
		if err != nil {
			log.Printf("insight: ai recommendation failed for %s, using template: %v", q.Field, err)
			rec.Degraded = true
			recommendation = fallbackRecommendation(q, f)
		}
		rec.Recommendation = recommendation

		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return schema.OrderKey(recs[i].QuestionNumber) < schema.OrderKey(recs[j].QuestionNumber)
	})
	return recs, nil
}

func (s *InsightService) analysisFor(ctx context.Context, systemPrompt string, q schema.Question, f aggregate.Frequency) (string, error) {
	prompt := fmt.Sprintf(`Analiza los siguientes resultados de la pregunta "%s":

Datos: %s
Total de respuestas: %d
Porcentajes: %s

Proporciona un análisis breve (máximo 2 oraciones) que explique qué significan estos resultados para el ambiente escolar. Sé específico con los números y porcentajes.

Responde solo con el análisis, sin recomendaciones.`,
		q.Text, mustJSON(f.Counts), f.Total, mustJSON(f.Percentages))

	out, err := s.ai.Complete(ctx, systemPrompt, nil, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (s *InsightService) recommendationFor(ctx context.Context, systemPrompt string, q schema.Question, f aggregate.Frequency) (string, error) {
	prompt := fmt.Sprintf(`Basándote en los siguientes datos de la pregunta "%s" del campo %s:

Datos: %s
Total de respuestas: %d
Porcentajes: %s
Respuesta más común: %s (%d respuestas)

Genera una recomendación específica y práctica para mejorar este aspecto en el colegio. La recomendación debe ser:
- Específica y accionable
- Dirigida a directivos escolares
- Máximo 2-3 oraciones
- Enfocada en soluciones concretas
- NO mencionar dinero, presupuestos o costos

Responde solo con la recomendación, sin explicaciones adicionales.`,
		q.Text, q.Field, mustJSON(f.Counts), f.Total, mustJSON(f.Percentages), f.TopResponse, f.TopCount)

	out, err := s.ai.Complete(ctx, systemPrompt, nil, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func fallbackAnalysis(surveyType model.SurveyType, f aggregate.Frequency) string {
	if f.Total == 0 {
		return "No hay datos suficientes para analizar esta pregunta."
	}

	audience := "estudiantes"
	if surveyType == model.SurveyTypeTeacher {
		audience = "docentes"
	}
	topPct := fmt.Sprintf("%.1f", float64(f.TopCount)/float64(f.Total)*100)

	distribution := "Hay consenso en las respuestas."
	if len(f.Counts) > 1 {
		distribution = fmt.Sprintf("Las respuestas se distribuyen entre %d opciones diferentes.", len(f.Counts))
	}
	return fmt.Sprintf("El %s%% de los %s respondió \"%s\" (%d de %d respuestas). %s",
		topPct, audience, f.TopResponse, f.TopCount, f.Total, distribution)
}

func fallbackRecommendation(q schema.Question, f aggregate.Frequency) string {
	yes := f.Counts["Sí"]

	switch q.Field {
	case "bullyingProblem":
		if yes > 0 {
			return "Establecer un Comité de Convivencia Escolar liderado por Orientación con reuniones quincenales. Implementar protocolo de detección temprana mediante observadores de patio capacitados, intervención en 24 horas y seguimiento semanal por 4 semanas. Meta: reducir incidentes reportados en 40% en 6 meses."
		}
	case "bullyingProblemTeacher":
		if yes > 0 {
			return "Crear un protocolo específico de convivencia docente-estudiantil coordinado por Dirección. Capacitar al equipo directivo en manejo de conflictos y establecer canales de denuncia confidencial. Realizar talleres de comunicación asertiva para docentes cada trimestre."
		}
	case "schoolSafety":
		if f.Share("En Desacuerdo")+f.Share("Muy en Desacuerdo") > 0.2 {
			return "Reforzar la supervisión en recreos asignando 2 inspectores adicionales por turno. Implementar rondas de seguridad cada 30 minutos en zonas críticas y establecer puntos de encuentro seguros claramente señalizados. Revisar protocolos de emergencia trimestralmente."
		}
	case "generalExperience":
		if f.Counts["Negativa"]+f.Counts["Muy negativa"] > 0 {
			return "Desarrollar un plan de mejora del clima escolar liderado por UTP. Crear espacios de diálogo estudiantil mensuales, implementar actividades de integración inter-cursos y establecer un sistema de reconocimiento a logros académicos y de convivencia."
		}
	case "teacherHappiness":
		if f.Counts["En Desacuerdo"]+f.Counts["Muy en Desacuerdo"] > 0 {
			return "Implementar un programa de reconocimiento docente coordinado por Dirección. Establecer reuniones de retroalimentación positiva mensuales, crear espacios de descanso mejorados y desarrollar un plan de desarrollo profesional personalizado para cada docente."
		}
	case "stressFrequency":
		if f.Counts["Constantemente"] > 0 {
			return "Activar el programa de bienestar estudiantil con Orientación. Implementar talleres de manejo del estrés semanales, crear espacios de relajación en el colegio y establecer un sistema de derivación rápida a profesionales de salud mental cuando sea necesario."
		}
	case "teacherStressFrequency":
		if f.Counts["Constantemente"] > 0 {
			return "Desarrollar un programa de bienestar docente coordinado por Recursos Humanos. Implementar pausas activas durante la jornada, crear espacios de descompresión y establecer un sistema de apoyo entre pares con reuniones quincenales de contención."
		}
	}

	return fmt.Sprintf("Revisar y mejorar las políticas relacionadas con %s. Asignar responsabilidad específica a UTP o Orientación para desarrollar un plan de acción con metas medibles y seguimiento mensual durante el próximo semestre.",
		strings.ToLower(q.Text))
}
