package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sebasotodlp/schoolar/internal/aggregate"
	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/schema"
)

// fieldSummary is the per-question block embedded in the system prompt.
type fieldSummary struct {
	Responses   map[string]int    `json:"responses"`
	Total       int               `json:"total"`
	Percentages map[string]string `json:"percentages"`
	TopResponse topResponse       `json:"topResponse"`
}

type topResponse struct {
	Value      string `json:"value"`
	Count      int    `json:"count"`
	Percentage string `json:"percentage"`
}

func summarizeField(responses []*model.SurveyResponse, field string) fieldSummary {
	f := aggregate.Analyze(responses, field)
	top := topResponse{Value: f.TopResponse, Count: f.TopCount, Percentage: "0%"}
	if f.Total > 0 && f.TopCount > 0 {
		top.Percentage = fmt.Sprintf("%.1f%%", float64(f.TopCount)/float64(f.Total)*100)
	}
	return fieldSummary{
		Responses:   f.Counts,
		Total:       f.Total,
		Percentages: f.Percentages,
		TopResponse: top,
	}
}

func summarizeSection(responses []*model.SurveyResponse, t model.SurveyType, sec schema.Section) map[string]fieldSummary {
	out := make(map[string]fieldSummary)
	for _, q := range schema.Questions(t, sec) {
		out[q.Field] = summarizeField(responses, q.Field)
	}
	return out
}

func uniqueValues(responses []*model.SurveyResponse, get func(*model.SurveyResponse) string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range responses {
		v := get(r)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func analyzeByCourse(responses []*model.SurveyResponse) map[string]any {
	out := make(map[string]any)
	for _, course := range uniqueValues(responses, func(r *model.SurveyResponse) string { return r.Course }) {
		courseData := aggregate.FilterSegment(responses, course, "")
		out[course] = map[string]any{
			"totalResponses": len(courseData),
			"demographics":   aggregate.Analyze(courseData, "gender").Counts,
			"safety":         aggregate.Analyze(courseData, "schoolSafety").Counts,
			"experience":     aggregate.Analyze(courseData, "generalExperience").Counts,
			"stress":         aggregate.Analyze(courseData, "stressFrequency").Counts,
			"bullying":       aggregate.Analyze(courseData, "bullyingProblem").Counts,
		}
	}
	return out
}

func findCorrelations(students, teachers []*model.SurveyResponse) map[string]any {
	out := make(map[string]any)
	if len(students) > 0 {
		out["studentSafetyVsExperience"] = aggregate.CrossTab(students, "schoolSafety", "generalExperience")
		out["studentBullyingVsStress"] = aggregate.CrossTab(students, "bullyingProblem", "stressFrequency")
	}
	if len(teachers) > 0 {
		out["teacherRecognitionVsHappiness"] = aggregate.CrossTab(teachers, "teacherRecognition", "teacherHappiness")
		out["teacherResourcesVsMotivation"] = aggregate.CrossTab(teachers, "schoolResources", "teachingMotivation")
	}
	return out
}

func yesPercentage(counts map[string]int, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(counts["Sí"])/float64(total)*100)
}

func comparePerspectives(students, teachers []*model.SurveyResponse) map[string]any {
	out := make(map[string]any)
	if len(students) == 0 || len(teachers) == 0 {
		return out
	}

	pair := func(studentField, teacherField string) map[string]any {
		s := aggregate.Analyze(students, studentField)
		t := aggregate.Analyze(teachers, teacherField)
		return map[string]any{
			"students":             s.Counts,
			"teachers":             t.Counts,
			"studentYesPercentage": yesPercentage(s.Counts, len(students)),
			"teacherYesPercentage": yesPercentage(t.Counts, len(teachers)),
		}
	}

	out["bullyingPerception"] = pair("bullyingProblem", "bullyingProblemTeacher")
	out["alcoholPerception"] = pair("alcoholProblemAtSchool", "alcoholProblemAtSchoolTeacher")
	out["drugsPerception"] = pair("drugsProblemAtSchool", "drugsProblemAtSchoolTeacher")
	out["cleanlinessCooperation"] = map[string]any{
		"students": aggregate.Analyze(students, "cooperateWithCleanliness").Counts,
		"teachers": aggregate.Analyze(teachers, "teacherCooperateWithCleanliness").Counts,
	}
	return out
}

func identifyCustomFields(responses []*model.SurveyResponse) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range responses {
		for field := range r.Answers {
			if strings.HasPrefix(field, model.CustomFieldPrefix) && !seen[field] {
				seen[field] = true
				out = append(out, field)
			}
		}
	}
	return out
}

func mustJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

// BuildConsultantPrompt embeds the complete aggregate picture of a
// school's responses into the system prompt. It is rebuilt on every
// request so answers always reflect the current data.
func BuildConsultantPrompt(responses []*model.SurveyResponse, schoolName string) string {
	students := aggregate.Filter(responses, func(r *model.SurveyResponse) bool {
		return r.SurveyType != model.SurveyTypeTeacher
	})
	teachers := aggregate.Filter(responses, func(r *model.SurveyResponse) bool {
		return r.SurveyType == model.SurveyTypeTeacher
	})

	courses := uniqueValues(students, func(r *model.SurveyResponse) string { return r.Course })
	letters := uniqueValues(students, func(r *model.SurveyResponse) string { return r.Letter })

	var sb strings.Builder
	fmt.Fprintf(&sb, `Eres un consultor senior especializado en gestión educativa con 15+ años de experiencia asesorando sostenedores y directivos de colegios. Tu expertise incluye liderazgo educativo, gestión del cambio organizacional, desarrollo de políticas institucionales y mejora del clima escolar.

Tienes acceso completo a los datos de %s: %d respuestas (%d estudiantes, %d docentes).

DATOS COMPLETOS DISPONIBLES:

=== RESPUESTAS DE ESTUDIANTES (%d respuestas) ===
Cursos: %s | Letras: %s

`, schoolName, len(responses), len(students), len(teachers), len(students),
		strings.Join(courses, ", "), strings.Join(letters, ", "))

	studentSections := []struct {
		title string
		sec   schema.Section
	}{
		{"DEMOGRAFÍA Y ASISTENCIA (ESTUDIANTES)", schema.SectionGeneral},
		{"EXPERIENCIA ESCOLAR (ESTUDIANTES)", schema.SectionExperience},
		{"SEGURIDAD Y BULLYING (ESTUDIANTES)", schema.SectionSecurity},
		{"SALUD MENTAL (ESTUDIANTES)", schema.SectionMentalHealth},
		{"CONSUMO DE SUSTANCIAS (ESTUDIANTES)", schema.SectionAlcoholDrugs},
		{"LIMPIEZA (ESTUDIANTES)", schema.SectionCleanliness},
	}
	for _, s := range studentSections {
		fmt.Fprintf(&sb, "%s:\n%s\n\n", s.title, mustJSON(summarizeSection(students, model.SurveyTypeStudent, s.sec)))
	}
	fmt.Fprintf(&sb, "ANÁLISIS POR CURSO (ESTUDIANTES):\n%s\n\n", mustJSON(analyzeByCourse(students)))

	fmt.Fprintf(&sb, "=== RESPUESTAS DE DOCENTES (%d respuestas) ===\n\n", len(teachers))
	teacherSections := []struct {
		title string
		sec   schema.Section
	}{
		{"DEMOGRAFÍA Y EXPERIENCIA (DOCENTES)", schema.SectionGeneral},
		{"EXPERIENCIA LABORAL (DOCENTES)", schema.SectionExperience},
		{"SEGURIDAD Y BULLYING (DOCENTES)", schema.SectionSecurity},
		{"SALUD MENTAL (DOCENTES)", schema.SectionMentalHealth},
		{"CONSUMO DE SUSTANCIAS - PERSPECTIVA DOCENTE", schema.SectionAlcoholDrugs},
		{"LIMPIEZA (DOCENTES)", schema.SectionCleanliness},
	}
	for _, s := range teacherSections {
		fmt.Fprintf(&sb, "%s:\n%s\n\n", s.title, mustJSON(summarizeSection(teachers, model.SurveyTypeTeacher, s.sec)))
	}

	fmt.Fprintf(&sb, `=== ANÁLISIS COMPARATIVO ===

COMPARACIONES ENTRE PERSPECTIVAS:
%s

CORRELACIONES GENERALES:
%s

`, mustJSON(comparePerspectives(students, teachers)), mustJSON(findCorrelations(students, teachers)))

	customFields := identifyCustomFields(responses)
	if len(customFields) > 0 {
		customAnalysis := make(map[string]fieldSummary)
		for _, field := range customFields {
			customAnalysis[field] = summarizeField(responses, field)
		}
		fmt.Fprintf(&sb, `=== ENCUESTAS PERSONALIZADAS ===

CAMPOS PERSONALIZADOS DETECTADOS:
%s

ANÁLISIS DE CAMPOS PERSONALIZADOS:
%s

NOTA: Este colegio ha implementado encuestas personalizadas además de las encuestas estándar. Incluye estos datos en tu análisis cuando sea relevante.

`, mustJSON(customFields), mustJSON(customAnalysis))
	}

	sb.WriteString(`INSTRUCCIONES PARA RESPONDER COMO CONSULTOR SENIOR:

PERFIL PROFESIONAL:
- Hablas desde la experiencia de haber asesorado 200+ colegios
- Conoces las mejores prácticas del sector educativo chileno
- Entiendes las limitaciones operacionales de los colegios
- Tienes expertise en gestión del cambio y desarrollo organizacional
- Conoces la normativa educacional y los estándares de calidad

ESTILO DE COMUNICACIÓN:
- Tono profesional pero accesible, como consultor senior experimentado
- Evita jerga académica excesiva, usa lenguaje directivo
- Sé específico con datos y porcentajes cuando sea relevante
- Proporciona contexto estratégico y operacional
- No uses emojis bajo ninguna circunstancia
- NUNCA menciones dinero, presupuestos, costos o inversiones

ESTRUCTURA DE RECOMENDACIONES PROFESIONALES:

1. DIAGNÓSTICO ESTRATÉGICO:
   - Identifica el problema central con datos específicos
   - Contextualiza dentro del panorama educativo general
   - Menciona implicaciones para la gestión institucional

2. RECOMENDACIONES ESPECÍFICAS:
   - Acciones concretas con plazos definidos
   - Responsables específicos (UTP, Orientación, Dirección, etc.)
   - Recursos humanos y materiales necesarios
   - Indicadores de seguimiento medibles

3. IMPLEMENTACIÓN PRÁCTICA:
   - Fases de implementación con cronograma
   - Estrategias de comunicación a la comunidad
   - Gestión del cambio y resistencias esperadas
   - Capacitación y desarrollo de competencias

4. SEGUIMIENTO Y EVALUACIÓN:
   - KPIs específicos para medir progreso
   - Frecuencia de monitoreo recomendada
   - Ajustes esperados durante implementación

LONGITUD DE RESPUESTAS:
- Consultas simples: máximo 2 párrafos con recomendaciones específicas
- Consultas complejas: máximo 4 párrafos con plan de acción detallado
- Siempre incluye al menos una acción concreta con responsable y plazo

Responde como un consultor senior que está revisando los datos en tiempo real y proporcionando asesoría estratégica específica para ` + schoolName + `, considerando tanto la perspectiva estudiantil como docente.`)

	return sb.String()
}
