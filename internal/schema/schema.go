package schema

import (
	"strconv"
	"strings"

	"github.com/sebasotodlp/schoolar/internal/model"
)

// Section identifies one of the six fixed questionnaire sections
type Section string

const (
	SectionGeneral      Section = "general"
	SectionExperience   Section = "experience"
	SectionSecurity     Section = "security"
	SectionMentalHealth Section = "mental-health"
	SectionAlcoholDrugs Section = "alcohol-drugs"
	SectionCleanliness  Section = "cleanliness"
)

// Sections lists the sections in their mandatory order
var Sections = []Section{
	SectionGeneral,
	SectionExperience,
	SectionSecurity,
	SectionMentalHealth,
	SectionAlcoholDrugs,
	SectionCleanliness,
}

var sectionTitles = map[Section]string{
	SectionGeneral:      "I. Preguntas Generales",
	SectionExperience:   "II. Experiencia en el Establecimiento",
	SectionSecurity:     "III. Seguridad y Bullying",
	SectionMentalHealth: "IV. Salud Mental",
	SectionAlcoholDrugs: "V. Consumo de Alcohol y Drogas",
	SectionCleanliness:  "VI. Limpieza del Establecimiento",
}

// Title returns the display name of a section
func Title(s Section) string {
	return sectionTitles[s]
}

// Index returns the position of s in the section order, or -1
func Index(s Section) int {
	for i, sec := range Sections {
		if sec == s {
			return i
		}
	}
	return -1
}

// Question is one entry of the static catalogue. A question with a
// ConditionalField is only shown, and only required, when the answer to
// that field equals ConditionalValue.
type Question struct {
	Number           string
	Text             string
	Field            string
	Options          []string
	Required         bool
	ConditionalField string
	ConditionalValue string
}

// IsVisible reports whether the question applies given the answers so far.
func (q Question) IsVisible(answers map[string]string) bool {
	if q.ConditionalField == "" {
		return true
	}
	return answers[q.ConditionalField] == q.ConditionalValue
}

// Questions returns the catalogue for one section of one survey type.
func Questions(t model.SurveyType, s Section) []Question {
	if t == model.SurveyTypeTeacher {
		return teacherCatalogue[s]
	}
	return studentCatalogue[s]
}

// AllQuestions returns every question of a survey type in section order.
func AllQuestions(t model.SurveyType) []Question {
	var out []Question
	for _, s := range Sections {
		out = append(out, Questions(t, s)...)
	}
	return out
}

// FindQuestion looks a question up by its answer field.
func FindQuestion(t model.SurveyType, field string) (Question, bool) {
	for _, q := range AllQuestions(t) {
		if q.Field == field {
			return q, true
		}
	}
	return Question{}, false
}

// OrderKey converts a question number into a sortable value; letter
// suffixes order behind their base number ("24a" -> 24.1, "24b" -> 24.2).
func OrderKey(number string) float64 {
	digits := number
	for i, r := range number {
		if r < '0' || r > '9' {
			digits = number[:i]
			break
		}
	}
	base, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0
	}
	if strings.Contains(number, "a") {
		return base + 0.1
	}
	if strings.Contains(number, "b") {
		return base + 0.2
	}
	return base
}

// Common option sets shared across questions.
var (
	agreementOptions = []string{"Muy de Acuerdo", "De Acuerdo", "Ni de Acuerdo ni en Desacuerdo", "En Desacuerdo", "Muy en Desacuerdo"}
	yesNoUnsure      = []string{"Sí", "No", "No estoy seguro"}
	yesNoUnsureA     = []string{"Sí", "No", "No estoy seguro/a"}
	yesNoDontKnow    = []string{"Sí", "No", "No lo sé"}
	yesNo            = []string{"Sí", "No"}
)
