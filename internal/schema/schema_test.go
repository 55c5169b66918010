package schema

import (
	"testing"

	"github.com/sebasotodlp/schoolar/internal/model"
)

func TestOrderKey(t *testing.T) {
	cases := []struct {
		number string
		want   float64
	}{
		{"1", 1},
		{"17", 17},
		{"2a", 2.1},
		{"24a", 24.1},
		{"24b", 24.2},
		{"42", 42},
	}
	for _, c := range cases {
		if got := OrderKey(c.number); got != c.want {
			t.Fatalf("OrderKey(%q) = %v, want %v", c.number, got, c.want)
		}
	}

	if OrderKey("24a") <= OrderKey("24") {
		t.Fatal("24a must order after 24")
	}
	if OrderKey("24b") <= OrderKey("24a") {
		t.Fatal("24b must order after 24a")
	}
	if OrderKey("25") <= OrderKey("24b") {
		t.Fatal("25 must order after 24b")
	}
}

func TestConditionalVisibility(t *testing.T) {
	q, ok := FindQuestion(model.SurveyTypeStudent, "disabilityType")
	if !ok {
		t.Fatal("disabilityType not found in student catalogue")
	}
	if q.IsVisible(map[string]string{}) {
		t.Fatal("disabilityType should be hidden without a disability answer")
	}
	if q.IsVisible(map[string]string{"disability": "No"}) {
		t.Fatal("disabilityType should be hidden when disability is No")
	}
	if !q.IsVisible(map[string]string{"disability": "Sí"}) {
		t.Fatal("disabilityType should be visible when disability is Sí")
	}
}

func TestMentalHealthConditionalChain(t *testing.T) {
	received, ok := FindQuestion(model.SurveyTypeStudent, "receivedProfessionalHelp")
	if !ok {
		t.Fatal("receivedProfessionalHelp not found")
	}
	school, ok := FindQuestion(model.SurveyTypeStudent, "receivedSchoolProfessionalHelp")
	if !ok {
		t.Fatal("receivedSchoolProfessionalHelp not found")
	}

	answers := map[string]string{"consideredProfessionalHelp": "No"}
	if received.IsVisible(answers) {
		t.Fatal("24a should be hidden when 24 is No")
	}

	answers["consideredProfessionalHelp"] = "Sí"
	if !received.IsVisible(answers) {
		t.Fatal("24a should be visible when 24 is Sí")
	}
	if school.IsVisible(answers) {
		t.Fatal("24b should stay hidden until 24a is Sí")
	}

	answers["receivedProfessionalHelp"] = "Sí"
	if !school.IsVisible(answers) {
		t.Fatal("24b should be visible when 24a is Sí")
	}
}

func TestCatalogueShape(t *testing.T) {
	for _, typ := range []model.SurveyType{model.SurveyTypeStudent, model.SurveyTypeTeacher} {
		seen := make(map[string]bool)
		for _, s := range Sections {
			qs := Questions(typ, s)
			if len(qs) == 0 {
				t.Fatalf("%s: section %s has no questions", typ, s)
			}
			for _, q := range qs {
				if q.Field == "" || q.Text == "" || q.Number == "" {
					t.Fatalf("%s: incomplete question %+v", typ, q)
				}
				if seen[q.Field] {
					t.Fatalf("%s: duplicate field %q", typ, q.Field)
				}
				seen[q.Field] = true
			}
		}
	}
}

func TestSectionTitles(t *testing.T) {
	if Title(SectionGeneral) != "I. Preguntas Generales" {
		t.Fatalf("unexpected general title %q", Title(SectionGeneral))
	}
	if Title(SectionCleanliness) != "VI. Limpieza del Establecimiento" {
		t.Fatalf("unexpected cleanliness title %q", Title(SectionCleanliness))
	}
	if Index(SectionGeneral) != 0 || Index(SectionCleanliness) != 5 {
		t.Fatal("section order broken")
	}
	if Index(Section("bogus")) != -1 {
		t.Fatal("unknown section should index to -1")
	}
}
