package export

import (
	"strings"
	"testing"
	"time"

	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/schema"
)

func TestBuildTableLayout(t *testing.T) {
	responses := []*model.SurveyResponse{
		{
			ID:          "r1",
			SchoolCode:  "CSA123",
			SurveyCode:  "EAE123",
			Course:      "1° Medio",
			Letter:      "A",
			Answers:     map[string]string{"gender": "Femenino"},
			SubmittedAt: time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC).UnixMilli(),
		},
	}

	table := BuildTable(model.SurveyTypeStudent, responses)

	questionCount := len(schema.AllQuestions(model.SurveyTypeStudent))
	if len(table.Headers) != len(metadataHeaders)+questionCount {
		t.Fatalf("got %d headers, want %d", len(table.Headers), len(metadataHeaders)+questionCount)
	}
	if table.Headers[0] != "N° Respuesta" {
		t.Fatalf("first header = %q", table.Headers[0])
	}
	if table.Headers[len(metadataHeaders)] != "1. ¿Con cuál género te identificas?" {
		t.Fatalf("first question header = %q", table.Headers[len(metadataHeaders)])
	}

	if len(table.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(table.Rows))
	}
	row := table.Rows[0]
	if row[0] != "1" || row[1] != "r1" || row[3] != "CSA123" || row[4] != "EAE123" {
		t.Fatalf("unexpected metadata cells: %v", row[:len(metadataHeaders)])
	}
	if row[len(metadataHeaders)] != "Femenino" {
		t.Fatalf("gender cell = %q", row[len(metadataHeaders)])
	}
	// Unanswered questions export as empty cells.
	if row[len(metadataHeaders)+1] != "" {
		t.Fatalf("unanswered cell = %q, want empty", row[len(metadataHeaders)+1])
	}
}

func TestBuildCustomTableFollowsConfiguredOrder(t *testing.T) {
	survey := &model.CustomSurvey{
		Sections: []model.CustomSection{
			{Questions: []model.CustomQuestion{
				{Number: "1", Text: "¿Comentarios?", Field: "custom_comments"},
				{Number: "2", Text: "¿Nota?", Field: "custom_grade"},
			}},
		},
	}
	responses := []*model.SurveyResponse{
		{ID: "r1", Answers: map[string]string{"custom_grade": "3"}},
	}

	table := BuildCustomTable(survey, responses)
	if len(table.Headers) != len(metadataHeaders)+2 {
		t.Fatalf("got %d headers, want %d", len(table.Headers), len(metadataHeaders)+2)
	}
	if table.Headers[len(metadataHeaders)] != "1. ¿Comentarios?" {
		t.Fatalf("first custom header = %q", table.Headers[len(metadataHeaders)])
	}
	row := table.Rows[0]
	if row[len(metadataHeaders)] != "" || row[len(metadataHeaders)+1] != "3" {
		t.Fatalf("unexpected custom cells: %v", row[len(metadataHeaders):])
	}
}

func TestColumnWidthClamped(t *testing.T) {
	table := &Table{
		Headers: []string{"ab", strings.Repeat("x", 200)},
		Rows:    [][]string{{"y", "z"}},
	}
	if got := columnWidth(table, 0); got != minColumnWidth {
		t.Fatalf("short column width = %v, want %v", got, minColumnWidth)
	}
	if got := columnWidth(table, 1); got != maxColumnWidth {
		t.Fatalf("long column width = %v, want %v", got, maxColumnWidth)
	}
}

func TestFilenames(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	got := ExcelFilename("Respuestas Encuesta Ambiente Escolar (Estudiantes)", now)
	want := "Respuestas_Encuesta_Ambiente_Escolar_Estudiantes_2026-08-31.xlsx"
	if got != want {
		t.Fatalf("ExcelFilename = %q, want %q", got, want)
	}

	got = PDFFilename("Colegio Saucache, Arica", "Encuesta Ambiente Escolar - Segundo Semestre 2025", now)
	want = "Recomendaciones_Colegio_Saucache_Arica_Encuesta_Ambiente_Escolar_31-08-2026.pdf"
	if got != want {
		t.Fatalf("PDFFilename = %q, want %q", got, want)
	}
}
