// Package export renders survey submissions and recommendation reports
// into downloadable Excel and PDF documents.
package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/schema"
)

// metadataHeaders lead every spreadsheet, before the question columns.
var metadataHeaders = []string{
	"N° Respuesta",
	"ID Respuesta",
	"Fecha y Hora",
	"Código Colegio",
	"Código Encuesta",
	"Curso",
	"Letra",
}

// Table is a fully materialized spreadsheet: one header row plus one row
// per submission, all cells as strings.
type Table struct {
	Headers []string
	Rows    [][]string
}

// BuildTable lays out the standard questionnaire columns for a survey
// type. Question columns appear in section order with "N. text" headers;
// unanswered questions render as empty cells.
func BuildTable(t model.SurveyType, responses []*model.SurveyResponse) *Table {
	questions := schema.AllQuestions(t)

	headers := append([]string{}, metadataHeaders...)
	for _, q := range questions {
		headers = append(headers, fmt.Sprintf("%s. %s", q.Number, q.Text))
	}

	rows := make([][]string, 0, len(responses))
	for i, r := range responses {
		row := metadataCells(i, r)
		for _, q := range questions {
			row = append(row, r.Answers[q.Field])
		}
		rows = append(rows, row)
	}
	return &Table{Headers: headers, Rows: rows}
}

// BuildCustomTable lays out the columns of a school-authored survey,
// following the order the school configured.
func BuildCustomTable(survey *model.CustomSurvey, responses []*model.SurveyResponse) *Table {
	headers := append([]string{}, metadataHeaders...)
	var fields []string
	for _, section := range survey.Sections {
		for _, q := range section.Questions {
			headers = append(headers, fmt.Sprintf("%s. %s", q.Number, q.Text))
			fields = append(fields, q.Field)
		}
	}

	rows := make([][]string, 0, len(responses))
	for i, r := range responses {
		row := metadataCells(i, r)
		for _, field := range fields {
			row = append(row, r.Answers[field])
		}
		rows = append(rows, row)
	}
	return &Table{Headers: headers, Rows: rows}
}

func metadataCells(index int, r *model.SurveyResponse) []string {
	submitted := time.UnixMilli(r.SubmittedAt)
	return []string{
		fmt.Sprintf("%d", index+1),
		r.ID,
		submitted.Format("02-01-2006, 15:04:05"),
		r.SchoolCode,
		r.SurveyCode,
		r.Course,
		r.Letter,
	}
}

var (
	unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// sanitizeName strips a display name down to filename-safe characters.
func sanitizeName(name string) string {
	clean := unsafeChars.ReplaceAllString(name, "")
	return whitespace.ReplaceAllString(strings.TrimSpace(clean), "_")
}

// ExcelFilename builds the download name for a spreadsheet export,
// stamping today's date.
func ExcelFilename(base string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", sanitizeName(base), now.Format("2006-01-02"))
}

// PDFFilename builds the download name for a recommendations report.
// Only the part of the survey name before " - " is used.
func PDFFilename(schoolName, surveyName string, now time.Time) string {
	shortSurvey := strings.SplitN(surveyName, " - ", 2)[0]
	return fmt.Sprintf("Recomendaciones_%s_%s_%s.pdf",
		sanitizeName(schoolName), sanitizeName(shortSurvey), now.Format("02-01-2006"))
}
