package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/sebasotodlp/schoolar/internal/model"
)

// ReportData carries everything the recommendations PDF needs.
type ReportData struct {
	SchoolName      string
	SurveyName      string
	Course          string
	Letter          string
	TotalResponses  int
	Recommendations []*model.Recommendation
	GeneratedDate   string
}

// WriteRecommendationsPDF renders a report as an A4 portrait document:
// a header with the school and survey details, then one block per
// recommendation with its analysis and suggested action.
func WriteRecommendationsPDF(w io.Writer, data *ReportData) error {
	const margin = 20.0

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, pageHeight := pdf.GetPageSize()
	contentWidth := pageWidth - 2*margin

	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(75, 85, 99)
		if pdf.PageNo() == 1 {
			pdf.CellFormat(contentWidth/2, 5, "Generado por schoolar.cl", "", 0, "L", false, 0, "")
		} else {
			pdf.CellFormat(contentWidth/2, 5, "", "", 0, "L", false, 0, "")
		}
		pdf.CellFormat(contentWidth/2, 5, tr(fmt.Sprintf("Página %d de {nb}", pdf.PageNo())), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(31, 41, 55)
	pdf.CellFormat(contentWidth, 8, tr("Informe de Recomendaciones"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(75, 85, 99)
	pdf.CellFormat(contentWidth, 6, tr(data.SchoolName), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(contentWidth, 5, tr(data.SurveyName), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentWidth, 5, tr(detailsLine(data)), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetDrawColor(229, 231, 235)
	pdf.SetLineWidth(0.3)
	y := pdf.GetY()
	pdf.Line(margin, y, pageWidth-margin, y)
	pdf.Ln(8)

	for i, rec := range data.Recommendations {
		// Estimate a block at 40mm so a recommendation never starts
		// right at the bottom edge.
		if pdf.GetY()+40 > pageHeight-margin {
			pdf.AddPage()
		}

		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(31, 41, 55)
		pdf.MultiCell(contentWidth, 5, tr(fmt.Sprintf("Pregunta %s: %s", rec.QuestionNumber, rec.QuestionText)), "", "L", false)
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentWidth, 5, tr("- Análisis:"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(75, 85, 99)
		pdf.SetX(margin + 5)
		pdf.MultiCell(contentWidth-5, 4.5, tr(rec.Analysis), "", "L", false)
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(31, 41, 55)
		pdf.CellFormat(contentWidth, 5, tr("- Recomendación:"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(75, 85, 99)
		pdf.SetX(margin + 5)
		pdf.MultiCell(contentWidth-5, 4.5, tr(rec.Recommendation), "", "L", false)

		if i < len(data.Recommendations)-1 {
			pdf.Ln(4)
			pdf.SetDrawColor(229, 231, 235)
			pdf.SetLineWidth(0.2)
			y := pdf.GetY()
			pdf.Line(margin, y, pageWidth-margin, y)
			pdf.Ln(6)
		}
	}

	return pdf.Output(w)
}

// detailsLine builds the compact metadata line under the survey name.
// Course and letter only appear when the report was filtered down.
func detailsLine(data *ReportData) string {
	details := fmt.Sprintf("%d respuestas", data.TotalResponses)
	if data.Course != "" && data.Course != "Todos los cursos" && data.Course != "No aplica" {
		details += fmt.Sprintf(" • %s", data.Course)
	}
	if data.Letter != "" && data.Letter != "Todas las letras" && data.Letter != "No aplica" {
		details += " " + data.Letter
	}
	return details + fmt.Sprintf(" • Generado: %s", data.GeneratedDate)
}
