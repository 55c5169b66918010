package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sebasotodlp/schoolar/internal/aggregate"
	"github.com/sebasotodlp/schoolar/internal/export"
	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/service"
	"github.com/sebasotodlp/schoolar/internal/transport/rest/middleware"
)

// ExportHandler serves spreadsheet and PDF downloads
type ExportHandler struct {
	responseSvc *service.ResponseService
	codeSvc     *service.CodeService
	surveySvc   *service.CustomSurveyService
}

// NewExportHandler creates a new export handler
func NewExportHandler(responseSvc *service.ResponseService, codeSvc *service.CodeService, surveySvc *service.CustomSurveyService) *ExportHandler {
	return &ExportHandler{
		responseSvc: responseSvc,
		codeSvc:     codeSvc,
		surveySvc:   surveySvc,
	}
}

// Responses handles GET /v1/exports/responses?surveyCode=..&course=..&letter=..
func (h *ExportHandler) Responses(w http.ResponseWriter, r *http.Request) {
	schoolCode := middleware.GetSchoolCode(r.Context())
	surveyCode := r.URL.Query().Get("surveyCode")
	if surveyCode == "" {
		writeError(w, http.StatusBadRequest, "surveyCode is required")
		return
	}

	validation, err := h.codeSvc.ValidateSurveyCode(r.Context(), surveyCode, schoolCode)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	responses, err := h.responseSvc.ListBySurvey(r.Context(), schoolCode, surveyCode)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	responses = aggregate.FilterSegment(responses, r.URL.Query().Get("course"), r.URL.Query().Get("letter"))

	var table *export.Table
	if validation.IsCustom {
		sv, err := h.surveySvc.GetByCode(r.Context(), surveyCode, schoolCode)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		table = export.BuildCustomTable(sv, responses)
	} else {
		table = export.BuildTable(validation.Type, responses)
	}

	filename := export.ExcelFilename("Respuestas "+validation.Name, time.Now())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := export.WriteExcel(w, table); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate spreadsheet")
		return
	}
}

// RecommendationsPDFRequest is the request body for a PDF report
type RecommendationsPDFRequest struct {
	SurveyName      string                  `json:"surveyName"`
	Course          string                  `json:"course"`
	Letter          string                  `json:"letter"`
	TotalResponses  int                     `json:"totalResponses"`
	Recommendations []*model.Recommendation `json:"recommendations"`
}

// Recommendations handles POST /v1/exports/recommendations
func (h *ExportHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	schoolCode := middleware.GetSchoolCode(r.Context())

	var req RecommendationsPDFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Recommendations) == 0 {
		writeError(w, http.StatusBadRequest, "recommendations are required")
		return
	}

	school, err := h.codeSvc.ValidateSchoolCode(schoolCode)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	now := time.Now()
	data := &export.ReportData{
		SchoolName:      school.Name,
		SurveyName:      req.SurveyName,
		Course:          req.Course,
		Letter:          req.Letter,
		TotalResponses:  req.TotalResponses,
		Recommendations: req.Recommendations,
		GeneratedDate:   now.Format("02/01/2006"),
	}

	filename := export.PDFFilename(school.Name, req.SurveyName, now)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := export.WriteRecommendationsPDF(w, data); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate report")
		return
	}
}
