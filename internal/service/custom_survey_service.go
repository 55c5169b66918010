package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sebasotodlp/schoolar/internal/config"
	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/repository"
)

var (
	ErrSurveyNotFound  = errors.New("custom survey not found")
	ErrSurveyOwnership = errors.New("survey does not belong to this school")
)

// CustomSurveyService manages school-authored surveys
type CustomSurveyService struct {
	surveys   repository.CustomSurveyRepo
	directory *config.Directory
}

// NewCustomSurveyService creates a new custom survey service
func NewCustomSurveyService(surveys repository.CustomSurveyRepo, directory *config.Directory) *CustomSurveyService {
	return &CustomSurveyService{surveys: surveys, directory: directory}
}

// Create stores a new custom survey for a school. A survey code is
// generated when the request does not bring one.
func (s *CustomSurveyService) Create(ctx context.Context, schoolCode, createdBy string, surveyIn *model.CustomSurvey) (*model.CustomSurvey, error) {
	if !s.directory.IsAuthorizedSchool(schoolCode) {
		return nil, ErrInvalidSchoolCode
	}

	surveyIn.ID = uuid.NewString()
	surveyIn.SchoolCode = schoolCode
	surveyIn.CreatedBy = createdBy
	if surveyIn.SurveyCode == "" {
		code, err := generateSurveyCode(schoolCode)
		if err != nil {
			return nil, err
		}
		surveyIn.SurveyCode = code
	}
	if err := s.surveys.Create(ctx, surveyIn); err != nil {
		return nil, err
	}
	return surveyIn, nil
}

// GetByCode loads an active survey by its circulation code.
func (s *CustomSurveyService) GetByCode(ctx context.Context, surveyCode, schoolCode string) (*model.CustomSurvey, error) {
	sv, err := s.surveys.GetActiveByCode(ctx, surveyCode, schoolCode)
	if err != nil {
		return nil, err
	}
	if sv == nil {
		return nil, ErrSurveyNotFound
	}
	return sv, nil
}

// List returns the custom surveys of a school.
func (s *CustomSurveyService) List(ctx context.Context, schoolCode string) ([]*model.CustomSurvey, error) {
	return s.surveys.ListBySchool(ctx, schoolCode)
}

// Get loads one custom survey, enforcing school ownership.
func (s *CustomSurveyService) Get(ctx context.Context, schoolCode, id string) (*model.CustomSurvey, error) {
	sv, err := s.surveys.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sv == nil {
		return nil, ErrSurveyNotFound
	}
	if !s.directory.ValidateSurveyOwnership(sv.SurveyCode, schoolCode, sv.SchoolCode) {
		return nil, ErrSurveyOwnership
	}
	return sv, nil
}

// Update replaces a survey's content, keeping its identity and school.
func (s *CustomSurveyService) Update(ctx context.Context, schoolCode string, surveyIn *model.CustomSurvey) error {
	existing, err := s.Get(ctx, schoolCode, surveyIn.ID)
	if err != nil {
		return err
	}
	surveyIn.SchoolCode = existing.SchoolCode
	surveyIn.SurveyCode = existing.SurveyCode
	surveyIn.CreatedBy = existing.CreatedBy
	surveyIn.CreatedAt = existing.CreatedAt
	return s.surveys.Update(ctx, surveyIn)
}

// Delete removes a survey after an ownership check.
func (s *CustomSurveyService) Delete(ctx context.Context, schoolCode, id string) error {
	if _, err := s.Get(ctx, schoolCode, id); err != nil {
		return err
	}
	return s.surveys.Delete(ctx, id)
}

// generateSurveyCode builds "<school>-<epoch6>-<rand3>", matching the
// codes already in circulation.
func generateSurveyCode(schoolCode string) (string, error) {
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	suffix := millis[len(millis)-6:]

	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	tail := make([]byte, 3)
	for i := range tail {
		tail[i] = chars[int(b[i])%len(chars)]
	}
	return fmt.Sprintf("%s-%s-%s", schoolCode, suffix, tail), nil
}
