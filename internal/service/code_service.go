package service

import (
	"context"
	"errors"

	"github.com/sebasotodlp/schoolar/internal/config"
	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/repository"
)

var (
	ErrInvalidSurveyCode = errors.New("survey code is not valid for this school")
)

// CodeValidation is the result of resolving a survey code
type CodeValidation struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Type        model.SurveyType `json:"type"`
	IsCustom    bool             `json:"isCustom"`
}

// CodeService resolves school and survey codes. Predefined codes win
// over custom surveys, and custom surveys only exist for authorized
// schools.
type CodeService struct {
	directory *config.Directory
	surveys   repository.CustomSurveyRepo
}

// NewCodeService creates a new code service
func NewCodeService(directory *config.Directory, surveys repository.CustomSurveyRepo) *CodeService {
	return &CodeService{directory: directory, surveys: surveys}
}

// ValidateSchoolCode resolves a school code against the whitelist.
func (s *CodeService) ValidateSchoolCode(code string) (config.School, error) {
	school, ok := s.directory.School(code)
	if !ok {
		return config.School{}, ErrInvalidSchoolCode
	}
	return school, nil
}

// ValidateSurveyCode resolves a survey code for a school: predefined
// surveys first, then active custom surveys.
func (s *CodeService) ValidateSurveyCode(ctx context.Context, surveyCode, schoolCode string) (*CodeValidation, error) {
	if predefined, ok := s.directory.Survey(surveyCode, schoolCode); ok {
		return &CodeValidation{
			Name:        predefined.Name,
			Description: predefined.Description,
			Type:        predefined.Type,
		}, nil
	}

	if !s.directory.IsAuthorizedSchool(schoolCode) {
		return nil, ErrInvalidSurveyCode
	}

	custom, err := s.surveys.GetActiveByCode(ctx, surveyCode, schoolCode)
	if err != nil {
		return nil, err
	}
	if custom == nil {
		return nil, ErrInvalidSurveyCode
	}
	return &CodeValidation{
		Name:        custom.Name,
		Description: custom.Description,
		Type:        custom.SurveyType,
		IsCustom:    true,
	}, nil
}

// IsCustomSurvey reports whether the code resolves to a custom survey.
// Predefined codes are never custom, regardless of school.
func (s *CodeService) IsCustomSurvey(ctx context.Context, surveyCode, schoolCode string) (bool, error) {
	if s.directory.IsPredefined(surveyCode) {
		return false, nil
	}
	custom, err := s.surveys.GetActiveByCode(ctx, surveyCode, schoolCode)
	if err != nil {
		return false, err
	}
	return custom != nil, nil
}

// SurveysForSchool lists the predefined surveys available to a school.
func (s *CodeService) SurveysForSchool(schoolCode string) []config.PredefinedSurvey {
	return s.directory.SurveysForSchool(schoolCode)
}
