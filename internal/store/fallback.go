// Package store composes the remote repositories with the durable local
// tier. Every operation tries the remote store first and silently falls
// back to the local one when the remote is unreachable, so collection
// keeps working offline. Business rule violations are raised by the
// services before the store is touched and never trigger a fallback.
package store

import (
	"context"
	"log"

	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/repository"
)

// FallbackResponseStore persists responses remotely with a local fallback
type FallbackResponseStore struct {
	primary  repository.ResponseRepo
	fallback repository.ResponseRepo
}

// NewFallbackResponseStore composes the remote and local response stores
func NewFallbackResponseStore(primary, fallback repository.ResponseRepo) *FallbackResponseStore {
	return &FallbackResponseStore{primary: primary, fallback: fallback}
}

func (s *FallbackResponseStore) Save(ctx context.Context, response *model.SurveyResponse) error {
	if err := s.primary.Save(ctx, response); err != nil {
		log.Printf("response store: remote save failed, using local store: %v", err)
		return s.fallback.Save(ctx, response)
	}
	return nil
}

func (s *FallbackResponseStore) ListBySchool(ctx context.Context, schoolCode string) ([]*model.SurveyResponse, error) {
	out, err := s.primary.ListBySchool(ctx, schoolCode)
	if err != nil {
		log.Printf("response store: remote list failed, using local store: %v", err)
		return s.fallback.ListBySchool(ctx, schoolCode)
	}
	return out, nil
}

func (s *FallbackResponseStore) ListBySurvey(ctx context.Context, schoolCode, surveyCode string) ([]*model.SurveyResponse, error) {
	out, err := s.primary.ListBySurvey(ctx, schoolCode, surveyCode)
	if err != nil {
		log.Printf("response store: remote list failed, using local store: %v", err)
		return s.fallback.ListBySurvey(ctx, schoolCode, surveyCode)
	}
	return out, nil
}

func (s *FallbackResponseStore) ListAll(ctx context.Context) ([]*model.SurveyResponse, error) {
	out, err := s.primary.ListAll(ctx)
	if err != nil {
		log.Printf("response store: remote list failed, using local store: %v", err)
		return s.fallback.ListAll(ctx)
	}
	return out, nil
}

// FallbackUserStore persists admin accounts remotely with a local fallback
type FallbackUserStore struct {
	primary  repository.UserRepo
	fallback repository.UserRepo
}

// NewFallbackUserStore composes the remote and local user stores
func NewFallbackUserStore(primary, fallback repository.UserRepo) *FallbackUserStore {
	return &FallbackUserStore{primary: primary, fallback: fallback}
}

func (s *FallbackUserStore) Create(ctx context.Context, user *model.AdminUser) error {
	if err := s.primary.Create(ctx, user); err != nil {
		log.Printf("user store: remote create failed, using local store: %v", err)
		return s.fallback.Create(ctx, user)
	}
	return nil
}

func (s *FallbackUserStore) GetByID(ctx context.Context, id string) (*model.AdminUser, error) {
	user, err := s.primary.GetByID(ctx, id)
	if err != nil {
		log.Printf("user store: remote get failed, using local store: %v", err)
		return s.fallback.GetByID(ctx, id)
	}
	return user, nil
}

func (s *FallbackUserStore) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	user, err := s.primary.GetByEmail(ctx, email)
	if err != nil {
		log.Printf("user store: remote get failed, using local store: %v", err)
		return s.fallback.GetByEmail(ctx, email)
	}
	return user, nil
}

func (s *FallbackUserStore) ListSecondaryByAdmin(ctx context.Context, adminID, schoolCode string) ([]*model.AdminUser, error) {
	users, err := s.primary.ListSecondaryByAdmin(ctx, adminID, schoolCode)
	if err != nil {
		log.Printf("user store: remote list failed, using local store: %v", err)
		return s.fallback.ListSecondaryByAdmin(ctx, adminID, schoolCode)
	}
	return users, nil
}

func (s *FallbackUserStore) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if err := s.primary.UpdatePassword(ctx, id, passwordHash); err != nil {
		log.Printf("user store: remote update failed, using local store: %v", err)
		return s.fallback.UpdatePassword(ctx, id, passwordHash)
	}
	return nil
}

func (s *FallbackUserStore) Delete(ctx context.Context, id string) error {
	if err := s.primary.Delete(ctx, id); err != nil {
		log.Printf("user store: remote delete failed, using local store: %v", err)
		return s.fallback.Delete(ctx, id)
	}
	return nil
}

// FallbackCustomSurveyStore persists custom surveys remotely with a
// local fallback
type FallbackCustomSurveyStore struct {
	primary  repository.CustomSurveyRepo
	fallback repository.CustomSurveyRepo
}

// NewFallbackCustomSurveyStore composes the remote and local survey stores
func NewFallbackCustomSurveyStore(primary, fallback repository.CustomSurveyRepo) *FallbackCustomSurveyStore {
	return &FallbackCustomSurveyStore{primary: primary, fallback: fallback}
}

func (s *FallbackCustomSurveyStore) Create(ctx context.Context, survey *model.CustomSurvey) error {
	if err := s.primary.Create(ctx, survey); err != nil {
		log.Printf("custom survey store: remote create failed, using local store: %v", err)
		return s.fallback.Create(ctx, survey)
	}
	return nil
}

func (s *FallbackCustomSurveyStore) GetByID(ctx context.Context, id string) (*model.CustomSurvey, error) {
	survey, err := s.primary.GetByID(ctx, id)
	if err != nil {
		log.Printf("custom survey store: remote get failed, using local store: %v", err)
		return s.fallback.GetByID(ctx, id)
	}
	return survey, nil
}

func (s *FallbackCustomSurveyStore) ListBySchool(ctx context.Context, schoolCode string) ([]*model.CustomSurvey, error) {
	surveys, err := s.primary.ListBySchool(ctx, schoolCode)
	if err != nil {
		log.Printf("custom survey store: remote list failed, using local store: %v", err)
		return s.fallback.ListBySchool(ctx, schoolCode)
	}
	return surveys, nil
}

// GetActiveByCode checks the local tier first so recently authored
// surveys resolve even while the remote store is unreachable, then the
// remote tier.
func (s *FallbackCustomSurveyStore) GetActiveByCode(ctx context.Context, surveyCode, schoolCode string) (*model.CustomSurvey, error) {
	if survey, err := s.fallback.GetActiveByCode(ctx, surveyCode, schoolCode); err == nil && survey != nil {
		return survey, nil
	}
	survey, err := s.primary.GetActiveByCode(ctx, surveyCode, schoolCode)
	if err != nil {
		log.Printf("custom survey store: remote lookup failed: %v", err)
		return nil, nil
	}
	return survey, nil
}

func (s *FallbackCustomSurveyStore) Update(ctx context.Context, survey *model.CustomSurvey) error {
	if err := s.primary.Update(ctx, survey); err != nil {
		log.Printf("custom survey store: remote update failed, using local store: %v", err)
		return s.fallback.Update(ctx, survey)
	}
	return nil
}

func (s *FallbackCustomSurveyStore) Delete(ctx context.Context, id string) error {
	if err := s.primary.Delete(ctx, id); err != nil {
		log.Printf("custom survey store: remote delete failed, using local store: %v", err)
		return s.fallback.Delete(ctx, id)
	}
	return nil
}
