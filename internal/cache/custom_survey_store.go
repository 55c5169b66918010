package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/repository"
)

// customSurveyStore is the durable local tier for school-authored surveys.
type customSurveyStore struct {
	client *redis.Client
}

// NewCustomSurveyStore creates the Redis-backed custom survey store
func NewCustomSurveyStore(client *redis.Client) repository.CustomSurveyRepo {
	return &customSurveyStore{client: client}
}

const customSurveyHashKey = "schoolar:custom_surveys"

func (s *customSurveyStore) Create(ctx context.Context, survey *model.CustomSurvey) error {
	now := time.Now().UnixMilli()
	if survey.CreatedAt == 0 {
		survey.CreatedAt = now
	}
	survey.LastModified = now
	return s.put(ctx, survey)
}

func (s *customSurveyStore) GetByID(ctx context.Context, id string) (*model.CustomSurvey, error) {
	data, err := s.client.HGet(ctx, customSurveyHashKey, id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var survey model.CustomSurvey
	if err := json.Unmarshal([]byte(data), &survey); err != nil {
		return nil, err
	}
	return &survey, nil
}

func (s *customSurveyStore) ListBySchool(ctx context.Context, schoolCode string) ([]*model.CustomSurvey, error) {
	surveys, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	var out []*model.CustomSurvey
	for _, sv := range surveys {
		if sv.SchoolCode == schoolCode {
			out = append(out, sv)
		}
	}
	return out, nil
}

func (s *customSurveyStore) GetActiveByCode(ctx context.Context, surveyCode, schoolCode string) (*model.CustomSurvey, error) {
	surveys, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	for _, sv := range surveys {
		if sv.SurveyCode == surveyCode && sv.SchoolCode == schoolCode && sv.IsActive {
			return sv, nil
		}
	}
	return nil, nil
}

func (s *customSurveyStore) Update(ctx context.Context, survey *model.CustomSurvey) error {
	survey.LastModified = time.Now().UnixMilli()
	return s.put(ctx, survey)
}

func (s *customSurveyStore) Delete(ctx context.Context, id string) error {
	return s.client.HDel(ctx, customSurveyHashKey, id).Err()
}

func (s *customSurveyStore) put(ctx context.Context, survey *model.CustomSurvey) error {
	data, err := json.Marshal(survey)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, customSurveyHashKey, survey.ID, data).Err()
}

func (s *customSurveyStore) all(ctx context.Context) ([]*model.CustomSurvey, error) {
	entries, err := s.client.HGetAll(ctx, customSurveyHashKey).Result()
	if err != nil {
		return nil, err
	}
	var out []*model.CustomSurvey
	for _, data := range entries {
		var sv model.CustomSurvey
		if err := json.Unmarshal([]byte(data), &sv); err != nil {
			return nil, err
		}
		out = append(out, &sv)
	}
	return out, nil
}
