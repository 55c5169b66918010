package cache

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/repository"
)

// ResponseStore is the durable local tier for survey responses. All
// submissions live in a single list and every query filters in memory,
// mirroring the remote repositories' no-composite-index rule. Entries
// never expire; the local tier must survive restarts.
type responseStore struct {
	client *redis.Client
}

// NewResponseStore creates the Redis-backed response store
func NewResponseStore(client *redis.Client) repository.ResponseRepo {
	return &responseStore{client: client}
}

const responseListKey = "schoolar:responses"

func (s *responseStore) Save(ctx context.Context, response *model.SurveyResponse) error {
	data, err := json.Marshal(response)
	if err != nil {
		return err
	}
	return s.client.RPush(ctx, responseListKey, data).Err()
}

func (s *responseStore) ListBySchool(ctx context.Context, schoolCode string) ([]*model.SurveyResponse, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []*model.SurveyResponse
	for _, r := range all {
		if r.SchoolCode == schoolCode {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *responseStore) ListBySurvey(ctx context.Context, schoolCode, surveyCode string) ([]*model.SurveyResponse, error) {
	bySchool, err := s.ListBySchool(ctx, schoolCode)
	if err != nil {
		return nil, err
	}
	var out []*model.SurveyResponse
	for _, r := range bySchool {
		if r.SurveyCode == surveyCode {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *responseStore) ListAll(ctx context.Context) ([]*model.SurveyResponse, error) {
	items, err := s.client.LRange(ctx, responseListKey, 0, -1).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out []*model.SurveyResponse
	for _, item := range items {
		var r model.SurveyResponse
		if err := json.Unmarshal([]byte(item), &r); err != nil {
			return nil, err
		}
		out = append(out, &r)
	}
	return out, nil
}
