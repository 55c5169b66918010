package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sebasotodlp/schoolar/internal/survey"
)

// SessionStore keeps in-progress questionnaire sessions between requests
type SessionStore interface {
	Get(ctx context.Context, id string) (*survey.Session, error)
	Set(ctx context.Context, session *survey.Session) error
	Delete(ctx context.Context, id string) error
}

type sessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a new session store. Abandoned sessions expire
// after 24 hours.
func NewSessionStore(client *redis.Client) SessionStore {
	return &sessionStore{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (s *sessionStore) sessionKey(id string) string {
	return fmt.Sprintf("schoolar:session:%s", id)
}

func (s *sessionStore) Get(ctx context.Context, id string) (*survey.Session, error) {
	data, err := s.client.Get(ctx, s.sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session survey.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *sessionStore) Set(ctx context.Context, session *survey.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.sessionKey(session.ID), data, s.ttl).Err()
}

func (s *sessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.sessionKey(id)).Err()
}
