package cache

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/repository"
)

// userStore is the durable local tier for admin accounts, one hash
// entry per user ID.
type userStore struct {
	client *redis.Client
}

// NewUserStore creates the Redis-backed user store
func NewUserStore(client *redis.Client) repository.UserRepo {
	return &userStore{client: client}
}

const userHashKey = "schoolar:users"

func (s *userStore) Create(ctx context.Context, user *model.AdminUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, userHashKey, user.ID, data).Err()
}

func (s *userStore) GetByID(ctx context.Context, id string) (*model.AdminUser, error) {
	data, err := s.client.HGet(ctx, userHashKey, id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var user model.AdminUser
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	users, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *userStore) ListSecondaryByAdmin(ctx context.Context, adminID, schoolCode string) ([]*model.AdminUser, error) {
	users, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	var out []*model.AdminUser
	for _, u := range users {
		if u.CreatedBy == adminID && u.SchoolCode == schoolCode && u.UserType == model.UserTypeSecondary {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *userStore) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	user.PasswordHash = passwordHash
	return s.Create(ctx, user)
}

func (s *userStore) Delete(ctx context.Context, id string) error {
	return s.client.HDel(ctx, userHashKey, id).Err()
}

func (s *userStore) all(ctx context.Context) ([]*model.AdminUser, error) {
	entries, err := s.client.HGetAll(ctx, userHashKey).Result()
	if err != nil {
		return nil, err
	}
	var out []*model.AdminUser
	for _, data := range entries {
		var u model.AdminUser
		if err := json.Unmarshal([]byte(data), &u); err != nil {
			return nil, err
		}
		out = append(out, &u)
	}
	return out, nil
}
