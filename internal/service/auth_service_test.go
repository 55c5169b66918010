package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sebasotodlp/schoolar/internal/config"
	"github.com/sebasotodlp/schoolar/internal/model"
)

type userStubStore struct {
	users   map[string]*model.AdminUser
	creates int
}

func newUserStubStore() *userStubStore {
	return &userStubStore{users: map[string]*model.AdminUser{}}
}

func (s *userStubStore) Create(ctx context.Context, user *model.AdminUser) error {
	s.creates++
	copy := *user
	s.users[user.ID] = &copy
	return nil
}

func (s *userStubStore) GetByID(ctx context.Context, id string) (*model.AdminUser, error) {
	if u, ok := s.users[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, nil
}

func (s *userStubStore) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	for _, u := range s.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, nil
}

func (s *userStubStore) ListSecondaryByAdmin(ctx context.Context, adminID, schoolCode string) ([]*model.AdminUser, error) {
	var out []*model.AdminUser
	for _, u := range s.users {
		if u.CreatedBy == adminID && u.SchoolCode == schoolCode && u.UserType == model.UserTypeSecondary {
			copy := *u
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (s *userStubStore) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if u, ok := s.users[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (s *userStubStore) Delete(ctx context.Context, id string) error {
	delete(s.users, id)
	return nil
}

func newTestAuthService() (*AuthService, *userStubStore) {
	store := newUserStubStore()
	return NewAuthService(store, config.NewDirectory()), store
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &model.RegisterRequest{
		FirstName:  "Ana",
		LastName:   "Rojas",
		Email:      "Ana.Rojas@csa.cl",
		Password:   "secret123",
		SchoolCode: "CSA123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "ana.rojas@csa.cl" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.UserType != model.UserTypeAdmin {
		t.Fatalf("user type = %q, want admin", user.UserType)
	}
	if user.PasswordHash == "secret123" {
		t.Fatal("password stored in clear")
	}

	resp, err := svc.Login(ctx, "ANA.ROJAS@csa.cl", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}

	claims, err := svc.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != user.ID || claims.SchoolCode != "CSA123" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := svc.Login(ctx, "ana.rojas@csa.cl", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password = %v", err)
	}
	if _, err := svc.ValidateToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("bogus token = %v", err)
	}
}

func TestRegisterRejectsUnknownSchoolAndDuplicates(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, &model.RegisterRequest{
		Email: "x@x.cl", Password: "pw", SchoolCode: "NOPE99",
	}); !errors.Is(err, ErrInvalidSchoolCode) {
		t.Fatalf("unknown school = %v", err)
	}

	req := &model.RegisterRequest{Email: "dup@csa.cl", Password: "pw", SchoolCode: "CSA123"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, req); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("duplicate register = %v", err)
	}
}

func TestEmergencyAccountLogin(t *testing.T) {
	svc, _ := newTestAuthService()

	resp, err := svc.Login(context.Background(), "admin@prueba.cl", "prueba123")
	if err != nil {
		t.Fatalf("emergency login: %v", err)
	}
	if resp.User.SchoolCode != "PRB123" {
		t.Fatalf("school = %q, want PRB123", resp.User.SchoolCode)
	}

	if _, err := svc.Login(context.Background(), "admin@prueba.cl", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong emergency password = %v", err)
	}
}

func TestSecondaryUserLimit(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	admin, err := svc.Register(ctx, &model.RegisterRequest{
		Email: "admin@csa.cl", Password: "pw", SchoolCode: "CSA123",
	})
	if err != nil {
		t.Fatalf("register admin: %v", err)
	}

	for i := 0; i < 5; i++ {
		_, err := svc.CreateSecondaryUser(ctx, admin.ID, &model.SecondaryUserRequest{
			Email:    "sec" + string(rune('a'+i)) + "@csa.cl",
			Password: "pw",
		})
		if err != nil {
			t.Fatalf("secondary %d: %v", i, err)
		}
	}

	writesBefore := store.creates
	_, err = svc.CreateSecondaryUser(ctx, admin.ID, &model.SecondaryUserRequest{
		Email: "sixth@csa.cl", Password: "pw",
	})
	if !errors.Is(err, ErrSecondaryUserLimit) {
		t.Fatalf("sixth secondary = %v, want limit error", err)
	}
	if store.creates != writesBefore {
		t.Fatal("limit rejection must not write to the store")
	}
}

func TestSecondaryUserRequiresAdmin(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	admin, _ := svc.Register(ctx, &model.RegisterRequest{
		Email: "admin2@csa.cl", Password: "pw", SchoolCode: "CSA123",
	})
	sec, err := svc.CreateSecondaryUser(ctx, admin.ID, &model.SecondaryUserRequest{
		Email: "helper@csa.cl", Password: "pw",
	})
	if err != nil {
		t.Fatalf("create secondary: %v", err)
	}

	if _, err := svc.CreateSecondaryUser(ctx, sec.ID, &model.SecondaryUserRequest{
		Email: "nested@csa.cl", Password: "pw",
	}); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("secondary creating secondary = %v", err)
	}
	if _, err := svc.ListSecondaryUsers(ctx, sec.ID); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("secondary listing = %v", err)
	}
}

func TestDeleteSecondaryUserOwnership(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	admin1, _ := svc.Register(ctx, &model.RegisterRequest{
		Email: "a1@csa.cl", Password: "pw", SchoolCode: "CSA123",
	})
	admin2, _ := svc.Register(ctx, &model.RegisterRequest{
		Email: "a2@csj.cl", Password: "pw", SchoolCode: "CSJ123",
	})
	sec, _ := svc.CreateSecondaryUser(ctx, admin1.ID, &model.SecondaryUserRequest{
		Email: "s1@csa.cl", Password: "pw",
	})

	if err := svc.DeleteSecondaryUser(ctx, admin2.ID, sec.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("foreign delete = %v", err)
	}
	if err := svc.DeleteSecondaryUser(ctx, admin1.ID, sec.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := svc.DeleteSecondaryUser(ctx, admin1.ID, sec.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("double delete = %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	user, _ := svc.Register(ctx, &model.RegisterRequest{
		Email: "pw@csa.cl", Password: "oldpass", SchoolCode: "CSA123",
	})

	err := svc.ChangePassword(ctx, user.ID, &model.ChangePasswordRequest{
		CurrentPassword: "wrong", NewPassword: "newpass",
	})
	if !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("wrong current password = %v", err)
	}

	if err := svc.ChangePassword(ctx, user.ID, &model.ChangePasswordRequest{
		CurrentPassword: "oldpass", NewPassword: "newpass",
	}); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, err := svc.Login(ctx, "pw@csa.cl", "oldpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password still works: %v", err)
	}
	if _, err := svc.Login(ctx, "pw@csa.cl", "newpass"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}
