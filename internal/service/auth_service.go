package service

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sebasotodlp/schoolar/internal/config"
	"github.com/sebasotodlp/schoolar/internal/model"
	"github.com/sebasotodlp/schoolar/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrSecondaryUserLimit = errors.New("maximum of 5 secondary users reached")
	ErrNotAuthorized      = errors.New("operation requires an admin account")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidSchoolCode  = errors.New("school code is not authorized")
	ErrWrongPassword      = errors.New("current password does not match")
)

const maxSecondaryUsers = 5

// AuthService handles admin accounts and dashboard sessions
type AuthService struct {
	users     repository.UserRepo
	directory *config.Directory
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepo, directory *config.Directory) *AuthService {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super-secret-key-change-in-production"
	}

	return &AuthService{
		users:     users,
		directory: directory,
		jwtSecret: []byte(secret),
		tokenTTL:  24 * time.Hour,
	}
}

// Login validates credentials against the user store, falling back to
// the emergency directory accounts when no stored account matches.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		return s.loginResponse(user)
	}

	if emergency, ok := s.directory.EmergencyUser(email, password); ok {
		return s.loginResponse(emergency)
	}
	return nil, ErrInvalidCredentials
}

func (s *AuthService) loginResponse(user *model.AdminUser) (*model.LoginResponse, error) {
	claims := &model.AdminClaims{
		UserID:     user.ID,
		SchoolCode: user.SchoolCode,
		UserType:   user.UserType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{Token: tokenString, User: user}, nil
}

// ValidateToken validates a dashboard JWT and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*model.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Register creates the first admin account for an authorized school.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AdminUser, error) {
	school, ok := s.directory.School(req.SchoolCode)
	if !ok {
		return nil, ErrInvalidSchoolCode
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.AdminUser{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: string(hash),
		SchoolCode:   school.Code,
		SchoolName:   school.Name,
		UserType:     model.UserTypeAdmin,
		CreatedAt:    time.Now().UnixMilli(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser loads an account by ID, checking the emergency directory for
// the seed account IDs.
func (s *AuthService) GetUser(ctx context.Context, id string) (*model.AdminUser, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}
	for _, acct := range s.directory.EmergencyAccounts() {
		if acct.ID == id {
			u := acct
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// CreateSecondaryUser adds a restricted account under an admin. Only
// admins may create them, at most 5 per school, and the email must be
// unique. The cap is checked before any write happens.
func (s *AuthService) CreateSecondaryUser(ctx context.Context, adminID string, req *model.SecondaryUserRequest) (*model.AdminUser, error) {
	admin, err := s.GetUser(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin.UserType != model.UserTypeAdmin {
		return nil, ErrNotAuthorized
	}

	existing, err := s.users.ListSecondaryByAdmin(ctx, admin.ID, admin.SchoolCode)
	if err != nil {
		return nil, err
	}
	if len(existing) >= maxSecondaryUsers {
		return nil, ErrSecondaryUserLimit
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	duplicate, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if duplicate != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.AdminUser{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: string(hash),
		SchoolCode:   admin.SchoolCode,
		SchoolName:   admin.SchoolName,
		UserType:     model.UserTypeSecondary,
		Permissions:  req.Permissions,
		CreatedBy:    admin.ID,
		CreatedAt:    time.Now().UnixMilli(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListSecondaryUsers returns the restricted accounts created by an
// admin, newest first.
func (s *AuthService) ListSecondaryUsers(ctx context.Context, adminID string) ([]*model.AdminUser, error) {
	admin, err := s.GetUser(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin.UserType != model.UserTypeAdmin {
		return nil, ErrNotAuthorized
	}

	users, err := s.users.ListSecondaryByAdmin(ctx, admin.ID, admin.SchoolCode)
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt > users[j].CreatedAt
	})
	return users, nil
}

// DeleteSecondaryUser removes a restricted account. The requester must
// be the admin who created it.
func (s *AuthService) DeleteSecondaryUser(ctx context.Context, adminID, userID string) error {
	admin, err := s.GetUser(ctx, adminID)
	if err != nil {
		return err
	}
	if admin.UserType != model.UserTypeAdmin {
		return ErrNotAuthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || user.UserType != model.UserTypeSecondary || user.CreatedBy != admin.ID {
		return ErrUserNotFound
	}
	return s.users.Delete(ctx, userID)
}

// ChangePassword updates a user's password after re-proving the current
// one.
func (s *AuthService) ChangePassword(ctx context.Context, userID string, req *model.ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, string(hash))
}
