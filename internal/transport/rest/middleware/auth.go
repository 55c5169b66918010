package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sebasotodlp/schoolar/internal/service"
)

type contextKey string

const (
	UserIDKey     contextKey = "userId"
	SchoolCodeKey contextKey = "schoolCode"
	UserTypeKey   contextKey = "userType"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

func denyJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// RequireUser validates a dashboard JWT from the Authorization header
func (m *AuthMiddleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			denyJSON(w, http.StatusUnauthorized, "missing authorization header")
			return
		}

		claims, err := m.authSvc.ValidateToken(token)
		if err != nil {
			denyJSON(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, SchoolCodeKey, claims.SchoolCode)
		ctx = context.WithValue(ctx, UserTypeKey, string(claims.UserType))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermission gates a route on a dashboard feature. Admins always
// pass; secondary users need the feature enabled on their account.
func (m *AuthMiddleware) RequirePermission(feature string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := GetUserID(r.Context())
			if userID == "" {
				denyJSON(w, http.StatusUnauthorized, "missing authorization")
				return
			}

			user, err := m.authSvc.GetUser(r.Context(), userID)
			if err != nil {
				denyJSON(w, http.StatusUnauthorized, "user not found")
				return
			}
			if !user.HasPermission(feature) {
				denyJSON(w, http.StatusForbidden, "feature not enabled for this account")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetUserID extracts the account ID from context
func GetUserID(ctx context.Context) string {
	if v := ctx.Value(UserIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetSchoolCode extracts the school code from context
func GetSchoolCode(ctx context.Context) string {
	if v := ctx.Value(SchoolCodeKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetUserType extracts the account type from context
func GetUserType(ctx context.Context) string {
	if v := ctx.Value(UserTypeKey); v != nil {
		return v.(string)
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
