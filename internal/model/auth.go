package model

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are JWT claims for dashboard sessions
type AdminClaims struct {
	UserID     string   `json:"userId"`
	SchoolCode string   `json:"schoolCode"`
	UserType   UserType `json:"userType"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for admin login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token string     `json:"token"`
	User  *AdminUser `json:"user"`
}

// RegisterRequest creates the first admin account for a school
type RegisterRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	SchoolCode string `json:"schoolCode"`
}

// SecondaryUserRequest creates a restricted account under an admin
type SecondaryUserRequest struct {
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	Permissions Permissions `json:"permissions"`
}

// ChangePasswordRequest requires re-proving the current password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
