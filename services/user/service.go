package user

import (
	userRepo "remindly/database/repository/user"
	"remindly/models"
	"remindly/services/socialauth"
)

// UserService defines business logic for account and profile operations.
type UserService interface {
	// RegisterUser creates a local account and returns a bearer token.
	RegisterUser(req RegisterRequest) (*AuthResponse, error)
	// AuthenticateUser verifies an email+password pair and returns a bearer token.
	AuthenticateUser(email, password string) (*AuthResponse, error)
	// AuthenticateGoogle signs a validated Google identity in, creating or
	// linking the account as needed.
	AuthenticateGoogle(info socialauth.UserInfo) (*AuthResponse, error)
	// GetProfile retrieves the caller's account without credential material.
	GetProfile(userID string) (*models.User, error)
	// UpdateProfile applies a partial profile update and optionally changes
	// the password.
	UpdateProfile(userID string, req ProfileUpdateRequest) (*models.User, error)
	// RevokeAuthToken clears the caller's auth-cache entry (logout).
	RevokeAuthToken(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegisterRequest carries the local registration fields. All three are
// required; password strength is deliberately not policed here.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdateRequest is a partial update; only non-nil fields change.
type ProfileUpdateRequest struct {
	Name        *string             `json:"name"`
	Email       *string             `json:"email"`
	Profile     *models.Profile     `json:"profile"`
	Permissions *models.Permissions `json:"permissions"`
	Password    *string             `json:"password"`
}

// AuthResponse is the minimal user summary plus bearer token returned by
// every authentication path.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}
