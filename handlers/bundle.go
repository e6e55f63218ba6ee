package handlers

import (
	userRepo "remindly/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers the router needs, plus the user
// repository consumed by the auth middleware.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	// User endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc
	LogoutHandler           gin.HandlerFunc

	// OAuth endpoints.
	GoogleLoginHandler    gin.HandlerFunc
	GoogleCallbackHandler gin.HandlerFunc
	OAuthLogoutHandler    gin.HandlerFunc

	// Reminder endpoints.
	ListRemindersHandler  gin.HandlerFunc
	CreateReminderHandler gin.HandlerFunc
	GetReminderHandler    gin.HandlerFunc
	UpdateReminderHandler gin.HandlerFunc
	DeleteReminderHandler gin.HandlerFunc

	// Share-link endpoints.
	GenerateShareLinkHandler     gin.HandlerFunc
	ShareDetailsHandler          gin.HandlerFunc
	SubmitContactHandler         gin.HandlerFunc
	GeneratePersonalLinkHandler  gin.HandlerFunc
	PersonalDetailsHandler       gin.HandlerFunc
	SubmitPersonalContactHandler gin.HandlerFunc
}
