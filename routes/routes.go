package routes

import (
	"net/http"
	"time"

	"remindly/handlers"
	"remindly/middleware"
	"remindly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account and profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/profile", hb.GetProfileHandler)
		api.PUT("/profile", hb.UpdateProfileHandler)
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterAuthRoutes registers the Google OAuth redirect flow.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.GET("/google", hb.GoogleLoginHandler)
		api.GET("/google/callback", hb.GoogleCallbackHandler)
		api.GET("/logout", hb.OAuthLogoutHandler)
	}
}

// RegisterReminderRoutes registers reminder CRUD endpoints. All of them
// require authentication; ownership is enforced inside the service.
func RegisterReminderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reminders")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.ListRemindersHandler)
		api.POST("", hb.CreateReminderHandler)
		api.GET("/:id", hb.GetReminderHandler)
		api.PUT("/:id", hb.UpdateReminderHandler)
		api.DELETE("/:id", hb.DeleteReminderHandler)
	}
}

// RegisterShareRoutes registers the share-link issuer endpoints. Issuance is
// protected; the token-keyed endpoints are the anonymous entry path.
func RegisterShareRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/share")
	{
		api.GET("/details/:shareToken", hb.ShareDetailsHandler)
		api.POST("/submit-contact/:shareToken", hb.SubmitContactHandler)
		api.GET("/personal-details/:personalToken", hb.PersonalDetailsHandler)
		api.POST("/submit-personal-contact/:personalToken", hb.SubmitPersonalContactHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		protected.POST("/generate-link/:reminderId", hb.GenerateShareLinkHandler)
		protected.POST("/generate-personal-link", hb.GeneratePersonalLinkHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterReminderRoutes(r, hb)
	RegisterShareRoutes(r, hb)
	RegisterHealthRoute(r)
}
