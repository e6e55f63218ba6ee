// File: remindly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"remindly/config"
	"remindly/database"
	reminderRepoPkg "remindly/database/repository/reminder"
	userRepoPkg "remindly/database/repository/user"
	"remindly/handlers"
	"remindly/middleware"
	"remindly/routes"
	"remindly/services/reminder"
	"remindly/services/socialauth"
	"remindly/services/user"
	"remindly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	reminderRepo := reminderRepoPkg.NewMongoReminderRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	reminderService := &reminder.DefaultReminderService{
		Repo:     reminderRepo,
		UserRepo: userRepo,
	}

	userHandler := handlers.NewUserHandler(userService)
	oauthHandler := handlers.NewOAuthHandler(userService, socialauth.NewGoogleOAuthConfig())
	reminderHandler := handlers.NewReminderHandler(reminderService)
	shareHandler := handlers.NewShareHandler(reminderService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
		GetProfileHandler:       userHandler.GetProfileHandler,
		UpdateProfileHandler:    userHandler.UpdateProfileHandler,
		LogoutHandler:           userHandler.LogoutHandler,

		// OAuth endpoints.
		GoogleLoginHandler:    oauthHandler.GoogleLoginHandler,
		GoogleCallbackHandler: oauthHandler.GoogleCallbackHandler,
		OAuthLogoutHandler:    oauthHandler.OAuthLogoutHandler,

		// Reminder endpoints.
		ListRemindersHandler:  reminderHandler.ListRemindersHandler,
		CreateReminderHandler: reminderHandler.CreateReminderHandler,
		GetReminderHandler:    reminderHandler.GetReminderHandler,
		UpdateReminderHandler: reminderHandler.UpdateReminderHandler,
		DeleteReminderHandler: reminderHandler.DeleteReminderHandler,

		// Share-link endpoints.
		GenerateShareLinkHandler:     shareHandler.GenerateShareLinkHandler,
		ShareDetailsHandler:          shareHandler.ShareDetailsHandler,
		SubmitContactHandler:         shareHandler.SubmitContactHandler,
		GeneratePersonalLinkHandler:  shareHandler.GeneratePersonalLinkHandler,
		PersonalDetailsHandler:       shareHandler.PersonalDetailsHandler,
		SubmitPersonalContactHandler: shareHandler.SubmitPersonalContactHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
