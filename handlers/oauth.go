package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"remindly/config"
	"remindly/services/socialauth"
	"remindly/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const oauthStateCookie = "oauth_state"

// OAuthHandler drives the Google sign-in redirect flow.
type OAuthHandler struct {
	UserService user.UserService
	Google      *oauth2.Config
}

// NewOAuthHandler creates an OAuthHandler.
func NewOAuthHandler(svc user.UserService, google *oauth2.Config) *OAuthHandler {
	return &OAuthHandler{UserService: svc, Google: google}
}

// GoogleLoginHandler handles GET /api/auth/google: sends the browser to the
// Google consent screen with a fresh state token.
func (h *OAuthHandler) GoogleLoginHandler(c *gin.Context) {
	state, err := socialauth.StateToken()
	if err != nil {
		getLogger(c).Error("Failed to generate OAuth state", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.Google.AuthCodeURL(state))
}

// GoogleCallbackHandler handles GET /api/auth/google/callback: verifies the
// state, exchanges the code, validates the ID token and signs the user in.
// The browser lands back on the frontend with the user summary encoded in
// the query, the same shape a password login returns.
func (h *OAuthHandler) GoogleCallbackHandler(c *gin.Context) {
	logger := getLogger(c)
	failureURL := config.AppConfig.FrontendURL + "/login"

	state := c.Query("state")
	cookieState, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != cookieState {
		logger.Warn("OAuth state mismatch")
		c.Redirect(http.StatusTemporaryRedirect, failureURL)
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusTemporaryRedirect, failureURL)
		return
	}

	token, err := h.Google.Exchange(c.Request.Context(), code)
	if err != nil {
		logger.Error("OAuth code exchange failed", zap.Error(err))
		c.Redirect(http.StatusTemporaryRedirect, failureURL)
		return
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		logger.Error("OAuth exchange returned no id_token")
		c.Redirect(http.StatusTemporaryRedirect, failureURL)
		return
	}

	info, err := socialauth.ValidateGoogleToken(idToken, h.Google.ClientID)
	if err != nil {
		logger.Error("Google ID token validation failed", zap.Error(err))
		c.Redirect(http.StatusTemporaryRedirect, failureURL)
		return
	}

	resp, err := h.UserService.AuthenticateGoogle(*info)
	if err != nil {
		logger.Error("Google sign-in failed", zap.Error(err))
		c.Redirect(http.StatusTemporaryRedirect, failureURL)
		return
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		logger.Error("Failed to encode user info", zap.Error(err))
		c.Redirect(http.StatusTemporaryRedirect, failureURL)
		return
	}
	redirect := config.AppConfig.FrontendURL + "/auth/google/callback?userInfo=" + url.QueryEscape(string(payload))
	c.Redirect(http.StatusTemporaryRedirect, redirect)
}

// OAuthLogoutHandler handles GET /api/auth/logout.
func (h *OAuthHandler) OAuthLogoutHandler(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, config.AppConfig.FrontendURL+"/")
}
