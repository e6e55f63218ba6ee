package socialauth

import (
	"crypto/rand"
	"encoding/base64"

	"remindly/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// NewGoogleOAuthConfig builds the oauth2 config for the Google sign-in
// redirect flow. The redirect URL must match the one registered in the
// Google Cloud console.
func NewGoogleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.AppConfig.GoogleClientID,
		ClientSecret: config.AppConfig.GoogleClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  config.AppConfig.BaseURL + "/api/auth/google/callback",
		Scopes:       []string{"openid", "email", "profile"},
	}
}

// StateToken returns a random state value for the OAuth redirect round trip.
func StateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
