package user

import (
	"context"
	"fmt"
	"strings"

	"remindly/models"
	"remindly/services/socialauth"
	"remindly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser verifies an email+password pair. Accounts created through
// Google sign-in carry no password hash and fail here like any other bad
// credential.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(strings.ToLower(email))
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil || userRec.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return authResponse(userRec)
}

// AuthenticateGoogle signs a validated Google identity in. Lookup order:
// google id, then email (linking an existing local account), then a fresh
// account with no password.
func (s *DefaultUserService) AuthenticateGoogle(info socialauth.UserInfo) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByGoogleID(info.Subject)
	if err != nil {
		utils.GetLogger().Error("AuthenticateGoogle: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if userRec == nil {
		userRec, err = s.Repo.GetByEmail(info.Email)
		if err != nil {
			utils.GetLogger().Error("AuthenticateGoogle: failed to fetch user by email", zap.Error(err))
			return nil, fmt.Errorf("authentication failed, please try again")
		}
		if userRec != nil {
			// Existing local account: attach the Google identity.
			update := bson.M{"$set": bson.M{"googleId": info.Subject}}
			if err := s.Repo.UpdateWithDocument(userRec.ID, update); err != nil {
				utils.GetLogger().Error("AuthenticateGoogle: failed to link account", zap.Error(err))
				return nil, fmt.Errorf("authentication failed, please try again")
			}
			userRec.GoogleID = info.Subject
		}
	}

	if userRec == nil {
		usr := models.User{
			ID:       uuid.New().String(),
			GoogleID: info.Subject,
			Name:     info.Name,
			Email:    info.Email,
		}
		if err := s.Repo.Create(&usr); err != nil {
			utils.GetLogger().Error("AuthenticateGoogle: failed to create user", zap.Error(err))
			return nil, fmt.Errorf("authentication failed, please try again")
		}
		userRec = &usr
	}

	return authResponse(userRec)
}

// RevokeAuthToken clears the caller's auth-cache entry. Advisory: the cache
// is a fast path for the auth gate, not a session store.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		return nil
	}
	cacheKey := utils.AuthCachePrefix + userID
	if err := authCache.Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Error("RevokeAuthToken: failed to clear auth cache", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
