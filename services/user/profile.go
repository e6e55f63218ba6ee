package user

import (
	"fmt"
	"strings"
	"time"

	"remindly/models"
	"remindly/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetProfile retrieves the caller's account. The password hash never leaves
// the repository layer.
func (s *DefaultUserService) GetProfile(userID string) (*models.User, error) {
	projection := bson.M{"passwordHash": 0}
	usr, err := s.Repo.GetByIDWithProjection(userID, projection)
	if err != nil {
		utils.GetLogger().Error("GetProfile: failed to fetch user", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if usr == nil {
		return nil, ErrNotFound
	}
	return usr, nil
}

// UpdateProfile applies a partial merge: only supplied fields change. A new
// password, when present, is re-hashed; presence is the only requirement.
func (s *DefaultUserService) UpdateProfile(userID string, req ProfileUpdateRequest) (*models.User, error) {
	existing, err := s.Repo.GetByID(userID)
	if err != nil {
		utils.GetLogger().Error("UpdateProfile: failed to fetch user", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	updateFields := bson.M{
		"updatedAt": time.Now(),
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		updateFields["name"] = *req.Name
	}
	if req.Email != nil {
		if *req.Email == "" {
			return nil, fmt.Errorf("%w: email cannot be empty", ErrValidation)
		}
		updateFields["email"] = strings.ToLower(*req.Email)
	}
	if req.Profile != nil {
		updateFields["profile"] = *req.Profile
	}
	if req.Permissions != nil {
		updateFields["permissions"] = *req.Permissions
	}
	if req.Password != nil {
		if *req.Password == "" {
			return nil, fmt.Errorf("%w: password cannot be empty", ErrValidation)
		}
		newHash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.GetLogger().Error("UpdateProfile: failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("failed to update password")
		}
		updateFields["passwordHash"] = string(newHash)
	}

	if err := s.Repo.UpdateWithDocument(userID, bson.M{"$set": updateFields}); err != nil {
		utils.GetLogger().Error("UpdateProfile: failed to update user", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.GetProfile(userID)
}
