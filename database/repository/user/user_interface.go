package userRepo

import (
	"remindly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, nil if absent.
	GetByEmail(email string) (*models.User, error)
	// GetByGoogleID retrieves a user by its Google identity id, nil if absent.
	GetByGoogleID(googleID string) (*models.User, error)
	// GetByPersonalToken retrieves a user by its personal contact token, nil if absent.
	GetByPersonalToken(token string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateWithDocument applies a partial update document to the user with the given ID.
	UpdateWithDocument(id string, update bson.M) error
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
}
