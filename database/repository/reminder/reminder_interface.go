package reminderRepo

import (
	"time"

	"remindly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ReminderRepository defines methods for reminder data access.
type ReminderRepository interface {
	// GetByID retrieves a reminder by its unique ID, nil if absent.
	GetByID(id string) (*models.Reminder, error)
	// ListByOwner retrieves all reminders owned by the given user, date ascending.
	ListByOwner(ownerID string) ([]models.Reminder, error)
	// GetByShareToken retrieves the reminder holding the given share token,
	// provided the token has not expired at the given instant. Nil if absent
	// or expired.
	GetByShareToken(token string, now time.Time) (*models.Reminder, error)
	// Create inserts a new reminder record.
	Create(reminder *models.Reminder) error
	// UpdateWithDocument applies a partial update document to the reminder with the given ID.
	UpdateWithDocument(id string, update bson.M) error
	// Delete removes a reminder record by its ID.
	Delete(id string) error
}
