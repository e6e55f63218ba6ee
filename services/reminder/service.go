package reminder

import (
	"time"

	reminderRepo "remindly/database/repository/reminder"
	userRepo "remindly/database/repository/user"
	"remindly/models"
)

// ReminderService defines business logic for reminder operations, including
// the share-link issuer.
type ReminderService interface {
	// ListReminders returns all reminders owned by the caller, date ascending.
	ListReminders(ownerID string) ([]models.Reminder, error)
	// CreateReminder persists a new reminder owned by the caller.
	CreateReminder(ownerID string, req CreateReminderRequest) (*models.Reminder, error)
	// GetReminder retrieves one reminder, enforcing ownership.
	GetReminder(ownerID, id string) (*models.Reminder, error)
	// UpdateReminder applies a partial update, enforcing ownership.
	UpdateReminder(ownerID, id string, req UpdateReminderRequest) (*models.Reminder, error)
	// DeleteReminder removes a reminder, enforcing ownership.
	DeleteReminder(ownerID, id string) error

	// IssueShareLink mints a fresh share token on the reminder, overwriting
	// any previous one, with a 24h expiry.
	IssueShareLink(ownerID, id string) (*ShareLink, error)
	// ShareDetails returns the minimal reminder view for a valid share token.
	ShareDetails(token string) (*ShareDetails, error)
	// SubmitContact fills the reminder's contact fields via a valid share
	// token and clears the token.
	SubmitContact(token string, sub ContactSubmission) (*models.Reminder, error)

	// IssuePersonalLink mints the caller's permanent contact-collection
	// token. Idempotent: repeated calls return the same token.
	IssuePersonalLink(ownerID string) (*PersonalLink, error)
	// PersonalDetails returns the owner's display info for a personal token.
	PersonalDetails(token string) (*PersonalDetails, error)
	// SubmitPersonalContact creates a new reminder under the token's owner
	// from an anonymous submission.
	SubmitPersonalContact(token string, sub PersonalContactSubmission) (*models.Reminder, error)
}

// DefaultReminderService is the production implementation.
type DefaultReminderService struct {
	Repo     reminderRepo.ReminderRepository
	UserRepo userRepo.UserRepository

	// Now is the clock used for share-token expiry checks. Defaults to
	// time.Now when nil.
	Now func() time.Time
}

func (s *DefaultReminderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateReminderRequest carries the fields accepted on creation.
type CreateReminderRequest struct {
	Title     string          `json:"title"`
	EventType string          `json:"eventType"`
	Date      *time.Time      `json:"date"`
	Notes     string          `json:"notes"`
	Contact   *models.Contact `json:"contact"`
}

// UpdateReminderRequest carries a partial update; only non-nil fields change.
type UpdateReminderRequest struct {
	Title       *string         `json:"title"`
	EventType   *string         `json:"eventType"`
	Date        *time.Time      `json:"date"`
	Notes       *string         `json:"notes"`
	Contact     *models.Contact `json:"contact"`
	IsCompleted *bool           `json:"isCompleted"`
}

// ContactSubmission is what an anonymous visitor posts through a share link.
type ContactSubmission struct {
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Whatsapp    string `json:"whatsapp"`
}

// PersonalContactSubmission additionally lets the visitor describe the event
// the owner should be reminded of.
type PersonalContactSubmission struct {
	ContactSubmission
	EventTitle string     `json:"eventTitle"`
	EventType  string     `json:"eventType"`
	EventDate  *time.Time `json:"eventDate"`
	Notes      string     `json:"notes"`
}

// ShareLink is the response to a per-reminder share issuance.
type ShareLink struct {
	ShareLink  string    `json:"shareLink"`
	ShareToken string    `json:"shareToken"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// ShareDetails is the minimal reminder view shown on the share page.
type ShareDetails struct {
	Title     string    `json:"title"`
	EventType string    `json:"eventType"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes,omitempty"`
}

// PersonalLink is the response to a personal-link issuance.
type PersonalLink struct {
	PersonalContactLink string `json:"personalContactLink"`
	PersonalToken       string `json:"personalToken"`
}

// PersonalDetails is the owner's display info on the personal contact page.
type PersonalDetails struct {
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// authorize permits the operation only when the actor owns the reminder.
// Every read/update/delete/share path goes through this single predicate.
func authorize(actorID string, rem *models.Reminder) error {
	if rem.UserID != actorID {
		return ErrNotOwner
	}
	return nil
}
