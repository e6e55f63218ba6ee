package models

import "time"

// Event types a reminder can be classified as.
const (
	EventBirthday    = "Birthday"
	EventAnniversary = "Anniversary"
	EventMeeting     = "Meeting"
	EventFollowUp    = "Follow-up"
	EventCustom      = "Custom"
)

// DefaultCountryCode is prepended to submitted local phone numbers when the
// submitter does not supply one.
const DefaultCountryCode = "+91"

// ValidEventType reports whether s is one of the fixed event types.
func ValidEventType(s string) bool {
	switch s {
	case EventBirthday, EventAnniversary, EventMeeting, EventFollowUp, EventCustom:
		return true
	}
	return false
}

// Contact is the embedded contact sub-record of a reminder. All fields are
// optional and independently settable.
type Contact struct {
	Name        string `bson:"name,omitempty" json:"name,omitempty"`
	CountryCode string `bson:"countryCode,omitempty" json:"countryCode,omitempty"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
	Whatsapp    string `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
}

// Reminder is a user-owned record for a dated event plus optional contact
// details. UserID is immutable after creation. ShareToken and
// ShareTokenExpiry are either both set or both absent; a token past its
// expiry is treated as absent even before it is purged.
type Reminder struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Title     string    `bson:"title" json:"title"`
	EventType string    `bson:"eventType" json:"eventType"`
	Date      time.Time `bson:"date" json:"date"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Contact   Contact   `bson:"contact,omitempty" json:"contact"`

	ShareToken       string     `bson:"shareToken,omitempty" json:"-"`
	ShareTokenExpiry *time.Time `bson:"shareTokenExpiry,omitempty" json:"shareTokenExpiry,omitempty"`

	IsCompleted bool      `bson:"isCompleted" json:"isCompleted"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
