package models

import "time"

// SocialLinks holds optional social profile URLs.
type SocialLinks struct {
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
}

// Profile holds free-form personal and business details. All fields are
// optional and carry no cross-field invariants.
type Profile struct {
	Birthday          *time.Time  `bson:"birthday,omitempty" json:"birthday,omitempty"`
	Anniversary       *time.Time  `bson:"anniversary,omitempty" json:"anniversary,omitempty"`
	SpouseName        string      `bson:"spouseName,omitempty" json:"spouseName,omitempty"`
	SpouseBirthday    *time.Time  `bson:"spouseBirthday,omitempty" json:"spouseBirthday,omitempty"`
	CompanyName       string      `bson:"companyName,omitempty" json:"companyName,omitempty"`
	IncorporationDate *time.Time  `bson:"incorporationDate,omitempty" json:"incorporationDate,omitempty"`
	OfficeAddress     string      `bson:"officeAddress,omitempty" json:"officeAddress,omitempty"`
	SocialLinks       SocialLinks `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
}

// Permissions are stored booleans the client toggles. Nothing server-side
// consults them; they round-trip through the profile endpoint only.
type Permissions struct {
	GoogleContacts bool `bson:"googleContacts" json:"googleContacts"`
	GoogleCalendar bool `bson:"googleCalendar" json:"googleCalendar"`
	Notifications  bool `bson:"notifications" json:"notifications"`
}

// User represents an account. PasswordHash is absent for accounts created
// through Google sign-in; such accounts cannot log in with a password.
type User struct {
	ID           string      `bson:"id" json:"id"`
	GoogleID     string      `bson:"googleId,omitempty" json:"-"`
	Name         string      `bson:"name" json:"name"`
	Email        string      `bson:"email" json:"email"`
	PasswordHash string      `bson:"passwordHash,omitempty" json:"-"`
	Profile      Profile     `bson:"profile,omitempty" json:"profile"`
	Permissions  Permissions `bson:"permissions" json:"permissions"`

	// PersonalContactToken is the permanent contact-collection link token.
	// Minted at most once per user, never rotated.
	PersonalContactToken string `bson:"personalContactToken,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
