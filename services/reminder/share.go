package reminder

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"remindly/config"
	"remindly/models"
	"remindly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// shareTokenTTL is how long a per-reminder share link stays valid.
const shareTokenTTL = 24 * time.Hour

// newOpaqueToken returns 32 random bytes, hex encoded.
func newOpaqueToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// buildContact derives the stored contact sub-record from a submission.
// Phone and whatsapp are the submitted local numbers prefixed with the
// country code; whatsapp falls back to the derived phone.
func buildContact(sub ContactSubmission, fallbackName string) models.Contact {
	cc := sub.CountryCode
	if cc == "" {
		cc = models.DefaultCountryCode
	}

	var phone string
	if sub.Phone != "" {
		phone = cc + sub.Phone
	}
	whatsapp := phone
	if sub.Whatsapp != "" {
		whatsapp = cc + sub.Whatsapp
	}

	name := sub.Name
	if name == "" {
		name = fallbackName
	}

	return models.Contact{
		Name:        name,
		CountryCode: cc,
		Phone:       phone,
		Email:       sub.Email,
		Whatsapp:    whatsapp,
	}
}

// IssueShareLink mints a share token for the reminder with a 24h expiry.
// Re-issuing overwrites any previous token; there is never more than one
// active token per reminder.
func (s *DefaultReminderService) IssueShareLink(ownerID, id string) (*ShareLink, error) {
	if _, err := s.loadOwned(ownerID, id); err != nil {
		return nil, err
	}

	token, err := newOpaqueToken()
	if err != nil {
		return nil, err
	}
	expiry := s.now().Add(shareTokenTTL)

	update := bson.M{"$set": bson.M{
		"shareToken":       token,
		"shareTokenExpiry": expiry,
		"updatedAt":        time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(id, update); err != nil {
		utils.GetLogger().Error("IssueShareLink: repo failure", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to store share token: %w", err)
	}

	return &ShareLink{
		ShareLink:  config.AppConfig.FrontendURL + "/share/" + token,
		ShareToken: token,
		ExpiresAt:  expiry,
	}, nil
}

// ShareDetails returns the minimal reminder view for a valid, unexpired
// share token. Unknown and expired tokens both come back as ErrNotFound.
func (s *DefaultReminderService) ShareDetails(token string) (*ShareDetails, error) {
	rem, err := s.Repo.GetByShareToken(token, s.now())
	if err != nil {
		utils.GetLogger().Error("ShareDetails: repo failure", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch share details: %w", err)
	}
	if rem == nil {
		return nil, ErrNotFound
	}
	return &ShareDetails{
		Title:     rem.Title,
		EventType: rem.EventType,
		Date:      rem.Date,
		Notes:     rem.Notes,
	}, nil
}

// SubmitContact stores the submitted contact details on the reminder behind
// the token and clears the token, making the link single-use from the
// anonymous side. The owner may re-issue afterwards.
func (s *DefaultReminderService) SubmitContact(token string, sub ContactSubmission) (*models.Reminder, error) {
	rem, err := s.Repo.GetByShareToken(token, s.now())
	if err != nil {
		utils.GetLogger().Error("SubmitContact: repo failure", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch reminder: %w", err)
	}
	if rem == nil {
		return nil, ErrNotFound
	}

	contact := buildContact(sub, rem.Title)
	update := bson.M{
		"$set": bson.M{
			"contact":   contact,
			"updatedAt": time.Now(),
		},
		"$unset": bson.M{
			"shareToken":       "",
			"shareTokenExpiry": "",
		},
	}
	if err := s.Repo.UpdateWithDocument(rem.ID, update); err != nil {
		utils.GetLogger().Error("SubmitContact: repo failure", zap.String("id", rem.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to store contact details: %w", err)
	}

	rem.Contact = contact
	rem.ShareToken = ""
	rem.ShareTokenExpiry = nil
	return rem, nil
}

// IssuePersonalLink returns the caller's permanent contact-collection link,
// minting the token on first use. The token is never rotated: issuing twice
// returns the identical token both times.
func (s *DefaultReminderService) IssuePersonalLink(ownerID string) (*PersonalLink, error) {
	usr, err := s.UserRepo.GetByID(ownerID)
	if err != nil {
		utils.GetLogger().Error("IssuePersonalLink: repo failure", zap.String("ownerID", ownerID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, ErrNotFound
	}

	token := usr.PersonalContactToken
	if token == "" {
		token, err = newOpaqueToken()
		if err != nil {
			return nil, err
		}
		update := bson.M{"$set": bson.M{
			"personalContactToken": token,
			"updatedAt":            time.Now(),
		}}
		if err := s.UserRepo.UpdateWithDocument(ownerID, update); err != nil {
			utils.GetLogger().Error("IssuePersonalLink: repo failure", zap.String("ownerID", ownerID), zap.Error(err))
			return nil, fmt.Errorf("failed to store personal token: %w", err)
		}
	}

	return &PersonalLink{
		PersonalContactLink: config.AppConfig.FrontendURL + "/contact/" + token,
		PersonalToken:       token,
	}, nil
}

// PersonalDetails returns the owner's display info for a personal token.
func (s *DefaultReminderService) PersonalDetails(token string) (*PersonalDetails, error) {
	usr, err := s.UserRepo.GetByPersonalToken(token)
	if err != nil {
		utils.GetLogger().Error("PersonalDetails: repo failure", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, ErrNotFound
	}
	return &PersonalDetails{UserName: usr.Name, UserEmail: usr.Email}, nil
}

// SubmitPersonalContact creates a brand-new reminder owned by the token's
// user from an anonymous submission. Event fields are caller-supplied with
// defaults; the personal token stays valid afterwards.
func (s *DefaultReminderService) SubmitPersonalContact(token string, sub PersonalContactSubmission) (*models.Reminder, error) {
	usr, err := s.UserRepo.GetByPersonalToken(token)
	if err != nil {
		utils.GetLogger().Error("SubmitPersonalContact: repo failure", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, ErrNotFound
	}

	title := sub.EventTitle
	if title == "" {
		title = fmt.Sprintf("%s's Contact", sub.Name)
	}
	eventType := sub.EventType
	if eventType == "" {
		eventType = models.EventCustom
	}
	if !models.ValidEventType(eventType) {
		return nil, fmt.Errorf("%w: unknown event type %q", ErrValidation, eventType)
	}
	date := s.now()
	if sub.EventDate != nil {
		date = *sub.EventDate
	}
	notes := sub.Notes
	if notes == "" {
		notes = "Contact information collected via personal link"
	}

	rem := models.Reminder{
		ID:        uuid.New().String(),
		UserID:    usr.ID,
		Title:     title,
		EventType: eventType,
		Date:      date,
		Notes:     notes,
		Contact:   buildContact(sub.ContactSubmission, sub.Name),
	}
	if err := s.Repo.Create(&rem); err != nil {
		utils.GetLogger().Error("SubmitPersonalContact: repo failure", zap.Error(err))
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}
	return &rem, nil
}
