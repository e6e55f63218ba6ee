package reminder

import (
	"fmt"
	"sort"
	"time"

	"remindly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeReminderRepo is an in-memory ReminderRepository for tests. Update
// documents are interpreted for the fields the service actually writes.
type fakeReminderRepo struct {
	reminders map[string]*models.Reminder
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{reminders: make(map[string]*models.Reminder)}
}

func (f *fakeReminderRepo) GetByID(id string) (*models.Reminder, error) {
	rem, ok := f.reminders[id]
	if !ok {
		return nil, nil
	}
	cp := *rem
	return &cp, nil
}

func (f *fakeReminderRepo) ListByOwner(ownerID string) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, rem := range f.reminders {
		if rem.UserID == ownerID {
			out = append(out, *rem)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeReminderRepo) GetByShareToken(token string, now time.Time) (*models.Reminder, error) {
	for _, rem := range f.reminders {
		if rem.ShareToken == token && rem.ShareTokenExpiry != nil && rem.ShareTokenExpiry.After(now) {
			cp := *rem
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeReminderRepo) Create(reminder *models.Reminder) error {
	now := time.Now()
	reminder.CreatedAt = now
	reminder.UpdatedAt = now
	cp := *reminder
	f.reminders[reminder.ID] = &cp
	return nil
}

func (f *fakeReminderRepo) UpdateWithDocument(id string, update bson.M) error {
	rem, ok := f.reminders[id]
	if !ok {
		return fmt.Errorf("reminder with id %s not found", id)
	}
	if set, ok := update["$set"].(bson.M); ok {
		for key, val := range set {
			switch key {
			case "title":
				rem.Title = val.(string)
			case "eventType":
				rem.EventType = val.(string)
			case "date":
				rem.Date = val.(time.Time)
			case "notes":
				rem.Notes = val.(string)
			case "contact":
				rem.Contact = val.(models.Contact)
			case "isCompleted":
				rem.IsCompleted = val.(bool)
			case "shareToken":
				rem.ShareToken = val.(string)
			case "shareTokenExpiry":
				expiry := val.(time.Time)
				rem.ShareTokenExpiry = &expiry
			case "updatedAt":
				rem.UpdatedAt = val.(time.Time)
			default:
				return fmt.Errorf("fake repo: unexpected $set key %q", key)
			}
		}
	}
	if unset, ok := update["$unset"].(bson.M); ok {
		for key := range unset {
			switch key {
			case "shareToken":
				rem.ShareToken = ""
			case "shareTokenExpiry":
				rem.ShareTokenExpiry = nil
			default:
				return fmt.Errorf("fake repo: unexpected $unset key %q", key)
			}
		}
	}
	return nil
}

func (f *fakeReminderRepo) Delete(id string) error {
	if _, ok := f.reminders[id]; !ok {
		return fmt.Errorf("reminder with id %s not found", id)
	}
	delete(f.reminders, id)
	return nil
}

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	usr, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *usr
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, usr := range f.users {
		if usr.Email == email {
			cp := *usr
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByGoogleID(googleID string) (*models.User, error) {
	for _, usr := range f.users {
		if usr.GoogleID == googleID {
			cp := *usr
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByPersonalToken(token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	for _, usr := range f.users {
		if usr.PersonalContactToken == token {
			cp := *usr
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdateWithDocument(id string, update bson.M) error {
	usr, ok := f.users[id]
	if !ok {
		return fmt.Errorf("user with id %s not found", id)
	}
	if set, ok := update["$set"].(bson.M); ok {
		for key, val := range set {
			switch key {
			case "name":
				usr.Name = val.(string)
			case "email":
				usr.Email = val.(string)
			case "googleId":
				usr.GoogleID = val.(string)
			case "passwordHash":
				usr.PasswordHash = val.(string)
			case "profile":
				usr.Profile = val.(models.Profile)
			case "permissions":
				usr.Permissions = val.(models.Permissions)
			case "personalContactToken":
				usr.PersonalContactToken = val.(string)
			case "updatedAt":
				usr.UpdatedAt = val.(time.Time)
			default:
				return fmt.Errorf("fake repo: unexpected $set key %q", key)
			}
		}
	}
	return nil
}

func (f *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	usr, err := f.GetByID(id)
	if err != nil || usr == nil {
		return usr, err
	}
	if projection != nil {
		if hide, ok := projection["passwordHash"]; ok && hide == 0 {
			usr.PasswordHash = ""
		}
	}
	return usr, nil
}
