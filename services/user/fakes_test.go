package user

import (
	"fmt"
	"time"

	"remindly/models"

	"go.mongodb.org/mongo-driver/bson"
)

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
