package reminder

import (
	"errors"
	"testing"
	"time"

	"remindly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(clock *time.Time) (*DefaultReminderService, *fakeReminderRepo, *fakeUserRepo) {
	repo := newFakeReminderRepo()
	users := newFakeUserRepo()
	svc := &DefaultReminderService{
		Repo:     repo,
		UserRepo: users,
		Now:      func() time.Time { return *clock },
	}
	return svc, repo, users
}

func seedReminder(t *testing.T, repo *fakeReminderRepo, ownerID, title string) *models.Reminder {
	t.Helper()
	rem := &models.Reminder{
		ID:        "rem-" + title,
		UserID:    ownerID,
		Title:     title,
		EventType: models.EventBirthday,
		Date:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(rem))
	return rem
}

func TestIssueShareLink_SetsTokenAndExpiry(t *testing.T) {
	clock := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	svc, repo, _ := newTestService(&clock)
	rem := seedReminder(t, repo, "owner-a", "Ana's Birthday")

	link, err := svc.IssueShareLink("owner-a", rem.ID)
	require.NoError(t, err)

	assert.Len(t, link.ShareToken, 64) // 32 random bytes, hex encoded
	assert.Equal(t, clock.Add(24*time.Hour), link.ExpiresAt)
	assert.Contains(t, link.ShareLink, "/share/"+link.ShareToken)

	stored := repo.reminders[rem.ID]
	assert.Equal(t, link.ShareToken, stored.ShareToken)
	require.NotNil(t, stored.ShareTokenExpiry)
	assert.Equal(t, link.ExpiresAt, *stored.ShareTokenExpiry)
}

func TestIssueShareLink_OwnershipAndExistence(t *testing.T) {
	clock := time.Now()
	svc, repo, _ := newTestService(&clock)
	rem := seedReminder(t, repo, "owner-a", "Ana's Birthday")

	_, err := svc.IssueShareLink("owner-b", rem.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.IssueShareLink("owner-a", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestShareDetails_AcceptedUntilExpiry(t *testing.T) {
	clock := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	svc, repo, _ := newTestService(&clock)
	rem := seedReminder(t, repo, "owner-a", "Ana's Birthday")

	link, err := svc.IssueShareLink("owner-a", rem.ID)
	require.NoError(t, err)

	// Valid immediately and just before the 24h boundary.
	details, err := svc.ShareDetails(link.ShareToken)
	require.NoError(t, err)
	assert.Equal(t, "Ana's Birthday", details.Title)
	assert.Equal(t, models.EventBirthday, details.EventType)

	clock = clock.Add(24*time.Hour - time.Second)
	_, err = svc.ShareDetails(link.ShareToken)
	require.NoError(t, err)

	// Rejected at the boundary and beyond, indistinguishable from unknown.
	clock = clock.Add(time.Second)
	_, err = svc.ShareDetails(link.ShareToken)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ShareDetails("no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitContact_PopulatesContactAndClearsToken(t *testing.T) {
	clock := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	svc, repo, _ := newTestService(&clock)
	rem := seedReminder(t, repo, "owner-a", "Ana's Birthday")

	link, err := svc.IssueShareLink("owner-a", rem.ID)
	require.NoError(t, err)

	updated, err := svc.SubmitContact(link.ShareToken, ContactSubmission{
		Name:        "Ana",
		Phone:       "5551234",
		CountryCode: "+1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana", updated.Contact.Name)
	assert.Equal(t, "+15551234", updated.Contact.Phone)
	assert.Equal(t, "+15551234", updated.Contact.Whatsapp)
	assert.Equal(t, "+1", updated.Contact.CountryCode)

	stored := repo.reminders[rem.ID]
	assert.Empty(t, stored.ShareToken)
	assert.Nil(t, stored.ShareTokenExpiry)

	// The token is single-use from the anonymous side.
	_, err = svc.SubmitContact(link.ShareToken, ContactSubmission{Name: "Ana"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitContact_WhatsappDistinctFromPhone(t *testing.T) {
	clock := time.Now()
	svc, repo, _ := newTestService(&clock)
	rem := seedReminder(t, repo, "owner-a", "Ana's Birthday")

	link, err := svc.IssueShareLink("owner-a", rem.ID)
	require.NoError(t, err)

	updated, err := svc.SubmitContact(link.ShareToken, ContactSubmission{
		Phone:       "5551234",
		Whatsapp:    "5559999",
		CountryCode: "+44",
	})
	require.NoError(t, err)

	assert.Equal(t, "+445551234", updated.Contact.Phone)
	assert.Equal(t, "+445559999", updated.Contact.Whatsapp)
	// Name falls back to the reminder title when not submitted.
	assert.Equal(t, "Ana's Birthday", updated.Contact.Name)
}

func TestSubmitContact_DefaultCountryCode(t *testing.T) {
	clock := time.Now()
	svc, repo, _ := newTestService(&clock)
	rem := seedReminder(t, repo, "owner-a", "Ana's Birthday")

	link, err := svc.IssueShareLink("owner-a", rem.ID)
	require.NoError(t, err)

	updated, err := svc.SubmitContact(link.ShareToken, ContactSubmission{Phone: "5551234"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCountryCode+"5551234", updated.Contact.Phone)
}

func TestIssueShareLink_ReissueInvalidatesPreviousToken(t *testing.T) {
	clock := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	svc, repo, _ := newTestService(&clock)
	rem := seedReminder(t, repo, "owner-a", "Ana's Birthday")

	first, err := svc.IssueShareLink("owner-a", rem.ID)
	require.NoError(t, err)
	second, err := svc.IssueShareLink("owner-a", rem.ID)
	require.NoError(t, err)
	require.NotEqual(t, first.ShareToken, second.ShareToken)

	_, err = svc.ShareDetails(first.ShareToken)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ShareDetails(second.ShareToken)
	assert.NoError(t, err)
}

func TestIssuePersonalLink_Idempotent(t *testing.T) {
	clock := time.Now()
	svc, _, users := newTestService(&clock)
	require.NoError(t, users.Create(&models.User{ID: "user-a", Name: "Alice", Email: "alice@example.com"}))

	first, err := svc.IssuePersonalLink("user-a")
	require.NoError(t, err)
	assert.Len(t, first.PersonalToken, 64)

	second, err := svc.IssuePersonalLink("user-a")
	require.NoError(t, err)
	assert.Equal(t, first.PersonalToken, second.PersonalToken)
	assert.Equal(t, first.PersonalContactLink, second.PersonalContactLink)
}

func TestPersonalDetails(t *testing.T) {
	clock := time.Now()
	svc, _, users := newTestService(&clock)
	require.NoError(t, users.Create(&models.User{ID: "user-a", Name: "Alice", Email: "alice@example.com"}))

	link, err := svc.IssuePersonalLink("user-a")
	require.NoError(t, err)

	details, err := svc.PersonalDetails(link.PersonalToken)
	require.NoError(t, err)
	assert.Equal(t, "Alice", details.UserName)
	assert.Equal(t, "alice@example.com", details.UserEmail)

	_, err = svc.PersonalDetails("unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitPersonalContact_CreatesReminderWithDefaults(t *testing.T) {
	clock := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc, repo, users := newTestService(&clock)
	require.NoError(t, users.Create(&models.User{ID: "user-a", Name: "Alice", Email: "alice@example.com"}))

	link, err := svc.IssuePersonalLink("user-a")
	require.NoError(t, err)

	rem, err := svc.SubmitPersonalContact(link.PersonalToken, PersonalContactSubmission{
		ContactSubmission: ContactSubmission{
			Name:        "Bob",
			Phone:       "7001122",
			CountryCode: "+1",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "user-a", rem.UserID)
	assert.Equal(t, "Bob's Contact", rem.Title)
	assert.Equal(t, models.EventCustom, rem.EventType)
	assert.Equal(t, clock, rem.Date)
	assert.Equal(t, "+17001122", rem.Contact.Phone)
	assert.Contains(t, repo.reminders, rem.ID)

	// The personal token survives submissions.
	_, err = svc.PersonalDetails(link.PersonalToken)
	assert.NoError(t, err)
}

func TestSubmitPersonalContact_SuppliedEventFields(t *testing.T) {
	clock := time.Now()
	svc, _, users := newTestService(&clock)
	require.NoError(t, users.Create(&models.User{ID: "user-a", Name: "Alice", Email: "alice@example.com"}))

	link, err := svc.IssuePersonalLink("user-a")
	require.NoError(t, err)

	date := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
	rem, err := svc.SubmitPersonalContact(link.PersonalToken, PersonalContactSubmission{
		ContactSubmission: ContactSubmission{Name: "Bob"},
		EventTitle:        "Bob's Anniversary",
		EventType:         models.EventAnniversary,
		EventDate:         &date,
		Notes:             "met at the conference",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bob's Anniversary", rem.Title)
	assert.Equal(t, models.EventAnniversary, rem.EventType)
	assert.Equal(t, date, rem.Date)
	assert.Equal(t, "met at the conference", rem.Notes)
}

func TestSubmitPersonalContact_UnknownToken(t *testing.T) {
	clock := time.Now()
	svc, _, _ := newTestService(&clock)

	_, err := svc.SubmitPersonalContact("unknown", PersonalContactSubmission{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, errors.Is(err, ErrNotFound))
}
