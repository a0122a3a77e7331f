package notification

import (
	"FoodBridge/domain"
	"FoodBridge/entities"
	"FoodBridge/internal/testutil"
	"FoodBridge/pkg/settings"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendMail(toEmail string, subject string, body string) error {
	return m.Called(toEmail, subject, body).Error(0)
}

type mockUserLookup struct {
	mock.Mock
}

func (m *mockUserLookup) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(id)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

type fixture struct {
	svc      *notificationService
	settings settings.SettingsService
	now      time.Time
}

func newFixture(t *testing.T, users UserLookup, mailer *mockMailer) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	settingsService := settings.NewSettingsService(settings.NewSettingsRepository(db))

	var svc NotificationService
	if mailer == nil {
		svc = NewNotificationService(NewNotificationRepository(db), settingsService, users, nil)
	} else {
		svc = NewNotificationService(NewNotificationRepository(db), settingsService, users, mailer)
	}

	f := &fixture{
		svc:      svc.(*notificationService),
		settings: settingsService,
		now:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	f.svc.now = func() time.Time { return f.now }
	return f
}

func (f *fixture) disableEmail(t *testing.T, userID string) {
	t.Helper()
	_, err := f.settings.UpdateSetting(context.Background(), userID, domain.SettingsSectionNotifications, domain.SettingEmailNotifications, false)
	require.NoError(t, err)
}

func TestAddNotification(t *testing.T) {
	f := newFixture(t, nil, nil)
	userID := uuid.NewString()

	n, err := f.svc.AddNotification(context.Background(), userID, domain.AddNotificationRequest{
		Type:     domain.NotificationWarning,
		Title:    "Food Expiring Soon",
		Message:  "Milk expires tomorrow",
		Duration: 4 * time.Second,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, 4000, n.DurationMs)
	assert.Equal(t, f.now.Add(4*time.Second), n.ExpiresAt.UTC())

	active, err := f.svc.GetNotifications(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Food Expiring Soon", active[0].Title)
}

func TestAddNotification_DefaultDuration(t *testing.T) {
	f := newFixture(t, nil, nil)

	n, err := f.svc.AddNotification(context.Background(), uuid.NewString(), domain.AddNotificationRequest{
		Type: domain.NotificationInfo, Title: "hi", Message: "there",
	})
	require.NoError(t, err)
	assert.Equal(t, int(DefaultDuration/time.Millisecond), n.DurationMs)
}

func TestAddNotification_Rejects(t *testing.T) {
	f := newFixture(t, nil, nil)

	_, err := f.svc.AddNotification(context.Background(), uuid.NewString(), domain.AddNotificationRequest{Type: "fatal"})
	assert.ErrorIs(t, err, domain.ErrInvalidNotificationType)

	_, err = f.svc.AddNotification(context.Background(), "not-a-uuid", domain.AddNotificationRequest{Type: domain.NotificationInfo})
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	userID := uuid.NewString()
	_, err = f.svc.AddNotification(context.Background(), userID, domain.AddNotificationRequest{
		Type: domain.NotificationInfo, Title: "t", Message: "m", Duration: -time.Second,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidNotificationDuration)

	active, err := f.svc.GetNotifications(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestAddNotification_Muted(t *testing.T) {
	f := newFixture(t, nil, nil)
	userID := uuid.NewString()

	_, err := f.settings.UpdateSetting(context.Background(), userID, domain.SettingsSectionNotifications, domain.SettingPushNotifications, false)
	require.NoError(t, err)

	_, err = f.svc.AddNotification(context.Background(), userID, domain.AddNotificationRequest{
		Type: domain.NotificationSuccess, Title: "t", Message: "m",
	})
	assert.ErrorIs(t, err, domain.ErrNotificationsMuted)

	active, err := f.svc.GetNotifications(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestGetNotifications_HidesExpired(t *testing.T) {
	f := newFixture(t, nil, nil)
	userID := uuid.NewString()
	ctx := context.Background()

	_, err := f.svc.AddNotification(ctx, userID, domain.AddNotificationRequest{
		Type: domain.NotificationInfo, Title: "short", Message: "m", Duration: 3 * time.Second,
	})
	require.NoError(t, err)
	_, err = f.svc.AddNotification(ctx, userID, domain.AddNotificationRequest{
		Type: domain.NotificationError, Title: "long", Message: "m", Duration: 6 * time.Second,
	})
	require.NoError(t, err)

	f.now = f.now.Add(4 * time.Second)
	active, err := f.svc.GetNotifications(ctx, userID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "long", active[0].Title)

	f.now = f.now.Add(2 * time.Second)
	active, err = f.svc.GetNotifications(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestDismissNotification(t *testing.T) {
	f := newFixture(t, nil, nil)
	userID := uuid.NewString()
	ctx := context.Background()

	n, err := f.svc.AddNotification(ctx, userID, domain.AddNotificationRequest{
		Type: domain.NotificationSuccess, Title: "t", Message: "m",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.DismissNotification(ctx, n.ID, uuid.NewString()), domain.ErrNotificationNotFound)
	assert.ErrorIs(t, f.svc.DismissNotification(ctx, "bad", userID), domain.ErrParseUUID)

	require.NoError(t, f.svc.DismissNotification(ctx, n.ID, userID))

	active, err := f.svc.GetNotifications(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestAddNotification_SendsMail(t *testing.T) {
	users := new(mockUserLookup)
	mailer := new(mockMailer)
	f := newFixture(t, users, mailer)
	userID := uuid.NewString()

	users.On("GetUserByID", userID).Return(&entities.User{Email: "ngo@example.com"}, nil)
	mailer.On("SendMail", "ngo@example.com", "[FoodBridge] Pickup <done>", mock.MatchedBy(func(body string) bool {
		return body == "<h3>Pickup &lt;done&gt;</h3><p>ok</p>"
	})).Return(nil)

	_, err := f.svc.AddNotification(context.Background(), userID, domain.AddNotificationRequest{
		Type: domain.NotificationSuccess, Title: "Pickup <done>", Message: "ok",
	})
	require.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestAddNotification_MailFailureIsNotFatal(t *testing.T) {
	users := new(mockUserLookup)
	mailer := new(mockMailer)
	f := newFixture(t, users, mailer)
	userID := uuid.NewString()

	users.On("GetUserByID", userID).Return(&entities.User{Email: "a@b.c"}, nil)
	mailer.On("SendMail", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	_, err := f.svc.AddNotification(context.Background(), userID, domain.AddNotificationRequest{
		Type: domain.NotificationInfo, Title: "t", Message: "m",
	})
	assert.NoError(t, err)
}

func TestAddNotification_EmailSettingOff(t *testing.T) {
	users := new(mockUserLookup)
	mailer := new(mockMailer)
	f := newFixture(t, users, mailer)
	userID := uuid.NewString()
	f.disableEmail(t, userID)

	_, err := f.svc.AddNotification(context.Background(), userID, domain.AddNotificationRequest{
		Type: domain.NotificationInfo, Title: "t", Message: "m",
	})
	require.NoError(t, err)
	mailer.AssertNotCalled(t, "SendMail", mock.Anything, mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "GetUserByID", mock.Anything)
}
