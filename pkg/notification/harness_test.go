package notification

import (
	"FoodBridge/domain"
	"FoodBridge/internal/testutil"
	"FoodBridge/pkg/settings"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockNotificationService struct {
	mock.Mock
	mu    sync.Mutex
	added []domain.AddNotificationRequest
}

func (m *mockNotificationService) AddNotification(ctx context.Context, userID string, req domain.AddNotificationRequest) (*domain.Notification, error) {
	m.mu.Lock()
	m.added = append(m.added, req)
	m.mu.Unlock()
	args := m.Called(userID, req.Type)
	n, _ := args.Get(0).(*domain.Notification)
	return n, args.Error(1)
}

func (m *mockNotificationService) GetNotifications(ctx context.Context, userID string) ([]*domain.Notification, error) {
	args := m.Called(userID)
	n, _ := args.Get(0).([]*domain.Notification)
	return n, args.Error(1)
}

func (m *mockNotificationService) DismissNotification(ctx context.Context, id string, userID string) error {
	return m.Called(id, userID).Error(0)
}

func (m *mockNotificationService) titles() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var titles []string
	for _, r := range m.added {
		titles = append(titles, r.Title)
	}
	return titles
}

type recordedWaits struct {
	mu    sync.Mutex
	waits []time.Duration
}

func (r *recordedWaits) wait(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	r.waits = append(r.waits, d)
	r.mu.Unlock()
	return nil
}

func TestTestSequence(t *testing.T) {
	seq := TestSequence()
	require.Len(t, seq, 4)

	wantTypes := []string{domain.NotificationSuccess, domain.NotificationError, domain.NotificationWarning, domain.NotificationInfo}
	wantDelays := []int64{0, 500, 1000, 1500}
	for i, item := range seq {
		assert.Equal(t, wantTypes[i], item.Request.Type)
		assert.Equal(t, wantDelays[i], item.DelayMs)
		assert.GreaterOrEqual(t, item.Request.Duration, 3*time.Second)
		assert.LessOrEqual(t, item.Request.Duration, 6*time.Second)
		assert.Equal(t, item.Request.Duration.Milliseconds(), item.Request.DurationMs)
	}
}

func TestRunTestSequence_EnqueuesInOrder(t *testing.T) {
	notifier := new(mockNotificationService)
	notifier.On("AddNotification", "user-1", mock.Anything).Return(&domain.Notification{}, nil)
	waits := &recordedWaits{}

	h := NewHarness(notifier, nil, withWait(waits.wait))
	plan := h.RunTestSequence("user-1")
	require.Eventually(t, func() bool { return len(notifier.titles()) == len(plan) }, time.Second, 5*time.Millisecond)
	h.Close()

	var want []string
	for _, item := range plan {
		want = append(want, item.Request.Title)
	}
	assert.Equal(t, want, notifier.titles())
	assert.Equal(t, []time.Duration{0, 500 * time.Millisecond, 500 * time.Millisecond, 500 * time.Millisecond}, waits.waits)
}

func TestRunTestSequence_MutedEntriesAreSkipped(t *testing.T) {
	notifier := new(mockNotificationService)
	notifier.On("AddNotification", "user-1", domain.NotificationError).Return(nil, errors.New("db down"))
	notifier.On("AddNotification", "user-1", mock.Anything).Return(nil, domain.ErrNotificationsMuted)

	h := NewHarness(notifier, nil, withWait((&recordedWaits{}).wait))
	h.RunTestSequence("user-1")
	require.Eventually(t, func() bool { return len(notifier.titles()) == 4 }, time.Second, 5*time.Millisecond)
	h.Close()

	assert.Len(t, notifier.titles(), 4)
}

func TestRunTestSequence_AfterClose(t *testing.T) {
	notifier := new(mockNotificationService)
	waits := &recordedWaits{}

	h := NewHarness(notifier, nil, withWait(waits.wait))
	h.Close()

	plan := h.RunTestSequence("user-1")
	assert.Len(t, plan, 4)
	h.Close()

	assert.Empty(t, notifier.titles())
	assert.Empty(t, waits.waits)
	notifier.AssertNotCalled(t, "AddNotification", mock.Anything, mock.Anything)
}

func TestRunTestSequence_ConcurrentClose(t *testing.T) {
	notifier := new(mockNotificationService)
	notifier.On("AddNotification", "user-1", mock.Anything).Return(&domain.Notification{}, nil)
	h := NewHarness(notifier, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.RunTestSequence("user-1")
		}()
	}
	h.Close()
	wg.Wait()
	h.Close()

	assert.LessOrEqual(t, len(notifier.titles()), 8)
}

func TestTestSequence_ReportsMilliseconds(t *testing.T) {
	raw, err := json.Marshal(TestSequence()[1])
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, float64(500), got["delay_ms"])
	notification := got["notification"].(map[string]any)
	assert.Equal(t, float64(6000), notification["duration_ms"])
	assert.NotContains(t, notification, "duration")
}

func TestClose_CancelsPendingEntries(t *testing.T) {
	notifier := new(mockNotificationService)
	notifier.On("AddNotification", "user-1", mock.Anything).Return(&domain.Notification{}, nil)

	h := NewHarness(notifier, nil)
	h.RunTestSequence("user-1")

	require.Eventually(t, func() bool { return len(notifier.titles()) == 1 }, time.Second, 5*time.Millisecond)
	h.Close()

	assert.Len(t, notifier.titles(), 1)
}

func TestTogglePushNotifications(t *testing.T) {
	db := testutil.NewTestDB(t)
	settingsService := settings.NewSettingsService(settings.NewSettingsRepository(db))
	h := NewHarness(new(mockNotificationService), settingsService)
	defer h.Close()

	userID := uuid.NewString()
	ctx := context.Background()

	on, err := h.TogglePushNotifications(ctx, userID)
	require.NoError(t, err)
	assert.False(t, on)
	assert.False(t, settings.BoolSetting(ctx, settingsService, userID, domain.SettingsSectionNotifications, domain.SettingPushNotifications))

	on, err = h.TogglePushNotifications(ctx, userID)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestTogglePushNotifications_InvalidUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	h := NewHarness(new(mockNotificationService), settings.NewSettingsService(settings.NewSettingsRepository(db)))
	defer h.Close()

	_, err := h.TogglePushNotifications(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}
