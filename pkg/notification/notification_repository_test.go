package notification

import (
	"FoodBridge/entities"
	"FoodBridge/internal/testutil"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetActiveNotifications_FiltersInQuery(t *testing.T) {
	repo := NewNotificationRepository(testutil.NewTestDB(t))
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	rows := []*entities.Notification{
		{UserID: userID, Type: "info", Title: "expired", ExpiresAt: now.Add(-time.Millisecond)},
		{UserID: userID, Type: "info", Title: "boundary", ExpiresAt: now},
		{UserID: userID, Type: "info", Title: "sub-second", ExpiresAt: now.Add(250 * time.Millisecond)},
		{UserID: userID, Type: "info", Title: "later", ExpiresAt: now.Add(time.Hour)},
		{UserID: userID, Type: "info", Title: "dismissed", ExpiresAt: now.Add(time.Hour), Dismissed: true},
		{UserID: uuid.New(), Type: "info", Title: "someone else", ExpiresAt: now.Add(time.Hour)},
	}
	for _, n := range rows {
		require.NoError(t, repo.CreateNotification(ctx, n))
	}

	active, err := repo.GetActiveNotifications(ctx, userID.String(), now)
	require.NoError(t, err)

	var titles []string
	for _, n := range active {
		titles = append(titles, n.Title)
	}
	assert.ElementsMatch(t, []string{"sub-second", "later"}, titles)
}

func TestGetActiveNotifications_AcceptsLocalTime(t *testing.T) {
	repo := NewNotificationRepository(testutil.NewTestDB(t))
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateNotification(ctx, &entities.Notification{
		UserID: userID, Type: "info", Title: "soon", ExpiresAt: now.Add(time.Minute),
	}))

	jakarta := time.FixedZone("WIB", 7*60*60)
	active, err := repo.GetActiveNotifications(ctx, userID.String(), now.In(jakarta))
	require.NoError(t, err)
	assert.Len(t, active, 1)

	active, err = repo.GetActiveNotifications(ctx, userID.String(), now.Add(2*time.Minute).In(jakarta))
	require.NoError(t, err)
	assert.Empty(t, active)
}
