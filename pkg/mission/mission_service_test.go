package mission

import (
	"FoodBridge/domain"
	"FoodBridge/entities"
	"FoodBridge/internal/testutil"
	"FoodBridge/pkg/activity"
	"FoodBridge/pkg/donation"
	"FoodBridge/pkg/notification"
	"FoodBridge/pkg/settings"
	"FoodBridge/pkg/user"
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db            *gorm.DB
	svc           MissionService
	activities    activity.ActivityService
	notifications notification.NotificationService
	users         user.UserRepository

	donor     *entities.User
	ngo       *entities.User
	volunteer *entities.User
	donation  *entities.Donation
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	f := &fixture{db: db, users: user.NewUserRepository(db)}
	f.activities = activity.NewActivityService(activity.NewActivityRepository(db))
	settingsService := settings.NewSettingsService(settings.NewSettingsRepository(db))
	f.notifications = notification.NewNotificationService(notification.NewNotificationRepository(db), settingsService, nil, nil)

	donations := donation.NewDonationRepository(db)
	f.svc = NewMissionService(NewMissionRepository(db), donations, f.users, f.activities, f.notifications)

	f.donor = &entities.User{Name: "Donor", Email: "donor@example.com", Role: domain.RoleDonor}
	f.ngo = &entities.User{
		Name:  "NGO",
		Email: "ngo@example.com",
		Role:  domain.RoleNGO,
		NGO: &entities.NGO{
			Name:     "Food Rescue",
			Location: entities.Location{Lat: 1, Lng: 2, Address: "Shelter"},
		},
	}
	f.volunteer = &entities.User{Name: "Rider", Email: "rider@example.com", Role: domain.RoleVolunteer}
	for _, u := range []*entities.User{f.donor, f.ngo, f.volunteer} {
		require.NoError(t, f.users.CreateUser(ctx, u))
	}

	f.donation = &entities.Donation{
		DonorID:  f.donor.ID,
		FoodName: "bread",
		Status:   domain.DonationStatusAvailable,
		Pickup:   entities.Location{Lat: 3, Lng: 4, Address: "Bakery"},
	}
	require.NoError(t, donations.CreateDonation(ctx, f.donation))
	return f
}

func (f *fixture) donationStatus(t *testing.T) string {
	t.Helper()
	var d entities.Donation
	require.NoError(t, f.db.First(&d, "id = ?", f.donation.ID).Error)
	return d.Status
}

func (f *fixture) request(t *testing.T) *domain.Mission {
	t.Helper()
	m, err := f.svc.RequestDonation(context.Background(), domain.RequestDonationRequest{DonationID: f.donation.ID.String()}, f.ngo.ID.String())
	require.NoError(t, err)
	return m
}

func TestMissionLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	volunteerID := f.volunteer.ID.String()

	m := f.request(t)
	assert.Equal(t, domain.MissionStatusPending, m.Status)
	assert.Equal(t, "Food Rescue", m.NGOName)
	assert.Equal(t, "Bakery", m.Pickup.Address)
	assert.Equal(t, "Shelter", m.Delivery.Address)
	assert.Equal(t, domain.DonationStatusRequested, f.donationStatus(t))

	requests, err := f.svc.GetNGORequests(ctx, f.ngo.ID.String())
	require.NoError(t, err)
	require.Len(t, requests, 1)

	available, err := f.svc.GetAvailableMissions(ctx)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "bread", available[0].Donation.FoodName)

	m, err = f.svc.AcceptMission(ctx, m.ID, volunteerID)
	require.NoError(t, err)
	assert.Equal(t, domain.MissionStatusAssigned, m.Status)
	assert.Equal(t, volunteerID, m.VolunteerID)

	available, err = f.svc.GetAvailableMissions(ctx)
	require.NoError(t, err)
	assert.Empty(t, available)

	mine, err := f.svc.GetVolunteerMissions(ctx, volunteerID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	m, err = f.svc.MarkPickedUp(ctx, m.ID, volunteerID)
	require.NoError(t, err)
	assert.Equal(t, domain.MissionStatusPickedUp, m.Status)
	assert.NotNil(t, m.PickedUpAt)
	assert.Equal(t, domain.DonationStatusPickedUp, f.donationStatus(t))

	m, err = f.svc.MarkDelivered(ctx, m.ID, volunteerID)
	require.NoError(t, err)
	assert.Equal(t, domain.MissionStatusDelivered, m.Status)
	assert.NotNil(t, m.DeliveredAt)
	assert.Equal(t, domain.DonationStatusDelivered, f.donationStatus(t))

	feed, err := f.activities.GetActivityFeed(ctx, volunteerID)
	require.NoError(t, err)
	assert.Equal(t, 1, feed.CountsByType[domain.ActivityPickup])
	assert.Equal(t, 1, feed.CountsByType[domain.ActivityDelivery])

	donorNotifications, err := f.notifications.GetNotifications(ctx, f.donor.ID.String())
	require.NoError(t, err)
	var titles []string
	for _, n := range donorNotifications {
		titles = append(titles, n.Title)
	}
	assert.ElementsMatch(t, []string{"Donation Requested", "Food Picked Up"}, titles)

	ngoNotifications, err := f.notifications.GetNotifications(ctx, f.ngo.ID.String())
	require.NoError(t, err)
	assert.Len(t, ngoNotifications, 2)
}

func TestRequestDonation_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.RequestDonation(ctx, domain.RequestDonationRequest{DonationID: f.donation.ID.String()}, f.donor.ID.String())
	assert.ErrorIs(t, err, domain.ErrNGOProfileNotFound)

	_, err = f.svc.RequestDonation(ctx, domain.RequestDonationRequest{DonationID: uuid.NewString()}, f.ngo.ID.String())
	assert.ErrorIs(t, err, domain.ErrDonationNotFound)

	f.request(t)
	_, err = f.svc.RequestDonation(ctx, domain.RequestDonationRequest{DonationID: f.donation.ID.String()}, f.ngo.ID.String())
	assert.ErrorIs(t, err, domain.ErrDonationNotAvailable)
}

func TestIllegalTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	volunteerID := f.volunteer.ID.String()
	m := f.request(t)

	_, err := f.svc.MarkPickedUp(ctx, m.ID, volunteerID)
	assert.ErrorIs(t, err, domain.ErrInvalidMissionTransition)

	_, err = f.svc.MarkDelivered(ctx, m.ID, volunteerID)
	assert.ErrorIs(t, err, domain.ErrInvalidMissionTransition)

	_, err = f.svc.AcceptMission(ctx, m.ID, volunteerID)
	require.NoError(t, err)

	_, err = f.svc.AcceptMission(ctx, m.ID, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidMissionTransition)

	_, err = f.svc.MarkPickedUp(ctx, m.ID, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedMissionAccess)

	_, err = f.svc.MarkPickedUp(ctx, uuid.NewString(), volunteerID)
	assert.ErrorIs(t, err, domain.ErrMissionNotFound)

	_, err = f.svc.MarkPickedUp(ctx, "bad", volunteerID)
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestAcceptMission_OnlyOneVolunteerWins(t *testing.T) {
	f := newFixture(t)
	m := f.request(t)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.svc.AcceptMission(context.Background(), m.ID, uuid.NewString())
		}(i)
	}
	wg.Wait()

	var ok int
	for _, err := range results {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidMissionTransition)
		}
	}
	assert.Equal(t, 1, ok)
}
