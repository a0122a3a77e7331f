package donation

import (
	"FoodBridge/domain"
	"FoodBridge/internal/testutil"
	"FoodBridge/internal/utils/storage"
	"FoodBridge/pkg/activity"
	"FoodBridge/pkg/classifier"
	"context"
	"errors"
	"math/rand"
	"mime/multipart"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error) {
	args := m.Called(fileName, file.Filename, folder)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) DeleteFile(ctx context.Context, objectKey string) error {
	return m.Called(objectKey).Error(0)
}

func (m *mockStorage) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.example.com/" + objectKey
}

type fixture struct {
	svc        *donationService
	activities activity.ActivityService
	now        time.Time
}

func newFixture(t *testing.T, objectStorage storage.Storage) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)

	c := classifier.NewClassifier(classifier.WithFileDelay(0), classifier.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, c.LoadModel(context.Background()))

	activities := activity.NewActivityService(activity.NewActivityRepository(db))
	f := &fixture{
		activities: activities,
		now:        time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC),
	}
	f.svc = NewDonationService(NewDonationRepository(db), c, objectStorage, activities).(*donationService)
	f.svc.now = func() time.Time { return f.now }
	return f
}

func TestCreateDonation_FromName(t *testing.T) {
	f := newFixture(t, nil)
	donorID := uuid.NewString()

	d, err := f.svc.CreateDonation(context.Background(), domain.DonationRequest{
		FoodName: "Grilled Chicken",
		Lat:      -6.2,
		Lng:      106.8,
	}, donorID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.CategoryMeat), d.FoodCategory)
	assert.Equal(t, f.now.AddDate(0, 0, 3), d.ExpiryDate)
	assert.Equal(t, 1.0, d.Quantity)
	assert.Equal(t, "kilogram", d.Unit)
	assert.Equal(t, domain.DonationStatusAvailable, d.Status)
	assert.Empty(t, d.ImageURL)

	feed, err := f.activities.GetActivityFeed(context.Background(), donorID)
	require.NoError(t, err)
	require.Len(t, feed.Activities, 1)
	assert.Equal(t, domain.ActivityDonation, feed.Activities[0].Type)
}

func TestCreateDonation_FromImage(t *testing.T) {
	store := new(mockStorage)
	f := newFixture(t, store)
	store.On("UploadFile", mock.Anything, "fresh-banana.jpg", "donations").Return("donations/x.jpg", nil)

	d, err := f.svc.CreateDonation(context.Background(), domain.DonationRequest{
		FoodImage: &multipart.FileHeader{Filename: "fresh-banana.jpg", Size: 2_000_000},
	}, uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, "banana", d.FoodName)
	assert.Equal(t, string(domain.CategoryFruits), d.FoodCategory)
	assert.Equal(t, "https://cdn.example.com/donations/x.jpg", d.ImageURL)
	assert.GreaterOrEqual(t, d.Confidence, 0.85)
	store.AssertExpectations(t)
}

func TestCancelDonation_RemovesImage(t *testing.T) {
	store := new(mockStorage)
	f := newFixture(t, store)
	donorID := uuid.NewString()
	store.On("UploadFile", mock.Anything, "cake.png", "donations").Return("donations/cake.png", nil)
	store.On("DeleteFile", "donations/cake.png").Return(errors.New("gone already"))

	d, err := f.svc.CreateDonation(context.Background(), domain.DonationRequest{
		FoodImage: &multipart.FileHeader{Filename: "cake.png", Size: 100},
	}, donorID)
	require.NoError(t, err)

	require.NoError(t, f.svc.CancelDonation(context.Background(), d.ID, donorID))
	store.AssertCalled(t, "DeleteFile", "donations/cake.png")
}

func TestCreateDonation_ExplicitValues(t *testing.T) {
	f := newFixture(t, nil)

	d, err := f.svc.CreateDonation(context.Background(), domain.DonationRequest{
		FoodName:   "mystery stew",
		Quantity:   4,
		Unit:       "portion",
		ExpiryDate: "2024-07-03",
	}, uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, string(domain.CategoryOther), d.FoodCategory)
	assert.Equal(t, 4.0, d.Quantity)
	assert.Equal(t, "portion", d.Unit)
	assert.Equal(t, time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC), d.ExpiryDate)
}

func TestCreateDonation_Errors(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.CreateDonation(ctx, domain.DonationRequest{}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrMissingFoodName)

	_, err = f.svc.CreateDonation(ctx, domain.DonationRequest{FoodName: "bread", ExpiryDate: "2024-06-30"}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)

	_, err = f.svc.CreateDonation(ctx, domain.DonationRequest{FoodName: "bread"}, "nope")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestCreateDonation_UploadFailure(t *testing.T) {
	store := new(mockStorage)
	f := newFixture(t, store)
	store.On("UploadFile", mock.Anything, mock.Anything, mock.Anything).Return("", storage.ErrFileTypeNotAllowed)

	_, err := f.svc.CreateDonation(context.Background(), domain.DonationRequest{
		FoodName:  "bread",
		FoodImage: &multipart.FileHeader{Filename: "bread.exe", Size: 10},
	}, uuid.NewString())
	assert.True(t, errors.Is(err, storage.ErrFileTypeNotAllowed))
}

func TestListAndCancel(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	donorID := uuid.NewString()

	first, err := f.svc.CreateDonation(ctx, domain.DonationRequest{FoodName: "rice"}, donorID)
	require.NoError(t, err)
	_, err = f.svc.CreateDonation(ctx, domain.DonationRequest{FoodName: "milk"}, donorID)
	require.NoError(t, err)
	_, err = f.svc.CreateDonation(ctx, domain.DonationRequest{FoodName: "apple"}, uuid.NewString())
	require.NoError(t, err)

	available, total, err := f.svc.ListAvailableDonations(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, available, 2)

	mine, total, err := f.svc.GetUserDonations(ctx, donorID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, mine, 2)

	assert.ErrorIs(t, f.svc.CancelDonation(ctx, first.ID, uuid.NewString()), domain.ErrUnauthorizedDonationAccess)
	require.NoError(t, f.svc.CancelDonation(ctx, first.ID, donorID))
	assert.ErrorIs(t, f.svc.CancelDonation(ctx, first.ID, donorID), domain.ErrDonationNotAvailable)

	got, err := f.svc.GetDonationByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DonationStatusCancelled, got.Status)

	_, total, err = f.svc.ListAvailableDonations(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, err = f.svc.GetDonationByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrDonationNotFound)
}
