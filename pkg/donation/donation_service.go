package donation

import (
	"FoodBridge/domain"
	"FoodBridge/entities"
	"FoodBridge/internal/utils/storage"
	"FoodBridge/pkg/activity"
	"FoodBridge/pkg/classifier"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.DonationRequest, userID string) (*domain.Donation, error)
		ListAvailableDonations(ctx context.Context, page, limit int) ([]*domain.Donation, int64, error)
		GetUserDonations(ctx context.Context, userID string, page, limit int) ([]*domain.Donation, int64, error)
		GetDonationByID(ctx context.Context, id string) (*domain.Donation, error)
		CancelDonation(ctx context.Context, id string, userID string) error
	}

	donationService struct {
		donationRepository DonationRepository
		classifier         classifier.Classifier
		storage            storage.Storage
		activityService    activity.ActivityService
		now                func() time.Time
	}
)

// NewDonationService accepts a nil storage; donations are then saved without an image URL.
func NewDonationService(
	donationRepository DonationRepository,
	foodClassifier classifier.Classifier,
	objectStorage storage.Storage,
	activityService activity.ActivityService,
) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		classifier:         foodClassifier,
		storage:            objectStorage,
		activityService:    activityService,
		now:                time.Now,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.DonationRequest, userID string) (*domain.Donation, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	if req.FoodName == "" && req.FoodImage == nil {
		return nil, domain.ErrMissingFoodName
	}

	now := s.now()
	donation := &entities.Donation{
		ID:          uuid.New(),
		DonorID:     userUUID,
		FoodName:    req.FoodName,
		Description: req.Description,
		Status:      domain.DonationStatusAvailable,
		Pickup:      entities.Location{Lat: req.Lat, Lng: req.Lng, Address: req.Address},
	}

	var imageSize int64
	if req.FoodImage != nil {
		imageSize = req.FoodImage.Size
		result, err := classifier.Classify(ctx, s.classifier, req.FoodImage.Filename, imageSize, now)
		switch {
		case err == nil:
			donation.Confidence = result.Confidence
			if donation.FoodName == "" {
				donation.FoodName = result.Label
			}
		case donation.FoodName == "":
			return nil, err
		default:
			log.Warnf("classify donation image %s: %v", req.FoodImage.Filename, err)
		}
	}

	category := classifier.GetFoodCategory(donation.FoodName)
	donation.FoodCategory = string(category)

	if req.ExpiryDate != "" {
		expiry, err := time.ParseInLocation("2006-01-02", req.ExpiryDate, now.Location())
		if err != nil || expiry.Before(truncateDay(now)) {
			return nil, domain.ErrInvalidExpiryDate
		}
		donation.ExpiryDate = expiry
	} else {
		donation.ExpiryDate = classifier.GetEstimatedExpiry(category, now)
	}

	if req.Quantity > 0 {
		donation.Quantity = req.Quantity
		donation.Unit = req.Unit
	} else {
		estimate := classifier.GetQuantityEstimate(donation.FoodName, imageSize)
		donation.Quantity = estimate.Quantity
		donation.Unit = estimate.Unit
	}

	if req.FoodImage != nil && s.storage != nil {
		objectKey, err := s.storage.UploadFile(
			ctx,
			fmt.Sprintf("donation-%s", donation.ID.String()),
			req.FoodImage,
			"donations",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		donation.ImageKey = objectKey
		donation.ImageURL = s.storage.GetPublicLinkKey(objectKey)
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		s.removeImage(ctx, donation)
		return nil, err
	}

	if s.activityService != nil {
		desc := fmt.Sprintf("Donated %g %s of %s", donation.Quantity, donation.Unit, donation.FoodName)
		if err := s.activityService.RecordActivity(ctx, userID, domain.ActivityDonation, desc); err != nil {
			log.Warnf("record donation activity for %s: %v", userID, err)
		}
	}

	return ToDomain(donation), nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (s *donationService) ListAvailableDonations(ctx context.Context, page, limit int) ([]*domain.Donation, int64, error) {
	donations, count, err := s.donationRepository.GetDonationsByStatus(ctx, domain.DonationStatusAvailable, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return toDomainList(donations), count, nil
}

func (s *donationService) GetUserDonations(ctx context.Context, userID string, page, limit int) ([]*domain.Donation, int64, error) {
	donations, count, err := s.donationRepository.GetUserDonations(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return toDomainList(donations), count, nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id string) (*domain.Donation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	return ToDomain(donation), nil
}

func (s *donationService) CancelDonation(ctx context.Context, id string, userID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}
	if donation.DonorID.String() != userID {
		return domain.ErrUnauthorizedDonationAccess
	}

	ok, err := s.donationRepository.UpdateDonationStatus(ctx, id, domain.DonationStatusAvailable, domain.DonationStatusCancelled)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrDonationNotAvailable
	}

	s.removeImage(ctx, donation)
	return nil
}

// removeImage is best effort; a leftover object is logged, not returned.
func (s *donationService) removeImage(ctx context.Context, d *entities.Donation) {
	if s.storage == nil || d.ImageKey == "" {
		return
	}
	if err := s.storage.DeleteFile(ctx, d.ImageKey); err != nil {
		log.Warnf("delete image %s of donation %s: %v", d.ImageKey, d.ID, err)
	}
}

func toDomainList(donations []*entities.Donation) []*domain.Donation {
	result := make([]*domain.Donation, 0, len(donations))
	for _, d := range donations {
		result = append(result, ToDomain(d))
	}
	return result
}

func ToDomain(d *entities.Donation) *domain.Donation {
	return &domain.Donation{
		ID:           d.ID.String(),
		DonorID:      d.DonorID.String(),
		FoodName:     d.FoodName,
		FoodCategory: d.FoodCategory,
		Description:  d.Description,
		Quantity:     d.Quantity,
		Unit:         d.Unit,
		ExpiryDate:   d.ExpiryDate,
		Status:       d.Status,
		ImageURL:     d.ImageURL,
		Confidence:   d.Confidence,
		Pickup:       domain.Location{Lat: d.Pickup.Lat, Lng: d.Pickup.Lng, Address: d.Pickup.Address},
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
