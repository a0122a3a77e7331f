package mission

import (
	"FoodBridge/domain"
	"FoodBridge/entities"
	"FoodBridge/pkg/activity"
	"FoodBridge/pkg/donation"
	"FoodBridge/pkg/notification"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// nextStatus is the only forward move allowed from each mission status.
var nextStatus = map[string]string{
	domain.MissionStatusPending:  domain.MissionStatusAssigned,
	domain.MissionStatusAssigned: domain.MissionStatusPickedUp,
	domain.MissionStatusPickedUp: domain.MissionStatusDelivered,
}

type (
	MissionService interface {
		RequestDonation(ctx context.Context, req domain.RequestDonationRequest, userID string) (*domain.Mission, error)
		GetNGORequests(ctx context.Context, userID string) ([]*domain.Mission, error)
		GetAvailableMissions(ctx context.Context) ([]*domain.Mission, error)
		GetVolunteerMissions(ctx context.Context, userID string) ([]*domain.Mission, error)
		AcceptMission(ctx context.Context, id string, userID string) (*domain.Mission, error)
		MarkPickedUp(ctx context.Context, id string, userID string) (*domain.Mission, error)
		MarkDelivered(ctx context.Context, id string, userID string) (*domain.Mission, error)
	}

	NGOLookup interface {
		GetNGOByUserID(ctx context.Context, userID string) (*entities.NGO, error)
	}

	missionService struct {
		missionRepository   MissionRepository
		donationRepository  donation.DonationRepository
		ngos                NGOLookup
		activityService     activity.ActivityService
		notificationService notification.NotificationService
		now                 func() time.Time
	}
)

func NewMissionService(
	missionRepository MissionRepository,
	donationRepository donation.DonationRepository,
	ngos NGOLookup,
	activityService activity.ActivityService,
	notificationService notification.NotificationService,
) MissionService {
	return &missionService{
		missionRepository:   missionRepository,
		donationRepository:  donationRepository,
		ngos:                ngos,
		activityService:     activityService,
		notificationService: notificationService,
		now:                 time.Now,
	}
}

func (s *missionService) RequestDonation(ctx context.Context, req domain.RequestDonationRequest, userID string) (*domain.Mission, error) {
	ngo, err := s.ngos.GetNGOByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNGOProfileNotFound
		}
		return nil, err
	}

	donationUUID, err := uuid.Parse(req.DonationID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	d, err := s.donationRepository.GetDonationByID(ctx, req.DonationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	if d.Status != domain.DonationStatusAvailable {
		return nil, domain.ErrDonationNotAvailable
	}

	mission := &entities.Mission{
		DonationID: donationUUID,
		NGOID:      ngo.ID,
		Status:     domain.MissionStatusPending,
		Notes:      req.Notes,
		Pickup:     d.Pickup,
		Delivery:   ngo.Location,
	}
	if err := s.missionRepository.CreateMission(ctx, mission); err != nil {
		return nil, err
	}

	s.notify(ctx, d.DonorID.String(), domain.AddNotificationRequest{
		Type:    domain.NotificationInfo,
		Title:   "Donation Requested",
		Message: fmt.Sprintf("%s requested your %s.", ngo.Name, d.FoodName),
	})

	return s.reload(ctx, mission.ID.String())
}

func (s *missionService) GetNGORequests(ctx context.Context, userID string) ([]*domain.Mission, error) {
	ngo, err := s.ngos.GetNGOByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNGOProfileNotFound
		}
		return nil, err
	}
	missions, err := s.missionRepository.GetMissionsByNGO(ctx, ngo.ID.String())
	if err != nil {
		return nil, err
	}
	return toDomainList(missions), nil
}

func (s *missionService) GetAvailableMissions(ctx context.Context) ([]*domain.Mission, error) {
	missions, err := s.missionRepository.GetMissionsByStatus(ctx, domain.MissionStatusPending)
	if err != nil {
		return nil, err
	}
	return toDomainList(missions), nil
}

func (s *missionService) GetVolunteerMissions(ctx context.Context, userID string) ([]*domain.Mission, error) {
	missions, err := s.missionRepository.GetMissionsByVolunteer(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDomainList(missions), nil
}

func (s *missionService) AcceptMission(ctx context.Context, id string, userID string) (*domain.Mission, error) {
	volunteerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	mission, err := s.advance(ctx, id, userID, domain.MissionStatusAssigned, Transition{
		Updates: map[string]any{"volunteer_id": volunteerID},
	})
	if err != nil {
		return nil, err
	}

	if mission.NGO != nil {
		s.notify(ctx, mission.NGO.UserID.String(), domain.AddNotificationRequest{
			Type:    domain.NotificationInfo,
			Title:   "Volunteer Assigned",
			Message: fmt.Sprintf("A volunteer is on the way to collect %s.", foodName(mission)),
		})
	}
	return toDomain(mission), nil
}

func (s *missionService) MarkPickedUp(ctx context.Context, id string, userID string) (*domain.Mission, error) {
	now := s.now()
	mission, err := s.advance(ctx, id, userID, domain.MissionStatusPickedUp, Transition{
		Updates:        map[string]any{"picked_up_at": now},
		DonationStatus: domain.DonationStatusPickedUp,
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, userID, domain.ActivityPickup, fmt.Sprintf("Picked up %s", foodName(mission)))
	if mission.Donation != nil {
		s.notify(ctx, mission.Donation.DonorID.String(), domain.AddNotificationRequest{
			Type:    domain.NotificationSuccess,
			Title:   "Food Picked Up",
			Message: fmt.Sprintf("Your %s has been picked up by a volunteer.", foodName(mission)),
		})
	}
	return toDomain(mission), nil
}

func (s *missionService) MarkDelivered(ctx context.Context, id string, userID string) (*domain.Mission, error) {
	now := s.now()
	mission, err := s.advance(ctx, id, userID, domain.MissionStatusDelivered, Transition{
		Updates:        map[string]any{"delivered_at": now},
		DonationStatus: domain.DonationStatusDelivered,
	})
	if err != nil {
		return nil, err
	}

	ngoName := "the NGO"
	if mission.NGO != nil {
		ngoName = mission.NGO.Name
		s.notify(ctx, mission.NGO.UserID.String(), domain.AddNotificationRequest{
			Type:    domain.NotificationSuccess,
			Title:   "Donation Delivered",
			Message: fmt.Sprintf("%s has been delivered.", foodName(mission)),
		})
	}
	s.record(ctx, userID, domain.ActivityDelivery, fmt.Sprintf("Delivered %s to %s", foodName(mission), ngoName))
	return toDomain(mission), nil
}

// advance checks that to is the next status and, past acceptance, that userID is the
// assigned volunteer. The update is conditional on the status read, so concurrent
// callers cannot both move the same mission.
func (s *missionService) advance(ctx context.Context, id string, userID string, to string, t Transition) (*entities.Mission, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	mission, err := s.missionRepository.GetMissionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMissionNotFound
		}
		return nil, err
	}

	if nextStatus[mission.Status] != to {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidMissionTransition, mission.Status, to)
	}
	if to != domain.MissionStatusAssigned && (mission.VolunteerID == nil || mission.VolunteerID.String() != userID) {
		return nil, domain.ErrUnauthorizedMissionAccess
	}

	t.From = mission.Status
	t.Updates["status"] = to
	moved, err := s.missionRepository.UpdateMission(ctx, mission, t)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, fmt.Errorf("%w: mission %s changed concurrently", domain.ErrInvalidMissionTransition, id)
	}

	return s.missionRepository.GetMissionByID(ctx, id)
}

func (s *missionService) reload(ctx context.Context, id string) (*domain.Mission, error) {
	mission, err := s.missionRepository.GetMissionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDomain(mission), nil
}

func (s *missionService) record(ctx context.Context, userID, activityType, description string) {
	if s.activityService == nil {
		return
	}
	if err := s.activityService.RecordActivity(ctx, userID, activityType, description); err != nil {
		log.Warnf("record %s activity for %s: %v", activityType, userID, err)
	}
}

// notify is best effort; a muted recipient is not an error.
func (s *missionService) notify(ctx context.Context, userID string, req domain.AddNotificationRequest) {
	if s.notificationService == nil {
		return
	}
	_, err := s.notificationService.AddNotification(ctx, userID, req)
	if err != nil && !errors.Is(err, domain.ErrNotificationsMuted) {
		log.Warnf("notify %s (%s): %v", userID, req.Title, err)
	}
}

func foodName(m *entities.Mission) string {
	if m.Donation == nil || m.Donation.FoodName == "" {
		return "the donation"
	}
	return m.Donation.FoodName
}

func toDomainList(missions []*entities.Mission) []*domain.Mission {
	result := make([]*domain.Mission, 0, len(missions))
	for _, m := range missions {
		result = append(result, toDomain(m))
	}
	return result
}

func toDomain(m *entities.Mission) *domain.Mission {
	res := &domain.Mission{
		ID:          m.ID.String(),
		DonationID:  m.DonationID.String(),
		NGOID:       m.NGOID.String(),
		Status:      m.Status,
		Notes:       m.Notes,
		Pickup:      domain.Location{Lat: m.Pickup.Lat, Lng: m.Pickup.Lng, Address: m.Pickup.Address},
		Delivery:    domain.Location{Lat: m.Delivery.Lat, Lng: m.Delivery.Lng, Address: m.Delivery.Address},
		PickedUpAt:  m.PickedUpAt,
		DeliveredAt: m.DeliveredAt,
		CreatedAt:   m.CreatedAt,
	}
	if m.VolunteerID != nil {
		res.VolunteerID = m.VolunteerID.String()
	}
	if m.NGO != nil {
		res.NGOName = m.NGO.Name
	}
	if m.Donation != nil {
		res.Donation = donation.ToDomain(m.Donation)
	}
	return res
}
