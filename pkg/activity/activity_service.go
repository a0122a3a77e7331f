package activity

import (
	"FoodBridge/domain"
	"FoodBridge/entities"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	ActivityService interface {
		GetActivityFeed(ctx context.Context, userID string) (*domain.ActivityFeed, error)
		RecordActivity(ctx context.Context, userID string, activityType string, description string) error
	}

	activityService struct {
		activityRepository ActivityRepository
		now                func() time.Time
	}

	style struct {
		icon  string
		color string
	}
)

var (
	activityStyles = map[string]style{
		domain.ActivitySignup:   {icon: "user-plus", color: "blue"},
		domain.ActivityLogin:    {icon: "log-in", color: "green"},
		domain.ActivityDonation: {icon: "gift", color: "purple"},
		domain.ActivityPickup:   {icon: "truck", color: "orange"},
		domain.ActivityDelivery: {icon: "check-circle", color: "emerald"},
	}
	defaultStyle = style{icon: "activity", color: "gray"}
)

func NewActivityService(activityRepository ActivityRepository) ActivityService {
	return &activityService{
		activityRepository: activityRepository,
		now:                time.Now,
	}
}

func IsValidType(activityType string) bool {
	_, ok := activityStyles[activityType]
	return ok
}

func (s *activityService) GetActivityFeed(ctx context.Context, userID string) (*domain.ActivityFeed, error) {
	activities, err := s.activityRepository.GetUserActivities(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrActivityStorageRead, err)
	}

	entries := make([]domain.ActivityEntry, 0, len(activities))
	for _, a := range activities {
		if err := validate(a); err != nil {
			log.Warnf("skipping activity for user %s: %v", userID, err)
			continue
		}
		st, ok := activityStyles[a.Type]
		if !ok {
			st = defaultStyle
		}
		entries = append(entries, domain.ActivityEntry{
			ID:          a.ID.String(),
			Type:        a.Type,
			Description: a.Description,
			Timestamp:   a.OccurredAt,
			Icon:        st.icon,
			Color:       st.color,
		})
	}

	// Newest first; equal timestamps keep their stored order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	counts := make(map[string]int, len(activityStyles))
	for _, e := range entries {
		counts[e.Type]++
	}

	feed := &domain.ActivityFeed{
		Activities:   entries,
		CountsByType: counts,
		Empty:        len(entries) == 0,
	}
	if feed.Empty {
		feed.EmptyMessage = domain.MessageNoActivities
	}
	return feed, nil
}

func validate(a *entities.UserActivity) error {
	if a == nil || a.ID == uuid.Nil || a.OccurredAt.IsZero() {
		return domain.ErrMalformedActivity
	}
	return nil
}

func (s *activityService) RecordActivity(ctx context.Context, userID string, activityType string, description string) error {
	if !IsValidType(activityType) {
		return domain.ErrInvalidActivityType
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.activityRepository.CreateActivity(ctx, &entities.UserActivity{
		UserID:      userUUID,
		Type:        activityType,
		Description: description,
		OccurredAt:  s.now(),
	})
}
