package notification

import (
	"FoodBridge/domain"
	"FoodBridge/entities"
	"FoodBridge/internal/utils/mailing"
	"FoodBridge/pkg/settings"
	"context"
	"fmt"
	"html"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// DefaultDuration applies when a notification is added without an auto-dismiss duration.
const DefaultDuration = 5 * time.Second

type (
	NotificationService interface {
		AddNotification(ctx context.Context, userID string, req domain.AddNotificationRequest) (*domain.Notification, error)
		GetNotifications(ctx context.Context, userID string) ([]*domain.Notification, error)
		DismissNotification(ctx context.Context, id string, userID string) error
	}

	// UserLookup resolves the e-mail address for the mail channel.
	UserLookup interface {
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
	}

	notificationService struct {
		notificationRepository NotificationRepository
		settingsService        settings.SettingsService
		users                  UserLookup
		mailer                 mailing.Mailer
		now                    func() time.Time
	}
)

// NewNotificationService accepts a nil mailer; e-mail delivery is then skipped.
func NewNotificationService(
	notificationRepository NotificationRepository,
	settingsService settings.SettingsService,
	users UserLookup,
	mailer mailing.Mailer,
) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		settingsService:        settingsService,
		users:                  users,
		mailer:                 mailer,
		now:                    time.Now,
	}
}

func validType(t string) bool {
	switch t {
	case domain.NotificationSuccess, domain.NotificationError, domain.NotificationWarning, domain.NotificationInfo:
		return true
	}
	return false
}

func (s *notificationService) AddNotification(ctx context.Context, userID string, req domain.AddNotificationRequest) (*domain.Notification, error) {
	if !validType(req.Type) {
		return nil, domain.ErrInvalidNotificationType
	}
	if req.Duration < 0 {
		return nil, domain.ErrInvalidNotificationDuration
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if !settings.BoolSetting(ctx, s.settingsService, userID, domain.SettingsSectionNotifications, domain.SettingPushNotifications) {
		return nil, domain.ErrNotificationsMuted
	}

	duration := req.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}

	now := s.now().UTC()
	notification := &entities.Notification{
		UserID:     userUUID,
		Type:       req.Type,
		Title:      req.Title,
		Message:    req.Message,
		DurationMs: int(duration / time.Millisecond),
		ExpiresAt:  now.Add(duration),
	}
	if err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
		return nil, err
	}

	s.sendMail(ctx, userID, req)

	return toDomain(notification), nil
}

// sendMail is best effort; failures are logged and never fail the in-app notification.
func (s *notificationService) sendMail(ctx context.Context, userID string, req domain.AddNotificationRequest) {
	if s.mailer == nil || s.users == nil {
		return
	}
	if !settings.BoolSetting(ctx, s.settingsService, userID, domain.SettingsSectionNotifications, domain.SettingEmailNotifications) {
		return
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		log.Warnf("notification mail: lookup user %s: %v", userID, err)
		return
	}

	body := fmt.Sprintf("<h3>%s</h3><p>%s</p>", html.EscapeString(req.Title), html.EscapeString(req.Message))
	if err := s.mailer.SendMail(user.Email, "[FoodBridge] "+req.Title, body); err != nil {
		log.Warnf("notification mail to %s: %v", user.Email, err)
	}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string) ([]*domain.Notification, error) {
	notifications, err := s.notificationRepository.GetActiveNotifications(ctx, userID, s.now().UTC())
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Notification, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, toDomain(n))
	}
	return result, nil
}

func (s *notificationService) DismissNotification(ctx context.Context, id string, userID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	ok, err := s.notificationRepository.DismissNotification(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func toDomain(n *entities.Notification) *domain.Notification {
	return &domain.Notification{
		ID:         n.ID.String(),
		Type:       n.Type,
		Title:      n.Title,
		Message:    n.Message,
		DurationMs: n.DurationMs,
		ExpiresAt:  n.ExpiresAt,
		CreatedAt:  n.CreatedAt,
	}
}
