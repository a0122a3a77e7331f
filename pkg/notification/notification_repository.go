package notification

import (
	"FoodBridge/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		CreateNotification(ctx context.Context, notification *entities.Notification) error
		// GetActiveNotifications returns undismissed notifications that expire after now, newest first.
		GetActiveNotifications(ctx context.Context, userID string, now time.Time) ([]*entities.Notification, error)
		DismissNotification(ctx context.Context, id string, userID string) (bool, error)
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateNotification stores expires_at in UTC so GetActiveNotifications can compare it in SQL.
func (r *notificationRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	notification.ExpiresAt = notification.ExpiresAt.UTC()
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) GetActiveNotifications(ctx context.Context, userID string, now time.Time) ([]*entities.Notification, error) {
	var notifications []*entities.Notification
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND dismissed = ? AND expires_at > ?", userID, false, now.UTC()).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) DismissNotification(ctx context.Context, id string, userID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("dismissed", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
