package activity

import (
	"FoodBridge/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ActivityRepository interface {
		CreateActivity(ctx context.Context, activity *entities.UserActivity) error
		// GetUserActivities returns the user's activities in storage (insertion) order.
		GetUserActivities(ctx context.Context, userID string) ([]*entities.UserActivity, error)
	}

	activityRepository struct {
		db *gorm.DB
	}
)

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) CreateActivity(ctx context.Context, activity *entities.UserActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) GetUserActivities(ctx context.Context, userID string) ([]*entities.UserActivity, error) {
	var activities []*entities.UserActivity
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}
