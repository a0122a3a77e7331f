package settings

import (
	"FoodBridge/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	SettingsRepository interface {
		GetUserSettings(ctx context.Context, userID string) ([]*entities.UserSetting, error)
		UpsertSetting(ctx context.Context, setting *entities.UserSetting) error
	}

	settingsRepository struct {
		db *gorm.DB
	}
)

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetUserSettings(ctx context.Context, userID string) ([]*entities.UserSetting, error) {
	var settings []*entities.UserSetting
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingsRepository) UpsertSetting(ctx context.Context, setting *entities.UserSetting) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "section"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting).Error
}
