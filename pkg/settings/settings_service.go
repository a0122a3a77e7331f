package settings

import (
	"FoodBridge/domain"
	"FoodBridge/entities"
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	SettingsService interface {
		GetSettings(ctx context.Context, userID string) (domain.Settings, error)
		GetSetting(ctx context.Context, userID, section, key string) (any, error)
		UpdateSetting(ctx context.Context, userID, section, key string, value any) (domain.Settings, error)
	}

	settingsService struct {
		settingsRepository SettingsRepository
	}
)

// Defaults also define which sections and keys exist and the type of each value.
func Defaults() domain.Settings {
	return domain.Settings{
		domain.SettingsSectionNotifications: {
			domain.SettingPushNotifications:  true,
			domain.SettingEmailNotifications: true,
			"smsNotifications":               false,
			"missionAlerts":                  true,
		},
		domain.SettingsSectionPrivacy: {
			"showProfile":   true,
			"shareLocation": true,
		},
		domain.SettingsSectionAppearance: {
			"theme":    "system",
			"language": "en",
		},
	}
}

func NewSettingsService(settingsRepository SettingsRepository) SettingsService {
	return &settingsService{settingsRepository: settingsRepository}
}

func (s *settingsService) GetSettings(ctx context.Context, userID string) (domain.Settings, error) {
	stored, err := s.settingsRepository.GetUserSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings := Defaults()
	for _, st := range stored {
		section, ok := settings[st.Section]
		if !ok {
			continue
		}
		def, ok := section[st.Key]
		if !ok {
			continue
		}
		value, err := decode(st.Value, def)
		if err != nil {
			log.Warnf("ignoring stored setting %s.%s for user %s: %v", st.Section, st.Key, userID, err)
			continue
		}
		section[st.Key] = value
	}
	return settings, nil
}

func (s *settingsService) GetSetting(ctx context.Context, userID, section, key string) (any, error) {
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	value, ok := settings[section][key]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", domain.ErrUnknownSetting, section, key)
	}
	return value, nil
}

func (s *settingsService) UpdateSetting(ctx context.Context, userID, section, key string, value any) (domain.Settings, error) {
	def, ok := Defaults()[section][key]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", domain.ErrUnknownSetting, section, key)
	}
	if value == nil || reflect.TypeOf(value) != reflect.TypeOf(def) {
		return nil, fmt.Errorf("%w: %s.%s expects %T", domain.ErrInvalidSettingValue, section, key, def)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	if err := s.settingsRepository.UpsertSetting(ctx, &entities.UserSetting{
		UserID:  userUUID,
		Section: section,
		Key:     key,
		Value:   string(encoded),
	}); err != nil {
		return nil, err
	}

	return s.GetSettings(ctx, userID)
}

func decode(raw string, def any) (any, error) {
	switch def.(type) {
	case bool:
		var v bool
		err := json.Unmarshal([]byte(raw), &v)
		return v, err
	case string:
		var v string
		err := json.Unmarshal([]byte(raw), &v)
		return v, err
	default:
		return nil, fmt.Errorf("unsupported setting type %T", def)
	}
}

// BoolSetting reads a boolean setting, falling back to the default on any error.
func BoolSetting(ctx context.Context, svc SettingsService, userID, section, key string) bool {
	def, _ := Defaults()[section][key].(bool)
	value, err := svc.GetSetting(ctx, userID, section, key)
	if err != nil {
		return def
	}
	b, ok := value.(bool)
	if !ok {
		return def
	}
	return b
}
