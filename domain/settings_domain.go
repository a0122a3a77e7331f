package domain

import "errors"

const (
	SettingsSectionNotifications = "notifications"
	SettingsSectionPrivacy       = "privacy"
	SettingsSectionAppearance    = "appearance"

	SettingPushNotifications  = "pushNotifications"
	SettingEmailNotifications = "emailNotifications"
)

var (
	MessageSuccessGetSettings   = "settings retrieved successfully"
	MessageSuccessUpdateSetting = "setting updated successfully"

	MessageFailedGetSettings   = "failed to retrieve settings"
	MessageFailedUpdateSetting = "failed to update setting"

	ErrUnknownSetting      = errors.New("unknown setting")
	ErrInvalidSettingValue = errors.New("invalid setting value")
)

type (
	// Settings is section -> key -> value.
	Settings map[string]map[string]any

	UpdateSettingRequest struct {
		Section string `json:"section" validate:"required"`
		Key     string `json:"key" validate:"required"`
		Value   any    `json:"value"`
	}
)
