package domain

import (
	"errors"
	"time"
)

const (
	NotificationSuccess = "success"
	NotificationError   = "error"
	NotificationWarning = "warning"
	NotificationInfo    = "info"
)

var (
	MessageSuccessGetNotifications    = "notifications retrieved successfully"
	MessageSuccessDismissNotification = "notification dismissed"
	MessageSuccessTestNotifications   = "test notifications scheduled"
	MessageSuccessTogglePush          = "push notifications toggled"

	MessageFailedGetNotifications    = "failed to retrieve notifications"
	MessageFailedDismissNotification = "failed to dismiss notification"
	MessageFailedTestNotifications   = "failed to schedule test notifications"
	MessageFailedTogglePush          = "failed to toggle push notifications"

	ErrNotificationNotFound        = errors.New("notification not found")
	ErrNotificationsMuted          = errors.New("push notifications are disabled for this user")
	ErrInvalidNotificationType     = errors.New("invalid notification type")
	ErrInvalidNotificationDuration = errors.New("notification duration must not be negative")
)

type (
	AddNotificationRequest struct {
		Type       string        `json:"type" validate:"required,oneof=success error warning info"`
		Title      string        `json:"title" validate:"required,max=120"`
		Message    string        `json:"message" validate:"required,max=1000"`
		Duration   time.Duration `json:"-" validate:"gte=0"`
		DurationMs int64         `json:"duration_ms"`
	}

	Notification struct {
		ID         string    `json:"id"`
		Type       string    `json:"type"`
		Title      string    `json:"title"`
		Message    string    `json:"message"`
		DurationMs int       `json:"duration_ms"`
		ExpiresAt  time.Time `json:"expires_at"`
		CreatedAt  time.Time `json:"created_at"`
	}

	ScheduledNotification struct {
		Delay   time.Duration          `json:"-"`
		DelayMs int64                  `json:"delay_ms"`
		Request AddNotificationRequest `json:"notification"`
	}

	TogglePushResponse struct {
		PushNotifications bool `json:"push_notifications"`
	}
)
