package notification

import (
	"FoodBridge/domain"
	"FoodBridge/pkg/settings"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

type (
	// Harness drives the manual notification check page: a scripted burst of
	// notifications and a push on/off switch.
	Harness interface {
		RunTestSequence(userID string) []domain.ScheduledNotification
		TogglePushNotifications(ctx context.Context, userID string) (bool, error)
		Close()
	}

	waitFunc func(ctx context.Context, d time.Duration) error

	harness struct {
		notifier NotificationService
		settings settings.SettingsService
		wait     waitFunc

		ctx    context.Context
		cancel context.CancelFunc
		mu     sync.Mutex
		closed bool
		wg     sync.WaitGroup
	}

	HarnessOption func(*harness)
)

// TestSequence is enqueued in this order, each entry Delay after the trigger.
func TestSequence() []domain.ScheduledNotification {
	return []domain.ScheduledNotification{
		scheduled(0, domain.NotificationSuccess, "Donation Posted", "Your food donation is now visible to nearby NGOs.", 5000*time.Millisecond),
		scheduled(500*time.Millisecond, domain.NotificationError, "Pickup Failed", "The volunteer could not reach the pickup location.", 6000*time.Millisecond),
		scheduled(1000*time.Millisecond, domain.NotificationWarning, "Food Expiring Soon", "Some donated items expire within 24 hours.", 4000*time.Millisecond),
		scheduled(1500*time.Millisecond, domain.NotificationInfo, "New Mission Nearby", "A pickup mission is available close to you.", 3000*time.Millisecond),
	}
}

func scheduled(delay time.Duration, typ, title, message string, duration time.Duration) domain.ScheduledNotification {
	return domain.ScheduledNotification{
		Delay:   delay,
		DelayMs: delay.Milliseconds(),
		Request: domain.AddNotificationRequest{
			Type:       typ,
			Title:      title,
			Message:    message,
			Duration:   duration,
			DurationMs: duration.Milliseconds(),
		},
	}
}

func withWait(w waitFunc) HarnessOption {
	return func(h *harness) {
		h.wait = w
	}
}

func NewHarness(notifier NotificationService, settingsService settings.SettingsService, opts ...HarnessOption) Harness {
	ctx, cancel := context.WithCancel(context.Background())
	h := &harness{
		notifier: notifier,
		settings: settingsService,
		wait:     sleep,
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RunTestSequence returns immediately; one goroutine enqueues the sequence in order.
// Pending entries are dropped when the harness is closed, and a closed harness
// only returns the plan.
func (h *harness) RunTestSequence(userID string) []domain.ScheduledNotification {
	sequence := TestSequence()

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		log.Debugf("test notifications for %s not started: harness closed", userID)
		return sequence
	}
	h.wg.Add(1)
	h.mu.Unlock()

	go func() {
		defer h.wg.Done()

		var elapsed time.Duration
		for _, item := range sequence {
			if err := h.wait(h.ctx, item.Delay-elapsed); err != nil {
				log.Debugf("test notifications for %s stopped: %v", userID, err)
				return
			}
			elapsed = item.Delay

			if _, err := h.notifier.AddNotification(h.ctx, userID, item.Request); err != nil {
				if errors.Is(err, domain.ErrNotificationsMuted) {
					log.Infof("test notification %q muted for %s", item.Request.Title, userID)
					continue
				}
				log.Errorf("test notification %q for %s: %v", item.Request.Title, userID, err)
			}
		}
	}()

	return sequence
}

func (h *harness) TogglePushNotifications(ctx context.Context, userID string) (bool, error) {
	current := settings.BoolSetting(ctx, h.settings, userID, domain.SettingsSectionNotifications, domain.SettingPushNotifications)
	updated, err := h.settings.UpdateSetting(ctx, userID, domain.SettingsSectionNotifications, domain.SettingPushNotifications, !current)
	if err != nil {
		return current, fmt.Errorf("toggle push notifications: %w", err)
	}
	value, _ := updated[domain.SettingsSectionNotifications][domain.SettingPushNotifications].(bool)
	return value, nil
}

func (h *harness) Close() {
	h.mu.Lock()
	h.closed = true
	h.cancel()
	h.mu.Unlock()
	h.wg.Wait()
}
