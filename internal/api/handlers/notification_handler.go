package handlers

import (
	"FoodBridge/domain"
	"FoodBridge/internal/api/presenters"
	"FoodBridge/pkg/notification"

	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetNotifications(c *fiber.Ctx) error
		DismissNotification(c *fiber.Ctx) error
		RunTestSequence(c *fiber.Ctx) error
		TogglePushNotifications(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
		harness             notification.Harness
	}
)

func NewNotificationHandler(notificationService notification.NotificationService, harness notification.Harness) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		harness:             harness,
	}
}

func (h *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	notifications, err := h.notificationService.GetNotifications(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetNotifications, err)
	}
	return presenters.SuccessResponse(c, notifications, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) DismissNotification(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.notificationService.DismissNotification(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDismissNotification, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDismissNotification)
}

// RunTestSequence answers before the notifications arrive; the body lists what was scheduled.
func (h *notificationHandler) RunTestSequence(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	scheduled := h.harness.RunTestSequence(userID)
	return presenters.SuccessResponse(c, scheduled, fiber.StatusAccepted, domain.MessageSuccessTestNotifications)
}

func (h *notificationHandler) TogglePushNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	enabled, err := h.harness.TogglePushNotifications(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedTogglePush, err)
	}
	return presenters.SuccessResponse(c, domain.TogglePushResponse{PushNotifications: enabled}, fiber.StatusOK, domain.MessageSuccessTogglePush)
}
