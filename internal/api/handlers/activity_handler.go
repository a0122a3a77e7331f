package handlers

import (
	"FoodBridge/domain"
	"FoodBridge/internal/api/presenters"
	"FoodBridge/pkg/activity"

	"github.com/gofiber/fiber/v2"
)

type (
	ActivityHandler interface {
		GetActivityFeed(c *fiber.Ctx) error
	}

	activityHandler struct {
		activityService activity.ActivityService
	}
)

func NewActivityHandler(activityService activity.ActivityService) ActivityHandler {
	return &activityHandler{activityService: activityService}
}

// GetActivityFeed always reads the feed of the caller's token, newest first.
func (h *activityHandler) GetActivityFeed(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	feed, err := h.activityService.GetActivityFeed(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetActivities, err)
	}
	return presenters.SuccessResponse(c, feed, fiber.StatusOK, domain.MessageSuccessGetActivities)
}
