package handlers

import (
	"FoodBridge/domain"
	"FoodBridge/internal/utils/storage"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidExpiryDate),
		errors.Is(err, domain.ErrMissingFoodName),
		errors.Is(err, domain.ErrEmptyImage),
		errors.Is(err, domain.ErrInvalidNotificationType),
		errors.Is(err, domain.ErrInvalidNotificationDuration),
		errors.Is(err, domain.ErrUnknownSetting),
		errors.Is(err, domain.ErrInvalidSettingValue),
		errors.Is(err, storage.ErrFileTypeNotAllowed):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUnauthorizedDonationAccess),
		errors.Is(err, domain.ErrUnauthorizedMissionAccess),
		errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrDonationNotFound),
		errors.Is(err, domain.ErrMissionNotFound),
		errors.Is(err, domain.ErrNGOProfileNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrDonationNotAvailable),
		errors.Is(err, domain.ErrInvalidMissionTransition),
		errors.Is(err, domain.ErrNotificationsMuted):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrModelNotLoaded):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func pagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
