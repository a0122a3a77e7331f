package handlers

import (
	"FoodBridge/domain"
	"FoodBridge/internal/api/presenters"
	"FoodBridge/pkg/settings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SettingsHandler interface {
		GetSettings(c *fiber.Ctx) error
		UpdateSetting(c *fiber.Ctx) error
	}

	settingsHandler struct {
		settingsService settings.SettingsService
		validator       *validator.Validate
	}
)

func NewSettingsHandler(settingsService settings.SettingsService, validator *validator.Validate) SettingsHandler {
	return &settingsHandler{
		settingsService: settingsService,
		validator:       validator,
	}
}

func (h *settingsHandler) GetSettings(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.settingsService.GetSettings(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetSettings, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSettings)
}

func (h *settingsHandler) UpdateSetting(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.UpdateSettingRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSetting, err)
	}

	res, err := h.settingsService.UpdateSetting(c.Context(), userID, req.Section, req.Key, req.Value)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateSetting, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateSetting)
}
