package handlers

import (
	"FoodBridge/domain"
	"FoodBridge/internal/api/presenters"
	"FoodBridge/pkg/mission"
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MissionHandler interface {
		RequestDonation(c *fiber.Ctx) error
		GetNGORequests(c *fiber.Ctx) error
		GetAvailableMissions(c *fiber.Ctx) error
		GetVolunteerMissions(c *fiber.Ctx) error
		AcceptMission(c *fiber.Ctx) error
		MarkPickedUp(c *fiber.Ctx) error
		MarkDelivered(c *fiber.Ctx) error
	}

	missionHandler struct {
		missionService mission.MissionService
		validator      *validator.Validate
	}
)

func NewMissionHandler(missionService mission.MissionService, validator *validator.Validate) MissionHandler {
	return &missionHandler{
		missionService: missionService,
		validator:      validator,
	}
}

func (h *missionHandler) RequestDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.RequestDonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRequestDonation, err)
	}

	res, err := h.missionService.RequestDonation(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedRequestDonation, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRequestDonation)
}

func (h *missionHandler) GetNGORequests(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	missions, err := h.missionService.GetNGORequests(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetMissions, err)
	}
	return presenters.SuccessResponse(c, missions, fiber.StatusOK, domain.MessageSuccessGetMissions)
}

func (h *missionHandler) GetAvailableMissions(c *fiber.Ctx) error {
	missions, err := h.missionService.GetAvailableMissions(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetMissions, err)
	}
	return presenters.SuccessResponse(c, missions, fiber.StatusOK, domain.MessageSuccessGetMissions)
}

func (h *missionHandler) GetVolunteerMissions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	missions, err := h.missionService.GetVolunteerMissions(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetMissions, err)
	}
	return presenters.SuccessResponse(c, missions, fiber.StatusOK, domain.MessageSuccessGetMissions)
}

type missionStep func(ctx context.Context, id string, userID string) (*domain.Mission, error)

func (h *missionHandler) step(c *fiber.Ctx, fn missionStep) error {
	userID := c.Locals("user_id").(string)

	res, err := fn(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateMission, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMission)
}

func (h *missionHandler) AcceptMission(c *fiber.Ctx) error {
	return h.step(c, h.missionService.AcceptMission)
}

func (h *missionHandler) MarkPickedUp(c *fiber.Ctx) error {
	return h.step(c, h.missionService.MarkPickedUp)
}

func (h *missionHandler) MarkDelivered(c *fiber.Ctx) error {
	return h.step(c, h.missionService.MarkDelivered)
}
