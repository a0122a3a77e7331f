package handlers

import (
	"FoodBridge/domain"
	"FoodBridge/internal/api/presenters"
	"FoodBridge/pkg/donation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		CreateDonation(c *fiber.Ctx) error
		ListAvailableDonations(c *fiber.Ctx) error
		GetUserDonations(c *fiber.Ctx) error
		GetDonationByID(c *fiber.Ctx) error
		CancelDonation(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func (h *donationHandler) CreateDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.DonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.FoodImage, _ = c.FormFile("food_image")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	res, err := h.donationService.CreateDonation(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCreateDonation, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) ListAvailableDonations(c *fiber.Ctx) error {
	page, limit := pagination(c)

	donations, total, err := h.donationService.ListAvailableDonations(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetDonations, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{
		"donations":  donations,
		"pagination": domain.NewPagination(page, limit, total),
	}, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetUserDonations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, limit := pagination(c)

	donations, total, err := h.donationService.GetUserDonations(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetDonations, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{
		"donations":  donations,
		"pagination": domain.NewPagination(page, limit, total),
	}, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetDonationByID(c *fiber.Ctx) error {
	res, err := h.donationService.GetDonationByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetDonations, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) CancelDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.donationService.CancelDonation(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCancelDonation, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCancelDonation)
}
