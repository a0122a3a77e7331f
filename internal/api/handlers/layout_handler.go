package handlers

import (
	"FoodBridge/domain"
	"FoodBridge/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type (
	LayoutHandler interface {
		VolunteerLayout(c *fiber.Ctx) error
	}

	layoutHandler struct{}
)

func NewLayoutHandler() LayoutHandler {
	return &layoutHandler{}
}

// VolunteerLayout runs behind middleware.VolunteerShell, which only lets authorized
// callers through.
func (h *layoutHandler) VolunteerLayout(c *fiber.Ctx) error {
	decision, _ := c.Locals("layout").(domain.LayoutDecision)
	return middleware.RespondLayout(c, decision)
}
