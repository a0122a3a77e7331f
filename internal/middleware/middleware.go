package middleware

import (
	"FoodBridge/domain"
	"FoodBridge/internal/api/presenters"
	"FoodBridge/pkg/jwt"
	"FoodBridge/pkg/layout"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		OptionalAuth(jwtService jwt.JWTService) fiber.Handler
		OnlyAllow(roles ...string) fiber.Handler
		VolunteerShell(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct {
		allowOrigins string
	}
)

func NewMiddleware(allowOrigins string) Middleware {
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	return &middleware{allowOrigins: allowOrigins}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: m.allowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	})
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		userID, role, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("user_id", userID)
		c.Locals("role", role)
		return c.Next()
	}
}

// OptionalAuth sets user_id and role when a valid token is present and never rejects.
func (m *middleware) OptionalAuth(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			if userID, role, err := jwtService.GetUserIDByToken(token); err == nil {
				c.Locals("user_id", userID)
				c.Locals("role", role)
			}
		}
		return c.Next()
	}
}

// OnlyAllow must run after AuthMiddleware.
func (m *middleware) OnlyAllow(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MesaageUserNotAllowed, domain.ErrUserNotAllowed)
	}
}

// VolunteerShell gates the volunteer area. The decision is recomputed from the token on
// every request; unauthorized callers get the redirect target and nothing else.
func (m *middleware) VolunteerShell(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := layout.AuthState{}
		if token := bearerToken(c); token != "" {
			if userID, role, err := jwtService.GetUserIDByToken(token); err == nil {
				state.Authenticated = true
				state.Role = role
				c.Locals("user_id", userID)
				c.Locals("role", role)
			}
		}

		decision := layout.Resolve(state)
		if decision.State != layout.StateAuthorized {
			return RespondLayout(c, decision)
		}
		c.Locals("layout", decision)
		return c.Next()
	}
}

// RespondLayout writes a non-authorized decision: 401 towards sign-in, 403 towards home.
func RespondLayout(c *fiber.Ctx, decision domain.LayoutDecision) error {
	switch decision.State {
	case layout.StateLoading:
		return presenters.SuccessResponse(c, decision, fiber.StatusAccepted, domain.MessageLayoutLoading)
	case layout.StateUnauthorized:
		status := fiber.StatusForbidden
		if decision.RedirectTo == domain.RouteSignIn {
			status = fiber.StatusUnauthorized
		}
		c.Set(fiber.HeaderLocation, decision.RedirectTo)
		return c.Status(status).JSON(presenters.Response{
			Status:  false,
			Message: domain.MessageLayoutUnauthorized,
			Data:    decision,
		})
	default:
		return presenters.SuccessResponse(c, decision, fiber.StatusOK, domain.MessageLayoutAuthorized)
	}
}
