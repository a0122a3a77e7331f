package handlers

import (
	"FoodBridge/domain"
	"FoodBridge/internal/api/presenters"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var notFoundShortcuts = []domain.NavLink{
	{Label: "Donate Food", Href: "/donor/donate"},
	{Label: "Available Donations", Href: "/donations"},
	{Label: "My Missions", Href: "/volunteer/missions"},
	{Label: "Sign In", Href: domain.RouteSignIn},
}

// NotFound answers every route nothing else matched.
func NotFound(c *fiber.Ctx) error {
	back := backLink(c.Get(fiber.HeaderReferer), c.Hostname())

	shortcuts := make([]domain.NavLink, len(notFoundShortcuts))
	copy(shortcuts, notFoundShortcuts)

	return c.Status(fiber.StatusNotFound).JSON(presenters.Response{
		Status:  false,
		Message: domain.MessageRouteNotFound,
		Data: domain.NotFoundResponse{
			Message:   domain.MessageRouteNotFound,
			Path:      c.Path(),
			Home:      domain.NavLink{Label: "Go Home", Href: domain.RouteHome},
			Back:      domain.NavLink{Label: "Go Back", Href: back},
			Shortcuts: shortcuts,
		},
	})
}

// backLink keeps the Referer only when it points into this site, reduced to a path.
func backLink(referer, host string) string {
	u, err := url.Parse(referer)
	if referer == "" || err != nil || u.Opaque != "" {
		return domain.RouteHome
	}
	if u.Scheme != "" || u.Host != "" {
		if !strings.EqualFold(u.Host, host) || (u.Scheme != "http" && u.Scheme != "https") {
			return domain.RouteHome
		}
	}

	path := u.EscapedPath()
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.Contains(path, "\\") {
		return domain.RouteHome
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return path
}
