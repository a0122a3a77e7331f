// Package layout decides what the volunteer area shows for the current session.
package layout

import "FoodBridge/domain"

const (
	StateLoading      = "loading"
	StateUnauthorized = "unauthorized"
	StateAuthorized   = "authorized"
)

// AuthState is the live view of the auth collaborator.
type AuthState struct {
	Loading       bool
	Authenticated bool
	Role          string
}

var (
	commonLinks = []domain.NavLink{
		{Label: "Dashboard", Href: "/volunteer"},
		{Label: "Available Donations", Href: "/volunteer/donations"},
	}
	roleLinks = map[string][]domain.NavLink{
		domain.RoleVolunteer: {{Label: "My Missions", Href: "/volunteer/missions"}},
		domain.RoleNGO:       {{Label: "My Requests", Href: "/ngo/requests"}},
	}
	trailingLinks = []domain.NavLink{
		{Label: "Activity", Href: "/activity"},
	}
)

// Resolve maps an auth state to loading, unauthorized (with a redirect) or authorized
// (with role-aware navigation).
func Resolve(state AuthState) domain.LayoutDecision {
	if state.Loading {
		return domain.LayoutDecision{State: StateLoading}
	}
	if !state.Authenticated {
		return domain.LayoutDecision{State: StateUnauthorized, RedirectTo: domain.RouteSignIn}
	}

	links, ok := roleLinks[state.Role]
	if !ok {
		return domain.LayoutDecision{State: StateUnauthorized, RedirectTo: domain.RouteHome, Role: state.Role}
	}

	nav := make([]domain.NavLink, 0, len(commonLinks)+len(links)+len(trailingLinks))
	nav = append(nav, commonLinks...)
	nav = append(nav, links...)
	nav = append(nav, trailingLinks...)
	return domain.LayoutDecision{
		State:    StateAuthorized,
		Role:     state.Role,
		NavLinks: nav,
	}
}
