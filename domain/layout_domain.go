package domain

const (
	RouteHome   = "/"
	RouteSignIn = "/auth/signin"
)

var (
	MessageLayoutLoading      = "authentication is still resolving"
	MessageLayoutUnauthorized = "you are not allowed to access the volunteer area"
	MessageLayoutAuthorized   = "volunteer area layout resolved"
)

type (
	NavLink struct {
		Label string `json:"label"`
		Href  string `json:"href"`
	}

	LayoutDecision struct {
		State      string    `json:"state"` // loading, unauthorized, authorized
		RedirectTo string    `json:"redirect_to,omitempty"`
		Role       string    `json:"role,omitempty"`
		NavLinks   []NavLink `json:"nav_links,omitempty"`
	}

	NotFoundResponse struct {
		Message   string    `json:"message"`
		Path      string    `json:"path"`
		Home      NavLink   `json:"home"`
		Back      NavLink   `json:"back"`
		Shortcuts []NavLink `json:"shortcuts"`
	}
)
