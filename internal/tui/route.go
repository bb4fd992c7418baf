package tui

// Route identifies the active top-level page. Exactly one route is active at
// any time; there is no way to represent an unknown page.
type Route int

const (
	RouteHome Route = iota
	RouteAbout
	RouteContact
)

// Title returns the navigation label for r.
func (r Route) Title() string {
	switch r {
	case RouteAbout:
		return "About"
	case RouteContact:
		return "Contact"
	default:
		return "Home"
	}
}

// Path returns the logical path for r, mirroring the navigation surface of
// the web storefront this client fronts.
func (r Route) Path() string {
	switch r {
	case RouteAbout:
		return "/about"
	case RouteContact:
		return "/contact"
	default:
		return "/"
	}
}

func routes() []Route {
	return []Route{RouteHome, RouteAbout, RouteContact}
}

func (r Route) next() Route {
	switch r {
	case RouteHome:
		return RouteAbout
	case RouteAbout:
		return RouteContact
	default:
		return RouteHome
	}
}
