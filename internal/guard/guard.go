// Package guard admits or rejects navigation to protected console sections.
// Decisions are made synchronously from already-loaded session state; the
// guard never performs I/O. It is a UX convenience, not a security boundary:
// the server re-checks every call.
package guard

import (
	"strings"
	"time"

	"github.com/shahidulislam-dev/warehouse-console/internal/auth"
	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
	"github.com/shahidulislam-dev/warehouse-console/internal/session"
)

// Route declares a protected section by path prefix and the roles allowed
// into it. An empty Roles slice admits any authenticated role.
type Route struct {
	Path  string
	Roles []domain.Role
}

// Decision is the outcome of one navigation attempt.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// DefaultRoutes mirrors the console's top-level routing table: each role has
// its own section, auth screens are open.
func DefaultRoutes() []Route {
	return []Route{
		{Path: "/super-admin", Roles: []domain.Role{domain.RoleSuperAdmin}},
		{Path: "/admin", Roles: []domain.Role{domain.RoleAdmin}},
		{Path: "/user", Roles: []domain.Role{domain.RoleStaff}},
	}
}

// Guard checks navigation attempts against the session.
type Guard struct {
	session *session.Store
	routes  []Route
}

// New builds a guard over the session. A nil routes slice uses
// DefaultRoutes.
func New(store *session.Store, routes []Route) *Guard {
	if routes == nil {
		routes = DefaultRoutes()
	}
	return &Guard{session: store, routes: routes}
}

// CheckRoute decides one navigation attempt against an explicit route
// declaration. Unauthenticated always redirects to login; a role outside the
// route's set redirects to that role's own dashboard.
func (g *Guard) CheckRoute(route Route, now time.Time) Decision {
	if !g.session.IsAuthenticated(now) {
		return Decision{RedirectTo: auth.LoginRoute}
	}

	if len(route.Roles) > 0 {
		role := g.session.CurrentRole()
		allowed := false
		for _, r := range route.Roles {
			if r == role {
				allowed = true
				break
			}
		}
		if !allowed {
			return Decision{RedirectTo: auth.DashboardRoute(role)}
		}
	}

	return Decision{Allowed: true}
}

// CheckPath resolves path against the route table by longest matching prefix
// and decides the attempt. Auth screens are always admitted; paths matching
// no declaration redirect to login, matching the routing table's wildcard.
func (g *Guard) CheckPath(path string, now time.Time) Decision {
	if path == auth.LoginRoute || strings.HasPrefix(path, "/auth/") || path == "/auth" {
		return Decision{Allowed: true}
	}

	var match *Route
	for i := range g.routes {
		r := &g.routes[i]
		if !pathHasPrefix(path, r.Path) {
			continue
		}
		if match == nil || len(r.Path) > len(match.Path) {
			match = r
		}
	}
	if match == nil {
		return Decision{RedirectTo: auth.LoginRoute}
	}
	return g.CheckRoute(*match, now)
}

// pathHasPrefix matches on whole path segments, so "/user" does not capture
// "/users-export".
func pathHasPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}
