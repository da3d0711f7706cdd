package guard

import (
	"context"

	"osas/clubport/internal/constants"
	"osas/clubport/internal/metrics"
	"osas/clubport/internal/routes"
	"osas/clubport/internal/session"
)

// RoleCheck is the answer of the upstream role-check endpoint.
type RoleCheck struct {
	Role constants.Role
	User *session.User
}

// RoleChecker performs the best-effort role lookup used when a session has a
// token but no populated user role yet.
type RoleChecker interface {
	CheckRole(ctx context.Context, token string) (RoleCheck, error)
}

// Guard authorizes navigation attempts against the route table. It never
// returns an error: every upstream failure degrades to the least privileged
// verdict instead of blocking the navigation pipeline.
type Guard struct {
	table    *routes.Table
	resolver *Resolver
	roles    RoleChecker // optional
	metrics  *metrics.MetricsRegistry
}

func New(table *routes.Table, resolver *Resolver, roles RoleChecker, reg *metrics.MetricsRegistry) *Guard {
	return &Guard{table: table, resolver: resolver, roles: roles, metrics: reg}
}

// Table returns the route table the guard authorizes against.
func (g *Guard) Table() *routes.Table { return g.table }

// Authorize decides a navigation from one route to another under the given
// session snapshot.
func (g *Guard) Authorize(ctx context.Context, from, to *routes.Route, sess *session.Session) Decision {
	d := g.authorize(ctx, to, sess)
	if g.metrics != nil {
		name := constants.RouteNotFound
		if to != nil {
			name = to.Name
		}
		outcome := "proceed"
		if !d.Allowed() {
			outcome = "redirect:" + d.Redirect
		}
		g.metrics.GuardDecisionsTotal.WithLabelValues(name, outcome).Inc()
	}
	return d
}

func (g *Guard) authorize(ctx context.Context, to *routes.Route, sess *session.Session) Decision {
	// 1. No active session: anonymous pages pass, everything else goes to
	// the login screen.
	if !sess.Authenticated() {
		if isAnonymous(to) {
			return Proceed
		}
		return RedirectTo(constants.RouteLogin)
	}

	// 2. Token without a role: ask the auth service once, tolerate failure
	// and continue with whatever we have.
	if sess.BaseRole() == "" && g.roles != nil {
		if rc, err := g.roles.CheckRole(ctx, sess.Token); err == nil {
			if sess.User == nil {
				sess.User = rc.User
			}
			if sess.User != nil && sess.User.Role == "" {
				sess.User.Role = rc.Role
			}
		}
	}

	base := sess.BaseRole()
	home := constants.RouteDashboard
	if base == constants.RoleStudent {
		home = constants.RouteStudentDashboard
	}

	// 3. Authenticated users never see the login/registration pages.
	if isAnonymous(to) {
		return RedirectTo(home)
	}

	// Warm the membership cache for students so the first officer-gated
	// navigation doesn't pay an extra round trip.
	if base == constants.RoleStudent {
		g.resolver.Warm(ctx, sess.UserID())
	}

	// 4. Role-restricted target: authorize the effective role against the
	// declared set.
	if to != nil && to.Meta.RequiresAuth && len(to.Meta.Roles) > 0 {
		effective := g.resolver.EffectiveRole(ctx, sess, to)
		if !to.AllowsRole(effective.String()) {
			return RedirectTo(home)
		}
		return Proceed
	}

	// 5. Students are steered off the admin dashboard even though that
	// route declares no role restriction.
	if to != nil && to.Name == constants.RouteDashboard && base == constants.RoleStudent {
		return RedirectTo(constants.RouteStudentDashboard)
	}

	return Proceed
}

// isAnonymous reports whether the target is reachable without (or only
// without) an authenticated session.
func isAnonymous(to *routes.Route) bool {
	if to == nil {
		return false
	}
	return to.Meta.Public || constants.AnonymousPages[to.Name]
}
