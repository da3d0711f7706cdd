package guard

import (
	"context"

	"osas/clubport/internal/routes"
	"osas/clubport/internal/session"
)

// ProceedFunc is the continuation handed to the guard by its host router.
// Calling it with nil lets the transition through; calling it with a route
// redirects there instead.
type ProceedFunc func(redirect *routes.Route)

// BeforeEach is the pre-navigation hook surface: it authorizes the
// transition and invokes proceed with the outcome. Unknown redirect targets
// fall back to allowing the transition so a table mismatch can't trap the
// user.
func (g *Guard) BeforeEach(ctx context.Context, sess *session.Session, to, from *routes.Route, proceed ProceedFunc) {
	d := g.Authorize(ctx, from, to, sess)
	if d.Allowed() {
		proceed(nil)
		return
	}
	if target, ok := g.table.ByName(d.Redirect); ok {
		proceed(target)
		return
	}
	proceed(nil)
}
