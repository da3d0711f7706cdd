package middleware

import (
	"net/http"

	"osas/clubport/internal/auth"
	"osas/clubport/internal/constants"
	"osas/clubport/internal/guard"
	"osas/clubport/internal/routes"
)

// RequireAuth rejects requests that carry no authenticated session.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.GetSession(r.Context()).Authenticated() {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRoles gates an API group on the caller's effective role, resolving
// student officers through the membership resolver exactly like page
// navigation does.
func RequireRoles(resolver *guard.Resolver, allowed ...constants.Role) func(http.Handler) http.Handler {
	roleStrings := make([]string, len(allowed))
	for i, role := range allowed {
		roleStrings[i] = role.String()
	}
	gate := &routes.Route{
		Name: "api-gate",
		Meta: routes.Meta{RequiresAuth: true, Roles: roleStrings},
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := auth.GetSession(r.Context())
			if !sess.Authenticated() {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			effective := resolver.EffectiveRole(r.Context(), sess, gate)
			if !gate.AllowsRole(effective.String()) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
