package guard

import (
	"context"
	"testing"

	"osas/clubport/internal/constants"
	"osas/clubport/internal/routes"
)

func TestBeforeEachProceedsWhenAllowed(t *testing.T) {
	g := newTestGuard(&fakeMembershipSource{}, nil)

	var got *routes.Route
	called := false
	g.BeforeEach(context.Background(), sessionFor(constants.RoleAdmin),
		route(t, g, constants.RouteDashboard), nil, func(redirect *routes.Route) {
			called = true
			got = redirect
		})

	if !called {
		t.Fatal("proceed never invoked")
	}
	if got != nil {
		t.Fatalf("expected nil redirect, got %+v", got)
	}
}

func TestBeforeEachRedirectsWithResolvedRoute(t *testing.T) {
	g := newTestGuard(&fakeMembershipSource{}, nil)

	var got *routes.Route
	g.BeforeEach(context.Background(), nil,
		route(t, g, constants.RouteDashboard), nil, func(redirect *routes.Route) {
			got = redirect
		})

	if got == nil || got.Name != constants.RouteLogin {
		t.Fatalf("expected redirect to login route, got %+v", got)
	}
}
