package guard

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"osas/clubport/internal/constants"
	"osas/clubport/internal/routes"
)

func officerRoute(t *testing.T) *routes.Route {
	t.Helper()
	rt, ok := routes.NewTable().ByName(constants.RouteActivityDesigns)
	if !ok {
		t.Fatal("activity designs route missing from table")
	}
	return rt
}

func TestEffectiveRolePassesNonStudentsThrough(t *testing.T) {
	src := &fakeMembershipSource{}
	r := NewResolver(src, nil)

	for _, role := range []constants.Role{constants.RoleAdmin, constants.RoleManager} {
		got := r.EffectiveRole(context.Background(), sessionFor(role), officerRoute(t))
		if got != role {
			t.Errorf("role %q: expected passthrough, got %q", role, got)
		}
	}
	if src.calls != 0 {
		t.Fatalf("non-students must not trigger membership fetches, got %d", src.calls)
	}
}

func TestEffectiveRoleSkipsLookupWhenRouteCannotDistinguish(t *testing.T) {
	src := &fakeMembershipSource{}
	r := NewResolver(src, nil)

	profile, _ := routes.NewTable().ByName(constants.RouteProfile)
	got := r.EffectiveRole(context.Background(), sessionFor(constants.RoleStudent), profile)
	if got != constants.RoleStudent {
		t.Fatalf("expected student, got %q", got)
	}
	if src.calls != 0 {
		t.Fatalf("roles-less route must not trigger membership fetch, got %d calls", src.calls)
	}
}

func TestOfficerTitlesAreCaseInsensitive(t *testing.T) {
	titles := []string{"President", "PRESIDENT", "vice-president", "Secretary", " secretary "}
	for _, title := range titles {
		src := &fakeMembershipSource{memberships: map[int64][]Membership{
			42: {{ClubID: 1, Role: title, Status: "active"}},
		}}
		r := NewResolver(src, nil)

		got := r.EffectiveRole(context.Background(), sessionFor(constants.RoleStudent), officerRoute(t))
		if got != constants.RoleStudentOfficer {
			t.Errorf("title %q: expected student_officer, got %q", title, got)
		}
	}
}

func TestNonOfficerTitlesDoNotUpgrade(t *testing.T) {
	src := &fakeMembershipSource{memberships: map[int64][]Membership{
		42: {{ClubID: 1, Role: "member"}, {ClubID: 2, Role: "treasurer"}},
	}}
	r := NewResolver(src, nil)

	got := r.EffectiveRole(context.Background(), sessionFor(constants.RoleStudent), officerRoute(t))
	if got != constants.RoleStudent {
		t.Fatalf("expected student, got %q", got)
	}
}

func TestMembershipsAreCachedUntilInvalidated(t *testing.T) {
	src := &fakeMembershipSource{memberships: map[int64][]Membership{
		42: {{ClubID: 1, Role: "President"}},
	}}
	r := NewResolver(src, nil)

	for i := 0; i < 5; i++ {
		r.Memberships(context.Background(), 42)
	}
	if src.calls != 1 {
		t.Fatalf("expected one upstream fetch, got %d", src.calls)
	}

	r.Invalidate(42)
	r.Memberships(context.Background(), 42)
	if src.calls != 2 {
		t.Fatalf("expected refetch after invalidation, got %d calls", src.calls)
	}
}

func TestFetchFailureYieldsEmptyAndIsNotCached(t *testing.T) {
	src := &fakeMembershipSource{err: errors.New("boom")}
	r := NewResolver(src, nil)

	if ms := r.Memberships(context.Background(), 42); len(ms) != 0 {
		t.Fatalf("expected empty memberships on failure, got %v", ms)
	}

	// Upstream recovers; the next lookup must go through.
	src.err = nil
	src.memberships = map[int64][]Membership{42: {{ClubID: 1, Role: "Secretary"}}}
	if ms := r.Memberships(context.Background(), 42); len(ms) != 1 {
		t.Fatalf("expected fetch after recovery, got %v", ms)
	}
}

func TestZeroUserIDShortCircuits(t *testing.T) {
	src := &fakeMembershipSource{}
	r := NewResolver(src, nil)

	if ms := r.Memberships(context.Background(), 0); ms != nil {
		t.Fatalf("expected nil for zero user id, got %v", ms)
	}
	if src.calls != 0 {
		t.Fatalf("zero user id must not hit upstream, got %d calls", src.calls)
	}
}

type slowSource struct {
	calls int64
}

func (s *slowSource) UserClubs(ctx context.Context, userID int64) ([]Membership, error) {
	atomic.AddInt64(&s.calls, 1)
	time.Sleep(20 * time.Millisecond)
	return []Membership{{ClubID: 1, Role: "President"}}, nil
}

func TestConcurrentLookupsCollapseIntoOneFetch(t *testing.T) {
	src := &slowSource{}
	r := NewResolver(src, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Memberships(context.Background(), 42)
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt64(&src.calls); n != 1 {
		t.Fatalf("expected singleflight to collapse to one fetch, got %d", n)
	}
}

func TestWarmPopulatesCache(t *testing.T) {
	src := &fakeMembershipSource{memberships: map[int64][]Membership{
		42: {{ClubID: 1, Role: "member"}},
	}}
	r := NewResolver(src, nil)

	r.Warm(context.Background(), 42)
	r.Memberships(context.Background(), 42)
	if src.calls != 1 {
		t.Fatalf("expected warm to prefill cache, got %d calls", src.calls)
	}
}
