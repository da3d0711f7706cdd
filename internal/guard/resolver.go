package guard

import (
	"context"
	"strconv"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"osas/clubport/internal/constants"
	"osas/clubport/internal/logging"
	"osas/clubport/internal/metrics"
	"osas/clubport/internal/routes"
	"osas/clubport/internal/session"
)

// Membership is one club membership row for a user. Role is the free-form
// club title ("President", "member", ...); officer status is derived from it.
type Membership struct {
	ClubID int64  `json:"club_id"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// MembershipSource fetches the club memberships of a user from the upstream
// portal API.
type MembershipSource interface {
	UserClubs(ctx context.Context, userID int64) ([]Membership, error)
}

// Resolver computes the effective role used for authorization checks. A base
// role other than "student" passes through untouched; a student is upgraded
// to "student_officer" when any club membership carries an officer title.
//
// Membership lists are cached per user id until explicitly invalidated, and
// concurrent lookups for the same user collapse into a single upstream
// request.
type Resolver struct {
	source  MembershipSource
	cache   *gocache.Cache
	group   singleflight.Group
	metrics *metrics.MetricsRegistry
}

func NewResolver(source MembershipSource, reg *metrics.MetricsRegistry) *Resolver {
	return &Resolver{
		source: source,
		// Entries live until a forced refresh drops them.
		cache:   gocache.New(gocache.NoExpiration, 0),
		metrics: reg,
	}
}

// EffectiveRole resolves the role the guard should authorize against for a
// navigation to the given route. It never fails: an unreachable membership
// endpoint degrades to the conservative "student" answer.
func (r *Resolver) EffectiveRole(ctx context.Context, sess *session.Session, to *routes.Route) constants.Role {
	base := sess.BaseRole()
	if base != constants.RoleStudent {
		return base
	}
	if !officerResolutionNeeded(to) {
		return base
	}

	for _, m := range r.Memberships(ctx, sess.UserID()) {
		if constants.IsOfficerTitle(m.Role) {
			return constants.RoleStudentOfficer
		}
	}
	return constants.RoleStudent
}

// officerResolutionNeeded reports whether the target route can distinguish a
// student officer from a plain student. Routes that can't skip the
// membership lookup entirely.
func officerResolutionNeeded(to *routes.Route) bool {
	if to == nil {
		return false
	}
	if to.Name == constants.RouteClubsOrg {
		return true
	}
	return to.DeclaresRole(constants.RoleStudentOfficer.String())
}

// Memberships returns the cached membership list for a user, fetching it
// once on a miss. Fetch failures are swallowed and yield an empty list so a
// broken upstream can never block navigation.
func (r *Resolver) Memberships(ctx context.Context, userID int64) []Membership {
	if userID == 0 {
		return nil
	}
	key := membershipKey(userID)

	if v, ok := r.cache.Get(key); ok {
		if ms, ok := v.([]Membership); ok {
			if r.metrics != nil {
				r.metrics.MembershipCacheHits.Inc()
			}
			return ms
		}
	}
	if r.metrics != nil {
		r.metrics.MembershipCacheMisses.Inc()
	}

	v, err, _ := r.group.Do(key, func() (interface{}, error) {
		ms, err := r.source.UserClubs(ctx, userID)
		if err != nil {
			return nil, err
		}
		r.cache.Set(key, ms, gocache.NoExpiration)
		return ms, nil
	})
	if err != nil {
		if r.metrics != nil {
			r.metrics.MembershipFetchTotal.WithLabelValues("error").Inc()
		}
		logging.Warn("club membership fetch failed", "user_id", userID, "error", err.Error())
		return nil
	}
	if r.metrics != nil {
		r.metrics.MembershipFetchTotal.WithLabelValues("ok").Inc()
	}
	return v.([]Membership)
}

// Warm pre-populates the membership cache for a user so a later
// officer-gated navigation doesn't pay the round trip.
func (r *Resolver) Warm(ctx context.Context, userID int64) {
	r.Memberships(ctx, userID)
}

// Invalidate drops the cached membership list for a user, forcing the next
// resolution to refetch.
func (r *Resolver) Invalidate(userID int64) {
	r.cache.Delete(membershipKey(userID))
}

func membershipKey(userID int64) string {
	return "user_clubs:" + strconv.FormatInt(userID, 10)
}
