package services

import (
	"context"
	"errors"

	"osas/clubport/internal/auth"
	"osas/clubport/internal/constants"
	"osas/clubport/internal/guard"
	"osas/clubport/internal/upstream"
)

// MembershipService feeds the effective-role resolver with club memberships
// fetched on behalf of the navigating user. The bearer token is taken from
// the request context so the lookup runs with the user's own privileges.
type MembershipService struct {
	api *upstream.Client
}

func NewMembershipService(api *upstream.Client) *MembershipService {
	return &MembershipService{api: api}
}

// UserClubs implements guard.MembershipSource.
func (s *MembershipService) UserClubs(ctx context.Context, userID int64) ([]guard.Membership, error) {
	token := auth.Token(ctx)
	if token == "" {
		return nil, errors.New("no session token in context")
	}

	uc, err := s.api.WithToken(token, "", nil).Users.GetClubs(ctx, userID)
	if err != nil {
		return nil, err
	}

	memberships := make([]guard.Membership, 0, len(uc.Clubs))
	for _, club := range uc.Clubs {
		if club.Membership == nil {
			continue
		}
		memberships = append(memberships, guard.Membership{
			ClubID: club.ID,
			Role:   club.Membership.Role,
			Status: club.Membership.Status,
		})
	}
	return memberships, nil
}

// RoleCheckService answers the guard's best-effort role lookup for sessions
// that carry a token but no resolved role yet.
type RoleCheckService struct {
	api *upstream.Client
}

func NewRoleCheckService(api *upstream.Client) *RoleCheckService {
	return &RoleCheckService{api: api}
}

// CheckRole implements guard.RoleChecker.
func (s *RoleCheckService) CheckRole(ctx context.Context, token string) (guard.RoleCheck, error) {
	res, err := s.api.WithToken(token, "", nil).Auth.CheckRole(ctx)
	if err != nil {
		return guard.RoleCheck{}, err
	}
	rc := guard.RoleCheck{User: res.Userdata}
	if res.Userdata != nil && res.Userdata.Role != "" {
		rc.Role = res.Userdata.Role
	} else {
		rc.Role = constants.Role(res.Role)
	}
	return rc, nil
}
