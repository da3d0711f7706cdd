package routes

import (
	"testing"

	"osas/clubport/internal/constants"
)

func TestTableLookupsAgree(t *testing.T) {
	table := NewTable()

	for _, rt := range table.All() {
		byName, ok := table.ByName(rt.Name)
		if !ok || byName != rt {
			t.Errorf("route %q: ByName lookup mismatch", rt.Name)
		}
		byPath, ok := table.ByPath(rt.Path)
		if !ok || byPath != rt {
			t.Errorf("route %q: ByPath lookup mismatch", rt.Name)
		}
	}
}

func TestEveryRouteIsPublicOrRequiresAuth(t *testing.T) {
	for _, rt := range NewTable().All() {
		if rt.Meta.Public == rt.Meta.RequiresAuth {
			t.Errorf("route %q: must be exactly one of public or auth-required", rt.Name)
		}
	}
}

func TestRoleRestrictedRoutesRequireAuth(t *testing.T) {
	for _, rt := range NewTable().All() {
		if len(rt.Meta.Roles) > 0 && !rt.Meta.RequiresAuth {
			t.Errorf("route %q: declares roles but not auth", rt.Name)
		}
	}
}

func TestAnonymousPagesExistAndArePublic(t *testing.T) {
	table := NewTable()
	for name := range constants.AnonymousPages {
		rt, ok := table.ByName(name)
		if !ok {
			t.Errorf("anonymous page %q missing from table", name)
			continue
		}
		if !rt.Meta.Public {
			t.Errorf("anonymous page %q must be public", name)
		}
	}
}

func TestOfficerGatedRoutesDeclareStudentOfficer(t *testing.T) {
	table := NewTable()
	for _, name := range []string{
		constants.RouteAnnualPlans,
		constants.RouteClubsOrg,
		constants.RouteActivityDesigns,
		constants.RouteUtilization,
		constants.RouteLiquidation,
	} {
		rt, ok := table.ByName(name)
		if !ok {
			t.Fatalf("route %q missing from table", name)
		}
		if !rt.DeclaresRole(constants.RoleStudentOfficer.String()) {
			t.Errorf("route %q: expected student_officer in declared roles", name)
		}
		if rt.DeclaresRole(constants.RoleStudent.String()) {
			t.Errorf("route %q: plain student must not be declared", name)
		}
	}
}

func TestAllowsRoleOnUnrestrictedRoute(t *testing.T) {
	rt, _ := NewTable().ByName(constants.RouteDashboard)
	if !rt.AllowsRole(constants.RoleStudent.String()) {
		t.Fatal("unrestricted route must allow any role")
	}
	if rt.DeclaresRole(constants.RoleStudent.String()) {
		t.Fatal("unrestricted route declares no roles")
	}
}

func TestAdminOnlyRoutes(t *testing.T) {
	table := NewTable()
	for _, name := range []string{constants.RouteUserMgt, constants.RouteSessionLogs} {
		rt, _ := table.ByName(name)
		if !rt.AllowsRole(constants.RoleAdmin.String()) {
			t.Errorf("route %q: admin must be allowed", name)
		}
		for _, denied := range []string{
			constants.RoleManager.String(),
			constants.RoleStudent.String(),
			constants.RoleStudentOfficer.String(),
		} {
			if rt.AllowsRole(denied) {
				t.Errorf("route %q: role %q must be denied", name, denied)
			}
		}
	}
}
