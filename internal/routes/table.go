package routes

import (
	"osas/clubport/internal/constants"
)

// Meta is the per-route metadata surface consumed by the navigation guard.
// A route is either Public or RequiresAuth; when Roles is non-empty only an
// effective role contained in it may proceed.
type Meta struct {
	Title        string   `json:"title,omitempty"`
	Public       bool     `json:"public,omitempty"`
	RequiresAuth bool     `json:"requiresAuth,omitempty"`
	Roles        []string `json:"roles,omitempty"`
}

// Route is a static route descriptor. Descriptors are built once at startup
// and never mutated.
type Route struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Meta Meta   `json:"meta"`
}

// AllowsRole reports whether the route's declared roles set contains role.
// A route with no declared roles allows everything at this layer.
func (r *Route) AllowsRole(role string) bool {
	if r == nil || len(r.Meta.Roles) == 0 {
		return true
	}
	for _, allowed := range r.Meta.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// DeclaresRole reports whether role appears in the route's declared roles
// set, regardless of whether the set is empty.
func (r *Route) DeclaresRole(role string) bool {
	if r == nil {
		return false
	}
	for _, allowed := range r.Meta.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// Table is the portal's static route table, addressable by symbolic name
// and by path.
type Table struct {
	ordered []*Route
	byName  map[string]*Route
	byPath  map[string]*Route
}

// NewTable builds the portal route table.
func NewTable() *Table {
	officerGated := []string{
		constants.RoleAdmin.String(),
		constants.RoleManager.String(),
		constants.RoleStudentOfficer.String(),
	}
	adminOnly := []string{constants.RoleAdmin.String()}

	list := []*Route{
		// Auth pages
		{Path: "/login", Name: constants.RouteLogin, Meta: Meta{Title: "Login", Public: true}},
		{Path: "/register", Name: constants.RouteRegister, Meta: Meta{Title: "Register", Public: true}},
		{Path: "/verify-email", Name: constants.RouteVerifyEmail, Meta: Meta{Title: "Verify Email", Public: true}},
		{Path: "/verify-prompt", Name: constants.RouteVerifyPrompt, Meta: Meta{Title: "Verify Your Email", Public: true}},
		{Path: "/verifying-now", Name: constants.RouteVerifyingNow, Meta: Meta{Title: "Verifying", Public: true}},
		{Path: "/otp", Name: constants.RouteOTP, Meta: Meta{Title: "Two-Factor Challenge", Public: true}},

		// Dashboards
		{Path: "/dashboard", Name: constants.RouteDashboard, Meta: Meta{Title: "Dashboard", RequiresAuth: true}},
		{Path: "/student-dashboard", Name: constants.RouteStudentDashboard, Meta: Meta{Title: "Dashboard", RequiresAuth: true,
			Roles: []string{constants.RoleStudent.String(), constants.RoleStudentOfficer.String()}}},

		// General authenticated pages
		{Path: "/profile", Name: constants.RouteProfile, Meta: Meta{Title: "Profile", RequiresAuth: true}},
		{Path: "/activity-calendar", Name: constants.RouteActivityCalendar, Meta: Meta{Title: "Activity Calendar", RequiresAuth: true}},
		{Path: "/notifications", Name: constants.RouteNotifications, Meta: Meta{Title: "Notifications", RequiresAuth: true}},
		{Path: "/grievances", Name: constants.RouteGrievances, Meta: Meta{Title: "Grievances", RequiresAuth: true}},

		// Officer-gated filing modules
		{Path: "/annual-plans", Name: constants.RouteAnnualPlans, Meta: Meta{Title: "Annual Plans", RequiresAuth: true, Roles: officerGated}},
		{Path: "/clubs-organization", Name: constants.RouteClubsOrg, Meta: Meta{Title: "Clubs & Organizations", RequiresAuth: true, Roles: officerGated}},
		{Path: "/activity-designs", Name: constants.RouteActivityDesigns, Meta: Meta{Title: "Activity Designs", RequiresAuth: true, Roles: officerGated}},
		{Path: "/utilization-requests", Name: constants.RouteUtilization, Meta: Meta{Title: "Utilization Requests", RequiresAuth: true, Roles: officerGated}},
		{Path: "/liquidation-funds", Name: constants.RouteLiquidation, Meta: Meta{Title: "Liquidation of Funds", RequiresAuth: true, Roles: officerGated}},

		// Administration
		{Path: "/user-mgt", Name: constants.RouteUserMgt, Meta: Meta{Title: "User Management", RequiresAuth: true, Roles: adminOnly}},
		{Path: "/session-logs", Name: constants.RouteSessionLogs, Meta: Meta{Title: "Session Logs", RequiresAuth: true, Roles: adminOnly}},

		// Public document verification (QR landing page)
		{Path: "/verify-utilization", Name: constants.RouteVerifyDocument, Meta: Meta{Title: "Verify Document", Public: true}},

		{Path: "/not-found", Name: constants.RouteNotFound, Meta: Meta{Title: "Not Found", Public: true}},
	}

	t := &Table{
		ordered: list,
		byName:  make(map[string]*Route, len(list)),
		byPath:  make(map[string]*Route, len(list)),
	}
	for _, r := range list {
		t.byName[r.Name] = r
		t.byPath[r.Path] = r
	}
	return t
}

// ByName returns the route registered under the given symbolic name.
func (t *Table) ByName(name string) (*Route, bool) {
	r, ok := t.byName[name]
	return r, ok
}

// ByPath returns the route registered under the given path.
func (t *Table) ByPath(path string) (*Route, bool) {
	r, ok := t.byPath[path]
	return r, ok
}

// All returns the routes in declaration order.
func (t *Table) All() []*Route {
	return t.ordered
}
