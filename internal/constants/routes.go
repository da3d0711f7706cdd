package constants

// Symbolic route names used by the navigation guard. These must stay in sync
// with the route table in internal/routes.
const (
	RouteLogin            = "login"
	RouteRegister         = "register"
	RouteVerifyEmail      = "verify-email"
	RouteVerifyPrompt     = "verify-prompt"
	RouteVerifyingNow     = "verifying-now"
	RouteOTP              = "otp"
	RouteDashboard        = "dashboard"
	RouteStudentDashboard = "student-dashboard"
	RouteProfile          = "profile"
	RouteActivityCalendar = "activity-calendar"
	RouteAnnualPlans      = "annual-plans"
	RouteClubsOrg         = "clubs-organization"
	RouteActivityDesigns  = "activity-designs"
	RouteUtilization      = "utilization-requests"
	RouteLiquidation      = "liquidation-funds"
	RouteUserMgt          = "user-mgt"
	RouteGrievances       = "grievances"
	RouteNotifications    = "notifications"
	RouteSessionLogs      = "session-logs"
	RouteVerifyDocument   = "verify-utilization"
	RouteNotFound         = "not-found"
)

// AnonymousPages are reachable without a session regardless of route
// metadata. An authenticated user navigating to one of these is bounced to
// their dashboard instead.
var AnonymousPages = map[string]bool{
	RouteLogin:        true,
	RouteRegister:     true,
	RouteVerifyEmail:  true,
	RouteVerifyPrompt: true,
	RouteVerifyingNow: true,
}

// LogoutChannel is the redis pub/sub channel used to broadcast session
// teardown to every gateway instance, the server-side analog of the
// browser's cross-tab "logout" storage event.
const LogoutChannel = "clubport:logout"
