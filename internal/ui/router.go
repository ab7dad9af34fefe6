package ui

import "github.com/shiftdesk/shiftdesk/internal/model"

// Route identifies one view in the shell
type Route string

const (
	RouteLogin         Route = "login"
	RouteDashboard     Route = "dashboard"
	RouteSchedule      Route = "schedule"
	RouteLeave         Route = "leave"
	RouteTrades        Route = "trades"
	RouteAnnouncements Route = "announcements"

	RouteAdminDashboard    Route = "admin/dashboard"
	RouteAdminSchedules    Route = "admin/schedules"
	RouteAdminEmployees    Route = "admin/employees"
	RouteAdminLeaves       Route = "admin/leaves"
	RouteAdminAnnouncement Route = "admin/announcements"
)

// RequiresAdmin reports whether the route is part of the management area
func (r Route) RequiresAdmin() bool {
	switch r {
	case RouteAdminDashboard, RouteAdminSchedules, RouteAdminEmployees,
		RouteAdminLeaves, RouteAdminAnnouncement:
		return true
	}
	return false
}

// Home returns the landing route for a role
func Home(role model.Role) Route {
	if role.IsAdmin() {
		return RouteAdminDashboard
	}
	return RouteDashboard
}

// Resolution is the guard's decision: the route to show now, and the route
// to return to after login when the request was deferred.
type Resolution struct {
	Route   Route
	Pending Route
}

// Resolve guards a navigation request against the current session. Signed-out
// users land on the login view with the requested route preserved; users
// missing the admin role land on their own dashboard instead of the
// requested management view.
func Resolve(requested Route, sess *model.Session) Resolution {
	if !sess.Valid() {
		if requested == RouteLogin {
			return Resolution{Route: RouteLogin}
		}
		return Resolution{Route: RouteLogin, Pending: requested}
	}

	if requested == RouteLogin {
		return Resolution{Route: Home(sess.User.Role)}
	}
	if requested.RequiresAdmin() && !sess.User.Role.IsAdmin() {
		return Resolution{Route: RouteDashboard}
	}
	return Resolution{Route: requested}
}
