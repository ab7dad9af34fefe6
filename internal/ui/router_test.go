package ui

import (
	"testing"

	"github.com/shiftdesk/shiftdesk/internal/model"
)

func employeeSession() *model.Session {
	return &model.Session{Token: "t", User: model.User{ID: 1, Role: model.RoleEmployee}}
}

func adminSession() *model.Session {
	return &model.Session{Token: "t", User: model.User{ID: 2, Role: model.RoleAdmin}}
}

func TestResolveSignedOut(t *testing.T) {
	got := Resolve(RouteSchedule, nil)
	if got.Route != RouteLogin {
		t.Errorf("expected login, got %s", got.Route)
	}
	if got.Pending != RouteSchedule {
		t.Errorf("requested route not preserved, got %s", got.Pending)
	}

	got = Resolve(RouteLogin, nil)
	if got.Route != RouteLogin || got.Pending != "" {
		t.Errorf("login while signed out should stay put, got %+v", got)
	}
}

func TestResolveInvalidSession(t *testing.T) {
	// A session without a token is as good as signed out
	got := Resolve(RouteDashboard, &model.Session{User: model.User{ID: 1}})
	if got.Route != RouteLogin {
		t.Errorf("expected login, got %s", got.Route)
	}
}

func TestResolveRoleGuard(t *testing.T) {
	got := Resolve(RouteAdminEmployees, employeeSession())
	if got.Route != RouteDashboard {
		t.Errorf("employee should be redirected to own dashboard, got %s", got.Route)
	}

	got = Resolve(RouteAdminEmployees, adminSession())
	if got.Route != RouteAdminEmployees {
		t.Errorf("admin should pass through, got %s", got.Route)
	}
}

func TestResolveLoginWhileSignedIn(t *testing.T) {
	if got := Resolve(RouteLogin, employeeSession()); got.Route != RouteDashboard {
		t.Errorf("employee landing route = %s", got.Route)
	}
	if got := Resolve(RouteLogin, adminSession()); got.Route != RouteAdminDashboard {
		t.Errorf("admin landing route = %s", got.Route)
	}
}

func TestResolvePassThrough(t *testing.T) {
	for _, route := range []Route{RouteDashboard, RouteSchedule, RouteLeave, RouteTrades, RouteAnnouncements} {
		if got := Resolve(route, employeeSession()); got.Route != route {
			t.Errorf("Resolve(%s) = %s, want pass-through", route, got.Route)
		}
	}
}

func TestHome(t *testing.T) {
	if got := Home(model.RoleAdmin); got != RouteAdminDashboard {
		t.Errorf("admin home = %s", got)
	}
	if got := Home(model.RoleEmployee); got != RouteDashboard {
		t.Errorf("employee home = %s", got)
	}
}
