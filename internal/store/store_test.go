package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/shiftdesk/shiftdesk/internal/api"
	"github.com/shiftdesk/shiftdesk/internal/model"
	"github.com/shiftdesk/shiftdesk/internal/session"
)

func newTestStore(t *testing.T, handler http.Handler) *Store {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := session.NewStore(test.NewApp())
	return New(api.NewClient(srv.URL, sess), sess)
}

func signIn(t *testing.T, s *Store) {
	t.Helper()
	err := s.session.Save(&model.Session{
		Token: "test-token",
		User:  model.User{ID: 1, Email: "worker@example.com", Name: "Worker", Role: model.RoleEmployee},
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func TestRefreshWithoutToken(t *testing.T) {
	var calls int32
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))

	s.Schedules.Refresh(context.Background(), api.ScheduleFilter{})

	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("expected no request without a token, server saw %d", got)
	}
	if s.Schedules.IsLoading() {
		t.Error("slice should not be loading after a failed start")
	}
	if s.Schedules.Error() != ErrNoToken {
		t.Errorf("expected %q, got %q", ErrNoToken, s.Schedules.Error())
	}
}

func TestRefreshReplacesItems(t *testing.T) {
	shifts := []model.Schedule{
		{ID: 2, UserID: 1, ShiftType: model.ShiftMorning, Status: model.ScheduleStatusConfirmed},
		{ID: 1, UserID: 1, ShiftType: model.ShiftEvening, Status: model.ScheduleStatusPending},
	}
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, shifts)
	}))
	signIn(t, s)

	s.Schedules.Refresh(context.Background(), api.ScheduleFilter{})

	items := s.Schedules.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 schedules, got %d", len(items))
	}
	if items[0].ID != 2 {
		t.Errorf("expected newest schedule first, got id %d", items[0].ID)
	}
	if s.Schedules.IsLoading() {
		t.Error("loading flag still set after commit")
	}
	if s.Schedules.Error() != "" {
		t.Errorf("unexpected error %q", s.Schedules.Error())
	}
}

func TestFailureKeepsExistingItems(t *testing.T) {
	var fail atomic.Bool
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			writeJSON(t, w, map[string]string{"message": "database unavailable"})
			return
		}
		writeJSON(t, w, []model.Schedule{{ID: 7, Status: model.ScheduleStatusConfirmed}})
	}))
	signIn(t, s)

	s.Schedules.Refresh(context.Background(), api.ScheduleFilter{})
	fail.Store(true)
	s.Schedules.Refresh(context.Background(), api.ScheduleFilter{})

	items := s.Schedules.Items()
	if len(items) != 1 || items[0].ID != 7 {
		t.Errorf("failed refresh should leave prior data untouched, got %v", items)
	}
	if s.Schedules.Error() != "database unavailable" {
		t.Errorf("expected server message, got %q", s.Schedules.Error())
	}
}

func TestBeginClearsPriorError(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []model.Schedule{})
	}))
	signIn(t, s)

	s.Schedules.mu.Lock()
	s.Schedules.errMsg = "stale error"
	s.Schedules.mu.Unlock()

	s.Schedules.Refresh(context.Background(), api.ScheduleFilter{})

	if s.Schedules.Error() != "" {
		t.Errorf("starting an operation should clear the prior error, got %q", s.Schedules.Error())
	}
}

func TestCreatePrependsAfterAck(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, []model.Schedule{{ID: 1}})
		case http.MethodPost:
			var req api.CreateScheduleRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode create request: %v", err)
			}
			writeJSON(t, w, model.Schedule{ID: 2, UserID: req.UserID, Status: model.ScheduleStatusPending})
		}
	}))
	signIn(t, s)

	s.Schedules.Refresh(context.Background(), api.ScheduleFilter{})
	s.Schedules.Create(context.Background(), api.CreateScheduleRequest{UserID: 5})

	items := s.Schedules.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 schedules after create, got %d", len(items))
	}
	if items[0].ID != 2 || items[0].UserID != 5 {
		t.Errorf("created schedule should be first, got %+v", items[0])
	}
}

func TestDeleteFiltersItem(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(t, w, []model.Schedule{{ID: 1}, {ID: 2}, {ID: 3}})
		}
	}))
	signIn(t, s)

	s.Schedules.Refresh(context.Background(), api.ScheduleFilter{})
	s.Schedules.Delete(context.Background(), 2)

	items := s.Schedules.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 schedules after delete, got %d", len(items))
	}
	for _, item := range items {
		if item.ID == 2 {
			t.Error("deleted schedule still present")
		}
	}
}

func TestStaleResponseDropped(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	signIn(t, s)

	first, ok := s.Schedules.begin()
	if !ok {
		t.Fatal("begin failed with a valid token")
	}
	second, ok := s.Schedules.begin()
	if !ok {
		t.Fatal("begin failed with a valid token")
	}

	s.Schedules.commit(second, func() {
		s.Schedules.items = []model.Schedule{{ID: 2}}
	})
	s.Schedules.commit(first, func() {
		s.Schedules.items = []model.Schedule{{ID: 1}}
	})

	items := s.Schedules.Items()
	if len(items) != 1 || items[0].ID != 2 {
		t.Errorf("stale commit should be dropped, got %v", items)
	}

	s.Schedules.fail(first, &api.Error{StatusCode: 500, Message: "late failure"})
	if s.Schedules.Error() != "" {
		t.Errorf("stale failure should be dropped, got %q", s.Schedules.Error())
	}
}

func TestUnauthorizedFailureStaysSilent(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	signIn(t, s)

	s.Schedules.Refresh(context.Background(), api.ScheduleFilter{})

	if s.Schedules.Error() != "" {
		t.Errorf("401 should not surface an error banner, got %q", s.Schedules.Error())
	}
	if s.Schedules.IsLoading() {
		t.Error("loading flag still set after a 401")
	}
}

func TestLoginStoresSession(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Error("login must not carry an Authorization header")
		}
		writeJSON(t, w, api.LoginResponse{
			AccessToken: "fresh-token",
			User:        model.User{ID: 3, Email: "admin@example.com", Role: model.RoleAdmin},
		})
	}))

	s.Auth.Login(context.Background(), "admin@example.com", "secret")

	sess := s.Auth.Session()
	if sess == nil {
		t.Fatal("expected a session after login")
	}
	if sess.Token != "fresh-token" || !sess.User.Role.IsAdmin() {
		t.Errorf("unexpected session %+v", sess)
	}
	if s.session.Token() != "fresh-token" {
		t.Error("session not mirrored into persistent storage")
	}
}

func TestLoginFailureStoresMessage(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(t, w, map[string]string{"message": "Invalid credentials"})
	}))

	s.Auth.Login(context.Background(), "admin@example.com", "wrong")

	if s.Auth.Session() != nil {
		t.Error("failed login must not produce a session")
	}
	if s.Auth.Error() != "Invalid credentials" {
		t.Errorf("expected server message, got %q", s.Auth.Error())
	}
}

func TestLogoutResetsEverything(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []model.Schedule{{ID: 1}})
	}))
	signIn(t, s)
	s.Auth.Restore()
	s.Schedules.Refresh(context.Background(), api.ScheduleFilter{})
	s.Notifications.Push(model.Notification{ID: 9, Title: "hello"})

	s.Auth.Logout()

	if s.Auth.Session() != nil {
		t.Error("session survived logout")
	}
	if s.session.Token() != "" {
		t.Error("persistent token survived logout")
	}
	if len(s.Schedules.Items()) != 0 {
		t.Error("schedule cache survived logout")
	}
	if len(s.Notifications.Items()) != 0 {
		t.Error("notification cache survived logout")
	}
}

func TestNotificationPushDeduplicates(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	s.Notifications.Push(model.Notification{ID: 1, Title: "first"})
	s.Notifications.Push(model.Notification{ID: 2, Title: "second"})
	s.Notifications.Push(model.Notification{ID: 1, Title: "replayed"})

	items := s.Notifications.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(items))
	}
	if items[0].ID != 2 {
		t.Errorf("expected newest notification first, got id %d", items[0].ID)
	}
	if s.Notifications.UnreadCount() != 2 {
		t.Errorf("expected 2 unread, got %d", s.Notifications.UnreadCount())
	}
}

func TestNotificationMarkAllRead(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	signIn(t, s)

	s.Notifications.Push(model.Notification{ID: 1})
	s.Notifications.Push(model.Notification{ID: 2})
	s.Notifications.MarkAllRead(context.Background())

	if got := s.Notifications.UnreadCount(); got != 0 {
		t.Errorf("expected 0 unread after mark-all, got %d", got)
	}
}

func TestDashboardFetchOnce(t *testing.T) {
	var calls int32
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(t, w, model.DashboardStats{UpcomingShifts: 4})
	}))
	signIn(t, s)

	s.Dashboard.RefreshEmployee(context.Background(), false)
	s.Dashboard.RefreshEmployee(context.Background(), false)

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected a single fetch, server saw %d", got)
	}

	s.Dashboard.RefreshEmployee(context.Background(), true)
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("forced refresh should refetch, server saw %d", got)
	}

	s.Dashboard.reset()
	s.Dashboard.RefreshEmployee(context.Background(), false)
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("reset should drop the fetched flag, server saw %d", got)
	}
}

func TestAnnouncementMarkRead(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(t, w, []model.Announcement{
				{ID: 1, Title: "Holiday hours"},
				{ID: 2, Title: "New roster"},
			})
		}
	}))
	signIn(t, s)

	s.Announcements.Refresh(context.Background())
	if got := s.Announcements.UnreadCount(); got != 2 {
		t.Fatalf("expected 2 unread, got %d", got)
	}

	s.Announcements.MarkRead(context.Background(), 1)
	if got := s.Announcements.UnreadCount(); got != 1 {
		t.Errorf("expected 1 unread after marking, got %d", got)
	}
}

func TestChangeCallbackFires(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []model.Schedule{})
	}))
	signIn(t, s)

	var fired atomic.Int32
	s.SetChangeCallback(func() { fired.Add(1) })

	s.Schedules.Refresh(context.Background(), api.ScheduleFilter{})

	// begin and commit each notify once
	if got := fired.Load(); got < 2 {
		t.Errorf("expected at least 2 change notifications, got %d", got)
	}
}

func TestLeaveCancelFiltersItem(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			writeJSON(t, w, []model.LeaveRequest{
				{ID: 1, Status: model.LeaveStatusPending},
				{ID: 2, Status: model.LeaveStatusApproved},
			})
		default:
			writeJSON(t, w, model.LeaveRequest{ID: 1, Status: model.LeaveStatusCancelled})
		}
	}))
	signIn(t, s)

	s.Leaves.Refresh(context.Background())
	s.Leaves.Cancel(context.Background(), 1)

	items := s.Leaves.Items()
	if len(items) != 1 || items[0].ID != 2 {
		t.Errorf("cancelled request should be filtered out, got %v", items)
	}
}

func TestTradeSettleReplacesTrade(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, []model.ShiftTradeRequest{{ID: 4, Status: model.TradeStatusOpen}})
		default:
			writeJSON(t, w, model.ShiftTradeRequest{
				ID:     4,
				Status: model.TradeStatusCompleted,
				Responses: []model.ShiftTradeResponse{
					{ID: 11, Status: model.TradeResponseAccepted},
				},
			})
		}
	}))
	signIn(t, s)

	s.Trades.Refresh(context.Background())
	s.Trades.Settle(context.Background(), 4, 11, model.TradeResponseAccepted)

	items := s.Trades.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(items))
	}
	if items[0].Status != model.TradeStatusCompleted {
		t.Errorf("expected completed trade, got %s", items[0].Status)
	}
	if len(items[0].Responses) != 1 || items[0].Responses[0].Status != model.TradeResponseAccepted {
		t.Errorf("expected accepted response, got %+v", items[0].Responses)
	}
}

func TestEmployeeLookups(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/employees/departments":
			writeJSON(t, w, []model.Department{{ID: 1, Name: "Kitchen"}})
		case "/employees/positions":
			writeJSON(t, w, []model.Position{{ID: 1, Name: "Chef"}, {ID: 2, Name: "Server"}})
		}
	}))
	signIn(t, s)

	s.Employees.RefreshLookups(context.Background())

	if got := s.Employees.Departments(); len(got) != 1 || got[0].Name != "Kitchen" {
		t.Errorf("unexpected departments %v", got)
	}
	if got := s.Employees.Positions(); len(got) != 2 {
		t.Errorf("expected 2 positions, got %d", len(got))
	}
}

func TestItemsReturnsSnapshot(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []model.Schedule{{ID: 1, Status: model.ScheduleStatusPending}})
	}))
	signIn(t, s)
	s.Schedules.Refresh(context.Background(), api.ScheduleFilter{})

	snapshot := s.Schedules.Items()
	snapshot[0].Status = model.ScheduleStatusCancelled

	if got := s.Schedules.Items()[0].Status; got != model.ScheduleStatusPending {
		t.Errorf("mutating a snapshot leaked into the cache: %s", got)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	signIn(t, s)

	sess := s.Auth.Restore()
	if sess == nil {
		t.Fatal("expected restored session")
	}
	if sess.User.Email != "worker@example.com" {
		t.Errorf("unexpected user %+v", sess.User)
	}
	if s.Auth.Session() == nil {
		t.Error("restored session not held in memory")
	}
}

func TestScheduleUpdateStatus(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, []model.Schedule{
				{ID: 1, Status: model.ScheduleStatusPending, StartTime: time.Now()},
			})
		case http.MethodPatch:
			writeJSON(t, w, model.Schedule{ID: 1, Status: model.ScheduleStatusConfirmed})
		}
	}))
	signIn(t, s)

	s.Schedules.Refresh(context.Background(), api.ScheduleFilter{})
	s.Schedules.UpdateStatus(context.Background(), 1, model.ScheduleStatusConfirmed)

	if got := s.Schedules.Items()[0].Status; got != model.ScheduleStatusConfirmed {
		t.Errorf("expected confirmed, got %s", got)
	}
}
