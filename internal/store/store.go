package store

import (
	"errors"
	"sync"

	"github.com/shiftdesk/shiftdesk/internal/api"
	"github.com/shiftdesk/shiftdesk/internal/session"
)

// ErrNoToken is stored as the slice error when an operation runs signed out
const ErrNoToken = "No access token"

// Store aggregates every state slice behind one change-notification hook
type Store struct {
	client  *api.Client
	session *session.Store

	Auth          *AuthSlice
	Schedules     *ScheduleSlice
	Leaves        *LeaveSlice
	Trades        *TradeSlice
	Announcements *AnnouncementSlice
	Employees     *EmployeeSlice
	Notifications *NotificationSlice
	Dashboard     *DashboardSlice

	onChange func()
}

// New creates the store with empty slices
func New(client *api.Client, sess *session.Store) *Store {
	s := &Store{client: client, session: sess}
	s.Auth = &AuthSlice{slice: slice{store: s}}
	s.Schedules = &ScheduleSlice{slice: slice{store: s}}
	s.Leaves = &LeaveSlice{slice: slice{store: s}}
	s.Trades = &TradeSlice{slice: slice{store: s}}
	s.Announcements = &AnnouncementSlice{slice: slice{store: s}}
	s.Employees = &EmployeeSlice{slice: slice{store: s}}
	s.Notifications = &NotificationSlice{slice: slice{store: s}}
	s.Dashboard = &DashboardSlice{slice: slice{store: s}}
	return s
}

// SetChangeCallback sets the callback invoked after any slice changes.
// The UI uses it to re-render from fresh snapshots.
func (s *Store) SetChangeCallback(fn func()) {
	s.onChange = fn
}

// notify calls the change callback if set
func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Reset drops all cached domain data. Called on logout and on a 401 so no
// state leaks into the next session.
func (s *Store) Reset() {
	s.Schedules.reset()
	s.Leaves.reset()
	s.Trades.reset()
	s.Announcements.reset()
	s.Employees.reset()
	s.Notifications.reset()
	s.Dashboard.reset()
	s.notify()
}

// slice carries the state every feature slice shares: one in-flight loading
// flag, one error value, and a request sequence counter so a stale response
// can never overwrite a newer one.
type slice struct {
	store *Store

	mu      sync.Mutex
	loading bool
	errMsg  string
	seq     uint64
}

// IsLoading reports whether an operation is in flight
func (s *slice) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Error returns the last operation's error message, or "" when clear
func (s *slice) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// ClearError dismisses the error banner
func (s *slice) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
	s.store.notify()
}

// begin starts an operation: fails fast without a token, otherwise sets the
// loading flag, clears the prior error, and hands back the sequence number
// the operation must present to commit.
func (s *slice) begin() (uint64, bool) {
	if s.store.session.Token() == "" {
		s.mu.Lock()
		s.loading = false
		s.errMsg = ErrNoToken
		s.mu.Unlock()
		s.store.notify()
		return 0, false
	}

	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.seq++
	seq := s.seq
	s.mu.Unlock()
	s.store.notify()
	return seq, true
}

// beginNoAuth is begin without the token check, for the login operation
func (s *slice) beginNoAuth() uint64 {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.seq++
	seq := s.seq
	s.mu.Unlock()
	s.store.notify()
	return seq
}

// commit applies a successful result unless a newer operation has started
// since; stale responses are dropped so last-issued wins, not last-resolved.
func (s *slice) commit(seq uint64, apply func()) {
	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return
	}
	s.loading = false
	s.errMsg = ""
	if apply != nil {
		apply()
	}
	s.mu.Unlock()
	s.store.notify()
}

// fail records a failed result unless a newer operation has started since.
// Prior data stays untouched. Authorization failures stay silent here: the
// 401 handling already wiped the session and the shell is navigating away.
func (s *slice) fail(seq uint64, err error) {
	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return
	}
	s.loading = false
	if !errors.Is(err, api.ErrUnauthorized) {
		s.errMsg = api.Message(err)
	}
	s.mu.Unlock()
	s.store.notify()
}

// resetState clears the shared flags; slices call it from their reset
func (s *slice) resetState() {
	s.mu.Lock()
	s.loading = false
	s.errMsg = ""
	s.seq++
	s.mu.Unlock()
}
