package store

import (
	"context"
	"log"

	"github.com/shiftdesk/shiftdesk/internal/api"
	"github.com/shiftdesk/shiftdesk/internal/model"
)

// AuthSlice holds the in-memory session mirrored into persistent storage
type AuthSlice struct {
	slice
	session *model.Session
}

// Session returns the current session, or nil when signed out
func (a *AuthSlice) Session() *model.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

// Restore rehydrates the session from persistent storage at startup
func (a *AuthSlice) Restore() *model.Session {
	sess := a.store.session.Load()
	a.mu.Lock()
	a.session = sess
	a.mu.Unlock()
	if sess != nil {
		log.Printf("Restored session for %s", sess.User.Email)
	}
	return sess
}

// Login exchanges credentials for a session. On success the session is held
// in memory and mirrored into persistent storage; on failure the error is
// stored on this slice for the login form to render.
func (a *AuthSlice) Login(ctx context.Context, email, password string) {
	seq := a.beginNoAuth()

	resp, err := a.store.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		a.fail(seq, err)
		return
	}

	sess := &model.Session{Token: resp.AccessToken, User: resp.User}
	if err := a.store.session.Save(sess); err != nil {
		a.fail(seq, err)
		return
	}

	a.commit(seq, func() {
		a.session = sess
	})
}

// RefreshUser re-fetches the account behind the stored token, so a role or
// name change since the last launch is picked up. The token is kept as is.
func (a *AuthSlice) RefreshUser(ctx context.Context) {
	seq, ok := a.begin()
	if !ok {
		return
	}

	user, err := a.store.client.CurrentUser(ctx)
	if err != nil {
		a.fail(seq, err)
		return
	}

	a.mu.Lock()
	sess := a.session
	a.mu.Unlock()
	if sess == nil {
		return
	}

	fresh := &model.Session{Token: sess.Token, User: *user}
	if err := a.store.session.Save(fresh); err != nil {
		a.fail(seq, err)
		return
	}

	a.commit(seq, func() {
		a.session = fresh
	})
}

// Logout clears the session everywhere and drops all cached domain data
func (a *AuthSlice) Logout() {
	a.store.session.Clear()
	a.mu.Lock()
	a.session = nil
	a.resetLockedState()
	a.mu.Unlock()
	a.store.Reset()
}

// HandleUnauthorized reacts to a 401: the API client already wiped the
// persistent session, this drops the in-memory half and the cached data.
func (a *AuthSlice) HandleUnauthorized() {
	a.mu.Lock()
	a.session = nil
	a.resetLockedState()
	a.mu.Unlock()
	a.store.Reset()
}

// resetLockedState clears flags while the mutex is already held
func (a *AuthSlice) resetLockedState() {
	a.loading = false
	a.errMsg = ""
	a.seq++
}
