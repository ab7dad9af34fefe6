package session

// Package session persists the authenticated session between launches. It is
// a thin wrapper over the app's key-value preference storage: one key for the
// bearer token, one for the JSON-serialized user record.

import (
	"encoding/json"
	"log"

	"fyne.io/fyne/v2"

	"github.com/shiftdesk/shiftdesk/internal/model"
)

// Preference keys for the persisted session
const (
	KeyAuthToken = "auth_token"
	KeyAuthUser  = "auth_user"
)

// Store reads and writes the persisted session
type Store struct {
	prefs fyne.Preferences
}

// NewStore creates a session store backed by the app's preferences
func NewStore(app fyne.App) *Store {
	return &Store{prefs: app.Preferences()}
}

// Load rehydrates the stored session. It returns nil when no session is
// stored; a corrupt user record is treated as no session and cleared.
func (s *Store) Load() *model.Session {
	token := s.prefs.String(KeyAuthToken)
	rawUser := s.prefs.String(KeyAuthUser)
	if token == "" || rawUser == "" {
		return nil
	}

	var user model.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		log.Printf("Discarding corrupt stored user record: %v", err)
		s.Clear()
		return nil
	}

	return &model.Session{Token: token, User: user}
}

// Save writes the session to persistent storage
func (s *Store) Save(sess *model.Session) error {
	raw, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}

	s.prefs.SetString(KeyAuthToken, sess.Token)
	s.prefs.SetString(KeyAuthUser, string(raw))
	return nil
}

// Clear removes the stored token and user record. Called on logout and on
// an authorization failure from the backend.
func (s *Store) Clear() {
	s.prefs.SetString(KeyAuthToken, "")
	s.prefs.SetString(KeyAuthUser, "")
}

// Token returns the stored bearer token, or "" when signed out
func (s *Store) Token() string {
	return s.prefs.String(KeyAuthToken)
}
