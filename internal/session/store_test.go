package session

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/shiftdesk/shiftdesk/internal/model"
)

func TestLoadEmpty(t *testing.T) {
	store := NewStore(test.NewApp())

	if sess := store.Load(); sess != nil {
		t.Errorf("Expected nil session from empty storage, got %#v", sess)
	}

	if store.Token() != "" {
		t.Errorf("Expected empty token, got %q", store.Token())
	}
}

func TestSaveLoadClear(t *testing.T) {
	store := NewStore(test.NewApp())

	sess := &model.Session{
		Token: "token-abc",
		User:  model.User{ID: 4, Email: "jo@example.com", Name: "Jo", Role: model.RoleAdmin},
	}

	if err := store.Save(sess); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	loaded := store.Load()
	if loaded == nil {
		t.Fatal("Expected stored session, got nil")
	}

	if loaded.Token != "token-abc" {
		t.Errorf("Expected token token-abc, got %s", loaded.Token)
	}

	if loaded.User != sess.User {
		t.Errorf("Expected user %#v, got %#v", sess.User, loaded.User)
	}

	store.Clear()

	if store.Load() != nil {
		t.Error("Expected nil session after Clear")
	}
}

func TestLoadCorruptUser(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app)

	app.Preferences().SetString(KeyAuthToken, "token-abc")
	app.Preferences().SetString(KeyAuthUser, "{not json")

	if sess := store.Load(); sess != nil {
		t.Errorf("Expected corrupt record to yield nil session, got %#v", sess)
	}

	// A corrupt record must also wipe the token
	if store.Token() != "" {
		t.Errorf("Expected token cleared after corrupt load, got %q", store.Token())
	}
}
