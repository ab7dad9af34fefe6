package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestWeekStartDay(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetWeekStartDay() != time.Monday {
		t.Errorf("Expected default week start Monday, got %s", settings.GetWeekStartDay())
	}

	// Test setting custom value
	settings.SetWeekStartDay(time.Sunday)
	if settings.GetWeekStartDay() != time.Sunday {
		t.Errorf("Expected week start Sunday, got %s", settings.GetWeekStartDay())
	}
}

func TestRefreshInterval(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetRefreshInterval() != DefaultRefreshInterval*time.Second {
		t.Errorf("Expected default interval %ds, got %s", DefaultRefreshInterval, settings.GetRefreshInterval())
	}

	// Test setting custom value
	settings.SetRefreshInterval(120)
	if settings.GetRefreshInterval() != 120*time.Second {
		t.Errorf("Expected interval 120s, got %s", settings.GetRefreshInterval())
	}

	// Test boundary values
	settings.SetRefreshInterval(1) // Should be clamped to the minimum
	if settings.GetRefreshInterval() != MinRefreshInterval*time.Second {
		t.Errorf("Expected interval clamped to %ds, got %s", MinRefreshInterval, settings.GetRefreshInterval())
	}

	settings.SetRefreshInterval(100000) // Should be clamped to the maximum
	if settings.GetRefreshInterval() != MaxRefreshInterval*time.Second {
		t.Errorf("Expected interval clamped to %ds, got %s", MaxRefreshInterval, settings.GetRefreshInterval())
	}
}

func TestShowConnected(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetShowConnected() {
		t.Error("Expected connected indicator to default to on")
	}

	settings.SetShowConnected(false)
	if settings.GetShowConnected() {
		t.Error("Expected connected indicator to be off after SetShowConnected(false)")
	}
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "")
	t.Setenv(EnvWSBaseURL, "")

	env := LoadEnv()
	if env.APIBaseURL != DefaultAPIBaseURL {
		t.Errorf("Expected default API URL %s, got %s", DefaultAPIBaseURL, env.APIBaseURL)
	}
	if env.WSBaseURL != DefaultWSBaseURL {
		t.Errorf("Expected default WS URL %s, got %s", DefaultWSBaseURL, env.WSBaseURL)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "https://api.example.com/api")
	t.Setenv(EnvWSBaseURL, "wss://api.example.com/ws")

	env := LoadEnv()
	if env.APIBaseURL != "https://api.example.com/api" {
		t.Errorf("Unexpected API URL %s", env.APIBaseURL)
	}
	if env.WSBaseURL != "wss://api.example.com/ws" {
		t.Errorf("Unexpected WS URL %s", env.WSBaseURL)
	}
}
