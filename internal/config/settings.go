package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyWeekStartDay    = "week_start_day"
	KeyRefreshInterval = "refresh_interval_seconds"
	KeyShowConnected   = "show_connected_indicator"
)

// Default values
const (
	DefaultWeekStartDay    = int(time.Monday)
	DefaultRefreshInterval = 60
	DefaultShowConnected   = true

	MinRefreshInterval = 15
	MaxRefreshInterval = 600
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetWeekStartDay returns the configured first day of the calendar week
func (s *Settings) GetWeekStartDay() time.Weekday {
	value := s.app.Preferences().IntWithFallback(KeyWeekStartDay, DefaultWeekStartDay)
	if value < int(time.Sunday) || value > int(time.Saturday) {
		return time.Weekday(DefaultWeekStartDay)
	}
	return time.Weekday(value)
}

// SetWeekStartDay sets the first day of the calendar week
func (s *Settings) SetWeekStartDay(day time.Weekday) {
	s.app.Preferences().SetInt(KeyWeekStartDay, int(day))
}

// GetRefreshInterval returns how often list views re-poll the backend
func (s *Settings) GetRefreshInterval() time.Duration {
	value := s.app.Preferences().IntWithFallback(KeyRefreshInterval, DefaultRefreshInterval)
	if value < MinRefreshInterval {
		value = MinRefreshInterval
	}
	if value > MaxRefreshInterval {
		value = MaxRefreshInterval
	}
	return time.Duration(value) * time.Second
}

// SetRefreshInterval sets how often list views re-poll the backend
func (s *Settings) SetRefreshInterval(seconds int) {
	if seconds < MinRefreshInterval {
		seconds = MinRefreshInterval
	}
	if seconds > MaxRefreshInterval {
		seconds = MaxRefreshInterval
	}
	s.app.Preferences().SetInt(KeyRefreshInterval, seconds)
}

// GetShowConnected returns whether the realtime "Connected" indicator is shown
func (s *Settings) GetShowConnected() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowConnected, DefaultShowConnected)
}

// SetShowConnected sets whether the realtime "Connected" indicator is shown
func (s *Settings) SetShowConnected(show bool) {
	s.app.Preferences().SetBool(KeyShowConnected, show)
}
