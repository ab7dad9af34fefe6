package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings     = "⚙"
	IconBell         = "🔔"
	IconCalendar     = "📅"
	IconLeave        = "🌴"
	IconTrade        = "🔄"
	IconAnnouncement = "📢"
	IconPeople       = "👥"
	IconDashboard    = "📊"
	IconClose        = "×"
	IconConnected    = "●"
	IconDisconnected = "○"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "-"
	UnreadBadgeFormat  = "%s (%d)"
)

// Window and layout sizing
const (
	WindowMinWidth  float32 = 960
	WindowMinHeight float32 = 640

	SidebarWidth    float32 = 180
	DialogWidth     float32 = 460
	DialogHeight    float32 = 420
	CalendarCellMin float32 = 110

	StatusBadgeWidth float32 = 90
)

// Error banner behavior
const (
	BannerAutoHide = 6 * time.Second
)

// Date and time display formats
const (
	DateFormat     = "Mon, Jan 2 2006"
	ShortDate      = "Jan 2"
	TimeFormat     = "15:04"
	DateTimeFormat = "Jan 2, 15:04"
	InputDate      = "2006-01-02"
	InputTime      = "15:04"
)
