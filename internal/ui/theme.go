package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/shiftdesk/shiftdesk/internal/model"
)

// Status badge colors. Every status value maps to a color so a badge never
// renders unstyled, unknown values included.
var (
	colorPending   = color.RGBA{R: 255, G: 193, B: 7, A: 255}
	colorConfirmed = color.RGBA{R: 46, G: 160, B: 67, A: 255}
	colorCancelled = color.RGBA{R: 183, G: 28, B: 28, A: 255}
	colorCompleted = color.RGBA{R: 25, G: 118, B: 210, A: 255}
	colorNeutral   = color.RGBA{R: 117, G: 117, B: 117, A: 255}
)

// ScheduleStatusColor returns the badge color for a schedule status
func ScheduleStatusColor(status model.ScheduleStatus) color.Color {
	switch status {
	case model.ScheduleStatusPending:
		return colorPending
	case model.ScheduleStatusConfirmed:
		return colorConfirmed
	case model.ScheduleStatusCancelled:
		return colorCancelled
	case model.ScheduleStatusCompleted:
		return colorCompleted
	default:
		return colorNeutral
	}
}

// LeaveStatusColor returns the badge color for a leave status
func LeaveStatusColor(status model.LeaveStatus) color.Color {
	switch status {
	case model.LeaveStatusPending:
		return colorPending
	case model.LeaveStatusApproved:
		return colorConfirmed
	case model.LeaveStatusRejected:
		return colorCancelled
	case model.LeaveStatusCancelled:
		return colorNeutral
	default:
		return colorNeutral
	}
}

// TradeStatusColor returns the badge color for a trade status
func TradeStatusColor(status model.TradeStatus) color.Color {
	switch status {
	case model.TradeStatusOpen:
		return colorConfirmed
	case model.TradeStatusPending:
		return colorPending
	case model.TradeStatusCompleted:
		return colorCompleted
	default:
		return colorNeutral
	}
}

// UrgencyColor returns the badge color for a trade urgency
func UrgencyColor(urgency model.TradeUrgency) color.Color {
	switch urgency {
	case model.UrgencyHigh:
		return colorCancelled
	case model.UrgencyMedium:
		return colorPending
	case model.UrgencyLow:
		return colorConfirmed
	default:
		return colorNeutral
	}
}

// CompactTheme defines a compact theme for the UI with reduced padding and font sizes
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return colorConfirmed
	case theme.ColorNameError:
		return colorCancelled
	case theme.ColorNameWarning:
		return colorPending
	case theme.ColorNamePrimary:
		return colorCompleted
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameScrollBar:
		return 12 // Reduced from default 16
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 16 // Reduced from default 18
	case theme.SizeNameSubHeadingText:
		return 13 // Reduced from default 16
	case theme.SizeNameCaptionText:
		return 10 // Reduced from default 11
	case theme.SizeNameInputRadius:
		return 3 // Reduced from default 5
	case theme.SizeNameSelectionRadius:
		return 2 // Reduced from default 3
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
