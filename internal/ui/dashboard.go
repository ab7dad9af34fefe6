package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shiftdesk/shiftdesk/internal/store"
)

// DashboardView renders the stat cards for the current role. Employees see
// their own counters and keep them for the session; admins refetch on every
// visit.
type DashboardView struct {
	store *store.Store
	admin bool

	cards   *fyne.Container
	heading *widget.Label
	content fyne.CanvasObject
}

// NewDashboardView creates the dashboard for the given role
func NewDashboardView(st *store.Store, admin bool) *DashboardView {
	v := &DashboardView{store: st, admin: admin}
	v.createUI()
	return v
}

// Content returns the view's root object
func (v *DashboardView) Content() fyne.CanvasObject {
	return v.content
}

func (v *DashboardView) createUI() {
	title := "My Dashboard"
	if v.admin {
		title = "Team Overview"
	}
	v.heading = widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	v.cards = container.NewGridWithColumns(3)

	refreshBtn := widget.NewButton("Refresh", func() { v.load(true) })
	header := container.NewBorder(nil, nil, v.heading, refreshBtn)

	v.content = container.NewBorder(header, nil, nil, nil, container.NewVScroll(v.cards))
}

// Load fetches the counters. For employees the fetch is skipped when data
// from this session is already present; the refresh button forces one.
func (v *DashboardView) Load() {
	v.load(false)
}

func (v *DashboardView) load(force bool) {
	if v.admin {
		go v.store.Dashboard.RefreshAdmin(context.Background())
		return
	}
	go v.store.Dashboard.RefreshEmployee(context.Background(), force)
}

// Refresh re-renders the stat cards from the dashboard slice
func (v *DashboardView) Refresh() {
	stats := v.store.Dashboard.Stats()
	v.cards.RemoveAll()

	if stats == nil {
		if v.store.Dashboard.IsLoading() {
			v.cards.Add(widget.NewLabel("Loading..."))
		} else {
			v.cards.Add(widget.NewLabel("No data yet"))
		}
		v.cards.Refresh()
		return
	}

	if v.admin {
		v.addCard("Employees", stats.TotalEmployees)
		v.addCard("Active schedules", stats.ActiveSchedules)
		v.addCard("Pending leaves", stats.PendingLeaves)
		v.addCard("Open trades", stats.OpenTrades)
	} else {
		v.addCard("Upcoming shifts", stats.UpcomingShifts)
		v.addCard("Hours this week", stats.HoursThisWeek)
		v.addCard("Pending requests", stats.PendingRequests)
	}
	v.cards.Refresh()
}

func (v *DashboardView) addCard(label string, value int) {
	number := widget.NewLabelWithStyle(fmt.Sprintf("%d", value), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.cards.Add(widget.NewCard("", label, number))
}
