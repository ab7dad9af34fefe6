package ui

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shiftdesk/shiftdesk/internal/config"
	"github.com/shiftdesk/shiftdesk/internal/model"
	"github.com/shiftdesk/shiftdesk/internal/realtime"
	"github.com/shiftdesk/shiftdesk/internal/store"
)

// UI update debouncing
const RootUIUpdateDebounce = 100 * time.Millisecond

// RootUI is the shell: sidebar navigation, the active view, the error
// banner and the realtime connection indicator.
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	store    *store.Store
	realtime *realtime.Client
	settings *config.Settings

	current Route
	pending Route

	login          *LoginView
	dashboard      *DashboardView
	schedule       *ScheduleView
	leave          *LeaveView
	trades         *TradeView
	announcements  *AnnouncementView
	employees      *EmployeeView
	notifications  *NotificationsPanel
	settingsDialog *SettingsDialog

	nav         *fyne.Container
	body        *fyne.Container
	bannerLabel *widget.Label
	banner      *fyne.Container
	connLabel   *widget.Label

	// UI update debouncing
	lastUIUpdate  time.Time
	renderQueued  bool
	uiUpdateMutex sync.Mutex

	stopAutoRefresh chan struct{}
}

// NewRootUI creates and initializes the shell
func NewRootUI(window fyne.Window, app fyne.App, st *store.Store, rt *realtime.Client) *RootUI {
	ui := &RootUI{
		window:   window,
		app:      app,
		store:    st,
		realtime: rt,
		settings: config.NewSettings(app),
	}

	window.SetTitle("ShiftDesk")
	window.Resize(fyne.NewSize(WindowMinWidth, WindowMinHeight))

	ui.login = NewLoginView(st)
	ui.notifications = NewNotificationsPanel(st, window)
	ui.settingsDialog = NewSettingsDialog(ui.settings, window, func() {
		if ui.schedule != nil {
			ui.schedule.Refresh()
		}
	})

	st.SetChangeCallback(ui.onStoreChange)
	rt.AddMessageHandler(ui.onRealtimeMessage)

	ui.setupUI()
	return ui
}

// Start restores any stored session and shows the first view
func (ui *RootUI) Start() {
	sess := ui.store.Auth.Restore()
	if sess != nil {
		ui.realtime.Connect(sess)
		ui.buildSessionViews(sess)
		ui.startAutoRefresh()
		go ui.store.Auth.RefreshUser(context.Background())
	}
	ui.Navigate(Home(roleOf(sess)))
}

// HandleUnauthorized is wired to the API client's 401 callback
func (ui *RootUI) HandleUnauthorized() {
	ui.store.Auth.HandleUnauthorized()
	ui.realtime.Disconnect()
	ui.stopAutoRefreshLoop()
	fyne.Do(func() { ui.Navigate(RouteLogin) })
}

func (ui *RootUI) setupUI() {
	ui.bannerLabel = widget.NewLabel("")
	ui.bannerLabel.Wrapping = fyne.TextWrapWord
	dismiss := widget.NewButton(IconClose, ui.dismissError)
	ui.banner = container.NewBorder(nil, nil, nil, dismiss, ui.bannerLabel)
	ui.banner.Hide()

	ui.connLabel = widget.NewLabel("")
	ui.nav = container.NewVBox()
	ui.body = container.NewStack()

	top := container.NewBorder(nil, nil, nil, container.NewHBox(ui.connLabel, ui.notifications.Button()))
	ui.window.SetContent(container.NewBorder(
		container.NewVBox(top, ui.banner),
		nil,
		ui.nav,
		nil,
		ui.body,
	))
}

// Navigate applies the route guard and swaps the active view
func (ui *RootUI) Navigate(requested Route) {
	sess := ui.store.Auth.Session()
	resolution := Resolve(requested, sess)
	if resolution.Pending != "" {
		ui.pending = resolution.Pending
	}

	ui.current = resolution.Route
	ui.rebuildNav(sess)
	ui.body.RemoveAll()

	view := ui.viewFor(resolution.Route)
	if view == nil {
		ui.current = RouteLogin
		view = ui.login
	}
	ui.body.Add(view.Content())
	ui.body.Refresh()

	if loader, ok := view.(interface{ Load() }); ok {
		loader.Load()
	}
	view.Refresh()
	ui.refreshChrome()
}

// sessionView is what every routed view provides
type sessionView interface {
	Content() fyne.CanvasObject
	Refresh()
}

func (ui *RootUI) viewFor(route Route) sessionView {
	switch route {
	case RouteLogin:
		return ui.login
	case RouteDashboard, RouteAdminDashboard:
		if ui.dashboard != nil {
			return ui.dashboard
		}
	case RouteSchedule, RouteAdminSchedules:
		if ui.schedule != nil {
			return ui.schedule
		}
	case RouteLeave, RouteAdminLeaves:
		if ui.leave != nil {
			return ui.leave
		}
	case RouteTrades:
		if ui.trades != nil {
			return ui.trades
		}
	case RouteAnnouncements, RouteAdminAnnouncement:
		if ui.announcements != nil {
			return ui.announcements
		}
	case RouteAdminEmployees:
		if ui.employees != nil {
			return ui.employees
		}
	}
	return nil
}

// buildSessionViews creates the role-specific views for a fresh session
func (ui *RootUI) buildSessionViews(sess *model.Session) {
	admin := sess.User.Role.IsAdmin()

	ui.dashboard = NewDashboardView(ui.store, admin)
	ui.schedule = NewScheduleView(ui.store, ui.settings, ui.window, admin)
	ui.leave = NewLeaveView(ui.store, ui.window, admin)
	ui.trades = NewTradeView(ui.store, ui.window, sess.User.ID)
	ui.announcements = NewAnnouncementView(ui.store, ui.window, admin)
	if admin {
		ui.employees = NewEmployeeView(ui.store, ui.window)
	} else {
		ui.employees = nil
	}

	ui.notifications.Load()
}

func (ui *RootUI) rebuildNav(sess *model.Session) {
	ui.nav.RemoveAll()
	if sess == nil {
		ui.nav.Refresh()
		return
	}

	type navItem struct {
		label string
		route Route
	}

	items := []navItem{
		{IconDashboard + " Dashboard", Home(sess.User.Role)},
		{IconCalendar + " Schedule", RouteSchedule},
		{IconLeave + " Leave", RouteLeave},
		{IconTrade + " Trades", RouteTrades},
		{IconAnnouncement + " News", RouteAnnouncements},
	}
	if sess.User.Role.IsAdmin() {
		items = []navItem{
			{IconDashboard + " Overview", RouteAdminDashboard},
			{IconCalendar + " Schedules", RouteAdminSchedules},
			{IconPeople + " Employees", RouteAdminEmployees},
			{IconLeave + " Approvals", RouteAdminLeaves},
			{IconAnnouncement + " News", RouteAdminAnnouncement},
		}
	}

	for _, item := range items {
		route := item.route
		btn := widget.NewButton(item.label, func() { ui.Navigate(route) })
		if route == ui.current {
			btn.Importance = widget.HighImportance
		}
		ui.nav.Add(btn)
	}

	ui.nav.Add(widget.NewSeparator())
	ui.nav.Add(widget.NewButton(IconSettings+" Settings", ui.settingsDialog.Show))
	ui.nav.Add(widget.NewButton("Sign out", ui.onLogout))
	ui.nav.Refresh()
}

func (ui *RootUI) onLogout() {
	ui.realtime.Disconnect()
	ui.stopAutoRefreshLoop()
	ui.store.Auth.Logout()
	ui.pending = ""
	ui.Navigate(RouteLogin)
}

// onStoreChange re-renders the shell after any slice changed. Slices mutate
// from background goroutines, so the render hops to the UI thread, debounced
// to keep rapid bursts cheap.
func (ui *RootUI) onStoreChange() {
	ui.uiUpdateMutex.Lock()
	if ui.renderQueued {
		ui.uiUpdateMutex.Unlock()
		return
	}
	if time.Since(ui.lastUIUpdate) < RootUIUpdateDebounce {
		ui.renderQueued = true
		ui.uiUpdateMutex.Unlock()
		time.AfterFunc(RootUIUpdateDebounce, func() {
			ui.uiUpdateMutex.Lock()
			ui.renderQueued = false
			ui.lastUIUpdate = time.Now()
			ui.uiUpdateMutex.Unlock()
			fyne.Do(ui.render)
		})
		return
	}
	ui.lastUIUpdate = time.Now()
	ui.uiUpdateMutex.Unlock()

	fyne.Do(ui.render)
}

// render syncs the shell with the store: session transitions first, then
// the active view.
func (ui *RootUI) render() {
	sess := ui.store.Auth.Session()

	switch {
	case sess != nil && ui.current == RouteLogin:
		// Login just succeeded
		ui.realtime.Connect(sess)
		ui.buildSessionViews(sess)
		ui.startAutoRefresh()
		next := ui.pending
		ui.pending = ""
		if next == "" {
			next = Home(sess.User.Role)
		}
		ui.Navigate(next)
		return
	case sess == nil && ui.current != RouteLogin:
		// Session ended underneath us
		ui.Navigate(RouteLogin)
		return
	}

	if view := ui.viewFor(ui.current); view != nil {
		view.Refresh()
	}
	ui.refreshChrome()
}

// refreshChrome updates the banner, badge and connection indicator
func (ui *RootUI) refreshChrome() {
	ui.notifications.Refresh()

	if msg := ui.activeError(); msg != "" {
		ui.bannerLabel.SetText(msg)
		ui.banner.Show()
	} else {
		ui.banner.Hide()
	}

	if ui.current == RouteLogin || !ui.settings.GetShowConnected() {
		ui.connLabel.Hide()
		return
	}
	ui.connLabel.Show()
	if ui.realtime.IsConnected() {
		ui.connLabel.SetText(IconConnected + " Live")
	} else {
		ui.connLabel.SetText(IconDisconnected + " Offline")
	}
}

// activeError returns the error of the slice behind the current route
func (ui *RootUI) activeError() string {
	switch ui.current {
	case RouteDashboard, RouteAdminDashboard:
		return ui.store.Dashboard.Error()
	case RouteSchedule, RouteAdminSchedules:
		return ui.store.Schedules.Error()
	case RouteLeave, RouteAdminLeaves:
		return ui.store.Leaves.Error()
	case RouteTrades:
		return ui.store.Trades.Error()
	case RouteAnnouncements, RouteAdminAnnouncement:
		return ui.store.Announcements.Error()
	case RouteAdminEmployees:
		return ui.store.Employees.Error()
	}
	return ""
}

// dismissError clears the error on the slice behind the current route
func (ui *RootUI) dismissError() {
	switch ui.current {
	case RouteDashboard, RouteAdminDashboard:
		ui.store.Dashboard.ClearError()
	case RouteSchedule, RouteAdminSchedules:
		ui.store.Schedules.ClearError()
	case RouteLeave, RouteAdminLeaves:
		ui.store.Leaves.ClearError()
	case RouteTrades:
		ui.store.Trades.ClearError()
	case RouteAnnouncements, RouteAdminAnnouncement:
		ui.store.Announcements.ClearError()
	case RouteAdminEmployees:
		ui.store.Employees.ClearError()
	}
	ui.banner.Hide()
}

// onRealtimeMessage feeds pushed notifications into the store
func (ui *RootUI) onRealtimeMessage(msg realtime.Message) {
	if msg.Type != realtime.MessageNotification {
		return
	}

	var n model.Notification
	if err := json.Unmarshal(msg.Payload, &n); err != nil {
		log.Printf("Dropping malformed realtime notification: %v", err)
		return
	}
	ui.store.Notifications.Push(n)
}

// startAutoRefresh re-fetches the active view's data on the configured
// interval while a session is live.
func (ui *RootUI) startAutoRefresh() {
	ui.stopAutoRefreshLoop()
	stop := make(chan struct{})
	ui.stopAutoRefresh = stop

	interval := ui.settings.GetRefreshInterval()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				fyne.Do(ui.reloadActive)
			}
		}
	}()
}

func (ui *RootUI) stopAutoRefreshLoop() {
	if ui.stopAutoRefresh != nil {
		close(ui.stopAutoRefresh)
		ui.stopAutoRefresh = nil
	}
}

// reloadActive re-fetches the data behind the current route
func (ui *RootUI) reloadActive() {
	if view := ui.viewFor(ui.current); view != nil {
		if loader, ok := view.(interface{ Load() }); ok {
			loader.Load()
		}
	}
	ui.refreshChrome()
}

func roleOf(sess *model.Session) model.Role {
	if sess == nil {
		return model.RoleEmployee
	}
	return sess.User.Role
}
