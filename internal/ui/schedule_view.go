package ui

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/shiftdesk/shiftdesk/internal/api"
	"github.com/shiftdesk/shiftdesk/internal/calendar"
	"github.com/shiftdesk/shiftdesk/internal/config"
	"github.com/shiftdesk/shiftdesk/internal/model"
	"github.com/shiftdesk/shiftdesk/internal/store"
)

// ScheduleView renders the calendar with the shifts bucketed into day cells.
// Admins additionally get shift creation and status controls.
type ScheduleView struct {
	store    *store.Store
	settings *config.Settings
	window   fyne.Window
	admin    bool

	anchor time.Time
	mode   calendar.ViewMode

	titleLabel *widget.Label
	modeSelect *widget.Select
	grid       *fyne.Container
	content    fyne.CanvasObject
}

// NewScheduleView creates the calendar view
func NewScheduleView(st *store.Store, settings *config.Settings, window fyne.Window, admin bool) *ScheduleView {
	v := &ScheduleView{
		store:    st,
		settings: settings,
		window:   window,
		admin:    admin,
		anchor:   time.Now(),
		mode:     calendar.ViewMonth,
	}
	v.createUI()
	return v
}

// Content returns the view's root object
func (v *ScheduleView) Content() fyne.CanvasObject {
	return v.content
}

func (v *ScheduleView) createUI() {
	v.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	prevBtn := widget.NewButton("<", func() {
		v.anchor = calendar.Prev(v.anchor, v.mode)
		v.Load()
	})
	todayBtn := widget.NewButton("Today", func() {
		v.anchor = time.Now()
		v.Load()
	})
	nextBtn := widget.NewButton(">", func() {
		v.anchor = calendar.Next(v.anchor, v.mode)
		v.Load()
	})

	v.modeSelect = widget.NewSelect([]string{"Month", "Week"}, func(selected string) {
		if selected == "Week" {
			v.mode = calendar.ViewWeek
		} else {
			v.mode = calendar.ViewMonth
		}
		v.Load()
	})
	v.modeSelect.SetSelected("Month")

	controls := container.NewHBox(prevBtn, todayBtn, nextBtn, v.modeSelect)
	if v.admin {
		addBtn := widget.NewButton("Add shift", v.showCreateDialog)
		addBtn.Importance = widget.HighImportance
		bulkBtn := widget.NewButton("Add range", v.showBulkDialog)
		controls.Add(addBtn)
		controls.Add(bulkBtn)
	}

	header := container.NewBorder(nil, nil, controls, nil, v.titleLabel)

	v.grid = container.NewGridWithColumns(7)
	v.content = container.NewBorder(header, nil, nil, nil, container.NewVScroll(v.grid))
}

// Load fetches the shifts covering the visible period; admins also need
// the roster for the employee pickers.
func (v *ScheduleView) Load() {
	grid := calendar.Build(v.anchor, v.mode, v.settings.GetWeekStartDay(), nil)
	first := grid.Cells[0].Date
	last := grid.Cells[len(grid.Cells)-1].Date

	go v.store.Schedules.Refresh(context.Background(), api.ScheduleFilter{From: first, To: last})
	if v.admin {
		go v.store.Employees.Refresh(context.Background())
	}
}

// Refresh re-renders the calendar grid from the schedule slice
func (v *ScheduleView) Refresh() {
	grid := calendar.Build(v.anchor, v.mode, v.settings.GetWeekStartDay(), v.store.Schedules.Items())
	v.titleLabel.SetText(grid.Title())

	v.grid.RemoveAll()
	for _, cell := range grid.Cells {
		v.grid.Add(v.renderCell(cell))
	}
	v.grid.Refresh()
}

func (v *ScheduleView) renderCell(cell calendar.Cell) fyne.CanvasObject {
	day := widget.NewLabel(fmt.Sprintf("%d", cell.Date.Day()))
	if cell.IsToday {
		day.TextStyle = fyne.TextStyle{Bold: true}
	}
	if !cell.InMonth {
		day.Importance = widget.LowImportance
	}

	box := container.NewVBox(day)
	for _, shift := range cell.Schedules {
		box.Add(v.renderShift(shift))
	}

	return container.NewGridWrap(fyne.NewSize(CalendarCellMin, CalendarCellMin), box)
}

func (v *ScheduleView) renderShift(shift model.Schedule) fyne.CanvasObject {
	badge := canvas.NewRectangle(ScheduleStatusColor(shift.Status))
	badge.SetMinSize(fyne.NewSize(8, 8))

	label := shift.ShiftType.Label()
	if v.admin && shift.UserName != "" {
		label = shift.UserName + MiddleDotSeparator + label
	}

	text := widget.NewLabel(label)
	text.Truncation = fyne.TextTruncateEllipsis

	row := container.NewBorder(nil, nil, badge, nil, text)
	if !v.admin {
		return row
	}

	shiftCopy := shift
	menuBtn := widget.NewButton(IconSettings, func() { v.showShiftActions(shiftCopy) })
	return container.NewBorder(nil, nil, badge, menuBtn, text)
}

// showShiftActions offers the lifecycle transitions for one shift
func (v *ScheduleView) showShiftActions(shift model.Schedule) {
	confirm := widget.NewButton("Confirm", func() {
		go v.store.Schedules.UpdateStatus(context.Background(), shift.ID, model.ScheduleStatusConfirmed)
	})
	complete := widget.NewButton("Complete", func() {
		go v.store.Schedules.UpdateStatus(context.Background(), shift.ID, model.ScheduleStatusCompleted)
	})
	cancel := widget.NewButton("Cancel shift", func() {
		go v.store.Schedules.UpdateStatus(context.Background(), shift.ID, model.ScheduleStatusCancelled)
	})
	remove := widget.NewButton("Delete", func() {
		dialog.ShowConfirm("Delete shift", "Remove this shift permanently?", func(ok bool) {
			if ok {
				go v.store.Schedules.Delete(context.Background(), shift.ID)
			}
		}, v.window)
	})
	remove.Importance = widget.DangerImportance

	title := fmt.Sprintf("%s, %s", shift.ShiftType.Label(), shift.StartTime.Format(DateFormat))
	box := container.NewVBox(confirm, complete, cancel, widget.NewSeparator(), remove)
	dialog.ShowCustom(title, "Close", box, v.window)
}

// showCreateDialog collects a single shift for one employee
func (v *ScheduleView) showCreateDialog() {
	employeeSelect, employeeID := v.employeePicker()

	dateEntry := widget.NewEntry()
	dateEntry.SetPlaceHolder(InputDate)
	dateEntry.SetText(v.anchor.Format(InputDate))

	startEntry := widget.NewEntry()
	startEntry.SetPlaceHolder(InputTime)
	startEntry.SetText("09:00")

	endEntry := widget.NewEntry()
	endEntry.SetPlaceHolder(InputTime)
	endEntry.SetText("17:00")

	shiftSelect := widget.NewSelect(shiftTypeLabels(), nil)
	shiftSelect.SetSelected(model.ShiftMorning.Label())

	errorLabel := widget.NewLabel("")
	errorLabel.Hide()

	form := container.NewVBox(
		widget.NewLabel("Employee"), employeeSelect,
		widget.NewLabel("Date"), dateEntry,
		widget.NewLabel("Start"), startEntry,
		widget.NewLabel("End"), endEntry,
		widget.NewLabel("Shift type"), shiftSelect,
		errorLabel,
	)

	d := dialog.NewCustomConfirm("Add shift", "Create", "Cancel", form, func(ok bool) {
		if !ok {
			return
		}
		req, err := buildScheduleRequest(*employeeID, dateEntry.Text, startEntry.Text, endEntry.Text, shiftSelect.Selected)
		if err != nil {
			v.showFormError(err.Error())
			return
		}
		if msg := ValidateSchedule(req); msg != "" {
			v.showFormError(msg)
			return
		}
		go v.store.Schedules.Create(context.Background(), req)
	}, v.window)
	d.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	d.Show()
}

// showBulkDialog collects the same shift across a date range
func (v *ScheduleView) showBulkDialog() {
	employeeSelect, employeeID := v.employeePicker()

	fromEntry := widget.NewEntry()
	fromEntry.SetPlaceHolder(InputDate)
	toEntry := widget.NewEntry()
	toEntry.SetPlaceHolder(InputDate)

	shiftSelect := widget.NewSelect(shiftTypeLabels(), nil)
	shiftSelect.SetSelected(model.ShiftMorning.Label())

	weekdayChecks := make(map[time.Weekday]*widget.Check, 7)
	weekdayRow := container.NewHBox()
	for wd := time.Monday; ; wd = (wd + 1) % 7 {
		check := widget.NewCheck(wd.String()[:3], nil)
		check.SetChecked(wd != time.Saturday && wd != time.Sunday)
		weekdayChecks[wd] = check
		weekdayRow.Add(check)
		if wd == time.Sunday {
			break
		}
	}

	form := container.NewVBox(
		widget.NewLabel("Employee"), employeeSelect,
		widget.NewLabel("From"), fromEntry,
		widget.NewLabel("To"), toEntry,
		widget.NewLabel("Shift type"), shiftSelect,
		widget.NewLabel("Weekdays"), weekdayRow,
	)

	d := dialog.NewCustomConfirm("Add shifts for range", "Create", "Cancel", form, func(ok bool) {
		if !ok {
			return
		}

		from, err := time.Parse(InputDate, fromEntry.Text)
		if err != nil {
			v.showFormError("Enter the from date as " + InputDate)
			return
		}
		to, err := time.Parse(InputDate, toEntry.Text)
		if err != nil {
			v.showFormError("Enter the to date as " + InputDate)
			return
		}

		var weekdays []time.Weekday
		for wd, check := range weekdayChecks {
			if check.Checked {
				weekdays = append(weekdays, wd)
			}
		}

		req := api.BulkScheduleRequest{
			UserID:    *employeeID,
			StartDate: from,
			EndDate:   to,
			ShiftType: shiftTypeFromLabel(shiftSelect.Selected),
			Weekdays:  weekdays,
		}
		if msg := ValidateBulkSchedule(req); msg != "" {
			v.showFormError(msg)
			return
		}
		go v.store.Schedules.CreateBulk(context.Background(), req)
	}, v.window)
	d.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	d.Show()
}

// employeePicker builds a select over the cached roster and a destination
// for the chosen employee's id.
func (v *ScheduleView) employeePicker() (*widget.Select, *int) {
	employees := v.store.Employees.Items()
	names := make([]string, len(employees))
	for i, e := range employees {
		names[i] = e.Name
	}

	chosen := new(int)
	sel := widget.NewSelect(names, func(name string) {
		for _, e := range employees {
			if e.Name == name {
				*chosen = e.ID
				return
			}
		}
	})
	return sel, chosen
}

func (v *ScheduleView) showFormError(msg string) {
	dialog.ShowInformation("Check the form", msg, v.window)
}

func shiftTypeLabels() []string {
	types := []model.ShiftType{model.ShiftMorning, model.ShiftAfternoon, model.ShiftEvening, model.ShiftFullDay}
	labels := make([]string, len(types))
	for i, t := range types {
		labels[i] = t.Label()
	}
	return labels
}

func shiftTypeFromLabel(label string) model.ShiftType {
	for _, t := range []model.ShiftType{model.ShiftMorning, model.ShiftAfternoon, model.ShiftEvening, model.ShiftFullDay} {
		if t.Label() == label {
			return t
		}
	}
	return model.ShiftMorning
}

// buildScheduleRequest assembles a create request from the raw form inputs
func buildScheduleRequest(userID int, date, start, end, shiftLabel string) (api.CreateScheduleRequest, error) {
	day, err := time.Parse(InputDate, date)
	if err != nil {
		return api.CreateScheduleRequest{}, fmt.Errorf("enter the date as %s", InputDate)
	}
	startClock, err := time.Parse(InputTime, start)
	if err != nil {
		return api.CreateScheduleRequest{}, fmt.Errorf("enter the start time as %s", InputTime)
	}
	endClock, err := time.Parse(InputTime, end)
	if err != nil {
		return api.CreateScheduleRequest{}, fmt.Errorf("enter the end time as %s", InputTime)
	}

	at := func(clock time.Time) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)
	}

	return api.CreateScheduleRequest{
		UserID:    userID,
		StartTime: at(startClock),
		EndTime:   at(endClock),
		ShiftType: shiftTypeFromLabel(shiftLabel),
	}, nil
}
