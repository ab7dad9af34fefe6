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
	"github.com/shiftdesk/shiftdesk/internal/model"
	"github.com/shiftdesk/shiftdesk/internal/store"
)

// LeaveView lists leave requests. Employees see their own with a request
// form and a cancel action; admins see everyone's with approve and reject.
type LeaveView struct {
	store  *store.Store
	window fyne.Window
	admin  bool

	list    *fyne.Container
	content fyne.CanvasObject
}

// NewLeaveView creates the leave request view
func NewLeaveView(st *store.Store, window fyne.Window, admin bool) *LeaveView {
	v := &LeaveView{store: st, window: window, admin: admin}
	v.createUI()
	return v
}

// Content returns the view's root object
func (v *LeaveView) Content() fyne.CanvasObject {
	return v.content
}

func (v *LeaveView) createUI() {
	title := "My Leave Requests"
	if v.admin {
		title = "Leave Approvals"
	}
	heading := widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	header := container.NewBorder(nil, nil, heading, nil)
	if !v.admin {
		requestBtn := widget.NewButton("Request leave", v.showRequestDialog)
		requestBtn.Importance = widget.HighImportance
		header = container.NewBorder(nil, nil, heading, requestBtn)
	}

	v.list = container.NewVBox()
	v.content = container.NewBorder(header, nil, nil, nil, container.NewVScroll(v.list))
}

// Load fetches the requests visible to the caller
func (v *LeaveView) Load() {
	go v.store.Leaves.Refresh(context.Background())
}

// Refresh re-renders the list from the leave slice
func (v *LeaveView) Refresh() {
	items := v.store.Leaves.Items()
	v.list.RemoveAll()

	if len(items) == 0 {
		v.list.Add(widget.NewLabel("No leave requests"))
	}
	for _, item := range items {
		v.list.Add(v.renderRow(item))
	}
	v.list.Refresh()
}

func (v *LeaveView) renderRow(lr model.LeaveRequest) fyne.CanvasObject {
	badge := canvas.NewRectangle(LeaveStatusColor(lr.Status))
	badge.SetMinSize(fyne.NewSize(10, 10))

	period := fmt.Sprintf("%s to %s", lr.StartDate.Format(ShortDate), lr.EndDate.Format(DateFormat))
	summary := string(lr.LeaveType) + MiddleDotSeparator + period
	if v.admin {
		summary = lr.Employee.Name + MiddleDotSeparator + summary
	}

	label := widget.NewLabel(summary)
	status := widget.NewLabel(string(lr.Status))

	actions := container.NewHBox(status)
	switch {
	case v.admin && lr.Status == model.LeaveStatusPending:
		id := lr.ID
		approve := widget.NewButton("Approve", func() { v.showDecisionDialog(id, model.LeaveStatusApproved) })
		reject := widget.NewButton("Reject", func() { v.showDecisionDialog(id, model.LeaveStatusRejected) })
		reject.Importance = widget.DangerImportance
		actions.Add(approve)
		actions.Add(reject)
	case !v.admin && lr.Status == model.LeaveStatusPending:
		id := lr.ID
		cancel := widget.NewButton("Cancel", func() {
			dialog.ShowConfirm("Cancel request", "Withdraw this leave request?", func(ok bool) {
				if ok {
					go v.store.Leaves.Cancel(context.Background(), id)
				}
			}, v.window)
		})
		actions.Add(cancel)
	}

	return container.NewBorder(nil, widget.NewSeparator(), badge, actions, label)
}

// showRequestDialog collects a new leave request
func (v *LeaveView) showRequestDialog() {
	typeSelect := widget.NewSelect([]string{string(model.LeaveVacation), string(model.LeaveOnLeave)}, nil)
	typeSelect.SetSelected(string(model.LeaveVacation))

	fromEntry := widget.NewEntry()
	fromEntry.SetPlaceHolder(InputDate)
	toEntry := widget.NewEntry()
	toEntry.SetPlaceHolder(InputDate)

	reasonEntry := widget.NewMultiLineEntry()
	reasonEntry.SetPlaceHolder("Why do you need this time off?")

	form := container.NewVBox(
		widget.NewLabel("Type"), typeSelect,
		widget.NewLabel("From"), fromEntry,
		widget.NewLabel("To"), toEntry,
		widget.NewLabel("Reason"), reasonEntry,
	)

	d := dialog.NewCustomConfirm("Request leave", "Submit", "Cancel", form, func(ok bool) {
		if !ok {
			return
		}

		from, err := time.Parse(InputDate, fromEntry.Text)
		if err != nil {
			dialog.ShowInformation("Check the form", "Enter the from date as "+InputDate, v.window)
			return
		}
		to, err := time.Parse(InputDate, toEntry.Text)
		if err != nil {
			dialog.ShowInformation("Check the form", "Enter the to date as "+InputDate, v.window)
			return
		}

		req := api.CreateLeaveRequest{
			LeaveType: model.LeaveType(typeSelect.Selected),
			StartDate: from,
			EndDate:   to,
			Reason:    reasonEntry.Text,
		}
		if msg := ValidateLeave(req); msg != "" {
			dialog.ShowInformation("Check the form", msg, v.window)
			return
		}
		go v.store.Leaves.Create(context.Background(), req)
	}, v.window)
	d.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	d.Show()
}

// showDecisionDialog collects the optional admin note before deciding
func (v *LeaveView) showDecisionDialog(id int, status model.LeaveStatus) {
	noteEntry := widget.NewMultiLineEntry()
	noteEntry.SetPlaceHolder("Optional note for the employee")

	verb := "Approve"
	if status == model.LeaveStatusRejected {
		verb = "Reject"
	}

	dialog.ShowCustomConfirm(verb+" request", verb, "Back", noteEntry, func(ok bool) {
		if !ok {
			return
		}
		req := api.ProcessLeaveRequest{Status: status, AdminResponse: noteEntry.Text}
		go v.store.Leaves.Process(context.Background(), id, req)
	}, v.window)
}
