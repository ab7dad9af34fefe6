package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/shiftdesk/shiftdesk/internal/api"
	"github.com/shiftdesk/shiftdesk/internal/model"
	"github.com/shiftdesk/shiftdesk/internal/store"
)

// EmployeeView is the admin roster: list, add, edit and deactivate staff
type EmployeeView struct {
	store  *store.Store
	window fyne.Window

	list    *fyne.Container
	content fyne.CanvasObject
}

// NewEmployeeView creates the staff management view
func NewEmployeeView(st *store.Store, window fyne.Window) *EmployeeView {
	v := &EmployeeView{store: st, window: window}
	v.createUI()
	return v
}

// Content returns the view's root object
func (v *EmployeeView) Content() fyne.CanvasObject {
	return v.content
}

func (v *EmployeeView) createUI() {
	heading := widget.NewLabelWithStyle("Employees", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	addBtn := widget.NewButton("Add employee", func() { v.showEditor(nil) })
	addBtn.Importance = widget.HighImportance

	header := container.NewBorder(nil, nil, heading, addBtn)
	v.list = container.NewVBox()
	v.content = container.NewBorder(header, nil, nil, nil, container.NewVScroll(v.list))
}

// Load fetches the roster and the lookup values for the editor
func (v *EmployeeView) Load() {
	go v.store.Employees.Refresh(context.Background())
	go v.store.Employees.RefreshLookups(context.Background())
}

// Refresh re-renders the roster from the employee slice
func (v *EmployeeView) Refresh() {
	items := v.store.Employees.Items()
	v.list.RemoveAll()

	if len(items) == 0 {
		v.list.Add(widget.NewLabel("No employees"))
	}
	for _, item := range items {
		v.list.Add(v.renderRow(item))
	}
	v.list.Refresh()
}

func (v *EmployeeView) renderRow(e model.Employee) fyne.CanvasObject {
	summary := e.Name + MiddleDotSeparator + e.Department + MiddleDotSeparator + e.Position
	if e.Role.IsAdmin() {
		summary += MiddleDotSeparator + "admin"
	}
	label := widget.NewLabel(summary)
	if !e.IsActive {
		label.Importance = widget.LowImportance
	}

	eCopy := e
	edit := widget.NewButton("Edit", func() { v.showEditor(&eCopy) })
	deactivate := widget.NewButton("Deactivate", func() {
		dialog.ShowConfirm("Deactivate employee", "Deactivate "+eCopy.Name+"?", func(ok bool) {
			if ok {
				go v.store.Employees.Delete(context.Background(), eCopy.ID)
			}
		}, v.window)
	})
	deactivate.Importance = widget.DangerImportance

	actions := container.NewHBox(edit, deactivate)
	return container.NewBorder(nil, widget.NewSeparator(), nil, actions, label)
}

// showEditor collects a new staff member, or edits an existing one
func (v *EmployeeView) showEditor(existing *model.Employee) {
	nameEntry := widget.NewEntry()
	emailEntry := widget.NewEntry()
	emailEntry.SetPlaceHolder("person@company.com")

	roleSelect := widget.NewSelect([]string{string(model.RoleEmployee), string(model.RoleAdmin)}, nil)
	roleSelect.SetSelected(string(model.RoleEmployee))

	departmentSelect := widget.NewSelect(departmentNames(v.store.Employees.Departments()), nil)
	positionSelect := widget.NewSelect(positionNames(v.store.Employees.Positions()), nil)

	passwordEntry := widget.NewPasswordEntry()
	passwordEntry.SetPlaceHolder("Initial password")

	heading := "Add employee"
	if existing != nil {
		heading = "Edit employee"
		nameEntry.SetText(existing.Name)
		emailEntry.SetText(existing.Email)
		roleSelect.SetSelected(string(existing.Role))
		departmentSelect.SetSelected(existing.Department)
		positionSelect.SetSelected(existing.Position)
		passwordEntry.SetPlaceHolder("Leave blank to keep current")
	}

	form := container.NewVBox(
		widget.NewLabel("Name"), nameEntry,
		widget.NewLabel("Email"), emailEntry,
		widget.NewLabel("Role"), roleSelect,
		widget.NewLabel("Department"), departmentSelect,
		widget.NewLabel("Position"), positionSelect,
		widget.NewLabel("Password"), passwordEntry,
	)

	d := dialog.NewCustomConfirm(heading, "Save", "Cancel", form, func(ok bool) {
		if !ok {
			return
		}

		req := api.EmployeeRequest{
			Email:      emailEntry.Text,
			Name:       nameEntry.Text,
			Role:       model.Role(roleSelect.Selected),
			Department: departmentSelect.Selected,
			Position:   positionSelect.Selected,
			Password:   passwordEntry.Text,
		}
		if msg := ValidateEmployee(req); msg != "" {
			dialog.ShowInformation("Check the form", msg, v.window)
			return
		}

		if existing != nil {
			go v.store.Employees.Update(context.Background(), existing.ID, req)
		} else {
			go v.store.Employees.Create(context.Background(), req)
		}
	}, v.window)
	d.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	d.Show()
}

func departmentNames(items []model.Department) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}

func positionNames(items []model.Position) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}
