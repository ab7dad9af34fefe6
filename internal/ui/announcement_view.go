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

// AnnouncementView lists company announcements newest first. Opening an
// unread one marks it read; admins can publish, edit and delete.
type AnnouncementView struct {
	store  *store.Store
	window fyne.Window
	admin  bool

	list    *fyne.Container
	content fyne.CanvasObject
}

// NewAnnouncementView creates the announcement feed
func NewAnnouncementView(st *store.Store, window fyne.Window, admin bool) *AnnouncementView {
	v := &AnnouncementView{store: st, window: window, admin: admin}
	v.createUI()
	return v
}

// Content returns the view's root object
func (v *AnnouncementView) Content() fyne.CanvasObject {
	return v.content
}

func (v *AnnouncementView) createUI() {
	heading := widget.NewLabelWithStyle("Announcements", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	header := container.NewBorder(nil, nil, heading, nil)
	if v.admin {
		publishBtn := widget.NewButton("Publish", func() { v.showEditor(nil) })
		publishBtn.Importance = widget.HighImportance
		header = container.NewBorder(nil, nil, heading, publishBtn)
	}

	v.list = container.NewVBox()
	v.content = container.NewBorder(header, nil, nil, nil, container.NewVScroll(v.list))
}

// Load fetches the feed
func (v *AnnouncementView) Load() {
	go v.store.Announcements.Refresh(context.Background())
}

// Refresh re-renders the feed from the announcement slice
func (v *AnnouncementView) Refresh() {
	items := v.store.Announcements.Items()
	v.list.RemoveAll()

	if len(items) == 0 {
		v.list.Add(widget.NewLabel("No announcements"))
	}
	for _, item := range items {
		v.list.Add(v.renderRow(item))
	}
	v.list.Refresh()
}

func (v *AnnouncementView) renderRow(a model.Announcement) fyne.CanvasObject {
	title := a.Title
	if a.Priority == model.PriorityHigh {
		title = IconAnnouncement + " " + title
	}

	titleLabel := widget.NewLabel(title)
	if !a.IsRead {
		titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	}

	meta := widget.NewLabel(a.Author + MiddleDotSeparator + a.CreatedAt.Format(DateFormat))
	meta.Importance = widget.LowImportance

	aCopy := a
	openBtn := widget.NewButton("Open", func() { v.open(aCopy) })

	actions := container.NewHBox(openBtn)
	if v.admin {
		edit := widget.NewButton("Edit", func() { v.showEditor(&aCopy) })
		remove := widget.NewButton("Delete", func() {
			dialog.ShowConfirm("Delete announcement", "Remove this announcement?", func(ok bool) {
				if ok {
					go v.store.Announcements.Delete(context.Background(), aCopy.ID)
				}
			}, v.window)
		})
		remove.Importance = widget.DangerImportance
		actions.Add(edit)
		actions.Add(remove)
	}

	row := container.NewVBox(titleLabel, meta, widget.NewSeparator())
	return container.NewBorder(nil, nil, nil, actions, row)
}

// open shows the full text and marks the announcement read
func (v *AnnouncementView) open(a model.Announcement) {
	content := widget.NewLabel(a.Content)
	content.Wrapping = fyne.TextWrapWord

	dialog.ShowCustom(a.Title, "Close", container.NewVScroll(content), v.window)
	if !a.IsRead {
		go v.store.Announcements.MarkRead(context.Background(), a.ID)
	}
}

// showEditor collects a new announcement, or edits an existing one
func (v *AnnouncementView) showEditor(existing *model.Announcement) {
	titleEntry := widget.NewEntry()
	titleEntry.SetPlaceHolder("Title")

	contentEntry := widget.NewMultiLineEntry()
	contentEntry.SetPlaceHolder("Write the announcement")

	prioritySelect := widget.NewSelect([]string{string(model.PriorityNormal), string(model.PriorityHigh)}, nil)
	prioritySelect.SetSelected(string(model.PriorityNormal))

	heading := "Publish announcement"
	if existing != nil {
		heading = "Edit announcement"
		titleEntry.SetText(existing.Title)
		contentEntry.SetText(existing.Content)
		prioritySelect.SetSelected(string(existing.Priority))
	}

	form := container.NewVBox(
		widget.NewLabel("Title"), titleEntry,
		widget.NewLabel("Content"), contentEntry,
		widget.NewLabel("Priority"), prioritySelect,
	)

	d := dialog.NewCustomConfirm(heading, "Save", "Cancel", form, func(ok bool) {
		if !ok {
			return
		}

		req := api.CreateAnnouncementRequest{
			Title:    titleEntry.Text,
			Content:  contentEntry.Text,
			Priority: model.AnnouncementPriority(prioritySelect.Selected),
		}
		if msg := ValidateAnnouncement(req); msg != "" {
			dialog.ShowInformation("Check the form", msg, v.window)
			return
		}

		if existing != nil {
			go v.store.Announcements.Update(context.Background(), existing.ID, req)
		} else {
			go v.store.Announcements.Create(context.Background(), req)
		}
	}, v.window)
	d.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	d.Show()
}
