package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/shiftdesk/shiftdesk/internal/model"
	"github.com/shiftdesk/shiftdesk/internal/store"
)

// NotificationsPanel is the bell dropdown: the feed with per-item and
// mark-all read actions. Realtime pushes land in the same slice, so the
// panel re-renders on the store's change callback like every other view.
type NotificationsPanel struct {
	store  *store.Store
	window fyne.Window

	bellBtn *widget.Button
}

// NewNotificationsPanel creates the bell button and its dropdown
func NewNotificationsPanel(st *store.Store, window fyne.Window) *NotificationsPanel {
	p := &NotificationsPanel{store: st, window: window}
	p.bellBtn = widget.NewButton(IconBell, p.show)
	return p
}

// Button returns the bell button for the shell's toolbar
func (p *NotificationsPanel) Button() *widget.Button {
	return p.bellBtn
}

// Load fetches the feed
func (p *NotificationsPanel) Load() {
	go p.store.Notifications.Refresh(context.Background())
}

// Refresh updates the unread badge on the bell
func (p *NotificationsPanel) Refresh() {
	unread := p.store.Notifications.UnreadCount()
	if unread > 0 {
		p.bellBtn.SetText(fmt.Sprintf(UnreadBadgeFormat, IconBell, unread))
	} else {
		p.bellBtn.SetText(IconBell)
	}
}

func (p *NotificationsPanel) show() {
	items := p.store.Notifications.Items()

	box := container.NewVBox()
	if len(items) == 0 {
		box.Add(widget.NewLabel("Nothing here yet"))
	}
	for _, item := range items {
		box.Add(p.renderRow(item))
	}

	markAll := widget.NewButton("Mark all read", func() {
		go p.store.Notifications.MarkAllRead(context.Background())
	})
	if p.store.Notifications.UnreadCount() == 0 {
		markAll.Disable()
	}

	content := container.NewBorder(markAll, nil, nil, nil, container.NewVScroll(box))
	d := dialog.NewCustom("Notifications", "Close", content, p.window)
	d.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	d.Show()
}

func (p *NotificationsPanel) renderRow(n model.Notification) fyne.CanvasObject {
	title := widget.NewLabel(n.Title)
	if !n.IsRead {
		title.TextStyle = fyne.TextStyle{Bold: true}
	}

	message := widget.NewLabel(n.Message)
	message.Wrapping = fyne.TextWrapWord
	message.Importance = widget.LowImportance

	row := container.NewVBox(title, message, widget.NewSeparator())
	if n.IsRead {
		return row
	}

	id := n.ID
	markBtn := widget.NewButton("Read", func() {
		go p.store.Notifications.MarkRead(context.Background(), id)
	})
	return container.NewBorder(nil, nil, nil, markBtn, row)
}
