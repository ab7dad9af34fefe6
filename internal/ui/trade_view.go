package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/shiftdesk/shiftdesk/internal/api"
	"github.com/shiftdesk/shiftdesk/internal/model"
	"github.com/shiftdesk/shiftdesk/internal/store"
)

// TradeView lists shift trades. Everyone can respond to open trades from
// other employees; authors settle the responses to their own.
type TradeView struct {
	store  *store.Store
	window fyne.Window
	userID int

	list    *fyne.Container
	content fyne.CanvasObject
}

// NewTradeView creates the trade board
func NewTradeView(st *store.Store, window fyne.Window, userID int) *TradeView {
	v := &TradeView{store: st, window: window, userID: userID}
	v.createUI()
	return v
}

// Content returns the view's root object
func (v *TradeView) Content() fyne.CanvasObject {
	return v.content
}

func (v *TradeView) createUI() {
	heading := widget.NewLabelWithStyle("Shift Trades", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	createBtn := widget.NewButton("Offer a shift", v.showCreateDialog)
	createBtn.Importance = widget.HighImportance

	header := container.NewBorder(nil, nil, heading, createBtn)
	v.list = container.NewVBox()
	v.content = container.NewBorder(header, nil, nil, nil, container.NewVScroll(v.list))
}

// Load fetches the trades plus the caller's shifts for the offer pickers
func (v *TradeView) Load() {
	go v.store.Trades.Refresh(context.Background())
	go v.store.Schedules.Refresh(context.Background(), api.ScheduleFilter{UserID: v.userID})
}

// Refresh re-renders the board from the trade slice
func (v *TradeView) Refresh() {
	items := v.store.Trades.Items()
	v.list.RemoveAll()

	if len(items) == 0 {
		v.list.Add(widget.NewLabel("No open trades"))
	}
	for _, item := range items {
		v.list.Add(v.renderTrade(item))
	}
	v.list.Refresh()
}

func (v *TradeView) renderTrade(trade model.ShiftTradeRequest) fyne.CanvasObject {
	statusBadge := canvas.NewRectangle(TradeStatusColor(trade.Status))
	statusBadge.SetMinSize(fyne.NewSize(10, 10))
	urgencyBadge := canvas.NewRectangle(UrgencyColor(trade.Urgency))
	urgencyBadge.SetMinSize(fyne.NewSize(10, 10))

	kind := "Trade"
	if trade.Type == model.TradeTypeGiveaway {
		kind = "Giveaway"
	}
	summary := fmt.Sprintf("%s%s%s%s%s",
		trade.Author.Name, MiddleDotSeparator, kind, MiddleDotSeparator,
		trade.OriginalShift.StartTime.Format(DateTimeFormat))
	label := widget.NewLabel(summary)

	mine := trade.Author.ID == v.userID
	actions := container.NewHBox(widget.NewLabel(string(trade.Status)))

	switch {
	case mine && trade.Status != model.TradeStatusCompleted:
		tradeCopy := trade
		if pending := pendingResponses(trade); len(pending) > 0 {
			review := widget.NewButton(fmt.Sprintf("Review (%d)", len(pending)), func() {
				v.showResponsesDialog(tradeCopy)
			})
			actions.Add(review)
		}
		withdraw := widget.NewButton("Withdraw", func() {
			dialog.ShowConfirm("Withdraw trade", "Remove this trade request?", func(ok bool) {
				if ok {
					go v.store.Trades.Delete(context.Background(), tradeCopy.ID)
				}
			}, v.window)
		})
		withdraw.Importance = widget.DangerImportance
		actions.Add(withdraw)
	case !mine && trade.Status == model.TradeStatusOpen:
		tradeCopy := trade
		respond := widget.NewButton("Respond", func() { v.showRespondDialog(tradeCopy) })
		actions.Add(respond)
	}

	badges := container.NewHBox(statusBadge, urgencyBadge)
	return container.NewBorder(nil, widget.NewSeparator(), badges, actions, label)
}

func pendingResponses(trade model.ShiftTradeRequest) []model.ShiftTradeResponse {
	var pending []model.ShiftTradeResponse
	for _, r := range trade.Responses {
		if r.Status == model.TradeResponsePending {
			pending = append(pending, r)
		}
	}
	return pending
}

// showCreateDialog collects a new trade or giveaway against one of the
// caller's own upcoming shifts.
func (v *TradeView) showCreateDialog() {
	shifts := v.ownUpcomingShifts()
	if len(shifts) == 0 {
		dialog.ShowInformation("No shifts", "You have no upcoming shifts to offer.", v.window)
		return
	}

	shiftLabels := make([]string, len(shifts))
	for i, s := range shifts {
		shiftLabels[i] = fmt.Sprintf("%s (%s)", s.StartTime.Format(DateTimeFormat), s.ShiftType.Label())
	}
	shiftSelect := widget.NewSelect(shiftLabels, nil)

	typeSelect := widget.NewSelect([]string{"Trade", "Giveaway"}, nil)
	typeSelect.SetSelected("Trade")

	urgencySelect := widget.NewSelect([]string{string(model.UrgencyLow), string(model.UrgencyMedium), string(model.UrgencyHigh)}, nil)
	urgencySelect.SetSelected(string(model.UrgencyMedium))

	reasonEntry := widget.NewMultiLineEntry()
	reasonEntry.SetPlaceHolder("Optional reason")

	form := container.NewVBox(
		widget.NewLabel("Shift"), shiftSelect,
		widget.NewLabel("Type"), typeSelect,
		widget.NewLabel("Urgency"), urgencySelect,
		widget.NewLabel("Reason"), reasonEntry,
	)

	d := dialog.NewCustomConfirm("Offer a shift", "Post", "Cancel", form, func(ok bool) {
		if !ok {
			return
		}

		tradeType := model.TradeTypeTrade
		if typeSelect.Selected == "Giveaway" {
			tradeType = model.TradeTypeGiveaway
		}

		var shiftID int
		for i, label := range shiftLabels {
			if label == shiftSelect.Selected {
				shiftID = shifts[i].ID
			}
		}

		req := api.CreateTradeRequest{
			Type:            tradeType,
			OriginalShiftID: shiftID,
			Urgency:         model.TradeUrgency(urgencySelect.Selected),
			Reason:          reasonEntry.Text,
		}
		if msg := ValidateTrade(req); msg != "" {
			dialog.ShowInformation("Check the form", msg, v.window)
			return
		}
		go v.store.Trades.Create(context.Background(), req)
	}, v.window)
	d.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	d.Show()
}

// showRespondDialog offers one of the caller's shifts against a trade, or
// just accepts a giveaway.
func (v *TradeView) showRespondDialog(trade model.ShiftTradeRequest) {
	if trade.Type == model.TradeTypeGiveaway {
		dialog.ShowConfirm("Take shift", "Accept this shift as your own?", func(ok bool) {
			if ok {
				go v.store.Trades.Respond(context.Background(), trade.ID, api.RespondTradeRequest{})
			}
		}, v.window)
		return
	}

	shifts := v.ownUpcomingShifts()
	if len(shifts) == 0 {
		dialog.ShowInformation("No shifts", "You have no upcoming shifts to offer in exchange.", v.window)
		return
	}

	shiftLabels := make([]string, len(shifts))
	for i, s := range shifts {
		shiftLabels[i] = fmt.Sprintf("%s (%s)", s.StartTime.Format(DateTimeFormat), s.ShiftType.Label())
	}
	shiftSelect := widget.NewSelect(shiftLabels, nil)

	dialog.ShowCustomConfirm("Offer in exchange", "Offer", "Back", shiftSelect, func(ok bool) {
		if !ok || shiftSelect.Selected == "" {
			return
		}
		var shiftID int
		for i, label := range shiftLabels {
			if label == shiftSelect.Selected {
				shiftID = shifts[i].ID
			}
		}
		go v.store.Trades.Respond(context.Background(), trade.ID, api.RespondTradeRequest{OfferedShiftID: shiftID})
	}, v.window)
}

// showResponsesDialog lets the author accept or reject pending responses
func (v *TradeView) showResponsesDialog(trade model.ShiftTradeRequest) {
	box := container.NewVBox()
	for _, resp := range pendingResponses(trade) {
		offered := DashPlaceholder
		if resp.OfferedShift != nil {
			offered = resp.OfferedShift.StartTime.Format(DateTimeFormat)
		}
		label := widget.NewLabel(resp.Respondent.Name + MiddleDotSeparator + offered)

		respCopy := resp
		accept := widget.NewButton("Accept", func() {
			go v.store.Trades.Settle(context.Background(), trade.ID, respCopy.ID, model.TradeResponseAccepted)
		})
		reject := widget.NewButton("Reject", func() {
			go v.store.Trades.Settle(context.Background(), trade.ID, respCopy.ID, model.TradeResponseRejected)
		})
		reject.Importance = widget.DangerImportance

		box.Add(container.NewBorder(nil, widget.NewSeparator(), nil, container.NewHBox(accept, reject), label))
	}

	dialog.ShowCustom("Responses", "Close", box, v.window)
}

// ownUpcomingShifts returns the caller's still-active cached shifts
func (v *TradeView) ownUpcomingShifts() []model.Schedule {
	var own []model.Schedule
	for _, s := range v.store.Schedules.Items() {
		if s.UserID == v.userID && s.Status.IsActive() {
			own = append(own, s)
		}
	}
	return own
}
