package ui

import (
	"testing"

	"github.com/shiftdesk/shiftdesk/internal/model"
)

func TestScheduleStatusColorTotal(t *testing.T) {
	statuses := []model.ScheduleStatus{
		model.ScheduleStatusPending,
		model.ScheduleStatusConfirmed,
		model.ScheduleStatusCancelled,
		model.ScheduleStatusCompleted,
		"something_new",
	}
	for _, status := range statuses {
		if ScheduleStatusColor(status) == nil {
			t.Errorf("no color for status %q", status)
		}
	}
}

func TestLeaveStatusColorTotal(t *testing.T) {
	statuses := []model.LeaveStatus{
		model.LeaveStatusPending,
		model.LeaveStatusApproved,
		model.LeaveStatusRejected,
		model.LeaveStatusCancelled,
		"ESCALATED",
	}
	for _, status := range statuses {
		if LeaveStatusColor(status) == nil {
			t.Errorf("no color for status %q", status)
		}
	}
}

func TestTradeColorsTotal(t *testing.T) {
	for _, status := range []model.TradeStatus{model.TradeStatusOpen, model.TradeStatusPending, model.TradeStatusCompleted, "EXPIRED"} {
		if TradeStatusColor(status) == nil {
			t.Errorf("no color for trade status %q", status)
		}
	}
	for _, urgency := range []model.TradeUrgency{model.UrgencyLow, model.UrgencyMedium, model.UrgencyHigh, "critical"} {
		if UrgencyColor(urgency) == nil {
			t.Errorf("no color for urgency %q", urgency)
		}
	}
}
