package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/shiftdesk/shiftdesk/internal/api"
	"github.com/shiftdesk/shiftdesk/internal/model"
)

func TestValidateLogin(t *testing.T) {
	if msg := ValidateLogin(api.LoginRequest{Email: "a@b.com", Password: "pw"}); msg != "" {
		t.Errorf("valid login rejected: %q", msg)
	}
	if msg := ValidateLogin(api.LoginRequest{Password: "pw"}); msg != "Email is required" {
		t.Errorf("missing email message = %q", msg)
	}
	if msg := ValidateLogin(api.LoginRequest{Email: "not-an-email", Password: "pw"}); msg != "Enter a valid email address" {
		t.Errorf("bad email message = %q", msg)
	}
	if msg := ValidateLogin(api.LoginRequest{Email: "a@b.com"}); msg != "Password is required" {
		t.Errorf("missing password message = %q", msg)
	}
}

func TestValidateSchedule(t *testing.T) {
	start := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	valid := api.CreateScheduleRequest{
		UserID:    1,
		StartTime: start,
		EndTime:   start.Add(8 * time.Hour),
		ShiftType: model.ShiftMorning,
	}
	if msg := ValidateSchedule(valid); msg != "" {
		t.Errorf("valid schedule rejected: %q", msg)
	}

	inverted := valid
	inverted.EndTime = start.Add(-time.Hour)
	if msg := ValidateSchedule(inverted); msg != "End time must be after start time" {
		t.Errorf("inverted times message = %q", msg)
	}

	badType := valid
	badType.ShiftType = "night"
	if msg := ValidateSchedule(badType); !strings.HasPrefix(msg, "Shift type must be one of") {
		t.Errorf("bad shift type message = %q", msg)
	}
}

func TestValidateLeave(t *testing.T) {
	start := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	valid := api.CreateLeaveRequest{
		LeaveType: model.LeaveVacation,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 4),
		Reason:    "family trip",
	}
	if msg := ValidateLeave(valid); msg != "" {
		t.Errorf("valid leave rejected: %q", msg)
	}

	noReason := valid
	noReason.Reason = ""
	if msg := ValidateLeave(noReason); msg != "Reason is required" {
		t.Errorf("missing reason message = %q", msg)
	}

	inverted := valid
	inverted.EndDate = start.AddDate(0, 0, -1)
	if msg := ValidateLeave(inverted); msg != "End date must not be before start date" {
		t.Errorf("inverted dates message = %q", msg)
	}

	// Single-day leave is allowed
	sameDay := valid
	sameDay.EndDate = start
	if msg := ValidateLeave(sameDay); msg != "" {
		t.Errorf("single-day leave rejected: %q", msg)
	}
}

func TestValidateTrade(t *testing.T) {
	valid := api.CreateTradeRequest{
		Type:            model.TradeTypeTrade,
		OriginalShiftID: 12,
		Urgency:         model.UrgencyMedium,
	}
	if msg := ValidateTrade(valid); msg != "" {
		t.Errorf("valid trade rejected: %q", msg)
	}

	noShift := valid
	noShift.OriginalShiftID = 0
	if msg := ValidateTrade(noShift); msg != "Shift is required" {
		t.Errorf("missing shift message = %q", msg)
	}
}

func TestValidateAnnouncement(t *testing.T) {
	valid := api.CreateAnnouncementRequest{
		Title:    "Holiday hours",
		Content:  "We close early on Friday.",
		Priority: model.PriorityNormal,
	}
	if msg := ValidateAnnouncement(valid); msg != "" {
		t.Errorf("valid announcement rejected: %q", msg)
	}
	if msg := ValidateAnnouncement(api.CreateAnnouncementRequest{Content: "x", Priority: model.PriorityHigh}); msg != "Title is required" {
		t.Errorf("missing title message = %q", msg)
	}
}

func TestValidateEmployee(t *testing.T) {
	valid := api.EmployeeRequest{
		Email:      "new@example.com",
		Name:       "New Hire",
		Role:       model.RoleEmployee,
		Department: "Kitchen",
		Position:   "Chef",
	}
	if msg := ValidateEmployee(valid); msg != "" {
		t.Errorf("valid employee rejected: %q", msg)
	}

	badRole := valid
	badRole.Role = "owner"
	if msg := ValidateEmployee(badRole); !strings.HasPrefix(msg, "Role must be one of") {
		t.Errorf("bad role message = %q", msg)
	}
}
