package ui

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/shiftdesk/shiftdesk/internal/api"
)

// validate holds the struct validators for every request form. The rules
// live in the request structs' validate tags; date ordering is checked here
// because it spans fields.
var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldLabels maps struct field names to the labels shown in messages
var fieldLabels = map[string]string{
	"Email":           "Email",
	"Password":        "Password",
	"UserID":          "Employee",
	"StartTime":       "Start time",
	"EndTime":         "End time",
	"ShiftType":       "Shift type",
	"StartDate":       "Start date",
	"EndDate":         "End date",
	"LeaveType":       "Leave type",
	"Reason":          "Reason",
	"Type":            "Type",
	"OriginalShiftID": "Shift",
	"Urgency":         "Urgency",
	"Title":           "Title",
	"Content":         "Content",
	"Priority":        "Priority",
	"Name":            "Name",
	"Role":            "Role",
	"Department":      "Department",
	"Position":        "Position",
	"Status":          "Decision",
}

// checkStruct runs the tag rules and renders the first failure as a message
// suitable for the form's error label. An empty string means valid.
func checkStruct(v any) string {
	err := validate.Struct(v)
	if err == nil {
		return ""
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return api.FallbackMessage
	}

	first := errs[0]
	label := fieldLabels[first.Field()]
	if label == "" {
		label = first.Field()
	}

	switch first.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Enter a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, first.Param())
	default:
		return label + " is invalid"
	}
}

// ValidateLogin checks the login form
func ValidateLogin(req api.LoginRequest) string {
	return checkStruct(req)
}

// ValidateSchedule checks a single-shift form, including time ordering
func ValidateSchedule(req api.CreateScheduleRequest) string {
	if msg := checkStruct(req); msg != "" {
		return msg
	}
	if !req.EndTime.After(req.StartTime) {
		return "End time must be after start time"
	}
	return ""
}

// ValidateBulkSchedule checks the bulk-creation form
func ValidateBulkSchedule(req api.BulkScheduleRequest) string {
	if msg := checkStruct(req); msg != "" {
		return msg
	}
	if req.EndDate.Before(req.StartDate) {
		return "End date must not be before start date"
	}
	return ""
}

// ValidateLeave checks the leave-request form, including date ordering
func ValidateLeave(req api.CreateLeaveRequest) string {
	if msg := checkStruct(req); msg != "" {
		return msg
	}
	if req.EndDate.Before(req.StartDate) {
		return "End date must not be before start date"
	}
	return ""
}

// ValidateTrade checks the trade-creation form
func ValidateTrade(req api.CreateTradeRequest) string {
	return checkStruct(req)
}

// ValidateAnnouncement checks the announcement form
func ValidateAnnouncement(req api.CreateAnnouncementRequest) string {
	return checkStruct(req)
}

// ValidateEmployee checks the staff form
func ValidateEmployee(req api.EmployeeRequest) string {
	return checkStruct(req)
}

// ValidateLeaveDecision checks an admin's approve/reject form
func ValidateLeaveDecision(req api.ProcessLeaveRequest) string {
	return checkStruct(req)
}
