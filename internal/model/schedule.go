package model

import "time"

// ShiftType represents the kind of work interval a schedule covers
type ShiftType string

const (
	ShiftMorning   ShiftType = "morning"
	ShiftAfternoon ShiftType = "afternoon"
	ShiftEvening   ShiftType = "evening"
	ShiftFullDay   ShiftType = "full_day"
)

// String returns the string representation of ShiftType
func (st ShiftType) String() string {
	return string(st)
}

// Label returns a human-friendly name for the shift type
func (st ShiftType) Label() string {
	switch st {
	case ShiftMorning:
		return "Morning"
	case ShiftAfternoon:
		return "Afternoon"
	case ShiftEvening:
		return "Evening"
	case ShiftFullDay:
		return "Full day"
	default:
		return string(st)
	}
}

// ScheduleStatus represents the lifecycle state of a schedule
type ScheduleStatus string

const (
	ScheduleStatusPending   ScheduleStatus = "pending"
	ScheduleStatusConfirmed ScheduleStatus = "confirmed"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
	ScheduleStatusCompleted ScheduleStatus = "completed"
)

// String returns the string representation of ScheduleStatus
func (ss ScheduleStatus) String() string {
	return string(ss)
}

// IsActive returns true if the schedule still occupies the employee's time
func (ss ScheduleStatus) IsActive() bool {
	return ss == ScheduleStatusPending || ss == ScheduleStatusConfirmed
}

// Schedule represents a single work shift assigned to an employee.
// Owned by the backend; the client holds a read-through cache only.
type Schedule struct {
	ID        int            `json:"id"`
	UserID    int            `json:"user_id"`
	UserName  string         `json:"user_name,omitempty"`
	StartTime time.Time      `json:"start_time"`
	EndTime   time.Time      `json:"end_time"`
	ShiftType ShiftType      `json:"shift_type"`
	Status    ScheduleStatus `json:"status"`
}

// OnDate reports whether the shift starts on the given calendar date
// (exact date match, not a time-range overlap).
func (s *Schedule) OnDate(day time.Time) bool {
	y1, m1, d1 := s.StartTime.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
