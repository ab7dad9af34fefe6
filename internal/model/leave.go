package model

import "time"

// LeaveType represents the category of a leave request
type LeaveType string

const (
	LeaveVacation LeaveType = "VACATION"
	LeaveOnLeave  LeaveType = "ON_LEAVE"
)

// String returns the string representation of LeaveType
func (lt LeaveType) String() string {
	return string(lt)
}

// LeaveStatus represents the lifecycle state of a leave request
type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "PENDING"
	LeaveStatusApproved  LeaveStatus = "APPROVED"
	LeaveStatusRejected  LeaveStatus = "REJECTED"
	LeaveStatusCancelled LeaveStatus = "CANCELLED"
)

// String returns the string representation of LeaveStatus
func (ls LeaveStatus) String() string {
	return string(ls)
}

// IsFinal returns true once an admin decision or cancellation was recorded
func (ls LeaveStatus) IsFinal() bool {
	return ls == LeaveStatusApproved || ls == LeaveStatusRejected || ls == LeaveStatusCancelled
}

// LeaveRequest represents an employee's request for time off.
// Lifecycle transitions are driven by admin action on the backend; the client
// mutates its cache only after the server acknowledges.
type LeaveRequest struct {
	ID            int         `json:"id"`
	Employee      User        `json:"employee"`
	LeaveType     LeaveType   `json:"leave_type"`
	StartDate     time.Time   `json:"start_date"`
	EndDate       time.Time   `json:"end_date"`
	Reason        string      `json:"reason"`
	Status        LeaveStatus `json:"status"`
	AdminResponse string      `json:"admin_response,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}
