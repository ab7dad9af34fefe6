package api

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftdesk/shiftdesk/internal/model"
)

// CreateLeaveRequest submits a new leave request
type CreateLeaveRequest struct {
	LeaveType model.LeaveType `json:"leave_type" validate:"required,oneof=VACATION ON_LEAVE"`
	StartDate time.Time       `json:"start_date" validate:"required"`
	EndDate   time.Time       `json:"end_date" validate:"required"`
	Reason    string          `json:"reason" validate:"required"`
}

// ProcessLeaveRequest carries an admin's decision on a pending request
type ProcessLeaveRequest struct {
	Status        model.LeaveStatus `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	AdminResponse string            `json:"admin_response"`
}

// ListLeaveRequests returns the caller's requests, or all requests for admins
func (c *Client) ListLeaveRequests(ctx context.Context) ([]model.LeaveRequest, error) {
	var requests []model.LeaveRequest
	if err := c.get(ctx, "/leave-requests", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// CreateLeave submits a new leave request
func (c *Client) CreateLeave(ctx context.Context, req CreateLeaveRequest) (*model.LeaveRequest, error) {
	var lr model.LeaveRequest
	if err := c.post(ctx, "/leave-requests", req, &lr); err != nil {
		return nil, err
	}
	return &lr, nil
}

// CancelLeave withdraws a pending request
func (c *Client) CancelLeave(ctx context.Context, id int) (*model.LeaveRequest, error) {
	var lr model.LeaveRequest
	if err := c.post(ctx, fmt.Sprintf("/leave-requests/%d/cancel", id), nil, &lr); err != nil {
		return nil, err
	}
	return &lr, nil
}

// ProcessLeave records an admin decision
func (c *Client) ProcessLeave(ctx context.Context, id int, req ProcessLeaveRequest) (*model.LeaveRequest, error) {
	var lr model.LeaveRequest
	if err := c.post(ctx, fmt.Sprintf("/leave-requests/%d/process", id), req, &lr); err != nil {
		return nil, err
	}
	return &lr, nil
}
