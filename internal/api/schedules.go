package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/shiftdesk/shiftdesk/internal/model"
)

// ScheduleFilter narrows the schedules listing
type ScheduleFilter struct {
	From   time.Time
	To     time.Time
	UserID int
}

// CreateScheduleRequest creates one shift for one employee
type CreateScheduleRequest struct {
	UserID    int             `json:"user_id" validate:"required"`
	StartTime time.Time       `json:"start_time" validate:"required"`
	EndTime   time.Time       `json:"end_time" validate:"required"`
	ShiftType model.ShiftType `json:"shift_type" validate:"required,oneof=morning afternoon evening full_day"`
}

// BulkScheduleRequest creates the same shift across a date range
type BulkScheduleRequest struct {
	UserID    int             `json:"user_id" validate:"required"`
	StartDate time.Time       `json:"start_date" validate:"required"`
	EndDate   time.Time       `json:"end_date" validate:"required"`
	ShiftType model.ShiftType `json:"shift_type" validate:"required,oneof=morning afternoon evening full_day"`
	Weekdays  []time.Weekday  `json:"weekdays,omitempty"`
}

// ListSchedules returns schedules matching the filter
func (c *Client) ListSchedules(ctx context.Context, filter ScheduleFilter) ([]model.Schedule, error) {
	query := url.Values{}
	if !filter.From.IsZero() {
		query.Set("start_date", filter.From.Format("2006-01-02"))
	}
	if !filter.To.IsZero() {
		query.Set("end_date", filter.To.Format("2006-01-02"))
	}
	if filter.UserID != 0 {
		query.Set("user_id", strconv.Itoa(filter.UserID))
	}

	var schedules []model.Schedule
	if err := c.get(ctx, "/schedules", query, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// CreateSchedule creates a single shift
func (c *Client) CreateSchedule(ctx context.Context, req CreateScheduleRequest) (*model.Schedule, error) {
	var s model.Schedule
	if err := c.post(ctx, "/schedules", req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSchedulesBulk creates the same shift for every matching day in range
func (c *Client) CreateSchedulesBulk(ctx context.Context, req BulkScheduleRequest) ([]model.Schedule, error) {
	var schedules []model.Schedule
	if err := c.post(ctx, "/schedules/bulk", req, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// UpdateSchedule replaces an existing shift
func (c *Client) UpdateSchedule(ctx context.Context, id int, req CreateScheduleRequest) (*model.Schedule, error) {
	var s model.Schedule
	if err := c.put(ctx, fmt.Sprintf("/schedules/%d", id), req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateScheduleStatus moves a shift through its lifecycle
func (c *Client) UpdateScheduleStatus(ctx context.Context, id int, status model.ScheduleStatus) (*model.Schedule, error) {
	body := map[string]model.ScheduleStatus{"status": status}
	var s model.Schedule
	if err := c.patch(ctx, fmt.Sprintf("/schedules/%d/status", id), body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSchedule removes a shift
func (c *Client) DeleteSchedule(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/schedules/%d", id))
}
