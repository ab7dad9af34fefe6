package api

import (
	"context"

	"github.com/shiftdesk/shiftdesk/internal/model"
)

// AdminStats returns the aggregate counters for the admin dashboard
func (c *Client) AdminStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := c.get(ctx, "/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// EmployeeStats returns the aggregate counters for the employee dashboard
func (c *Client) EmployeeStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := c.get(ctx, "/dashboard/employee", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
