package api

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftdesk/shiftdesk/internal/model"
)

// EmployeeRequest creates or updates an employee record
type EmployeeRequest struct {
	Email      string     `json:"email" validate:"required,email"`
	Name       string     `json:"name" validate:"required"`
	Role       model.Role `json:"role" validate:"required,oneof=admin employee"`
	Department string     `json:"department" validate:"required"`
	Position   string     `json:"position" validate:"required"`
	HireDate   time.Time  `json:"hire_date"`
	Password   string     `json:"password,omitempty"`
}

// ListEmployees returns all employees (admin only)
func (c *Client) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	if err := c.get(ctx, "/employees", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// CreateEmployee adds a staff member
func (c *Client) CreateEmployee(ctx context.Context, req EmployeeRequest) (*model.Employee, error) {
	var e model.Employee
	if err := c.post(ctx, "/employees", req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateEmployee edits a staff member
func (c *Client) UpdateEmployee(ctx context.Context, id int, req EmployeeRequest) (*model.Employee, error) {
	var e model.Employee
	if err := c.put(ctx, fmt.Sprintf("/employees/%d", id), req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteEmployee deactivates a staff member
func (c *Client) DeleteEmployee(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/employees/%d", id))
}

// ListDepartments returns the department lookup values
func (c *Client) ListDepartments(ctx context.Context) ([]model.Department, error) {
	var departments []model.Department
	if err := c.get(ctx, "/employees/departments", nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// ListPositions returns the position lookup values
func (c *Client) ListPositions(ctx context.Context) ([]model.Position, error) {
	var positions []model.Position
	if err := c.get(ctx, "/employees/positions", nil, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}
