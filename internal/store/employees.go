package store

import (
	"context"

	"github.com/shiftdesk/shiftdesk/internal/api"
	"github.com/shiftdesk/shiftdesk/internal/model"
)

// EmployeeSlice caches the staff roster and the department and position
// lookup values backing the admin forms.
type EmployeeSlice struct {
	slice
	items       []model.Employee
	departments []model.Department
	positions   []model.Position
}

// Items returns a snapshot of the cached employees
func (s *EmployeeSlice) Items() []model.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Employee(nil), s.items...)
}

// Departments returns a snapshot of the department lookup values
func (s *EmployeeSlice) Departments() []model.Department {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Department(nil), s.departments...)
}

// Positions returns a snapshot of the position lookup values
func (s *EmployeeSlice) Positions() []model.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Position(nil), s.positions...)
}

// Refresh replaces the roster from the backend
func (s *EmployeeSlice) Refresh(ctx context.Context) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	items, err := s.store.client.ListEmployees(ctx)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.items = items
	})
}

// RefreshLookups loads the department and position values for form pickers
func (s *EmployeeSlice) RefreshLookups(ctx context.Context) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	departments, err := s.store.client.ListDepartments(ctx)
	if err != nil {
		s.fail(seq, err)
		return
	}
	positions, err := s.store.client.ListPositions(ctx)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.departments = departments
		s.positions = positions
	})
}

// Create adds a staff member and prepends the record after server ack
func (s *EmployeeSlice) Create(ctx context.Context, req api.EmployeeRequest) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	created, err := s.store.client.CreateEmployee(ctx, req)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.items = append([]model.Employee{*created}, s.items...)
	})
}

// Update edits a staff member and replaces the record in place
func (s *EmployeeSlice) Update(ctx context.Context, id int, req api.EmployeeRequest) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	updated, err := s.store.client.UpdateEmployee(ctx, id, req)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		for i := range s.items {
			if s.items[i].ID == updated.ID {
				s.items[i] = *updated
				return
			}
		}
	})
}

// Delete deactivates a staff member and filters them from the roster
func (s *EmployeeSlice) Delete(ctx context.Context, id int) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	if err := s.store.client.DeleteEmployee(ctx, id); err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		kept := s.items[:0]
		for _, item := range s.items {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		s.items = kept
	})
}

func (s *EmployeeSlice) reset() {
	s.mu.Lock()
	s.items = nil
	s.departments = nil
	s.positions = nil
	s.mu.Unlock()
	s.resetState()
}
