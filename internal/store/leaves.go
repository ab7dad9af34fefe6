package store

import (
	"context"

	"github.com/shiftdesk/shiftdesk/internal/api"
	"github.com/shiftdesk/shiftdesk/internal/model"
)

// LeaveSlice caches leave requests: the user's own, or all for admins
type LeaveSlice struct {
	slice
	items []model.LeaveRequest
}

// Items returns a snapshot of the cached leave requests
func (s *LeaveSlice) Items() []model.LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.LeaveRequest(nil), s.items...)
}

// Refresh replaces the cache from the backend
func (s *LeaveSlice) Refresh(ctx context.Context) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	items, err := s.store.client.ListLeaveRequests(ctx)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.items = items
	})
}

// Create submits a request and prepends it once the server acknowledged
func (s *LeaveSlice) Create(ctx context.Context, req api.CreateLeaveRequest) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	created, err := s.store.client.CreateLeave(ctx, req)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.items = append([]model.LeaveRequest{*created}, s.items...)
	})
}

// Cancel withdraws a pending request and filters it from the cache
func (s *LeaveSlice) Cancel(ctx context.Context, id int) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	if _, err := s.store.client.CancelLeave(ctx, id); err != nil {
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

// Process records an admin decision and replaces the record in place
func (s *LeaveSlice) Process(ctx context.Context, id int, req api.ProcessLeaveRequest) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	updated, err := s.store.client.ProcessLeave(ctx, id, req)
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

func (s *LeaveSlice) reset() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	s.resetState()
}
