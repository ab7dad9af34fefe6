package store

import (
	"context"

	"github.com/shiftdesk/shiftdesk/internal/api"
	"github.com/shiftdesk/shiftdesk/internal/model"
)

// ScheduleSlice caches the schedules visible to the current user
type ScheduleSlice struct {
	slice
	items []model.Schedule
}

// Items returns a snapshot of the cached schedules
func (s *ScheduleSlice) Items() []model.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Schedule(nil), s.items...)
}

// Refresh replaces the cache with the schedules matching the filter
func (s *ScheduleSlice) Refresh(ctx context.Context, filter api.ScheduleFilter) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	items, err := s.store.client.ListSchedules(ctx, filter)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.items = items
	})
}

// Create adds a single shift; the record is prepended only after the server
// acknowledged it.
func (s *ScheduleSlice) Create(ctx context.Context, req api.CreateScheduleRequest) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	created, err := s.store.client.CreateSchedule(ctx, req)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.items = append([]model.Schedule{*created}, s.items...)
	})
}

// CreateBulk adds the same shift across a date range
func (s *ScheduleSlice) CreateBulk(ctx context.Context, req api.BulkScheduleRequest) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	created, err := s.store.client.CreateSchedulesBulk(ctx, req)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.items = append(created, s.items...)
	})
}

// Update replaces a shift in place by id after server acknowledgment
func (s *ScheduleSlice) Update(ctx context.Context, id int, req api.CreateScheduleRequest) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	updated, err := s.store.client.UpdateSchedule(ctx, id, req)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.replace(*updated)
	})
}

// UpdateStatus moves a shift through its lifecycle
func (s *ScheduleSlice) UpdateStatus(ctx context.Context, id int, status model.ScheduleStatus) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	updated, err := s.store.client.UpdateScheduleStatus(ctx, id, status)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.replace(*updated)
	})
}

// Delete removes a shift from the backend, then filters it from the cache
func (s *ScheduleSlice) Delete(ctx context.Context, id int) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	if err := s.store.client.DeleteSchedule(ctx, id); err != nil {
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

// replace swaps the record with the same id; callers hold the mutex
func (s *ScheduleSlice) replace(updated model.Schedule) {
	for i := range s.items {
		if s.items[i].ID == updated.ID {
			s.items[i] = updated
			return
		}
	}
}

func (s *ScheduleSlice) reset() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	s.resetState()
}
