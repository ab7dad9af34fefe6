package store

import (
	"context"

	"github.com/shiftdesk/shiftdesk/internal/model"
)

// DashboardSlice caches the aggregate counters shown on the dashboards.
// The employee variant is fetched once per session unless forced; the
// fetched flag lives here and is dropped with the rest of the state on
// logout, so a new session always refetches.
type DashboardSlice struct {
	slice
	stats   *model.DashboardStats
	fetched bool
}

// Stats returns the cached counters, or nil before the first load
func (s *DashboardSlice) Stats() *model.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats == nil {
		return nil
	}
	copied := *s.stats
	return &copied
}

// RefreshAdmin loads the admin counters; admins refetch on every visit
func (s *DashboardSlice) RefreshAdmin(ctx context.Context) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	stats, err := s.store.client.AdminStats(ctx)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.stats = stats
		s.fetched = true
	})
}

// RefreshEmployee loads the employee counters. Without force it is a
// no-op once a load has succeeded this session.
func (s *DashboardSlice) RefreshEmployee(ctx context.Context, force bool) {
	s.mu.Lock()
	if s.fetched && !force {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	seq, ok := s.begin()
	if !ok {
		return
	}

	stats, err := s.store.client.EmployeeStats(ctx)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.stats = stats
		s.fetched = true
	})
}

func (s *DashboardSlice) reset() {
	s.mu.Lock()
	s.stats = nil
	s.fetched = false
	s.mu.Unlock()
	s.resetState()
}
