package store

import (
	"context"

	"github.com/shiftdesk/shiftdesk/internal/api"
	"github.com/shiftdesk/shiftdesk/internal/model"
)

// AnnouncementSlice caches company announcements
type AnnouncementSlice struct {
	slice
	items []model.Announcement
}

// Items returns a snapshot of the cached announcements
func (s *AnnouncementSlice) Items() []model.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Announcement(nil), s.items...)
}

// UnreadCount returns how many announcements are still unread
func (s *AnnouncementSlice) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		if !item.IsRead {
			count++
		}
	}
	return count
}

// Refresh replaces the cache from the backend
func (s *AnnouncementSlice) Refresh(ctx context.Context) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	items, err := s.store.client.ListAnnouncements(ctx)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.items = items
	})
}

// Create publishes an announcement and prepends it after server ack
func (s *AnnouncementSlice) Create(ctx context.Context, req api.CreateAnnouncementRequest) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	created, err := s.store.client.CreateAnnouncement(ctx, req)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.items = append([]model.Announcement{*created}, s.items...)
	})
}

// Update edits an announcement and replaces it in place
func (s *AnnouncementSlice) Update(ctx context.Context, id int, req api.CreateAnnouncementRequest) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	updated, err := s.store.client.UpdateAnnouncement(ctx, id, req)
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

// Delete removes an announcement and filters it from the cache
func (s *AnnouncementSlice) Delete(ctx context.Context, id int) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	if err := s.store.client.DeleteAnnouncement(ctx, id); err != nil {
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

// MarkRead records that the user opened an announcement
func (s *AnnouncementSlice) MarkRead(ctx context.Context, id int) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	if err := s.store.client.MarkAnnouncementRead(ctx, id); err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		for i := range s.items {
			if s.items[i].ID == id {
				s.items[i].IsRead = true
				return
			}
		}
	})
}

func (s *AnnouncementSlice) reset() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	s.resetState()
}
