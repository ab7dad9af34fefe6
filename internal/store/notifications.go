package store

import (
	"context"

	"github.com/shiftdesk/shiftdesk/internal/model"
)

// NotificationSlice caches the notification feed. Refresh fills it over
// HTTP; Push inserts records arriving over the realtime channel.
type NotificationSlice struct {
	slice
	items []model.Notification
}

// Items returns a snapshot of the feed, newest first
func (s *NotificationSlice) Items() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Notification(nil), s.items...)
}

// UnreadCount returns how many notifications are still unread
func (s *NotificationSlice) UnreadCount() int {
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

// Refresh replaces the feed from the backend
func (s *NotificationSlice) Refresh(ctx context.Context) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	items, err := s.store.client.ListNotifications(ctx)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.items = items
	})
}

// Push prepends a notification delivered over the realtime channel. A
// duplicate id is dropped so a reconnect replay cannot double an entry.
func (s *NotificationSlice) Push(n model.Notification) {
	s.mu.Lock()
	for _, item := range s.items {
		if item.ID == n.ID {
			s.mu.Unlock()
			return
		}
	}
	s.items = append([]model.Notification{n}, s.items...)
	s.mu.Unlock()
	s.store.notify()
}

// MarkRead marks one notification as read after server acknowledgment
func (s *NotificationSlice) MarkRead(ctx context.Context, id int) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	if err := s.store.client.MarkNotificationRead(ctx, id); err != nil {
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

// MarkAllRead clears the unread badge in one call
func (s *NotificationSlice) MarkAllRead(ctx context.Context) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	if err := s.store.client.MarkAllNotificationsRead(ctx); err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		for i := range s.items {
			s.items[i].IsRead = true
		}
	})
}

func (s *NotificationSlice) reset() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	s.resetState()
}
