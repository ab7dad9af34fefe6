package api

import (
	"context"
	"fmt"

	"github.com/shiftdesk/shiftdesk/internal/model"
)

// CreateAnnouncementRequest publishes a new announcement
type CreateAnnouncementRequest struct {
	Title    string                     `json:"title" validate:"required"`
	Content  string                     `json:"content" validate:"required"`
	Priority model.AnnouncementPriority `json:"priority" validate:"required,oneof=normal high"`
}

// ListAnnouncements returns announcements newest first
func (c *Client) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	var items []model.Announcement
	if err := c.get(ctx, "/announcements", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateAnnouncement publishes a new announcement
func (c *Client) CreateAnnouncement(ctx context.Context, req CreateAnnouncementRequest) (*model.Announcement, error) {
	var a model.Announcement
	if err := c.post(ctx, "/announcements", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAnnouncement edits an existing announcement
func (c *Client) UpdateAnnouncement(ctx context.Context, id int, req CreateAnnouncementRequest) (*model.Announcement, error) {
	var a model.Announcement
	if err := c.put(ctx, fmt.Sprintf("/announcements/%d", id), req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteAnnouncement removes an announcement
func (c *Client) DeleteAnnouncement(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/announcements/%d", id))
}

// MarkAnnouncementRead records that the caller has seen the announcement
func (c *Client) MarkAnnouncementRead(ctx context.Context, id int) error {
	return c.post(ctx, fmt.Sprintf("/announcements/%d/read", id), nil, nil)
}
