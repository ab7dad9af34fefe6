package api

import (
	"context"
	"fmt"

	"github.com/shiftdesk/shiftdesk/internal/model"
)

// ListNotifications returns the caller's notification feed, newest first
func (c *Client) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	var items []model.Notification
	if err := c.get(ctx, "/notifications", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkNotificationRead marks one notification as read
func (c *Client) MarkNotificationRead(ctx context.Context, id int) error {
	return c.post(ctx, fmt.Sprintf("/notifications/%d/read", id), nil, nil)
}

// MarkAllNotificationsRead marks every notification as read
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.post(ctx, "/notifications/read-all", nil, nil)
}
