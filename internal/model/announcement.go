package model

import "time"

// AnnouncementPriority controls how prominently an announcement is rendered
type AnnouncementPriority string

const (
	PriorityNormal AnnouncementPriority = "normal"
	PriorityHigh   AnnouncementPriority = "high"
)

// String returns the string representation of AnnouncementPriority
func (p AnnouncementPriority) String() string {
	return string(p)
}

// Announcement is a company-wide message authored by an admin
type Announcement struct {
	ID        int                  `json:"id"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	Priority  AnnouncementPriority `json:"priority"`
	Author    string               `json:"author"`
	CreatedAt time.Time            `json:"created_at"`
	IsRead    bool                 `json:"is_read"`
}
