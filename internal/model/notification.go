package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// NotificationType discriminates the variant payload carried in Data
type NotificationType string

const (
	NotifyScheduleChange NotificationType = "SCHEDULE_CHANGE"
	NotifyShiftTrade     NotificationType = "SHIFT_TRADE"
	NotifyAnnouncement   NotificationType = "ANNOUNCEMENT"
	NotifyLeaveRequest   NotificationType = "LEAVE_REQUEST"
	NotifySystem         NotificationType = "SYSTEM"
)

// String returns the string representation of NotificationType
func (nt NotificationType) String() string {
	return string(nt)
}

// NotificationData is the tagged-union payload of a notification. Consumers
// switch on the concrete type instead of casting loose maps.
type NotificationData interface {
	notificationData()
}

// ScheduleChangeData accompanies SCHEDULE_CHANGE notifications
type ScheduleChangeData struct {
	ScheduleID int    `json:"schedule_id"`
	Date       string `json:"date,omitempty"`
	Action     string `json:"action,omitempty"`
}

// ShiftTradeData accompanies SHIFT_TRADE notifications
type ShiftTradeData struct {
	TradeID    int `json:"trade_id"`
	ResponseID int `json:"response_id,omitempty"`
}

// AnnouncementData accompanies ANNOUNCEMENT notifications
type AnnouncementData struct {
	AnnouncementID int `json:"announcement_id"`
}

// LeaveRequestData accompanies LEAVE_REQUEST notifications
type LeaveRequestData struct {
	RequestID int         `json:"request_id"`
	Status    LeaveStatus `json:"status,omitempty"`
}

// SystemData accompanies SYSTEM notifications
type SystemData struct {
	Detail string `json:"detail,omitempty"`
}

func (ScheduleChangeData) notificationData() {}
func (ShiftTradeData) notificationData()     {}
func (AnnouncementData) notificationData()   {}
func (LeaveRequestData) notificationData()   {}
func (SystemData) notificationData()         {}

// Notification is a single item in the user's notification feed. It arrives
// both via the polling fetch and via the realtime channel and is de-duplicated
// by ID when merged.
type Notification struct {
	ID        int              `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Priority  string           `json:"priority"`
	Data      NotificationData `json:"-"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

// notificationWire matches the raw JSON shape before Data is discriminated
type notificationWire struct {
	ID        int              `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Priority  string           `json:"priority"`
	Data      json.RawMessage  `json:"data"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

// UnmarshalJSON decodes the variant Data payload according to Type
func (n *Notification) UnmarshalJSON(b []byte) error {
	var w notificationWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	n.ID = w.ID
	n.Type = w.Type
	n.Title = w.Title
	n.Message = w.Message
	n.Priority = w.Priority
	n.IsRead = w.IsRead
	n.CreatedAt = w.CreatedAt

	if len(w.Data) == 0 || string(w.Data) == "null" {
		n.Data = nil
		return nil
	}

	switch w.Type {
	case NotifyScheduleChange:
		var d ScheduleChangeData
		if err := json.Unmarshal(w.Data, &d); err != nil {
			return fmt.Errorf("schedule change payload: %w", err)
		}
		n.Data = d
	case NotifyShiftTrade:
		var d ShiftTradeData
		if err := json.Unmarshal(w.Data, &d); err != nil {
			return fmt.Errorf("shift trade payload: %w", err)
		}
		n.Data = d
	case NotifyAnnouncement:
		var d AnnouncementData
		if err := json.Unmarshal(w.Data, &d); err != nil {
			return fmt.Errorf("announcement payload: %w", err)
		}
		n.Data = d
	case NotifyLeaveRequest:
		var d LeaveRequestData
		if err := json.Unmarshal(w.Data, &d); err != nil {
			return fmt.Errorf("leave request payload: %w", err)
		}
		n.Data = d
	case NotifySystem:
		var d SystemData
		if err := json.Unmarshal(w.Data, &d); err != nil {
			return fmt.Errorf("system payload: %w", err)
		}
		n.Data = d
	default:
		// Unknown types keep their raw payload out of the model entirely
		n.Data = nil
	}

	return nil
}
