package model

import (
	"encoding/json"
	"testing"
)

func TestNotificationUnmarshalScheduleChange(t *testing.T) {
	raw := `{
		"id": 7,
		"type": "SCHEDULE_CHANGE",
		"title": "Shift updated",
		"message": "Your Friday shift moved to the afternoon",
		"priority": "high",
		"data": {"schedule_id": 42, "date": "2025-06-13", "action": "updated"},
		"is_read": false,
		"created_at": "2025-06-10T08:00:00Z"
	}`

	var n Notification
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if n.ID != 7 {
		t.Errorf("Expected ID 7, got %d", n.ID)
	}

	data, ok := n.Data.(ScheduleChangeData)
	if !ok {
		t.Fatalf("Expected ScheduleChangeData, got %T", n.Data)
	}

	if data.ScheduleID != 42 {
		t.Errorf("Expected schedule_id 42, got %d", data.ScheduleID)
	}

	if data.Date != "2025-06-13" {
		t.Errorf("Expected date 2025-06-13, got %s", data.Date)
	}
}

func TestNotificationUnmarshalLeaveRequest(t *testing.T) {
	raw := `{
		"id": 9,
		"type": "LEAVE_REQUEST",
		"title": "Leave approved",
		"message": "Your vacation was approved",
		"priority": "normal",
		"data": {"request_id": 3, "status": "APPROVED"},
		"is_read": true,
		"created_at": "2025-06-10T08:00:00Z"
	}`

	var n Notification
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, ok := n.Data.(LeaveRequestData)
	if !ok {
		t.Fatalf("Expected LeaveRequestData, got %T", n.Data)
	}

	if data.RequestID != 3 {
		t.Errorf("Expected request_id 3, got %d", data.RequestID)
	}

	if data.Status != LeaveStatusApproved {
		t.Errorf("Expected status APPROVED, got %s", data.Status)
	}
}

func TestNotificationUnmarshalMissingData(t *testing.T) {
	raw := `{"id": 1, "type": "SYSTEM", "title": "Maintenance", "message": "Back soon"}`

	var n Notification
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if n.Data != nil {
		t.Errorf("Expected nil Data for missing payload, got %#v", n.Data)
	}
}

func TestNotificationUnmarshalUnknownType(t *testing.T) {
	raw := `{"id": 2, "type": "SOMETHING_NEW", "title": "x", "message": "y", "data": {"a": 1}}`

	var n Notification
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if n.Data != nil {
		t.Errorf("Expected nil Data for unknown type, got %#v", n.Data)
	}
}
