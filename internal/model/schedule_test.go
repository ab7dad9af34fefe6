package model

import (
	"testing"
	"time"
)

func TestScheduleOnDate(t *testing.T) {
	shift := &Schedule{
		StartTime: time.Date(2025, 6, 13, 22, 30, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 14, 6, 0, 0, 0, time.UTC),
	}

	// Matches by start date only, even when the shift crosses midnight
	if !shift.OnDate(time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)) {
		t.Error("Expected shift to be on its start date")
	}

	if shift.OnDate(time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)) {
		t.Error("Expected shift not to match its end date")
	}
}

func TestScheduleStatusIsActive(t *testing.T) {
	active := []ScheduleStatus{ScheduleStatusPending, ScheduleStatusConfirmed}
	for _, s := range active {
		if !s.IsActive() {
			t.Errorf("Expected %s to be active", s)
		}
	}

	inactive := []ScheduleStatus{ScheduleStatusCancelled, ScheduleStatusCompleted}
	for _, s := range inactive {
		if s.IsActive() {
			t.Errorf("Expected %s to be inactive", s)
		}
	}
}

func TestRoleIsAdmin(t *testing.T) {
	if !RoleAdmin.IsAdmin() {
		t.Error("Expected admin role to report IsAdmin")
	}

	if RoleEmployee.IsAdmin() {
		t.Error("Expected employee role not to report IsAdmin")
	}
}

func TestSessionValid(t *testing.T) {
	var nilSession *Session
	if nilSession.Valid() {
		t.Error("Expected nil session to be invalid")
	}

	empty := &Session{}
	if empty.Valid() {
		t.Error("Expected empty session to be invalid")
	}

	ok := &Session{Token: "t", User: User{ID: 1, Role: RoleEmployee}}
	if !ok.Valid() {
		t.Error("Expected populated session to be valid")
	}
}
