package model

// Package model defines domain data structures used across the app: users and
// sessions, shift schedules, leave and trade requests, announcements, and
// notifications. Structures mirror the backend's JSON contracts and are
// designed for direct binding in the UI.
