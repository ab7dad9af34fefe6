package store

// Package store holds the client-side state the views render from: one slice
// per feature area (auth, schedules, leave, trades, announcements, employees,
// notifications, dashboard). Slices are only mutated through their own
// operations; views read snapshots and subscribe to change notifications.
