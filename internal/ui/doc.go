package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the state store, renders the
// schedule calendar and the request lists, and guards navigation by session
// and role.
