package api

// Package api wraps the backend's REST endpoints behind typed Go methods.
// The Client attaches the bearer token from the session store to every
// request and converts authorization failures into a session wipe plus an
// OnUnauthorized callback so the shell can return to the login view.
