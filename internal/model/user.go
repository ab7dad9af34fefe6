package model

// Role represents the access level of a user
type Role string

const (
	// RoleAdmin grants access to management views
	RoleAdmin Role = "admin"

	// RoleEmployee is the default role for regular staff
	RoleEmployee Role = "employee"
)

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// IsAdmin returns true if the role grants admin access
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User represents the authenticated account as returned by the backend
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Session holds the bearer token together with the user it belongs to.
// The token is the sole credential; an empty token means "not signed in".
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Valid reports whether the session can authenticate requests
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User.ID != 0
}
