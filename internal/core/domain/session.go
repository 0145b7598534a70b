package domain

// Session represents the currently authenticated user. Zero or one session
// exists per process; it lives in memory only and is dropped on logout.
type Session struct {
	UserID string
	Email  string
	Name   string
}
