package models

import "time"

// Session is the active authentication state for the current user.
// There is at most one active session per local state store.
type Session struct {
	Token      string    `json:"token"`
	Username   string    `json:"username"`
	ExpiresAt  time.Time `json:"expires_at"`
	Persistent bool      `json:"persistent"`
}

// ExpiredAt reports whether the session token is expired at the given instant.
// An expired token must be treated as absent by callers.
func (s Session) ExpiredAt(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
