// Package session reads the server-side session table written by the auth
// collaborator. The application never creates sessions itself; it only
// resolves an incoming cookie to a user id.
package session

import "time"

// CookieName is the cookie carrying the session id.
const CookieName = "lc_session"

// Session is a row of the sessions table. The jsonb payload is reduced to
// the single field the API needs.
type Session struct {
	SID       string    `json:"sid"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expire"`
}

// payload mirrors the sess jsonb column.
type payload struct {
	UserID string `json:"userId"`
}
