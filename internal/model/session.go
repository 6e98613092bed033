package model

import "time"

// Session is an opaque bearer token bound to one user. Tokens have no
// expiry; they stay valid until explicitly revoked by logout.
type Session struct {
	ID        int64      `json:"id"`
	Token     string     `json:"token"`
	UserID    int64      `json:"user_id"`
	RevokedAt *time.Time `json:"revoked_at"`
	CreatedAt time.Time  `json:"created_at"`
}
