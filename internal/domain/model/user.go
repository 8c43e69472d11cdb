package model

import "time"

// User represents a dashboard administrator account.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	AccessToken  *string
	CreatedAt    time.Time
}

// Session projects the account onto the read-only session view.
func (u *User) Session() Session {
	return Session{AccessToken: u.AccessToken, Email: u.Email}
}
