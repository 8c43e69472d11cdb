package auth

import "time"

// Strategy issues and verifies admin session tokens.
type Strategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

// Options tunes token issuing.
type Options struct {
	// TTL is the session lifetime. Defaults to 24h.
	TTL time.Duration
	// Now overrides the clock, mostly for tests.
	Now func() time.Time
}
