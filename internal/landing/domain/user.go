package domain

import "time"

type User struct {
	ID           string
	Name         *string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

type DemoRequest struct {
	ID        string
	Name      string
	Email     string
	Business  string
	Message   *string
	CreatedAt time.Time
}

// LoginAttempt is an append-only audit record. UserID is nil when the
// submitted email did not resolve to an account.
type LoginAttempt struct {
	ID        string
	UserID    *string
	Email     string
	Success   bool
	IP        *string
	UserAgent *string
	CreatedAt time.Time
}

// Stats holds the dashboard counters. Each count is its own snapshot;
// writes landing between the four queries are accepted.
type Stats struct {
	Users        int
	Demos        int
	Logins       int
	LoginSuccess int
}
