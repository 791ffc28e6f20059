package dto

import (
	"time"
)

// UserOutput is the public projection of a user. The password hash never
// leaves the service layer.
type UserOutput struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
	Role  string  `json:"role"`
}

type StatsOutput struct {
	Users        int `json:"users"`
	Demos        int `json:"demos"`
	Logins       int `json:"logins"`
	LoginSuccess int `json:"login_success"`
}

type UserRow struct {
	ID        string    `json:"id"`
	Name      *string   `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type DemoRequestRow struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Business  string    `json:"business"`
	Message   *string   `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginAttemptRow struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id"`
	Email     string    `json:"email"`
	Success   bool      `json:"success"`
	IP        *string   `json:"ip"`
	UserAgent *string   `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}
