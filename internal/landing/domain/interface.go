package domain

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	RecordLoginAttempt(ctx context.Context, attempt *LoginAttempt) error
}

type DemoRepository interface {
	CreateDemoRequest(ctx context.Context, demo *DemoRequest) error
}

type AdminRepository interface {
	CountStats(ctx context.Context) (*Stats, error)
	ListUsers(ctx context.Context, limit int) ([]User, error)
	ListDemoRequests(ctx context.Context, limit int) ([]DemoRequest, error)
	ListLoginAttempts(ctx context.Context, limit int) ([]LoginAttempt, error)
}
