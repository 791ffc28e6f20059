package postgres

import (
	"context"
	"errors"
	"fmt"

	autherror "github.com/Simohamed05/VENTESPRO/internal/errors"
	"github.com/Simohamed05/VENTESPRO/internal/landing/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// PgxPool is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxPool
}

func NewPostgresRepository(db PgxPool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// Create inserts the user and relies on the unique index on email; a
// duplicate surfaces as ErrEmailAlreadyUsed rather than a raw pg error.
func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, name, email, password_hash, role, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return autherror.ErrEmailAlreadyUsed
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *PostgresRepository) RecordLoginAttempt(ctx context.Context, attempt *domain.LoginAttempt) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_logs (id, user_id, email, success, ip, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, attempt.ID, attempt.UserID, attempt.Email, attempt.Success, attempt.IP, attempt.UserAgent, attempt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}

	return nil
}

func (r *PostgresRepository) CreateDemoRequest(ctx context.Context, demo *domain.DemoRequest) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO demo_requests (id, name, email, business, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, demo.ID, demo.Name, demo.Email, demo.Business, demo.Message, demo.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create demo request: %w", err)
	}

	return nil
}

// CountStats runs four independent count queries; each is its own snapshot.
func (r *PostgresRepository) CountStats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM users`, &stats.Users},
		{`SELECT COUNT(*) FROM demo_requests`, &stats.Demos},
		{`SELECT COUNT(*) FROM login_logs`, &stats.Logins},
		{`SELECT COUNT(*) FROM login_logs WHERE success = true`, &stats.LoginSuccess},
	}

	for _, c := range counts {
		if err := r.db.QueryRow(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to count stats: %w", err)
		}
	}

	return &stats, nil
}

func (r *PostgresRepository) ListUsers(ctx context.Context, limit int) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, role, created_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *PostgresRepository) ListDemoRequests(ctx context.Context, limit int) ([]domain.DemoRequest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, business, message, created_at
		FROM demo_requests
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list demo requests: %w", err)
	}
	defer rows.Close()

	var demos []domain.DemoRequest
	for rows.Next() {
		var d domain.DemoRequest
		if err := rows.Scan(&d.ID, &d.Name, &d.Email, &d.Business, &d.Message, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan demo request row: %w", err)
		}
		demos = append(demos, d)
	}

	return demos, rows.Err()
}

func (r *PostgresRepository) ListLoginAttempts(ctx context.Context, limit int) ([]domain.LoginAttempt, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, email, success, ip, user_agent, created_at
		FROM login_logs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list login attempts: %w", err)
	}
	defer rows.Close()

	var attempts []domain.LoginAttempt
	for rows.Next() {
		var a domain.LoginAttempt
		if err := rows.Scan(&a.ID, &a.UserID, &a.Email, &a.Success, &a.IP, &a.UserAgent, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan login attempt row: %w", err)
		}
		attempts = append(attempts, a)
	}

	return attempts, rows.Err()
}
