package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rafael/jobmatch/internal/types"
)

// CreateUser inserts a new account; a duplicate email becomes
// *DuplicateEmailError via the unique constraint.
func (s *Postgres) CreateUser(ctx context.Context, u *types.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, email, name, role, company_id, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, u.Name, string(u.Role), u.CompanyID, u.PasswordHash, u.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return &DuplicateEmailError{Email: u.Email}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by id, (nil, nil) when absent.
func (s *Postgres) GetUser(ctx context.Context, id uuid.UUID) (*types.User, error) {
	return s.getUser(ctx, `WHERE id = $1`, id)
}

// GetUserByEmail retrieves a user by email, (nil, nil) when absent.
func (s *Postgres) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	return s.getUser(ctx, `WHERE email = $1`, email)
}

func (s *Postgres) getUser(ctx context.Context, where string, arg any) (*types.User, error) {
	var u types.User
	var role string
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, name, role, company_id, password_hash, created_at FROM users `+where, arg,
	).Scan(&u.ID, &u.Email, &u.Name, &role, &u.CompanyID, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	u.Role = types.UserRole(role)
	return &u, nil
}
