package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/bhagatankit05/NextHire/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// CreateUser inserts a new recruiter account.
func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	user.UserID = uuid.NewString()
	const q = `
INSERT INTO users (user_id, name, email, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
`
	_, err := r.db.Exec(ctx, q, user.UserID, user.Name, user.Email, user.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
SELECT user_id, name, email, password_hash, created_at, updated_at
FROM users WHERE email = $1
`
	var u model.User
	row := r.db.QueryRow(ctx, q, email)
	if err := row.Scan(&u.UserID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

func (r *Repository) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	const q = `
SELECT user_id, name, email, password_hash, created_at, updated_at
FROM users WHERE user_id = $1
`
	var u model.User
	row := r.db.QueryRow(ctx, q, userID)
	if err := row.Scan(&u.UserID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}
