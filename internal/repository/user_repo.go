package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"aaronblog/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	db sqlx.ExtContext
}

func NewUserRepository(db sqlx.ExtContext) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL     = `INSERT INTO users (user_id, name, password_hash) VALUES (?, ?, ?)`
	selectUserByIDSQL = `SELECT user_id, name, password_hash FROM users WHERE user_id = ?`
)

// Create inserts a new user row.
func (r *UserRepository) Create(ctx context.Context, u models.User) error {
	if _, err := r.db.ExecContext(ctx, insertUserSQL, u.UserID, u.Name, u.PasswordHash); err != nil {
		return fmt.Errorf("insert user %q: %w", u.UserID, err)
	}
	return nil
}

// GetByID fetches a user by its chosen identifier. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	var u models.User
	err := sqlx.GetContext(ctx, r.db, &u, selectUserByIDSQL, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", userID, err)
	}
	return &u, nil
}
