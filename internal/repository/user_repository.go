package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/samurun/portfolio-api/internal/model"
)

// UserRepo encapsulates all queries against the users table.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a user with an already-hashed password and returns its
// client-safe projection. A taken email yields ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, name, email, passwordHash string) (model.PublicUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.PublicUser
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id, name, email",
		name, email, passwordHash).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return model.PublicUser{}, ErrDuplicate
		}
		return model.PublicUser{}, err
	}
	return u, nil
}

// GetByEmail fetches a user by normalized email, including the password hash
// for credential verification.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, password FROM users WHERE email = $1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, password FROM users WHERE id = $1",
		id).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}
