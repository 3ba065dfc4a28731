package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/samurun/portfolio-api/internal/model"
)

// TechRepo encapsulates all queries against the tech_stack table.
type TechRepo struct {
	db *sql.DB
}

func NewTechRepo(db *sql.DB) *TechRepo { return &TechRepo{db: db} }

// GetAll returns every tech-stack entry ordered by id.
func (r *TechRepo) GetAll(ctx context.Context) ([]model.TechStack, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM tech_stack ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.TechStack{}
	for rows.Next() {
		var t model.TechStack
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// GetByID fetches one entry or ErrNotFound.
func (r *TechRepo) GetByID(ctx context.Context, id int64) (model.TechStack, error) {
	var t model.TechStack
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name FROM tech_stack WHERE id = $1", id).Scan(&t.ID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return model.TechStack{}, ErrNotFound
	}
	return t, err
}

// Create inserts a new entry. A duplicate name yields ErrDuplicate.
func (r *TechRepo) Create(ctx context.Context, name string) (model.TechStack, error) {
	var t model.TechStack
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO tech_stack (name) VALUES ($1) RETURNING id, name", name).Scan(&t.ID, &t.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return model.TechStack{}, ErrDuplicate
		}
		return model.TechStack{}, err
	}
	return t, nil
}

// Delete removes an entry and returns the deleted record, or ErrNotFound.
func (r *TechRepo) Delete(ctx context.Context, id int64) (model.TechStack, error) {
	var t model.TechStack
	err := r.db.QueryRowContext(ctx,
		"DELETE FROM tech_stack WHERE id = $1 RETURNING id, name", id).Scan(&t.ID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return model.TechStack{}, ErrNotFound
	}
	return t, err
}
