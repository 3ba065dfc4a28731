package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/samurun/portfolio-api/internal/model"
)

// SummaryRepo encapsulates all queries against the summary table.
type SummaryRepo struct {
	db *sql.DB
}

func NewSummaryRepo(db *sql.DB) *SummaryRepo { return &SummaryRepo{db: db} }

// GetAll returns every summary ordered by id.
func (r *SummaryRepo) GetAll(ctx context.Context) ([]model.Summary, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, title, description FROM summary ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Summary{}
	for rows.Next() {
		var s model.Summary
		if err := rows.Scan(&s.ID, &s.Title, &s.Description); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// Create inserts a new summary and returns it with its assigned id.
func (r *SummaryRepo) Create(ctx context.Context, title, description string) (model.Summary, error) {
	var s model.Summary
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO summary (title, description) VALUES ($1, $2) RETURNING id, title, description",
		title, description).Scan(&s.ID, &s.Title, &s.Description)
	return s, err
}

// Update replaces a summary's fields and returns the updated record, or
// ErrNotFound when the id does not exist.
func (r *SummaryRepo) Update(ctx context.Context, id int64, title, description string) (model.Summary, error) {
	var s model.Summary
	err := r.db.QueryRowContext(ctx,
		"UPDATE summary SET title = $2, description = $3 WHERE id = $1 RETURNING id, title, description",
		id, title, description).Scan(&s.ID, &s.Title, &s.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Summary{}, ErrNotFound
	}
	return s, err
}
