package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/samurun/portfolio-api/internal/model"
)

// ExperienceRepo encapsulates all queries against the experience table.
// The skills column is jsonb; values are marshalled on the way in and
// unmarshalled on the way out.
type ExperienceRepo struct {
	db *sql.DB
}

func NewExperienceRepo(db *sql.DB) *ExperienceRepo { return &ExperienceRepo{db: db} }

const experienceColumns = "id, logo, company, position, type, start_date, end_date, description, skills, is_remote"

func scanExperience(row interface{ Scan(...any) error }) (model.Experience, error) {
	var e model.Experience
	var skills []byte
	err := row.Scan(&e.ID, &e.Logo, &e.Company, &e.Position, &e.Type,
		&e.StartDate, &e.EndDate, &e.Description, &skills, &e.IsRemote)
	if err != nil {
		return model.Experience{}, err
	}
	if err := json.Unmarshal(skills, &e.Skills); err != nil {
		return model.Experience{}, err
	}
	if e.Skills == nil {
		e.Skills = []string{}
	}
	return e, nil
}

// GetAll returns every experience entry ordered by id.
func (r *ExperienceRepo) GetAll(ctx context.Context) ([]model.Experience, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+experienceColumns+" FROM experience ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// GetByID fetches one entry or ErrNotFound.
func (r *ExperienceRepo) GetByID(ctx context.Context, id int64) (model.Experience, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+experienceColumns+" FROM experience WHERE id = $1", id)
	e, err := scanExperience(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Experience{}, ErrNotFound
	}
	return e, err
}

// Create inserts a new entry and returns it with its assigned id.
func (r *ExperienceRepo) Create(ctx context.Context, in model.Experience) (model.Experience, error) {
	skills, err := json.Marshal(in.Skills)
	if err != nil {
		return model.Experience{}, err
	}
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO experience (logo, company, position, type, start_date, end_date, description, skills, is_remote)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+experienceColumns,
		in.Logo, in.Company, in.Position, in.Type, in.StartDate, in.EndDate, in.Description, skills, in.IsRemote)
	return scanExperience(row)
}

// Update replaces an entry's fields and returns the updated record, or
// ErrNotFound when the id does not exist.
func (r *ExperienceRepo) Update(ctx context.Context, id int64, in model.Experience) (model.Experience, error) {
	skills, err := json.Marshal(in.Skills)
	if err != nil {
		return model.Experience{}, err
	}
	row := r.db.QueryRowContext(ctx,
		`UPDATE experience
		 SET logo = $2, company = $3, position = $4, type = $5, start_date = $6,
		     end_date = $7, description = $8, skills = $9, is_remote = $10
		 WHERE id = $1
		 RETURNING `+experienceColumns,
		id, in.Logo, in.Company, in.Position, in.Type, in.StartDate, in.EndDate, in.Description, skills, in.IsRemote)
	e, err := scanExperience(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Experience{}, ErrNotFound
	}
	return e, err
}

// Delete removes an entry and returns the number of affected rows.
func (r *ExperienceRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM experience WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
