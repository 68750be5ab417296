package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"advocates/internal/model"
	"advocates/internal/repository"
)

// AdvocateSQLite is a SQLite implementation of repository.AdvocateRepository.
// Specialties are stored as a JSON array in a TEXT column.
type AdvocateSQLite struct {
	db *sql.DB
}

// NewAdvocateSQLite creates a new AdvocateSQLite repository.
func NewAdvocateSQLite(db *sql.DB) *AdvocateSQLite {
	return &AdvocateSQLite{db: db}
}

var (
	_ repository.AdvocateRepository = (*AdvocateSQLite)(nil)
	_ repository.AdvocateSeeder     = (*AdvocateSQLite)(nil)
)

// Search returns advocates using LIMIT/OFFSET pagination and a total count for the filter.
func (r *AdvocateSQLite) Search(ctx context.Context, f repository.AdvocateFilter, pq repository.PageQuery) (*repository.PageResult[model.Advocate], error) {
	where := ""
	args := []any{}
	if f.Search != "" {
		where = ` WHERE search_text LIKE ? ESCAPE '\'`
		args = append(args, "%"+repository.EscapeLike(f.Search)+"%")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM advocates`+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count advocates: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, city, degree, specialties, years_of_experience, phone_number
		FROM advocates`+where+`
		ORDER BY last_name, first_name, id
		LIMIT ? OFFSET ?`, append(args, pq.Limit, pq.Offset)...)
	if err != nil {
		return nil, fmt.Errorf("list advocates: %w", err)
	}
	defer rows.Close()

	items := make([]model.Advocate, 0)
	for rows.Next() {
		var (
			a           model.Advocate
			specialties string
		)
		if err := rows.Scan(
			&a.ID,
			&a.FirstName,
			&a.LastName,
			&a.City,
			&a.Degree,
			&specialties,
			&a.YearsOfExperience,
			&a.PhoneNumber,
		); err != nil {
			return nil, err
		}
		a.Specialties = []string{}
		if specialties != "" {
			if err := json.Unmarshal([]byte(specialties), &a.Specialties); err != nil {
				return nil, fmt.Errorf("decode specialties for %s: %w", a.ID, err)
			}
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Advocate]{
		Items: items,
		Total: total,
	}, nil
}

// Count returns the number of rows in the advocates table.
func (r *AdvocateSQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM advocates`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// InsertMany stores advocates in a single transaction; rows with an existing id are left untouched.
func (r *AdvocateSQLite) InsertMany(ctx context.Context, advocates []model.Advocate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO advocates
			(id, first_name, last_name, city, degree, specialties, years_of_experience, phone_number, search_text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range advocates {
		specialties := a.Specialties
		if specialties == nil {
			specialties = []string{}
		}
		encoded, err := json.Marshal(specialties)
		if err != nil {
			return fmt.Errorf("encode specialties for %s: %w", a.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			a.ID,
			a.FirstName,
			a.LastName,
			a.City,
			a.Degree,
			string(encoded),
			a.YearsOfExperience,
			a.PhoneNumber,
			model.SearchableText(a),
		); err != nil {
			return fmt.Errorf("insert advocate %s: %w", a.ID, err)
		}
	}

	return tx.Commit()
}
