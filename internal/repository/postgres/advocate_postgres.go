package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"advocates/internal/model"
	"advocates/internal/repository"
)

// AdvocatePostgres is a PostgreSQL implementation of repository.AdvocateRepository.
// Matching runs against the precomputed search_text column so it agrees with the in-memory backend.
type AdvocatePostgres struct {
	db *sql.DB
}

// NewAdvocatePostgres creates a new AdvocatePostgres repository.
func NewAdvocatePostgres(db *sql.DB) *AdvocatePostgres {
	return &AdvocatePostgres{db: db}
}

var (
	_ repository.AdvocateRepository = (*AdvocatePostgres)(nil)
	_ repository.AdvocateSeeder     = (*AdvocatePostgres)(nil)
)

const advocateColumns = `id, first_name, last_name, city, degree, specialties, years_of_experience, phone_number`

// Search returns advocates using LIMIT/OFFSET pagination and a total count for the filter.
func (r *AdvocatePostgres) Search(ctx context.Context, f repository.AdvocateFilter, pq repository.PageQuery) (*repository.PageResult[model.Advocate], error) {
	where := ""
	args := []any{}
	if f.Search != "" {
		where = ` WHERE search_text LIKE $1 ESCAPE '\'`
		args = append(args, "%"+repository.EscapeLike(f.Search)+"%")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM advocates`+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count advocates: %w", err)
	}

	qList := fmt.Sprintf(`SELECT %s FROM advocates%s
		ORDER BY last_name COLLATE "C", first_name COLLATE "C", id COLLATE "C"
		LIMIT $%d OFFSET $%d`, advocateColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, qList, append(args, pq.Limit, pq.Offset)...)
	if err != nil {
		return nil, fmt.Errorf("list advocates: %w", err)
	}
	defer rows.Close()

	items := make([]model.Advocate, 0)
	for rows.Next() {
		a, err := scanAdvocate(rows)
		if err != nil {
			return nil, err
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
func (r *AdvocatePostgres) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM advocates`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// InsertMany stores advocates in a single transaction; rows with an existing id are left untouched.
func (r *AdvocatePostgres) InsertMany(ctx context.Context, advocates []model.Advocate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO advocates (`+advocateColumns+`, search_text)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range advocates {
		specialties, err := json.Marshal(nonNil(a.Specialties))
		if err != nil {
			return fmt.Errorf("encode specialties for %s: %w", a.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			a.ID,
			a.FirstName,
			a.LastName,
			a.City,
			a.Degree,
			string(specialties),
			a.YearsOfExperience,
			a.PhoneNumber,
			model.SearchableText(a),
		); err != nil {
			return fmt.Errorf("insert advocate %s: %w", a.ID, err)
		}
	}

	return tx.Commit()
}

func scanAdvocate(rows *sql.Rows) (model.Advocate, error) {
	var (
		a           model.Advocate
		specialties []byte
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
		return model.Advocate{}, err
	}
	a.Specialties = []string{}
	if len(specialties) > 0 {
		if err := json.Unmarshal(specialties, &a.Specialties); err != nil {
			return model.Advocate{}, fmt.Errorf("decode specialties for %s: %w", a.ID, err)
		}
	}
	return a, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
