package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"kennel-records/internal/domain/sales"
)

type SalesRepo struct {
	db *sql.DB
}

func NewSalesRepo(db *sql.DB) *SalesRepo {
	return &SalesRepo{db: db}
}

func (r *SalesRepo) Create(ctx context.Context, s sales.Sale) error {
	// dog_id lleva UNIQUE: una venta por perro, lo refuerza la base
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sales (id, dog_id, tutor_id, amount, date, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		s.ID,
		s.DogID,
		s.TutorID,
		s.Amount,
		s.Date,
		s.CreatedAt,
	)
	return err
}

func (r *SalesRepo) GetByDog(ctx context.Context, dogID string) (sales.Sale, error) {
	dogID = strings.TrimSpace(dogID)
	if dogID == "" {
		return sales.Sale{}, sales.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, dog_id, tutor_id, amount, date, created_at
		FROM sales
		WHERE dog_id = $1
	`, dogID)

	var s sales.Sale
	if err := row.Scan(&s.ID, &s.DogID, &s.TutorID, &s.Amount, &s.Date, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return sales.Sale{}, sales.ErrNotFound
		}
		return sales.Sale{}, err
	}
	return s, nil
}

func (r *SalesRepo) DeleteByDog(ctx context.Context, dogID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sales WHERE dog_id = $1`, dogID)
	return err
}

func (r *SalesRepo) List(ctx context.Context) ([]sales.Sale, error) {
	return r.query(ctx, `
		SELECT id, dog_id, tutor_id, amount, date, created_at
		FROM sales
		ORDER BY date ASC, id ASC
	`)
}

func (r *SalesRepo) ListBetween(ctx context.Context, from, to time.Time) ([]sales.Sale, error) {
	return r.query(ctx, `
		SELECT id, dog_id, tutor_id, amount, date, created_at
		FROM sales
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC, id ASC
	`, from, to)
}

func (r *SalesRepo) ListAfter(ctx context.Context, from time.Time) ([]sales.Sale, error) {
	return r.query(ctx, `
		SELECT id, dog_id, tutor_id, amount, date, created_at
		FROM sales
		WHERE date >= $1
		ORDER BY date ASC, id ASC
	`, from)
}

func (r *SalesRepo) ListRecent(ctx context.Context, limit int) ([]sales.Sale, error) {
	return r.query(ctx, `
		SELECT id, dog_id, tutor_id, amount, date, created_at
		FROM sales
		ORDER BY date DESC
		LIMIT $1
	`, limit)
}

func (r *SalesRepo) query(ctx context.Context, query string, args ...any) ([]sales.Sale, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]sales.Sale, 0)
	for rows.Next() {
		var s sales.Sale
		if err := rows.Scan(&s.ID, &s.DogID, &s.TutorID, &s.Amount, &s.Date, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
