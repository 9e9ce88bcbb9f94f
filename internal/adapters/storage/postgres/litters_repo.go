package postgres

import (
	"context"
	"database/sql"
	"strings"

	"kennel-records/internal/domain/litters"
)

type LittersRepo struct {
	db *sql.DB
}

func NewLittersRepo(db *sql.DB) *LittersRepo {
	return &LittersRepo{db: db}
}

func (r *LittersRepo) Create(ctx context.Context, l litters.Litter) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO litters (id, birth_date, mother_id, father_id, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		l.ID,
		l.BirthDate,
		l.MotherID,
		l.FatherID,
		l.CreatedAt,
	)
	return err
}

func (r *LittersRepo) GetByID(ctx context.Context, id string) (litters.Litter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return litters.Litter{}, litters.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, birth_date, mother_id, father_id, created_at
		FROM litters
		WHERE id = $1
	`, id)

	var l litters.Litter
	if err := row.Scan(&l.ID, &l.BirthDate, &l.MotherID, &l.FatherID, &l.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return litters.Litter{}, litters.ErrNotFound
		}
		return litters.Litter{}, err
	}
	return l, nil
}

func (r *LittersRepo) List(ctx context.Context) ([]litters.Litter, error) {
	return r.query(ctx, `
		SELECT id, birth_date, mother_id, father_id, created_at
		FROM litters
		ORDER BY birth_date ASC, id ASC
	`)
}

func (r *LittersRepo) ListByMother(ctx context.Context, motherID string) ([]litters.Litter, error) {
	return r.query(ctx, `
		SELECT id, birth_date, mother_id, father_id, created_at
		FROM litters
		WHERE mother_id = $1
		ORDER BY birth_date ASC, id ASC
	`, motherID)
}

func (r *LittersRepo) ListByYear(ctx context.Context, year int) ([]litters.Litter, error) {
	return r.query(ctx, `
		SELECT id, birth_date, mother_id, father_id, created_at
		FROM litters
		WHERE EXTRACT(YEAR FROM birth_date) = $1
		ORDER BY birth_date ASC, id ASC
	`, year)
}

func (r *LittersRepo) ListRecent(ctx context.Context, limit int) ([]litters.Litter, error) {
	return r.query(ctx, `
		SELECT id, birth_date, mother_id, father_id, created_at
		FROM litters
		ORDER BY birth_date DESC
		LIMIT $1
	`, limit)
}

func (r *LittersRepo) query(ctx context.Context, query string, args ...any) ([]litters.Litter, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]litters.Litter, 0)
	for rows.Next() {
		var l litters.Litter
		if err := rows.Scan(&l.ID, &l.BirthDate, &l.MotherID, &l.FatherID, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
