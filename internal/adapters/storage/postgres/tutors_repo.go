package postgres

import (
	"context"
	"database/sql"
	"strings"

	"kennel-records/internal/domain/tutors"
)

type TutorsRepo struct {
	db *sql.DB
}

func NewTutorsRepo(db *sql.DB) *TutorsRepo {
	return &TutorsRepo{db: db}
}

func (r *TutorsRepo) Create(ctx context.Context, t tutors.Tutor) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tutors (id, name, email, phone, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		t.ID,
		t.Name,
		t.Email,
		t.Phone,
		t.CreatedAt,
		t.UpdatedAt,
	)
	return err
}

func (r *TutorsRepo) Update(ctx context.Context, t tutors.Tutor) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tutors
		SET
			name = $2,
			email = $3,
			phone = $4,
			updated_at = $5
		WHERE id = $1
	`,
		t.ID,
		t.Name,
		t.Email,
		t.Phone,
		t.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return tutors.ErrNotFound
	}
	return nil
}

func (r *TutorsRepo) GetByID(ctx context.Context, id string) (tutors.Tutor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return tutors.Tutor{}, tutors.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, created_at, updated_at
		FROM tutors
		WHERE id = $1
	`, id)

	var t tutors.Tutor
	if err := row.Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return tutors.Tutor{}, tutors.ErrNotFound
		}
		return tutors.Tutor{}, err
	}
	return t, nil
}

func (r *TutorsRepo) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM tutors WHERE id = $1)`, id,
	).Scan(&ok)
	return ok, err
}

func (r *TutorsRepo) List(ctx context.Context) ([]tutors.Tutor, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, phone, created_at, updated_at
		FROM tutors
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tutors.Tutor, 0)
	for rows.Next() {
		var t tutors.Tutor
		if err := rows.Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TutorsRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tutors`).Scan(&n)
	return n, err
}

func (r *TutorsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tutors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return tutors.ErrNotFound
	}
	return nil
}
