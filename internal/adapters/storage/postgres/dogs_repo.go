package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"kennel-records/internal/domain/dogs"
)

type DogsRepo struct {
	db *sql.DB
}

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

const dogColumns = `
	id, name, sex, breed, birth_date, status,
	tutor_id, mother_id, father_id, litter_id,
	created_at, updated_at
`

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dogs (
			id, name, sex, breed, birth_date, status,
			tutor_id, mother_id, father_id, litter_id,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		d.ID,
		d.Name,
		d.Sex,
		d.Breed,
		d.BirthDate,
		d.Status,
		toNullStr(d.TutorID),
		toNullStr(d.MotherID),
		toNullStr(d.FatherID),
		toNullStr(d.LitterID),
		d.CreatedAt,
		d.UpdatedAt,
	)
	return err
}

func (r *DogsRepo) Update(ctx context.Context, d dogs.Dog) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE dogs
		SET
			name = $2,
			sex = $3,
			breed = $4,
			birth_date = $5,
			status = $6,
			tutor_id = $7,
			mother_id = $8,
			father_id = $9,
			litter_id = $10,
			updated_at = $11
		WHERE id = $1
	`,
		d.ID,
		d.Name,
		d.Sex,
		d.Breed,
		d.BirthDate,
		d.Status,
		toNullStr(d.TutorID),
		toNullStr(d.MotherID),
		toNullStr(d.FatherID),
		toNullStr(d.LitterID),
		d.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return dogs.ErrNotFound
	}
	return nil
}

func (r *DogsRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return dogs.Dog{}, dogs.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+dogColumns+`
		FROM dogs
		WHERE id = $1
	`, id)

	d, err := scanDog(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return dogs.Dog{}, dogs.ErrNotFound
		}
		return dogs.Dog{}, err
	}
	return d, nil
}

func (r *DogsRepo) GetByIDs(ctx context.Context, ids []string) (map[string]dogs.Dog, error) {
	out := make(map[string]dogs.Dog, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	// ANY($1) con array de pgx evita armar placeholders a mano
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+dogColumns+`
		FROM dogs
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, err
		}
		out[d.ID] = d
	}
	return out, rows.Err()
}

func (r *DogsRepo) List(ctx context.Context) ([]dogs.Dog, error) {
	return r.queryDogs(ctx, `
		SELECT `+dogColumns+`
		FROM dogs
		ORDER BY created_at ASC, id ASC
	`)
}

func (r *DogsRepo) ListByLitter(ctx context.Context, litterID string) ([]dogs.Dog, error) {
	return r.queryDogs(ctx, `
		SELECT `+dogColumns+`
		FROM dogs
		WHERE litter_id = $1
		ORDER BY created_at ASC, id ASC
	`, litterID)
}

func (r *DogsRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// los gastos viven y mueren con su perro
	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses WHERE dog_id = $1`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM dogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return dogs.ErrNotFound
	}

	return tx.Commit()
}

func (r *DogsRepo) CountByTutor(ctx context.Context, tutorID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM dogs WHERE tutor_id = $1`, tutorID,
	).Scan(&n)
	return n, err
}

func (r *DogsRepo) CountByStatus(ctx context.Context, st dogs.Status) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM dogs WHERE status = $1`, st,
	).Scan(&n)
	return n, err
}

func (r *DogsRepo) AddExpense(ctx context.Context, e dogs.Expense) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO expenses (id, dog_id, description, amount, date)
		VALUES ($1,$2,$3,$4,$5)
	`,
		e.ID,
		e.DogID,
		e.Description,
		e.Amount,
		e.Date,
	)
	return err
}

func (r *DogsRepo) ListExpensesByDog(ctx context.Context, dogID string) ([]dogs.Expense, error) {
	return r.queryExpenses(ctx, `
		SELECT id, dog_id, description, amount, date
		FROM expenses
		WHERE dog_id = $1
		ORDER BY date ASC, id ASC
	`, dogID)
}

func (r *DogsRepo) ListExpensesAfter(ctx context.Context, from time.Time) ([]dogs.Expense, error) {
	return r.queryExpenses(ctx, `
		SELECT id, dog_id, description, amount, date
		FROM expenses
		WHERE date >= $1
		ORDER BY date ASC, id ASC
	`, from)
}

func (r *DogsRepo) ListRecentExpenses(ctx context.Context, limit int) ([]dogs.Expense, error) {
	return r.queryExpenses(ctx, `
		SELECT id, dog_id, description, amount, date
		FROM expenses
		ORDER BY date DESC
		LIMIT $1
	`, limit)
}

func (r *DogsRepo) queryDogs(ctx context.Context, query string, args ...any) ([]dogs.Dog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DogsRepo) queryExpenses(ctx context.Context, query string, args ...any) ([]dogs.Expense, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Expense, 0)
	for rows.Next() {
		var e dogs.Expense
		if err := rows.Scan(&e.ID, &e.DogID, &e.Description, &e.Amount, &e.Date); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDog(row rowScanner) (dogs.Dog, error) {
	var d dogs.Dog
	var tutor, mother, father, litter sql.NullString
	if err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Sex,
		&d.Breed,
		&d.BirthDate,
		&d.Status,
		&tutor,
		&mother,
		&father,
		&litter,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return dogs.Dog{}, err
	}
	d.TutorID = fromNullStr(tutor)
	d.MotherID = fromNullStr(mother)
	d.FatherID = fromNullStr(father)
	d.LitterID = fromNullStr(litter)
	return d, nil
}
