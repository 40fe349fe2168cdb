package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"peopledir/internal/domain/person"
)

// PersonRepository implements person.Repository on top of the persons
// table. Identifier and timestamps are table defaults; every statement
// that changes a row returns the full row so callers always see the
// store's view.
type PersonRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPersonRepository(pool *pgxpool.Pool, log *slog.Logger) *PersonRepository {
	return &PersonRepository{
		pool: pool,
		log:  log.With("component", "person_repository"),
	}
}

const personColumns = `id, first_name, last_name, email, age, city, country, created_at, updated_at`

// personFilter matches when $1 is empty or any text field contains it,
// case-insensitively. FindAll and Count share it so the page and the
// total honor the same predicate.
const personFilter = `($1 = '' OR first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%'
		OR email ILIKE '%' || $1 || '%' OR city ILIKE '%' || $1 || '%' OR country ILIKE '%' || $1 || '%')`

// FindAll selects one page in (created_at, id) order plus the filtered
// total. The two statements run independently on the pool: a write
// between them can make the total disagree with the page, and offset
// pagination can skip or repeat a row across pages under concurrent
// writes. Both are accepted trade-offs of this API.
func (r *PersonRepository) FindAll(ctx context.Context, q person.ListQuery) ([]person.Person, int, error) {
	const query = `
		SELECT ` + personColumns + `
		FROM persons
		WHERE ` + personFilter + `
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, q.Search, q.Limit, q.Offset)
	if err != nil {
		r.log.Error("failed to list persons", "error", err)
		return nil, 0, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	persons, err := scanPersons(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("scan persons: %w", err)
	}

	total, err := r.Count(ctx, q.Search)
	if err != nil {
		return nil, 0, err
	}

	return persons, total, nil
}

func (r *PersonRepository) FindByID(ctx context.Context, id uuid.UUID) (*person.Person, error) {
	const query = `SELECT ` + personColumns + ` FROM persons WHERE id = $1`

	p, err := scanPerson(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, person.ErrNotFound
		}
		r.log.Error("failed to get person", "person_id", id, "error", err)
		return nil, fmt.Errorf("get person: %w", err)
	}
	return p, nil
}

func (r *PersonRepository) FindByEmail(ctx context.Context, email string) (*person.Person, error) {
	const query = `SELECT ` + personColumns + ` FROM persons WHERE email = $1`

	p, err := scanPerson(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, person.ErrNotFound
		}
		r.log.Error("failed to get person by email", "error", err)
		return nil, fmt.Errorf("get person by email: %w", err)
	}
	return p, nil
}

func (r *PersonRepository) Create(ctx context.Context, in person.CreateInput) (*person.Person, error) {
	const query = `
		INSERT INTO persons (first_name, last_name, email, age, city, country)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + personColumns

	p, err := scanPerson(r.pool.QueryRow(ctx, query,
		in.FirstName, in.LastName, in.Email, in.Age, in.City, in.Country))
	if err != nil {
		if uniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", person.ErrConflict, in.Email)
		}
		r.log.Error("failed to create person", "error", err)
		return nil, fmt.Errorf("create person: %w", err)
	}
	return p, nil
}

// Update changes only the non-nil fields. updated_at advances on every
// matched row, including a zero-field update.
func (r *PersonRepository) Update(ctx context.Context, id uuid.UUID, in person.UpdateInput) (*person.Person, error) {
	const query = `
		UPDATE persons SET
			first_name = COALESCE($2, first_name),
			last_name  = COALESCE($3, last_name),
			email      = COALESCE($4, email),
			age        = COALESCE($5, age),
			city       = COALESCE($6, city),
			country    = COALESCE($7, country),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + personColumns

	p, err := scanPerson(r.pool.QueryRow(ctx, query,
		id, in.FirstName, in.LastName, in.Email, in.Age, in.City, in.Country))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, person.ErrNotFound
		}
		if uniqueViolation(err) {
			return nil, person.ErrConflict
		}
		r.log.Error("failed to update person", "person_id", id, "error", err)
		return nil, fmt.Errorf("update person: %w", err)
	}
	return p, nil
}

func (r *PersonRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM persons WHERE id = $1 RETURNING id`

	var deleted uuid.UUID
	err := r.pool.QueryRow(ctx, query, id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		r.log.Error("failed to delete person", "person_id", id, "error", err)
		return false, fmt.Errorf("delete person: %w", err)
	}
	return true, nil
}

func (r *PersonRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM persons WHERE id = $1)`

	var ok bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&ok); err != nil {
		r.log.Error("failed to check person existence", "person_id", id, "error", err)
		return false, fmt.Errorf("person exists: %w", err)
	}
	return ok, nil
}

func (r *PersonRepository) Count(ctx context.Context, search string) (int, error) {
	const query = `SELECT count(*) FROM persons WHERE ` + personFilter

	var total int
	if err := r.pool.QueryRow(ctx, query, search).Scan(&total); err != nil {
		r.log.Error("failed to count persons", "error", err)
		return 0, fmt.Errorf("count persons: %w", err)
	}
	return total, nil
}

func scanPerson(row pgx.Row) (*person.Person, error) {
	var p person.Person
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email,
		&p.Age, &p.City, &p.Country, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanPersons(rows pgx.Rows) ([]person.Person, error) {
	persons := make([]person.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		persons = append(persons, *p)
	}
	return persons, rows.Err()
}
