package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"peopledir/internal/domain/org"
)

// OrganizationRepository implements org.Repository on top of the
// organizations table.
type OrganizationRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewOrganizationRepository(pool *pgxpool.Pool, log *slog.Logger) *OrganizationRepository {
	return &OrganizationRepository{
		pool: pool,
		log:  log.With("component", "org_repository"),
	}
}

const orgColumns = `id, name, website, industry, city, country, created_at, updated_at`

const orgFilter = `($1 = '' OR name ILIKE '%' || $1 || '%' OR industry ILIKE '%' || $1 || '%'
		OR city ILIKE '%' || $1 || '%' OR country ILIKE '%' || $1 || '%')`

// FindAll selects one page in (created_at, id) order plus the filtered
// total. Page and total are independent reads; see PersonRepository for
// the consistency trade-off, which applies identically here.
func (r *OrganizationRepository) FindAll(ctx context.Context, q org.ListQuery) ([]org.Organization, int, error) {
	const query = `
		SELECT ` + orgColumns + `
		FROM organizations
		WHERE ` + orgFilter + `
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, q.Search, q.Limit, q.Offset)
	if err != nil {
		r.log.Error("failed to list organizations", "error", err)
		return nil, 0, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()

	orgs, err := scanOrganizations(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("scan organizations: %w", err)
	}

	total, err := r.Count(ctx, q.Search)
	if err != nil {
		return nil, 0, err
	}

	return orgs, total, nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*org.Organization, error) {
	const query = `SELECT ` + orgColumns + ` FROM organizations WHERE id = $1`

	o, err := scanOrganization(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, org.ErrNotFound
		}
		r.log.Error("failed to get organization", "org_id", id, "error", err)
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return o, nil
}

func (r *OrganizationRepository) FindByName(ctx context.Context, name string) (*org.Organization, error) {
	const query = `SELECT ` + orgColumns + ` FROM organizations WHERE name = $1`

	o, err := scanOrganization(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, org.ErrNotFound
		}
		r.log.Error("failed to get organization by name", "error", err)
		return nil, fmt.Errorf("get organization by name: %w", err)
	}
	return o, nil
}

func (r *OrganizationRepository) Create(ctx context.Context, in org.CreateInput) (*org.Organization, error) {
	const query = `
		INSERT INTO organizations (name, website, industry, city, country)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + orgColumns

	o, err := scanOrganization(r.pool.QueryRow(ctx, query,
		in.Name, in.Website, in.Industry, in.City, in.Country))
	if err != nil {
		if uniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", org.ErrConflict, in.Name)
		}
		r.log.Error("failed to create organization", "error", err)
		return nil, fmt.Errorf("create organization: %w", err)
	}
	return o, nil
}

// Update changes only the non-nil fields; updated_at advances on every
// matched row.
func (r *OrganizationRepository) Update(ctx context.Context, id uuid.UUID, in org.UpdateInput) (*org.Organization, error) {
	const query = `
		UPDATE organizations SET
			name       = COALESCE($2, name),
			website    = COALESCE($3, website),
			industry   = COALESCE($4, industry),
			city       = COALESCE($5, city),
			country    = COALESCE($6, country),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + orgColumns

	o, err := scanOrganization(r.pool.QueryRow(ctx, query,
		id, in.Name, in.Website, in.Industry, in.City, in.Country))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, org.ErrNotFound
		}
		if uniqueViolation(err) {
			return nil, org.ErrConflict
		}
		r.log.Error("failed to update organization", "org_id", id, "error", err)
		return nil, fmt.Errorf("update organization: %w", err)
	}
	return o, nil
}

func (r *OrganizationRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM organizations WHERE id = $1 RETURNING id`

	var deleted uuid.UUID
	err := r.pool.QueryRow(ctx, query, id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		r.log.Error("failed to delete organization", "org_id", id, "error", err)
		return false, fmt.Errorf("delete organization: %w", err)
	}
	return true, nil
}

func (r *OrganizationRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM organizations WHERE id = $1)`

	var ok bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&ok); err != nil {
		r.log.Error("failed to check organization existence", "org_id", id, "error", err)
		return false, fmt.Errorf("organization exists: %w", err)
	}
	return ok, nil
}

func (r *OrganizationRepository) Count(ctx context.Context, search string) (int, error) {
	const query = `SELECT count(*) FROM organizations WHERE ` + orgFilter

	var total int
	if err := r.pool.QueryRow(ctx, query, search).Scan(&total); err != nil {
		r.log.Error("failed to count organizations", "error", err)
		return 0, fmt.Errorf("count organizations: %w", err)
	}
	return total, nil
}

func scanOrganization(row pgx.Row) (*org.Organization, error) {
	var o org.Organization
	err := row.Scan(&o.ID, &o.Name, &o.Website, &o.Industry,
		&o.City, &o.Country, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func scanOrganizations(rows pgx.Rows) ([]org.Organization, error) {
	orgs := make([]org.Organization, 0)
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, *o)
	}
	return orgs, rows.Err()
}
