package person

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Pagination bounds. The contract layer enforces the same values on
// inbound requests; the clamp here covers direct callers.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Servicer defines the business operations on persons consumed by the
// HTTP layer.
type Servicer interface {
	List(ctx context.Context, q ListQuery) ([]Person, int, error)
	Find(ctx context.Context, id uuid.UUID) (*Person, error)
	FindByEmail(ctx context.Context, email string) (*Person, error)
	Create(ctx context.Context, in CreateInput) (*Person, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*Person, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context, search string) (int, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "person_service"),
	}
}

// List returns one page of persons plus the total matching the filter.
// Out-of-range pagination values are clamped to the contract bounds.
func (s *Service) List(ctx context.Context, q ListQuery) ([]Person, int, error) {
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	persons, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.log.Error("failed to list persons", "search", q.Search, "error", err)
		return nil, 0, fmt.Errorf("list persons: %w", err)
	}
	return persons, total, nil
}

func (s *Service) Find(ctx context.Context, id uuid.UUID) (*Person, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find person", "person_id", id, "error", err)
		return nil, fmt.Errorf("find person: %w", err)
	}
	return p, nil
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*Person, error) {
	p, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find person by email", "error", err)
		return nil, fmt.Errorf("find person by email: %w", err)
	}
	return p, nil
}

// Create inserts a new person. Contract validation is the gate for
// untrusted input; the checks here only guard direct callers such as
// the seeder.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Person, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return nil, ErrInvalidArgument
	}

	p, err := s.repo.Create(ctx, in)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, err
		}
		s.log.Error("failed to create person", "error", err)
		return nil, fmt.Errorf("create person: %w", err)
	}

	s.log.Info("person created", "person_id", p.ID)
	return p, nil
}

// Update applies only the present fields. An empty input is legal and
// results in the update timestamp advancing alone.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*Person, error) {
	p, err := s.repo.Update(ctx, id, in)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
			return nil, err
		}
		s.log.Error("failed to update person", "person_id", id, "error", err)
		return nil, fmt.Errorf("update person: %w", err)
	}

	s.log.Info("person updated", "person_id", id)
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("failed to delete person", "person_id", id, "error", err)
		return false, fmt.Errorf("delete person: %w", err)
	}

	if deleted {
		s.log.Info("person deleted", "person_id", id)
	}
	return deleted, nil
}

func (s *Service) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("person exists: %w", err)
	}
	return ok, nil
}

func (s *Service) Count(ctx context.Context, search string) (int, error) {
	n, err := s.repo.Count(ctx, search)
	if err != nil {
		return 0, fmt.Errorf("count persons: %w", err)
	}
	return n, nil
}
