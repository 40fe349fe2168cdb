package org

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Servicer defines the business operations on organizations consumed by
// the HTTP layer.
type Servicer interface {
	List(ctx context.Context, q ListQuery) ([]Organization, int, error)
	Find(ctx context.Context, id uuid.UUID) (*Organization, error)
	FindByName(ctx context.Context, name string) (*Organization, error)
	Create(ctx context.Context, in CreateInput) (*Organization, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*Organization, error)
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
		log:  log.With("component", "org_service"),
	}
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]Organization, int, error) {
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	orgs, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.log.Error("failed to list organizations", "search", q.Search, "error", err)
		return nil, 0, fmt.Errorf("list organizations: %w", err)
	}
	return orgs, total, nil
}

func (s *Service) Find(ctx context.Context, id uuid.UUID) (*Organization, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find organization", "org_id", id, "error", err)
		return nil, fmt.Errorf("find organization: %w", err)
	}
	return o, nil
}

func (s *Service) FindByName(ctx context.Context, name string) (*Organization, error) {
	o, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find organization by name", "error", err)
		return nil, fmt.Errorf("find organization by name: %w", err)
	}
	return o, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Organization, error) {
	if in.Name == "" {
		return nil, ErrInvalidArgument
	}

	o, err := s.repo.Create(ctx, in)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, err
		}
		s.log.Error("failed to create organization", "error", err)
		return nil, fmt.Errorf("create organization: %w", err)
	}

	s.log.Info("organization created", "org_id", o.ID)
	return o, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*Organization, error) {
	o, err := s.repo.Update(ctx, id, in)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
			return nil, err
		}
		s.log.Error("failed to update organization", "org_id", id, "error", err)
		return nil, fmt.Errorf("update organization: %w", err)
	}

	s.log.Info("organization updated", "org_id", id)
	return o, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("failed to delete organization", "org_id", id, "error", err)
		return false, fmt.Errorf("delete organization: %w", err)
	}

	if deleted {
		s.log.Info("organization deleted", "org_id", id)
	}
	return deleted, nil
}

func (s *Service) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("organization exists: %w", err)
	}
	return ok, nil
}

func (s *Service) Count(ctx context.Context, search string) (int, error) {
	n, err := s.repo.Count(ctx, search)
	if err != nil {
		return 0, fmt.Errorf("count organizations: %w", err)
	}
	return n, nil
}
