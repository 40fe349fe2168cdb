package org

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"peopledir/internal/domain/org"
	"peopledir/pkg/contract"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, q org.ListQuery) ([]org.Organization, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]org.Organization), args.Int(1), args.Error(2)
}

func (m *MockService) Find(ctx context.Context, id uuid.UUID) (*org.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*org.Organization), args.Error(1)
}

func (m *MockService) FindByName(ctx context.Context, name string) (*org.Organization, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*org.Organization), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, in org.CreateInput) (*org.Organization, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*org.Organization), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id uuid.UUID, in org.UpdateInput) (*org.Organization, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*org.Organization), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) Count(ctx context.Context, search string) (int, error) {
	args := m.Called(ctx, search)
	return args.Int(0), args.Error(1)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_List(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	orgs := []org.Organization{
		{ID: uuid.New(), Name: "Norsk Data", CreatedAt: time.Now()},
		{ID: uuid.New(), Name: "Tagus Labs", CreatedAt: time.Now()},
	}
	svc.On("List", mock.Anything, org.ListQuery{Limit: 10}).Return(orgs, 2, nil)

	out, err := h.list(context.Background(), &listInput{Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, 2, out.Body.Total)
	require.Len(t, out.Body.Data, 2)
	assert.Equal(t, "Norsk Data", out.Body.Data[0].Name)

	svc.AssertExpectations(t)
}

func TestHandler_Create(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	id := uuid.New()
	site := "https://norskdata.example"
	created := &org.Organization{ID: id, Name: "Norsk Data", Website: &site}

	svc.On("Create", mock.Anything, mock.MatchedBy(func(in org.CreateInput) bool {
		return in.Name == "Norsk Data" && in.Website != nil && *in.Website == site
	})).Return(created, nil)

	out, err := h.create(context.Background(), &createInput{
		Body: contract.OrganizationCreate{Name: "Norsk Data", Website: &site},
	})
	assert.NoError(t, err)
	assert.Equal(t, id, out.Body.ID)
	require.NotNil(t, out.Body.Website)
	assert.Equal(t, site, *out.Body.Website)

	svc.AssertExpectations(t)
}

func TestHandler_Create_DuplicateName(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("Create", mock.Anything, mock.Anything).Return(nil, org.ErrConflict)

	_, err := h.create(context.Background(), &createInput{
		Body: contract.OrganizationCreate{Name: "Norsk Data"},
	})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestHandler_Find_NotFound(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	id := uuid.New()
	svc.On("Find", mock.Anything, id).Return(nil, org.ErrNotFound)

	_, err := h.find(context.Background(), &findInput{ID: id})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestHandler_Update_EmptyBody(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	id := uuid.New()
	updated := &org.Organization{ID: id, Name: "Norsk Data", UpdatedAt: time.Now()}

	svc.On("Update", mock.Anything, id, org.UpdateInput{}).Return(updated, nil)

	out, err := h.update(context.Background(), &updateInput{ID: id})
	assert.NoError(t, err)
	assert.Equal(t, "Norsk Data", out.Body.Name)

	svc.AssertExpectations(t)
}

func TestHandler_Delete_Absent(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	id := uuid.New()
	svc.On("Delete", mock.Anything, id).Return(false, nil)

	_, err := h.delete(context.Background(), &deleteInput{ID: id})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}
