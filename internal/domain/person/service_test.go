package person

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindAll(ctx context.Context, q ListQuery) ([]Person, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]Person), args.Int(1), args.Error(2)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Person), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*Person, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Person), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, in CreateInput) (*Person, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Person), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*Person, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Person), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Count(ctx context.Context, search string) (int, error) {
	args := m.Called(ctx, search)
	return args.Int(0), args.Error(1)
}

func TestService_List(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	persons := []Person{
		{ID: uuid.New(), FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", CreatedAt: time.Now()},
		{ID: uuid.New(), FirstName: "Bjorn", LastName: "Haug", Email: "bjorn@example.com", CreatedAt: time.Now()},
	}

	mockRepo.On("FindAll", mock.Anything, ListQuery{Limit: 10, Offset: 0}).Return(persons, 2, nil)

	got, total, err := service.List(context.Background(), ListQuery{Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, got, 2)
	assert.Equal(t, "ann@example.com", got[0].Email)

	mockRepo.AssertExpectations(t)
}

func TestService_List_ClampsPagination(t *testing.T) {
	tests := []struct {
		name string
		in   ListQuery
		want ListQuery
	}{
		{"zero limit gets default", ListQuery{Limit: 0}, ListQuery{Limit: DefaultLimit}},
		{"negative limit gets default", ListQuery{Limit: -5}, ListQuery{Limit: DefaultLimit}},
		{"oversized limit clamps to max", ListQuery{Limit: 1000}, ListQuery{Limit: MaxLimit}},
		{"negative offset clamps to zero", ListQuery{Limit: 10, Offset: -1}, ListQuery{Limit: 10, Offset: 0}},
		{"search passes through", ListQuery{Limit: 10, Search: "oslo"}, ListQuery{Limit: 10, Search: "oslo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, slog.Default())

			mockRepo.On("FindAll", mock.Anything, tt.want).Return([]Person{}, 0, nil)

			_, _, err := service.List(context.Background(), tt.in)
			assert.NoError(t, err)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	age := 30
	in := CreateInput{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Age: &age}
	created := &Person{ID: uuid.New(), FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Age: &age}

	mockRepo.On("Create", mock.Anything, in).Return(created, nil)

	p, err := service.Create(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, p.ID)
	assert.Equal(t, "ann@example.com", p.Email)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_InvalidData(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.Create(context.Background(), CreateInput{LastName: "Lee", Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = service.Create(context.Background(), CreateInput{FirstName: "Ann", LastName: "Lee"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Create_Conflict(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	in := CreateInput{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com"}
	mockRepo.On("Create", mock.Anything, in).Return(nil, ErrConflict)

	_, err := service.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrConflict)

	mockRepo.AssertExpectations(t)
}

func TestService_Find(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	id := uuid.New()
	p := &Person{ID: id, FirstName: "Ann", LastName: "Lee", Email: "ann@example.com"}

	mockRepo.On("FindByID", mock.Anything, id).Return(p, nil)

	found, err := service.Find(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, p, found)

	mockRepo.AssertExpectations(t)
}

func TestService_Find_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	id := uuid.New()
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, ErrNotFound)

	_, err := service.Find(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestService_Update(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	id := uuid.New()
	city := "Bergen"
	in := UpdateInput{City: &city}
	updated := &Person{ID: id, FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", City: &city}

	mockRepo.On("Update", mock.Anything, id, in).Return(updated, nil)

	p, err := service.Update(context.Background(), id, in)
	assert.NoError(t, err)
	assert.Equal(t, "Bergen", *p.City)

	mockRepo.AssertExpectations(t)
}

func TestService_Update_EmptyInputAllowed(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	id := uuid.New()
	updated := &Person{ID: id, FirstName: "Ann", LastName: "Lee", Email: "ann@example.com"}

	mockRepo.On("Update", mock.Anything, id, UpdateInput{}).Return(updated, nil)

	p, err := service.Update(context.Background(), id, UpdateInput{})
	assert.NoError(t, err)
	assert.Equal(t, id, p.ID)

	mockRepo.AssertExpectations(t)
}

func TestService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	id := uuid.New()
	mockRepo.On("Update", mock.Anything, id, UpdateInput{}).Return(nil, ErrNotFound)

	_, err := service.Update(context.Background(), id, UpdateInput{})
	assert.ErrorIs(t, err, ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	id := uuid.New()
	mockRepo.On("Delete", mock.Anything, id).Return(true, nil)

	deleted, err := service.Delete(context.Background(), id)
	assert.NoError(t, err)
	assert.True(t, deleted)

	mockRepo.AssertExpectations(t)
}

func TestService_Delete_Absent(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	id := uuid.New()
	mockRepo.On("Delete", mock.Anything, id).Return(false, nil)

	deleted, err := service.Delete(context.Background(), id)
	assert.NoError(t, err)
	assert.False(t, deleted)

	mockRepo.AssertExpectations(t)
}

func TestService_Delete_StoreError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	id := uuid.New()
	mockRepo.On("Delete", mock.Anything, id).Return(false, errors.New("connection reset"))

	_, err := service.Delete(context.Background(), id)
	assert.Error(t, err)

	mockRepo.AssertExpectations(t)
}
