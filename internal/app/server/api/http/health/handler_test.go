package health

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockStatusChecker struct {
	mock.Mock
}

func (m *MockStatusChecker) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHandler_healthCheck(t *testing.T) {
	store := new(MockStatusChecker)
	store.On("Ping", mock.Anything).Return(nil)

	handler := NewHandler(store, slog.Default(), huma.Middlewares{})

	output, err := handler.healthCheck(context.Background(), &Input{})

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, "OK", output.Body.Status)
	assert.Equal(t, "up", output.Body.Database)

	store.AssertExpectations(t)
}

func TestHandler_healthCheck_StoreDown(t *testing.T) {
	store := new(MockStatusChecker)
	store.On("Ping", mock.Anything).Return(errors.New("connection refused"))

	handler := NewHandler(store, slog.Default(), huma.Middlewares{})

	_, err := handler.healthCheck(context.Background(), &Input{})

	require.Error(t, err)
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusServiceUnavailable, se.GetStatus())

	store.AssertExpectations(t)
}
