package person

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// errorBody is the shared error shape every endpoint renders.
type errorBody struct {
	Label   string `json:"error"`
	Message string `json:"message"`
}

func decodeErrorBody(t *testing.T, raw []byte) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestRoutes_ValidationRejectedBeforeService(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	_, api := humatest.New(t)
	h.SetupRoutes(api)

	tests := []struct {
		name string
		path string
	}{
		{"malformed id", "/api/v1/persons/not-a-uuid"},
		{"limit below minimum", "/api/v1/persons?limit=0"},
		{"limit above maximum", "/api/v1/persons?limit=101"},
		{"negative offset", "/api/v1/persons?offset=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := api.Get(tt.path)
			assert.Equal(t, http.StatusBadRequest, resp.Code)

			body := decodeErrorBody(t, resp.Body.Bytes())
			assert.Equal(t, "Bad Request", body.Label)
			assert.NotEmpty(t, body.Message)
		})
	}

	svc.AssertNotCalled(t, "List")
	svc.AssertNotCalled(t, "Find")
}

func TestRoutes_CreateBodyValidation(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	_, api := humatest.New(t)
	h.SetupRoutes(api)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing email", map[string]any{"firstName": "Ann", "lastName": "Lee"}},
		{"malformed email", map[string]any{"firstName": "Ann", "lastName": "Lee", "email": "not-an-email"}},
		{"empty first name", map[string]any{"firstName": "", "lastName": "Lee", "email": "ann@example.com"}},
		{"age out of range", map[string]any{"firstName": "Ann", "lastName": "Lee", "email": "ann@example.com", "age": 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := api.Post("/api/v1/persons", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.Code)

			body := decodeErrorBody(t, resp.Body.Bytes())
			assert.Equal(t, "Bad Request", body.Label)
			assert.NotEmpty(t, body.Message)
		})
	}

	svc.AssertNotCalled(t, "Create")
}
