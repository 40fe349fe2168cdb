// Package sdk is the typed Go client for the peopledir API. Its
// request and response types come from pkg/contract — the same
// declarations the server validates against and publishes as OpenAPI —
// so a record field the contract does not expose can never leak into a
// consumer of this package.
package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"peopledir/pkg/contract"
)

// Client implements Directory over HTTP.
type Client struct {
	hc        *http.Client
	baseURL   string
	userAgent string
}

var _ Directory = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient replaces the default transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithTimeout sets the per-request timeout of the default transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.hc.Timeout = d }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		hc: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "peopledir-sdk/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is the client-side view of the server's shared error body.
type APIError struct {
	StatusCode int
	Response   contract.ErrorResponse
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Response.Label, e.StatusCode, e.Response.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsBadRequest reports whether err is an APIError with status 400; the
// server uses 400 for both invalid input and uniqueness conflicts.
func IsBadRequest(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest
}

func (c *Client) Health(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	return c.do(ctx, http.MethodGet, "/api/v1/health", nil, nil, &out)
}

// OpenAPI downloads the YAML interface document the server generates
// from its contract schemas.
func (c *Client) OpenAPI(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/openapi.yaml", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch openapi: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) ListPersons(ctx context.Context, q contract.ListQuery) (*contract.PersonList, error) {
	var out contract.PersonList
	if err := c.do(ctx, http.MethodGet, "/api/v1/persons", listValues(q), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPerson(ctx context.Context, id uuid.UUID) (*contract.Person, error) {
	var out contract.Person
	if err := c.do(ctx, http.MethodGet, "/api/v1/persons/"+id.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePerson(ctx context.Context, in contract.PersonCreate) (*contract.Person, error) {
	var out contract.Person
	if err := c.do(ctx, http.MethodPost, "/api/v1/persons", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePerson(ctx context.Context, id uuid.UUID, in contract.PersonUpdate) (*contract.Person, error) {
	var out contract.Person
	if err := c.do(ctx, http.MethodPut, "/api/v1/persons/"+id.String(), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePerson(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/persons/"+id.String(), nil, nil, nil)
}

func (c *Client) ListOrganizations(ctx context.Context, q contract.ListQuery) (*contract.OrganizationList, error) {
	var out contract.OrganizationList
	if err := c.do(ctx, http.MethodGet, "/api/v1/organizations", listValues(q), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetOrganization(ctx context.Context, id uuid.UUID) (*contract.Organization, error) {
	var out contract.Organization
	if err := c.do(ctx, http.MethodGet, "/api/v1/organizations/"+id.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrganization(ctx context.Context, in contract.OrganizationCreate) (*contract.Organization, error) {
	var out contract.Organization
	if err := c.do(ctx, http.MethodPost, "/api/v1/organizations", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrganization(ctx context.Context, id uuid.UUID, in contract.OrganizationUpdate) (*contract.Organization, error) {
	var out contract.Organization
	if err := c.do(ctx, http.MethodPut, "/api/v1/organizations/"+id.String(), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteOrganization(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/organizations/"+id.String(), nil, nil, nil)
}

func listValues(q contract.ListQuery) url.Values {
	values := url.Values{}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	return values
}

// do performs one request. body (if non-nil) is JSON-encoded; out (if
// non-nil) is JSON-decoded from a 2xx response. Non-2xx responses become
// an *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&apiErr.Response); err != nil {
		apiErr.Response = contract.ErrorResponse{Label: http.StatusText(resp.StatusCode)}
	}
	apiErr.Response.Status = resp.StatusCode
	return apiErr
}
