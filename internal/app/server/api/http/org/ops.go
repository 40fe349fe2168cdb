package org

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "organizations-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/organizations",
		Summary:     "List organizations",
		Description: "Returns one page of organizations plus the total matching the filter. Pagination is offset-based; a record may be skipped or repeated across pages under concurrent writes.",
		Tags:        []string{"organizations"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "organizations-find",
		Method:      http.MethodGet,
		Path:        "/api/v1/organizations/{id}",
		Summary:     "Get an organization",
		Tags:        []string{"organizations"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "organizations-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/organizations",
		Summary:       "Create an organization",
		Tags:          []string{"organizations"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "organizations-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/organizations/{id}",
		Summary:     "Update an organization",
		Description: "Applies only the fields present in the body.",
		Tags:        []string{"organizations"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "organizations-delete",
		Method:        http.MethodDelete,
		Path:          "/api/v1/organizations/{id}",
		Summary:       "Delete an organization",
		Tags:          []string{"organizations"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
