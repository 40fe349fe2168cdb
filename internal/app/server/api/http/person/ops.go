package person

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "persons-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/persons",
		Summary:     "List persons",
		Description: "Returns one page of persons plus the total matching the filter. Pagination is offset-based; a record may be skipped or repeated across pages under concurrent writes.",
		Tags:        []string{"persons"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "persons-find",
		Method:      http.MethodGet,
		Path:        "/api/v1/persons/{id}",
		Summary:     "Get a person",
		Tags:        []string{"persons"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "persons-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/persons",
		Summary:       "Create a person",
		Description:   "Creates a person. The identifier and both timestamps are generated by the store.",
		Tags:          []string{"persons"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "persons-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/persons/{id}",
		Summary:     "Update a person",
		Description: "Applies only the fields present in the body. An empty body is legal and only advances updatedAt.",
		Tags:        []string{"persons"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "persons-delete",
		Method:        http.MethodDelete,
		Path:          "/api/v1/persons/{id}",
		Summary:       "Delete a person",
		Tags:          []string{"persons"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
