package org

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"peopledir/internal/domain/org"
	"peopledir/pkg/contract"
)

// Handler binds the organization contract operations to the organization
// service.
type Handler struct {
	service    org.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service org.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	orgs, total, err := h.service.List(ctx, org.ListQuery{
		Limit:  input.Limit,
		Offset: input.Offset,
		Search: input.Search,
	})
	if err != nil {
		h.log.Error("list organizations failed", "error", err)
		return nil, huma.Error500InternalServerError("could not list organizations")
	}

	data := make([]contract.Organization, len(orgs))
	for i := range orgs {
		data[i] = toContract(&orgs[i])
	}

	return &listOutput{
		Body: contract.OrganizationList{
			Data:   data,
			Total:  total,
			Limit:  input.Limit,
			Offset: input.Offset,
		},
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*orgOutput, error) {
	o, err := h.service.Find(ctx, input.ID)
	if err != nil {
		if errors.Is(err, org.ErrNotFound) {
			return nil, huma.Error404NotFound(fmt.Sprintf("organization %s not found", input.ID))
		}
		h.log.Error("find organization failed", "org_id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("could not fetch organization")
	}

	return &orgOutput{Body: toContract(o)}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*orgOutput, error) {
	o, err := h.service.Create(ctx, toCreateInput(input.Body))
	if err != nil {
		switch {
		case errors.Is(err, org.ErrConflict), errors.Is(err, org.ErrInvalidArgument):
			return nil, huma.Error400BadRequest(err.Error())
		}
		h.log.Error("create organization failed", "error", err)
		return nil, huma.Error500InternalServerError("could not create organization")
	}

	return &orgOutput{Body: toContract(o)}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*orgOutput, error) {
	o, err := h.service.Update(ctx, input.ID, toUpdateInput(input.Body))
	if err != nil {
		switch {
		case errors.Is(err, org.ErrNotFound):
			return nil, huma.Error404NotFound(fmt.Sprintf("organization %s not found", input.ID))
		case errors.Is(err, org.ErrConflict), errors.Is(err, org.ErrInvalidArgument):
			return nil, huma.Error400BadRequest(err.Error())
		}
		h.log.Error("update organization failed", "org_id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("could not update organization")
	}

	return &orgOutput{Body: toContract(o)}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	deleted, err := h.service.Delete(ctx, input.ID)
	if err != nil {
		h.log.Error("delete organization failed", "org_id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("could not delete organization")
	}
	if !deleted {
		return nil, huma.Error404NotFound(fmt.Sprintf("organization %s not found", input.ID))
	}

	return &deleteOutput{}, nil
}
