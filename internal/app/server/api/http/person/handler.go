package person

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"peopledir/internal/domain/person"
	"peopledir/pkg/contract"
)

// Handler binds the person contract operations to the person service.
// It holds no per-request state; every invocation carries its own
// validated input.
type Handler struct {
	service    person.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service person.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
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
	persons, total, err := h.service.List(ctx, person.ListQuery{
		Limit:  input.Limit,
		Offset: input.Offset,
		Search: input.Search,
	})
	if err != nil {
		h.log.Error("list persons failed", "error", err)
		return nil, huma.Error500InternalServerError("could not list persons")
	}

	data := make([]contract.Person, len(persons))
	for i := range persons {
		data[i] = toContract(&persons[i])
	}

	return &listOutput{
		Body: contract.PersonList{
			Data:   data,
			Total:  total,
			Limit:  input.Limit,
			Offset: input.Offset,
		},
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*personOutput, error) {
	p, err := h.service.Find(ctx, input.ID)
	if err != nil {
		if errors.Is(err, person.ErrNotFound) {
			return nil, huma.Error404NotFound(fmt.Sprintf("person %s not found", input.ID))
		}
		h.log.Error("find person failed", "person_id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("could not fetch person")
	}

	return &personOutput{Body: toContract(p)}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*personOutput, error) {
	p, err := h.service.Create(ctx, toCreateInput(input.Body))
	if err != nil {
		switch {
		case errors.Is(err, person.ErrConflict), errors.Is(err, person.ErrInvalidArgument):
			return nil, huma.Error400BadRequest(err.Error())
		}
		h.log.Error("create person failed", "error", err)
		return nil, huma.Error500InternalServerError("could not create person")
	}

	return &personOutput{Body: toContract(p)}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*personOutput, error) {
	p, err := h.service.Update(ctx, input.ID, toUpdateInput(input.Body))
	if err != nil {
		switch {
		case errors.Is(err, person.ErrNotFound):
			return nil, huma.Error404NotFound(fmt.Sprintf("person %s not found", input.ID))
		case errors.Is(err, person.ErrConflict), errors.Is(err, person.ErrInvalidArgument):
			return nil, huma.Error400BadRequest(err.Error())
		}
		h.log.Error("update person failed", "person_id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("could not update person")
	}

	return &personOutput{Body: toContract(p)}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	deleted, err := h.service.Delete(ctx, input.ID)
	if err != nil {
		h.log.Error("delete person failed", "person_id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("could not delete person")
	}
	if !deleted {
		return nil, huma.Error404NotFound(fmt.Sprintf("person %s not found", input.ID))
	}

	return &deleteOutput{}, nil
}
