package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// StatusChecker reports whether the backing store is reachable.
type StatusChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	store      StatusChecker
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(store StatusChecker, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		store:      store,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	if err := h.store.Ping(ctx); err != nil {
		h.log.Error("health check: database unreachable", "error", err)
		return nil, huma.Error503ServiceUnavailable("database unreachable")
	}

	return &Output{
		Body: Response{
			Status:   "OK",
			Database: "up",
		},
	}, nil
}
