package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"ticketsheet/backend/internal/config"
	"ticketsheet/backend/internal/csvimport"
	"ticketsheet/backend/internal/rate"
	"ticketsheet/backend/internal/store"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	store         *store.Store
	parser        *csvimport.Parser
	cfg           *config.Config
	logger        *slog.Logger
	validator     *validator.Validate
	uploadLimiter *rate.WindowLimiter
}

func New(st *store.Store, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	limit := 20
	if cfg != nil && cfg.UploadLimit > 0 {
		limit = cfg.UploadLimit
	}
	return &Handler{
		store:         st,
		parser:        csvimport.New(),
		cfg:           cfg,
		logger:        logger,
		validator:     validator.New(),
		uploadLimiter: rate.NewWindowLimiter(limit, time.Minute),
	}
}

func (h *Handler) loggerForRequest(r *http.Request) *slog.Logger {
	logger := h.logger
	if logger == nil {
		return slog.Default()
	}
	if reqID := chimw.GetReqID(r.Context()); reqID != "" {
		logger = logger.With("request_id", reqID)
	}
	return logger
}
