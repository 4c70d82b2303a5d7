package handler

import (
	"log/slog"
	"net/http"

	"datavisor/internal/httputil"
	"datavisor/internal/views"
)

// ViewsHandler serves the view catalogue
type ViewsHandler struct {
	registry *views.Registry
	logger   *slog.Logger
}

// NewViewsHandler creates a new views handler
func NewViewsHandler(registry *views.Registry, logger *slog.Logger) *ViewsHandler {
	return &ViewsHandler{
		registry: registry,
		logger:   logger,
	}
}

// ViewsResponse lists the display tabs in order.
type ViewsResponse struct {
	Views []views.Descriptor `json:"views"`
}

// ListViews returns the display tabs.
// GET /api/views
func (h *ViewsHandler) ListViews(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, ViewsResponse{Views: h.registry.List()})
}

// HealthCheck reports liveness.
// GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
