// internal/api/handler/health.go
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"usuarios-api/internal/api/types"
)

// readinessTimeout bounds the database check of the readiness probe.
const readinessTimeout = 3 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Health reports that the process is serving requests.
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(h.logger, w, http.StatusOK, types.HealthResponse{Status: "ok"})
}

// Ready reports whether the database is reachable.
// GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.WarnContext(r.Context(), "Readiness check failed", "error", err)
		respondWithMessage(h.logger, w, http.StatusServiceUnavailable, MsgNoConnection)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, types.HealthResponse{Status: "ok"})
}
