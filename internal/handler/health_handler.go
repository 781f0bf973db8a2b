package handler

import (
	"net/http"
	"time"

	"chaibisket/pkg/logger"
)

// HealthHandler answers liveness probes, including the Consul HTTP check.
type HealthHandler struct {
	started time.Time
	logger  *logger.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		started: time.Now(),
		logger:  log.WithComponent("health_handler"),
	}
}

// Health handles GET /api/v1/health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, h.logger, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "chaibisket",
		"uptime":  time.Since(h.started).Round(time.Second).String(),
	})
}
