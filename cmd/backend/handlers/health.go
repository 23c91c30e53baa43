package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/hairizuan-noorazman/jobly/logger"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler handles health check requests.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

// ReadyHandler reports whether the database answers within two seconds.
func ReadyHandler(db Pinger, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			log.Warn(r.Context(), "readiness check failed", map[string]interface{}{
				"error": err.Error(),
			})
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ready"})
	}
}
