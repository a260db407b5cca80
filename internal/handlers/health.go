package handlers

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler exposes liveness endpoints.
type HealthHandler struct {
	client   *mongo.Client
	database string
}

// NewHealthHandler creates a health handler over the Mongo client.
func NewHealthHandler(client *mongo.Client, database string) *HealthHandler {
	return &HealthHandler{client: client, database: database}
}

// Health handles GET /api/Health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Detailed handles GET /api/Health/detailed: pings the store and reports
// per-collection document counts.
func (h *HealthHandler) Detailed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.client.Ping(ctx, nil); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "degraded",
			"database": "unreachable",
		})
		return
	}

	counts := map[string]int64{}
	database := h.client.Database(h.database)
	for _, name := range []string{"users", "vehicles", "trips", "maintenance_records", "inspections", "issues", "parts"} {
		n, err := database.Collection(name).CountDocuments(ctx, bson.M{})
		if err != nil {
			continue
		}
		counts[name] = n
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"database": "reachable",
		"counts":   counts,
	})
}
