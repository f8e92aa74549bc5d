// Package rest serves the JSON health endpoints used by orchestrators.
package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"
)

const checkTimeout = 3 * time.Second

// pinger is anything whose availability can be probed.
type pinger interface {
	Ping(ctx context.Context) error
}

// Component is a named dependency checked by /health. Critical components
// also gate /ready.
type Component struct {
	Name     string
	Check    pinger
	Critical bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	components []Component
	version    string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string, components ...Component) *HealthHandler {
	sorted := append([]Component(nil), components...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return &HealthHandler{components: sorted, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Register mounts /live, /ready and /health on mux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /live", h.Live)
	mux.HandleFunc("GET /ready", h.Ready)
	mux.HandleFunc("GET /health", h.Health)
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 if every critical component answers,
// 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	for _, c := range h.components {
		if !c.Critical {
			continue
		}
		if err := c.Check.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:    "down",
				Timestamp: time.Now(),
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health checks every component with latency and includes the version.
// Overall status is "down" if a critical component fails and "degraded" if
// only non-critical ones do.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	components := make(map[string]CompStatus, len(h.components))
	overallStatus := "ok"

	for _, c := range h.components {
		start := time.Now()
		err := c.Check.Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components[c.Name] = CompStatus{Status: "down"}
			switch {
			case c.Critical:
				overallStatus = "down"
			case overallStatus == "ok":
				overallStatus = "degraded"
			}
			continue
		}
		components[c.Name] = CompStatus{Status: "ok", Latency: latency.String()}
	}

	status := http.StatusOK
	if overallStatus == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
