package handlers

import (
	"net/http"
	"runtime"
	"time"

	"decision-critic/internal/api/response"
)

// HealthHandler provides health check functionality.
type HealthHandler struct {
	version   string
	startTime time.Time
}

// HealthStatus represents the health check response structure.
type HealthStatus struct {
	Status    string     `json:"status"`
	Server    string     `json:"server"`
	Version   string     `json:"version"`
	Uptime    string     `json:"uptime"`
	Timestamp string     `json:"timestamp"`
	System    SystemInfo `json:"system"`
}

// SystemInfo represents runtime information.
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		version:   version,
		startTime: time.Now(),
	}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, HealthStatus{
		Status:    "healthy",
		Server:    "decision-critic",
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		System: SystemInfo{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
		},
	})
}
