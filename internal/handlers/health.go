// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"time"
)

const serviceName = "netviz-api"

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Service   string            `json:"service"`
	Uptime    string            `json:"uptime,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

var startTime = time.Now()

// Health reports liveness. IndexPath, when set, is checked so the response
// shows whether the frontend has been built; a missing frontend is not unhealthy.
type Health struct {
	IndexPath string
}

func (h *Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	details := map[string]string{
		"go_version": runtime.Version(),
		"num_cpu":    strconv.Itoa(runtime.NumCPU()),
	}
	if h.IndexPath != "" {
		details["frontend"] = frontendStatus(h.IndexPath)
	}

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   serviceName,
		Uptime:    time.Since(startTime).String(),
		Details:   details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func frontendStatus(indexPath string) string {
	info, err := os.Stat(indexPath)
	if err != nil || info.IsDir() {
		return "missing"
	}
	return "built"
}
