package handler

import (
	"context"
	"net/http"

	"github.com/go-inbox-api/internal/config"
)

// Diagnostic strings rendered by GET /test. Frontends match on these
// verbatim, including the double space after the warning sign.
const (
	diagRunning       = "✅ Running"
	diagDBWorking     = "✅ Connected & Working"
	diagDBErrorPrefix = "⚠️  Connected but Error: "
	diagDBNotInit     = "⚠️  Available but not initialized"
	diagEnvSet        = "✅ Set"
	diagEnvNotSet     = "❌ Not Set"
	diagConnected     = "Connected"
	diagNotConnected  = "Not Connected"
)

const (
	maxDiagErrLen      = 50 // error detail cap, in runes
	maxDiagCollections = 10
)

// DatabaseProbe is the view of the document store the diagnostics endpoint
// needs.
type DatabaseProbe interface {
	Available() bool
	CollectionNames(ctx context.Context, limit int) ([]string, error)
}

// DiagnosticsReport is the fixed shape returned by GET /test.
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// HealthHandler serves the greeting and diagnostics endpoints.
type HealthHandler struct {
	probe DatabaseProbe
	cfg   *config.Config
}

func NewHealthHandler(probe DatabaseProbe, cfg *config.Config) *HealthHandler {
	return &HealthHandler{probe: probe, cfg: cfg}
}

func (h *HealthHandler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Hello from the backend!"})
}

func (h *HealthHandler) Hello(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Hello from the backend API!"})
}

// Test reports backend, database and configuration state. It always answers
// 200: a broken database shows up in the payload, never as a failed request.
func (h *HealthHandler) Test(w http.ResponseWriter, r *http.Request) {
	report := DiagnosticsReport{
		Backend:          diagRunning,
		Database:         diagDBNotInit,
		DatabaseURL:      diagEnvNotSet,
		DatabaseName:     diagEnvNotSet,
		ConnectionStatus: diagNotConnected,
		Collections:      []string{},
	}
	if h.cfg.DatabaseURL != "" {
		report.DatabaseURL = diagEnvSet
	}
	if h.cfg.DatabaseName != "" {
		report.DatabaseName = diagEnvSet
	}

	if h.probe.Available() {
		report.ConnectionStatus = diagConnected
		names, err := h.probe.CollectionNames(r.Context(), maxDiagCollections)
		if err != nil {
			report.Database = diagDBErrorPrefix + truncate(err.Error(), maxDiagErrLen)
		} else {
			report.Database = diagDBWorking
			report.Collections = append(report.Collections, names...)
		}
	}

	writeJSON(w, http.StatusOK, report)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
