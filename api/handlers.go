/*
handlers.go - HTTP API handlers for the calendar engine

PURPOSE:
  Exposes calendar generation and saved-configuration management over REST.
  Handlers parse the request, delegate to the factory and the engine, and
  serialize the result; all domain validation lives in the schedule and
  calendar packages.

ENDPOINTS:
  Calendar:
    POST   /api/calendar                Generate a calendar from a config body
    POST   /api/calendar/summary        Generate and return aggregate stats

  Configurations:
    GET    /api/configs                 List saved configurations
    POST   /api/configs                 Save a configuration
    GET    /api/configs/{id}            Get a saved configuration
    PUT    /api/configs/{id}            Update a saved configuration
    DELETE /api/configs/{id}            Delete a saved configuration
    POST   /api/configs/{id}/calendar   Generate from a saved configuration

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input (messages are human-readable)
  - 404: Configuration not found
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jornada/calendar-engine/calendar"
	"github.com/jornada/calendar-engine/factory"
	"github.com/jornada/calendar-engine/schedule"
	"github.com/jornada/calendar-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store   *sqlite.Store
	Factory *factory.ConfigFactory
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store:   store,
		Factory: factory.NewConfigFactory(),
	}
}

// =============================================================================
// CALENDAR HANDLERS
// =============================================================================

// GenerateCalendar builds a full annual calendar from the configuration in
// the request body.
func (h *Handler) GenerateCalendar(w http.ResponseWriter, r *http.Request) {
	res, _, warnings, ok := h.generateFromBody(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, resultToDTO(res, warnings))
}

// GenerateSummary builds a calendar and returns only its aggregate
// statistics.
func (h *Handler) GenerateSummary(w http.ResponseWriter, r *http.Request) {
	res, cj, warnings, ok := h.generateFromBody(w, r)
	if !ok {
		return
	}

	contract, err := h.Factory.ContractHours(cj)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid annual contract hours", err)
		return
	}
	var target schedule.AnnualContractHours
	if contract != nil {
		target = *contract
	}

	summary := calendar.Summarize(res, target)
	writeJSON(w, http.StatusOK, summaryToDTO(res.Year, summary, warnings))
}

func (h *Handler) generateFromBody(w http.ResponseWriter, r *http.Request) (*calendar.Result, factory.ConfigJSON, []string, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return nil, factory.ConfigJSON{}, nil, false
	}
	return h.generate(w, string(body))
}

func (h *Handler) generate(w http.ResponseWriter, blob string) (*calendar.Result, factory.ConfigJSON, []string, bool) {
	var cj factory.ConfigJSON
	if err := json.Unmarshal([]byte(blob), &cj); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid configuration JSON", err)
		return nil, cj, nil, false
	}

	in, warnings, err := h.Factory.FromJSON(cj)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid configuration", err)
		return nil, cj, nil, false
	}

	res, err := calendar.Generate(*in)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Calendar generation failed", err)
		return nil, cj, nil, false
	}
	return res, cj, warnings, true
}

// =============================================================================
// CONFIGURATION HANDLERS
// =============================================================================

// ListConfigs returns all saved configurations.
func (h *Handler) ListConfigs(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ListConfigs(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list configurations", err)
		return
	}

	dtos := make([]ConfigDTO, len(records))
	for i, rec := range records {
		dtos[i] = configToDTO(rec)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateConfig saves a new configuration after validating it parses.
func (h *Handler) CreateConfig(w http.ResponseWriter, r *http.Request) {
	h.saveConfig(w, r, "")
}

// UpdateConfig overwrites an existing configuration.
func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := h.Store.GetConfig(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get configuration", err)
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Configuration not found", nil)
		return
	}
	h.saveConfig(w, r, id)
}

func (h *Handler) saveConfig(w http.ResponseWriter, r *http.Request, id string) {
	var req SaveConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Configuration name is required", nil)
		return
	}

	// Reject blobs that cannot produce an engine input. Per-entry warnings
	// are fine; they surface again at generation time.
	var cj factory.ConfigJSON
	if err := json.Unmarshal(req.Config, &cj); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid configuration JSON", err)
		return
	}
	if _, _, err := h.Factory.FromJSON(cj); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid configuration", err)
		return
	}

	rec, err := h.Store.SaveConfig(r.Context(), sqlite.ConfigRecord{
		ID:         id,
		Name:       req.Name,
		Year:       cj.Year,
		ConfigJSON: string(req.Config),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save configuration", err)
		return
	}

	status := http.StatusCreated
	if id != "" {
		status = http.StatusOK
	}
	writeJSON(w, status, configToDTO(rec))
}

// GetConfig returns a single saved configuration.
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := h.Store.GetConfig(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get configuration", err)
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "Configuration not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, configToDTO(*rec))
}

// DeleteConfig removes a saved configuration.
func (h *Handler) DeleteConfig(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteConfig(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete configuration", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GenerateFromConfig builds a calendar from a saved configuration.
func (h *Handler) GenerateFromConfig(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := h.Store.GetConfig(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get configuration", err)
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "Configuration not found", nil)
		return
	}

	res, _, warnings, ok := h.generate(w, rec.ConfigJSON)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, resultToDTO(res, warnings))
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := errorResponse{Error: message}
	if err != nil {
		resp.Detail = err.Error()
	}
	writeJSON(w, status, resp)
}
