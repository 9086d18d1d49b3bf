package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	apptakers "setpiece-service/internal/app/takers"
	"setpiece-service/internal/logging"
	"setpiece-service/internal/poller"
	"setpiece-service/internal/snapshots"
)

// Handler wires HTTP routes to the takers service.
type Handler struct {
	svc      *apptakers.Service
	snaps    snapshots.Store
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *apptakers.Service, snaps snapshots.Store, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		snaps:    snaps,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on the poller's recent health.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := "awaiting first successful extraction"
	if status.LastError != "" {
		msg = status.LastError
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Clubs returns the full extracted document in roster order.
func (h *Handler) Clubs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	doc := h.svc.Document()
	if doc.Len() == 0 && h.snaps != nil {
		// Cold cache: fall back to the latest on-disk snapshot.
		if snap, date, err := h.snaps.LoadLatest(); err == nil {
			doc = snap
			logging.Info(logger, "served snapshot takers", "date", date, logging.FieldCount, doc.Len())
		}
	}

	writeJSON(w, http.StatusOK, doc, h.logger)
}

// ClubByName returns a single club's record if present.
func (h *Handler) ClubByName(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	// Expect path: /clubs/{name}
	path := strings.TrimPrefix(r.URL.Path, "/clubs")
	if path == "" || path == "/" {
		writeError(w, r, http.StatusBadRequest, "missing club name", h.logger)
		return
	}

	nameRaw := strings.TrimPrefix(path, "/")
	name, err := url.PathUnescape(nameRaw)
	if err != nil || name == "" || strings.Contains(name, "/") {
		writeError(w, r, http.StatusBadRequest, "invalid club name", h.logger)
		return
	}

	rec, ok := h.svc.ClubByName(name)
	if !ok {
		writeError(w, r, http.StatusNotFound, "club not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, rec, h.logger)
}
