// Package api provides HTTP API handlers for the Mudra viewer.
package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ayusman/mudra/internal/store"
)

// SnapshotsHandler handles HTTP requests for the snapshot catalog.
type SnapshotsHandler struct {
	store *store.Store
}

// NewSnapshotsHandler creates a new SnapshotsHandler with the given store.
func NewSnapshotsHandler(s *store.Store) *SnapshotsHandler {
	return &SnapshotsHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to
// appropriate methods. Expected paths: /api/snapshots or /api/snapshots/{id}.
func (h *SnapshotsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/snapshots")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/snapshots
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// Item endpoint: /api/snapshots/{id}
	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *SnapshotsHandler) list(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.store.Snapshots().List()
	if err != nil {
		http.Error(w, "Failed to list snapshots", http.StatusInternalServerError)
		return
	}

	if snapshots == nil {
		snapshots = []store.Snapshot{}
	}

	writeJSON(w, http.StatusOK, snapshots)
}

func (h *SnapshotsHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	snap, err := h.store.Snapshots().Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "Snapshot not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to get snapshot", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

func (h *SnapshotsHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.Snapshots().Delete(id); err != nil {
		http.Error(w, "Failed to delete snapshot", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
