package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/baisyuvraj142-crypto/Ecomorphis--App/events"
	"github.com/baisyuvraj142-crypto/Ecomorphis--App/ledger"
	"github.com/baisyuvraj142-crypto/Ecomorphis--App/middleware"
)

// Handler is the thin adapter between HTTP and the ledger: it decodes
// requests, passes the session username into every ledger call and
// maps ledger errors onto status codes.
type Handler struct {
	Ledger    *ledger.Ledger
	Auth      *middleware.Auth
	Hub       *events.Hub
	UploadDir string
}

func New(l *ledger.Ledger, auth *middleware.Auth, hub *events.Hub, uploadDir string) *Handler {
	return &Handler{Ledger: l, Auth: auth, Hub: hub, UploadDir: uploadDir}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// respondWithLedgerError translates the ledger's error kinds. The
// ledger guarantees no partial mutation on failure, so every one of
// these is safe to surface and retry.
func respondWithLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrUnknownUser),
		errors.Is(err, ledger.ErrUnknownComplaint),
		errors.Is(err, ledger.ErrUnknownBin),
		errors.Is(err, ledger.ErrUnknownProduct):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ledger.ErrRole):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ledger.ErrState), errors.Is(err, ledger.ErrDuplicateUser):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ledger.ErrValidation):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, err.Error())
	}
}

// broadcast is a nil-safe wrapper so handler tests can run without a
// hub.
func (h *Handler) broadcast(eventType string, data interface{}) {
	if h.Hub != nil {
		h.Hub.Broadcast(eventType, data)
	}
}

func currentUsername(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return username, true
}
