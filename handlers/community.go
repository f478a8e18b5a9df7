package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/baisyuvraj142-crypto/Ecomorphis--App/ledger"
	"github.com/baisyuvraj142-crypto/Ecomorphis--App/models"
)

// GetLeaderboard ranks citizens and champions separately by points.
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"citizens":  h.Ledger.Leaderboard(models.RoleCitizen),
		"champions": h.Ledger.Leaderboard(models.RoleGreenChampion),
	})
}

// GetFacilities lists ULB waste facilities, filterable by ?type= and
// ?waste_type=.
func (h *Handler) GetFacilities(w http.ResponseWriter, r *http.Request) {
	facilityType := r.URL.Query().Get("type")
	wasteType := r.URL.Query().Get("waste_type")
	respondWithJSON(w, http.StatusOK, ledger.Facilities(facilityType, wasteType))
}

// ImposeFine lets a Green Champion penalize a citizen for littering.
func (h *Handler) ImposeFine(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}

	var req struct {
		Citizen string `json:"citizen"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Citizen == "" {
		respondWithError(w, http.StatusBadRequest, "Citizen username is required")
		return
	}

	balance, err := h.Ledger.ImposeFine(req.Citizen, username)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"citizen": req.Citizen,
		"balance": balance,
		"message": "Fine imposed on " + req.Citizen + ".",
	})
}

// GetDashboardStats backs the operations overview: complaint pipeline
// counts, the verified queue and the overflowing-bin list.
func (h *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"stats":              h.Ledger.Stats(),
		"pending_resolution": h.Ledger.ListComplaints(models.ComplaintVerified),
		"overflowing_bins":   h.Ledger.OverflowingBins(),
	})
}
