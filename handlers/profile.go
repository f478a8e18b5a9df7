package handlers

import (
	"net/http"
	"time"

	"github.com/baisyuvraj142-crypto/Ecomorphis--App/ledger"
)

// GetProfile combines the user record with its derived rank and report
// count, the way the profile page presents it.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}

	user, err := h.Ledger.GetUser(username)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user":                 user,
		"rank":                 ledger.DeriveRank(user.Points),
		"complaints_submitted": len(h.Ledger.ComplaintsBy(username)),
	})
}

// GetGarden reports the user's digital forest: mature trees and the
// growth stage of the current plant.
func (h *Handler) GetGarden(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}

	user, err := h.Ledger.GetUser(username)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}

	today := time.Now().Format("2006-01-02")
	claimedToday := user.LastGreenSnap != nil && *user.LastGreenSnap == today

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"points":        user.Points,
		"garden":        ledger.DeriveGardenStage(user.Points),
		"claimed_today": claimedToday,
	})
}

// GreenSnap credits the daily eco-action point. The photo is required
// but only its presence matters; a second snap on the same date reports
// already-claimed without a second award.
func (h *Handler) GreenSnap(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid multipart payload")
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Photo is required")
		return
	}
	defer file.Close()

	photoRef, err := h.savePhoto(file, header.Filename)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error storing photo")
		return
	}

	today := time.Now().Format("2006-01-02")
	awarded, points, err := h.Ledger.DailyGreenSnap(username, today)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}

	message := "Great job! You've earned 1 Eco-Point. Your garden is growing!"
	if !awarded {
		message = "You've already earned your point for today! Come back tomorrow."
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"awarded":   awarded,
		"points":    points,
		"photo_ref": photoRef,
		"message":   message,
		"garden":    ledger.DeriveGardenStage(points),
	})
}
