package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/baisyuvraj142-crypto/Ecomorphis--App/ledger"
	"github.com/baisyuvraj142-crypto/Ecomorphis--App/models"
)

func trackFromRequest(w http.ResponseWriter, r *http.Request) (models.Track, bool) {
	track, err := models.ParseTrack(mux.Vars(r)["track"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return track, true
}

// GetTrackProgress reports the user's module flags and quiz state for
// one track.
func (h *Handler) GetTrackProgress(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}
	track, ok := trackFromRequest(w, r)
	if !ok {
		return
	}

	progress, err := h.Ledger.Progress(username, track)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"track":    track,
		"progress": progress,
	})
}

// CompleteModule marks a training module done. Completing it a second
// time reports already_completed instead of awarding again.
func (h *Handler) CompleteModule(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}
	track, ok := trackFromRequest(w, r)
	if !ok {
		return
	}

	awarded, points, err := h.Ledger.CompleteModule(username, track, mux.Vars(r)["key"])
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}

	if !awarded {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"already_completed": true,
			"points_earned":     0,
		})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"already_completed": false,
		"points_earned":     points,
	})
}

// GetQuiz returns the track's questions; answers stay server-side.
func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	track, ok := trackFromRequest(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, ledger.Questions(track))
}

func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}
	track, ok := trackFromRequest(w, r)
	if !ok {
		return
	}

	var submission models.QuizSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := h.Ledger.SubmitQuiz(username, track, submission.Answers)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
