package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/baisyuvraj142-crypto/Ecomorphis--App/models"
)

const maxPhotoSize = 10 << 20 // 10 MB

// CreateComplaint accepts a multipart report: location and waste_type
// fields plus a photo file. The photo is stored under the upload dir
// and only its handle enters the ledger.
func (h *Handler) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid multipart payload")
		return
	}

	location := r.FormValue("location")
	wasteType, err := models.ParseWasteType(r.FormValue("waste_type"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
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

	complaint, err := h.Ledger.SubmitComplaint(username, location, wasteType, photoRef)
	if err != nil {
		os.Remove(filepath.Join(h.UploadDir, filepath.Base(photoRef)))
		respondWithLedgerError(w, err)
		return
	}

	h.broadcast("complaint_submitted", complaint)
	respondWithJSON(w, http.StatusCreated, complaint)
}

func (h *Handler) savePhoto(file io.Reader, originalName string) (string, error) {
	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return "", err
	}

	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".jpg"
	}
	name := uuid.New().String() + ext

	dst, err := os.Create(filepath.Join(h.UploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return "uploads/" + name, nil
}

// GetMyComplaints lists the current citizen's report history.
func (h *Handler) GetMyComplaints(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, h.Ledger.ComplaintsBy(username))
}

// GetComplaints lists all reports, optionally filtered by ?status=.
func (h *Handler) GetComplaints(w http.ResponseWriter, r *http.Request) {
	status := models.ComplaintStatus(r.URL.Query().Get("status"))
	respondWithJSON(w, http.StatusOK, h.Ledger.ListComplaints(status))
}

func (h *Handler) VerifyComplaint(w http.ResponseWriter, r *http.Request) {
	h.complaintTransition(w, r, h.Ledger.VerifyComplaint, "complaint_verified")
}

func (h *Handler) InvalidateComplaint(w http.ResponseWriter, r *http.Request) {
	h.complaintTransition(w, r, h.Ledger.InvalidateComplaint, "complaint_invalidated")
}

func (h *Handler) ResolveComplaint(w http.ResponseWriter, r *http.Request) {
	h.complaintTransition(w, r, h.Ledger.ResolveComplaint, "complaint_resolved")
}

func (h *Handler) complaintTransition(w http.ResponseWriter, r *http.Request,
	op func(int, string) (models.Complaint, error), eventType string) {

	username, ok := currentUsername(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid complaint ID")
		return
	}

	complaint, err := op(id, username)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}

	h.broadcast(eventType, complaint)
	respondWithJSON(w, http.StatusOK, complaint)
}
