package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"
)

func (h *Handler) GetBins(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.Ledger.ListBins())
}

func (h *Handler) GetBin(w http.ResponseWriter, r *http.Request) {
	bin, err := h.Ledger.GetBin(mux.Vars(r)["id"])
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, bin)
}

// GetBinQR renders the bin's id as a PNG QR code for field printing.
func (h *Handler) GetBinQR(w http.ResponseWriter, r *http.Request) {
	bin, err := h.Ledger.GetBin(mux.Vars(r)["id"])
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}

	png, err := qrcode.Encode(bin.ID, qrcode.Medium, 256)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error generating QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// ScanBin resolves a QR payload decoded on the client to a registered
// bin. The server never sees image bytes.
func (h *Handler) ScanBin(w http.ResponseWriter, r *http.Request) {
	var scan struct {
		Payload string `json:"payload"`
	}
	if err := json.NewDecoder(r.Body).Decode(&scan); err != nil || scan.Payload == "" {
		respondWithError(w, http.StatusBadRequest, "QR payload is required")
		return
	}

	bin, err := h.Ledger.ResolveScan(scan.Payload)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, bin)
}

func (h *Handler) ReportBinOverflow(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}

	bin, err := h.Ledger.ReportBinOverflow(mux.Vars(r)["id"], username)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}

	h.broadcast("bin_reported", bin)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"bin":     bin,
		"message": "Bin reported as overflowing. Our team has been notified.",
	})
}

func (h *Handler) MarkBinClean(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}

	bin, err := h.Ledger.MarkBinClean(mux.Vars(r)["id"], username)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}

	h.broadcast("bin_cleaned", bin)
	respondWithJSON(w, http.StatusOK, bin)
}
