package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/baisyuvraj142-crypto/Ecomorphis--App/ledger"
	"github.com/baisyuvraj142-crypto/Ecomorphis--App/models"
)

func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, ledger.Products())
}

// RedeemReward spends points on a catalog item. An unaffordable item
// fails with a conflict and the balance is untouched.
func (h *Handler) RedeemReward(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}

	var req models.RedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		respondWithError(w, http.StatusBadRequest, "Product ID is required")
		return
	}

	product, balance, err := h.Ledger.RedeemReward(username, req.ProductID)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"product": product,
		"balance": balance,
		"message": "You have successfully redeemed the " + product.Name + "!",
	})
}
