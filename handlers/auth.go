package handlers

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/baisyuvraj142-crypto/Ecomorphis--App/models"
)

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var signup models.UserSignup
	if err := json.NewDecoder(r.Body).Decode(&signup); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if signup.Username == "" || signup.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	role, err := models.ParseRole(signup.Role)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(signup.Password), bcrypt.DefaultCost)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error processing password")
		return
	}

	user, err := h.Ledger.CreateUser(signup.Username, string(hashedPassword), role)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}

	token, err := h.Auth.GenerateToken(user.Username, string(user.Role))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	respondWithJSON(w, http.StatusCreated, AuthResponse{Token: token, User: &user})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var login models.UserLogin
	if err := json.NewDecoder(r.Body).Decode(&login); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if login.Username == "" || login.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.Ledger.GetUser(login.Username)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(login.Password)); err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := h.Auth.GenerateToken(user.Username, string(user.Role))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	respondWithJSON(w, http.StatusOK, AuthResponse{Token: token, User: &user})
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}

	user, err := h.Ledger.GetUser(username)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}
