package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jmcastillo/zodiac-prophecy-backend/internal/models"
	"github.com/jmcastillo/zodiac-prophecy-backend/internal/services"
)

// RegisterUserRequest is the registration payload from the frontend form.
type RegisterUserRequest struct {
	Surname       string `json:"surname"`
	FirstName     string `json:"firstName"`
	MiddleInitial string `json:"middleInitial"`
	Suffix        string `json:"suffix"`
	Gender        string `json:"gender"`
	Month         int    `json:"month"`
	Day           int    `json:"day"`
	Year          int    `json:"year"`
}

// RegisterUserResponse is returned when registration commits.
type RegisterUserResponse struct {
	Success    bool   `json:"success"`
	UserID     string `json:"userId"`
	ZodiacSign string `json:"zodiacSign"`
}

// RegisterUser handles POST /api/users: validate, commit the registration
// transaction, announce the consultation on the admin feed. Validation
// failures list every violated rule; a failed transaction surfaces only a
// generic failure because rollback details stay behind the boundary.
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := models.NewUser(req.Surname, req.FirstName, req.MiddleInitial, req.Suffix,
		req.Gender, req.Month, req.Day, req.Year)

	if !h.validator.Validate(user) {
		errs := h.validator.Errors(user)
		respondError(w, http.StatusBadRequest, strings.Join(errs, ", "))
		return
	}

	tx := services.NewRegistrationTransaction(h.store, h.engine.Sign, h.log, user)
	if !tx.Commit() {
		respondError(w, http.StatusInternalServerError, "Transaction failed")
		return
	}

	h.feed.Broadcast(tx.Record())

	respondJSON(w, http.StatusOK, RegisterUserResponse{
		Success:    true,
		UserID:     tx.User().ID,
		ZodiacSign: tx.Record().ZodiacSign,
	})
}
