package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/jmcastillo/zodiac-prophecy-backend/internal/models"
	"github.com/jmcastillo/zodiac-prophecy-backend/internal/store"
)

// ProphecyTexts is the nested prophecy object of the consultation response.
type ProphecyTexts struct {
	Main   string `json:"main"`
	Love   string `json:"love"`
	Career string `json:"career"`
	Health string `json:"health"`
	Money  string `json:"money"`
}

// ConsultationResponse mirrors the wire shape the frontend renders.
type ConsultationResponse struct {
	ZodiacSign string        `json:"zodiacSign"`
	Prophecy   ProphecyTexts `json:"prophecy"`
}

// GetConsultation handles GET /api/consultations?userId=...: look the user
// up and generate a fresh prophecy for today. Prophecies are never stored;
// two calls within the same 4-hour bucket return identical text.
func (h *Handler) GetConsultation(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "Missing userId parameter")
		return
	}

	user, err := h.store.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	prophecy := h.engine.Generate(user, time.Now())
	respondJSON(w, http.StatusOK, toConsultationResponse(prophecy))
}

func toConsultationResponse(p models.Prophecy) ConsultationResponse {
	return ConsultationResponse{
		ZodiacSign: p.ZodiacSign,
		Prophecy: ProphecyTexts{
			Main:   p.Main,
			Love:   p.Love,
			Career: p.Career,
			Health: p.Health,
			Money:  p.Money,
		},
	}
}
