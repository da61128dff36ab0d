// Package handlers exposes the HTTP surface: registration, consultations,
// the admin panel API, the daily-guidance stub and the live consultation
// feed. Handlers translate between JSON envelopes and the typed core; all
// logic with any depth lives in zodiac, validation, store and services.
package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jmcastillo/zodiac-prophecy-backend/internal/models"
	"github.com/jmcastillo/zodiac-prophecy-backend/internal/services"
	"github.com/jmcastillo/zodiac-prophecy-backend/internal/validation"
	"github.com/jmcastillo/zodiac-prophecy-backend/internal/zodiac"
)

// Store is everything the HTTP layer needs from persistence.
type Store interface {
	services.RegistrationStore
	GetUserByID(id string) (models.User, error)
	GetAllUsers() []models.User
	GetAllConsultations() []models.ConsultationRecord
	ClearAllData()
}

// Handler carries the injected collaborators for every endpoint. There is no
// package-level state; tests build a Handler around whatever store and
// engine they need.
type Handler struct {
	store     Store
	engine    zodiac.Generator
	validator *validation.UserValidator
	feed      *services.ConsultationFeed
	log       *zap.Logger
}

func New(st Store, engine zodiac.Generator, v *validation.UserValidator, feed *services.ConsultationFeed, logger *zap.Logger) *Handler {
	return &Handler{
		store:     st,
		engine:    engine,
		validator: v,
		feed:      feed,
		log:       logger,
	}
}

// errorResponse is the generic failure envelope.
type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}
