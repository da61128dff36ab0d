package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmcastillo/zodiac-prophecy-backend/internal/config"
	"github.com/jmcastillo/zodiac-prophecy-backend/internal/handlers"
	"github.com/jmcastillo/zodiac-prophecy-backend/internal/middleware"
)

func SetupRoutes(r *chi.Mux, h *handlers.Handler, cfg *config.Config) {
	// Registration and consultation API
	r.Post("/api/users", h.RegisterUser)
	r.Get("/api/consultations", h.GetConsultation)

	// Daily guidance banner
	r.Post("/api/prophecy", h.DailyProphecy)

	// Admin panel API (key-protected when ADMIN_KEY_HASH is set)
	r.Route("/api/admin", func(admin chi.Router) {
		admin.Use(middleware.AdminAuth(cfg.AdminKeyHash))
		admin.Get("/stats", h.GetStats)
		admin.Get("/users", h.ListConsultations)
		admin.Get("/export", h.ExportData)
		admin.Delete("/clear", h.ClearData)
	})

	// Live consultation feed for the admin panel
	r.Get("/ws/consultations", h.ConsultationsWebSocket)

	// Frontend (index.html, admin.html, assets)
	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
}
