// Package router assembles the HTTP surface: public booking pages, the admin
// console behind the session guard, and the health/metrics endpoints.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/barbershop-express/booking-web/internal/config"
	"github.com/barbershop-express/booking-web/internal/web/handlers"
	"github.com/barbershop-express/booking-web/internal/web/middleware"
	"github.com/barbershop-express/booking-web/pkg/logging"
)

// New builds the chi router with all routes and middleware attached.
func New(cfg *config.Config, logger *logging.Logger, h *handlers.Handler, sessions middleware.SessionReader) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.RequestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Client-facing pages.
	r.Get("/", h.EstablishmentPage)
	r.Post("/establishment", h.SetEstablishment)
	r.Get("/home", h.Home)
	r.Get("/booking/slots", h.SlotsJSON)
	r.Get("/booking/{serviceID}", h.BookingPage)
	r.Post("/booking/{serviceID}/continue", h.ContinueBooking)
	r.Post("/booking/{serviceID}", h.SubmitBooking)

	// Admin gate.
	r.Get("/admin", h.LoginPage)
	r.Post("/admin/login", h.Login)
	r.Post("/admin/logout", h.Logout)

	// Console. Every route here requires an authenticated session.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(sessions, logger))
		r.Get("/admin/dashboard", h.Dashboard)
		r.Post("/admin/appointments/{appointmentID}/status", h.UpdateAppointmentStatus)
		r.Post("/admin/services", h.CreateService)
		r.Post("/admin/services/{serviceID}/delete", h.DeleteService)
	})

	return r
}
