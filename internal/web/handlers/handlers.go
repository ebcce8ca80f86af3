// Package handlers serves the booking pages and the admin console. Pages are
// rendered server-side; the only JSON surface is the availability lookup the
// booking page polls while a date is being picked.
package handlers

import (
	"github.com/barbershop-express/booking-web/internal/config"
	"github.com/barbershop-express/booking-web/internal/observability/metrics"
	"github.com/barbershop-express/booking-web/internal/schedulingapi"
	"github.com/barbershop-express/booking-web/internal/session"
	"github.com/barbershop-express/booking-web/internal/web/templates"
	"github.com/barbershop-express/booking-web/pkg/logging"
)

// Handler holds the dependencies shared by every page handler.
type Handler struct {
	cfg      *config.Config
	logger   *logging.Logger
	renderer *templates.Renderer
	api      *schedulingapi.Client
	sessions *session.Store
	metrics  *metrics.BookingMetrics
}

// New wires the page handlers.
func New(cfg *config.Config, logger *logging.Logger, renderer *templates.Renderer, api *schedulingapi.Client, sessions *session.Store, m *metrics.BookingMetrics) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		cfg:      cfg,
		logger:   logger,
		renderer: renderer,
		api:      api,
		sessions: sessions,
		metrics:  m,
	}
}
