package handlers

import (
	"net/http"

	"github.com/barbershop-express/booking-web/internal/schedulingapi"
	"github.com/barbershop-express/booking-web/internal/session"
)

type homeView struct {
	Services []schedulingapi.Service
	Error    string
}

// Home renders the service catalog in the order the backend returns it.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	session.EnsureCookie(w, r)

	services, err := h.api.ListServices(r.Context())
	if err != nil {
		h.logger.Error("home: list services failed", "error", err)
		h.renderer.Render(w, http.StatusOK, "home.html", homeView{
			Error: "Não foi possível carregar os serviços. Tente novamente em instantes.",
		})
		return
	}
	h.renderer.Render(w, http.StatusOK, "home.html", homeView{Services: services})
}
