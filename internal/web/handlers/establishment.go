package handlers

import (
	"net/http"

	"github.com/barbershop-express/booking-web/internal/session"
)

type establishmentView struct {
	Phone string
	Error string
}

// EstablishmentPage renders the entry screen asking for the barber's phone.
func (h *Handler) EstablishmentPage(w http.ResponseWriter, r *http.Request) {
	sessionID := session.EnsureCookie(w, r)
	data, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("establishment page: session lookup failed", "error", err)
	}
	h.renderer.Render(w, http.StatusOK, "establishment.html", establishmentView{Phone: data.BarberPhone})
}

// SetEstablishment stores the barber phone for this browser session. Only the
// digits are kept, so formatted input still matches the backend's records.
func (h *Handler) SetEstablishment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.Render(w, http.StatusBadRequest, "establishment.html", establishmentView{Error: "Não foi possível ler o formulário."})
		return
	}
	raw := r.PostFormValue("phone")
	digits := sanitizeDigits(raw)
	if digits == "" {
		h.renderer.Render(w, http.StatusOK, "establishment.html", establishmentView{
			Phone: raw,
			Error: "Informe o número do barbeiro para continuar.",
		})
		return
	}

	sessionID := session.EnsureCookie(w, r)
	if err := h.sessions.SetBarberPhone(r.Context(), sessionID, digits); err != nil {
		h.logger.Error("set establishment: session write failed", "error", err)
		h.renderer.Render(w, http.StatusInternalServerError, "establishment.html", establishmentView{
			Phone: raw,
			Error: "Não foi possível salvar sua escolha. Tente novamente.",
		})
		return
	}
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}
