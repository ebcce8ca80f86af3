package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/barbershop-express/booking-web/internal/booking"
	"github.com/barbershop-express/booking-web/internal/schedulingapi"
	"github.com/barbershop-express/booking-web/internal/session"
)

type bookingSelectView struct {
	Service schedulingapi.Service
	Today   string
	Date    string
	Slot    string
	Slots   []string
	Token   uint64
	Error   string
}

type bookingContactView struct {
	Service schedulingapi.Service
	Date    string
	DateBR  string
	Slot    string
	Name    string
	Phone   string
	Notes   string
	Error   string
}

type bookingConfirmedView struct {
	Service      schedulingapi.Service
	DateBR       string
	Slot         string
	WhatsAppLink string
}

type slotsJSONResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
	Token uint64   `json:"token"`
}

// findService resolves a catalog entry by ID. The backend has no single-item
// endpoint, so the catalog list is scanned.
func (h *Handler) findService(r *http.Request) (schedulingapi.Service, bool, error) {
	id, err := parseID(r, "serviceID")
	if err != nil {
		return schedulingapi.Service{}, false, nil
	}
	services, err := h.api.ListServices(r.Context())
	if err != nil {
		return schedulingapi.Service{}, false, err
	}
	for _, svc := range services {
		if svc.ID == id {
			return svc, true, nil
		}
	}
	return schedulingapi.Service{}, false, nil
}

// hydrateFlow rebuilds the booking workflow from request values. The slot list
// for the chosen date is refetched so a stale slot choice is rejected rather
// than trusted.
func (h *Handler) hydrateFlow(r *http.Request, service schedulingapi.Service, date, slot string) (*booking.Flow, string) {
	flow := booking.NewFlow(service)
	if date == "" {
		return flow, ""
	}
	token, err := flow.SelectDate(date)
	if err != nil {
		return flow, "Data inválida. Escolha uma data no formato correto."
	}

	barberPhone := h.barberPhone(r)
	resp, err := h.api.GetAvailableSlots(r.Context(), date, barberPhone)
	if err != nil {
		h.logger.Error("booking: slot lookup failed", "date", date, "error", err)
		return flow, "Não foi possível buscar os horários. Tente novamente."
	}
	flow.ApplySlots(token, resp.Slots)

	if slot != "" {
		if err := flow.SelectSlot(slot); err != nil {
			return flow, "Esse horário não está mais disponível. Escolha outro."
		}
	}
	return flow, ""
}

func (h *Handler) barberPhone(r *http.Request) string {
	data, err := h.sessions.Get(r.Context(), session.IDFromRequest(r))
	if err != nil {
		h.logger.Error("booking: session lookup failed", "error", err)
		return ""
	}
	return data.BarberPhone
}

// BookingPage renders step one: date and slot selection for one service.
func (h *Handler) BookingPage(w http.ResponseWriter, r *http.Request) {
	session.EnsureCookie(w, r)

	service, ok, err := h.findService(r)
	if err != nil {
		h.logger.Error("booking page: list services failed", "error", err)
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}

	flow, flowErr := h.hydrateFlow(r, service, r.URL.Query().Get("date"), r.URL.Query().Get("slot"))
	h.renderer.Render(w, http.StatusOK, "booking_select.html", bookingSelectView{
		Service: service,
		Today:   time.Now().Format("2006-01-02"),
		Date:    flow.Date(),
		Slot:    flow.Slot(),
		Slots:   flow.Slots(),
		Token:   flow.Fence(),
		Error:   flowErr,
	})
}

// SlotsJSON answers the booking page's availability polls. The request's fence
// token is echoed back verbatim so the page can discard superseded responses.
func (h *Handler) SlotsJSON(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		h.metrics.ObserveSlotQuery("invalid_date")
		jsonError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	token, _ := strconv.ParseUint(r.URL.Query().Get("token"), 10, 64)

	resp, err := h.api.GetAvailableSlots(r.Context(), date, h.barberPhone(r))
	if err != nil {
		h.metrics.ObserveSlotQuery("backend_error")
		h.logger.Error("slots: lookup failed", "date", date, "error", err)
		jsonError(w, http.StatusBadGateway, "availability lookup failed")
		return
	}
	h.metrics.ObserveSlotQuery("ok")
	writeJSON(w, http.StatusOK, slotsJSONResponse{Date: resp.Date, Slots: resp.Slots, Token: token})
}

// ContinueBooking advances to step two once a date and slot are chosen.
func (h *Handler) ContinueBooking(w http.ResponseWriter, r *http.Request) {
	service, ok, err := h.findService(r)
	if err != nil {
		h.logger.Error("continue booking: list services failed", "error", err)
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}

	flow, flowErr := h.hydrateFlow(r, service, r.PostFormValue("date"), r.PostFormValue("slot"))
	if flowErr == "" {
		if err := flow.Continue(); err != nil {
			flowErr = "Escolha uma data e um horário para continuar."
		}
	}
	if flowErr != "" {
		h.renderer.Render(w, http.StatusOK, "booking_select.html", bookingSelectView{
			Service: service,
			Today:   time.Now().Format("2006-01-02"),
			Date:    flow.Date(),
			Slot:    flow.Slot(),
			Slots:   flow.Slots(),
			Token:   flow.Fence(),
			Error:   flowErr,
		})
		return
	}

	h.renderer.Render(w, http.StatusOK, "booking_contact.html", bookingContactView{
		Service: service,
		Date:    flow.Date(),
		DateBR:  flow.FormattedDate(),
		Slot:    flow.Slot(),
	})
}

// SubmitBooking validates step two and books the appointment.
func (h *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	service, ok, err := h.findService(r)
	if err != nil {
		h.logger.Error("submit booking: list services failed", "error", err)
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}

	flow, flowErr := h.hydrateFlow(r, service, r.PostFormValue("date"), r.PostFormValue("slot"))
	flow.SetContact(r.PostFormValue("name"), r.PostFormValue("phone"), r.PostFormValue("notes"))

	contactView := bookingContactView{
		Service: service,
		Date:    flow.Date(),
		DateBR:  flow.FormattedDate(),
		Slot:    flow.Slot(),
		Name:    flow.Name,
		Phone:   flow.Phone,
		Notes:   flow.Notes,
	}

	if flowErr == "" {
		switch err := flow.BeginSubmit(); err {
		case nil:
		case booking.ErrNameRequired:
			flowErr = "Informe seu nome para confirmar."
		case booking.ErrPhoneRequired:
			flowErr = "Informe seu WhatsApp para confirmar."
		default:
			flowErr = "Escolha uma data e um horário para continuar."
		}
	}
	if flowErr != "" {
		h.metrics.ObserveBooking("rejected")
		contactView.Error = flowErr
		h.renderer.Render(w, http.StatusOK, "booking_contact.html", contactView)
		return
	}

	req := schedulingapi.CreateAppointmentRequest{
		ClientName:      flow.Name,
		ClientPhone:     flow.Phone,
		ServiceID:       service.ID,
		AppointmentTime: flow.AppointmentTime(),
		Notes:           defaultString(flow.Notes, h.cfg.DefaultBookingNote),
		BarberPhone:     h.barberPhone(r),
	}
	if _, err := h.api.CreateAppointment(r.Context(), req); err != nil {
		flow.Fail()
		h.metrics.ObserveBooking("backend_error")
		h.logger.Error("submit booking: create appointment failed", "service_id", service.ID, "error", err)
		contactView.Error = "Não foi possível concluir o agendamento. Tente novamente."
		h.renderer.Render(w, http.StatusOK, "booking_contact.html", contactView)
		return
	}
	flow.Confirm()
	h.metrics.ObserveBooking("confirmed")

	message := booking.ReceiptMessage(flow.Name, service.Title, flow.FormattedDate(), flow.Slot())
	link := booking.WhatsAppLink(h.cfg.WhatsAppCountryCode, sanitizeDigits(flow.Phone), message)
	h.renderer.Render(w, http.StatusOK, "booking_confirmed.html", bookingConfirmedView{
		Service:      service,
		DateBR:       flow.FormattedDate(),
		Slot:         flow.Slot(),
		WhatsAppLink: link,
	})
}
