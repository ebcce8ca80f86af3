package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/barbershop-express/booking-web/internal/booking"
	"github.com/barbershop-express/booking-web/internal/schedulingapi"
)

type appointmentView struct {
	Appointment schedulingapi.Appointment
	Transitions []schedulingapi.Status
}

type adminAppointmentsView struct {
	Appointments []appointmentView
	Error        string
}

type serviceForm struct {
	Title    string
	Price    string
	Duration string
}

type adminServicesView struct {
	Services []schedulingapi.Service
	Form     serviceForm
	Error    string
}

// Dashboard renders the admin console. The tab query parameter picks between
// the appointment list and the service catalog.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("tab") == "services" {
		h.renderServices(w, r, "", serviceForm{})
		return
	}
	h.renderAppointments(w, r, "")
}

func (h *Handler) renderAppointments(w http.ResponseWriter, r *http.Request, errMsg string) {
	view := adminAppointmentsView{Error: errMsg}
	appointments, err := h.api.ListAppointments(r.Context())
	if err != nil {
		h.logger.Error("admin: list appointments failed", "error", err)
		if view.Error == "" {
			view.Error = "Não foi possível carregar os agendamentos."
		}
	}
	for _, appt := range appointments {
		view.Appointments = append(view.Appointments, appointmentView{
			Appointment: appt,
			Transitions: booking.AllowedTransitions(appt.Status),
		})
	}
	h.renderer.Render(w, http.StatusOK, "admin_appointments.html", view)
}

func (h *Handler) renderServices(w http.ResponseWriter, r *http.Request, errMsg string, form serviceForm) {
	view := adminServicesView{Error: errMsg, Form: form}
	services, err := h.api.ListServices(r.Context())
	if err != nil {
		h.logger.Error("admin: list services failed", "error", err)
		if view.Error == "" {
			view.Error = "Não foi possível carregar os serviços."
		}
	}
	view.Services = services
	h.renderer.Render(w, http.StatusOK, "admin_services.html", view)
}

// UpdateAppointmentStatus applies a status action from the console. The
// current status is refetched and the move checked against the transition
// rules before the backend is called.
func (h *Handler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "appointmentID")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderAppointments(w, r, "Não foi possível ler o formulário.")
		return
	}
	target := schedulingapi.Status(r.PostFormValue("status"))

	appointments, err := h.api.ListAppointments(r.Context())
	if err != nil {
		h.logger.Error("admin: list appointments failed", "error", err)
		h.renderAppointments(w, r, "Não foi possível carregar os agendamentos.")
		return
	}
	var current *schedulingapi.Appointment
	for i := range appointments {
		if appointments[i].ID == id {
			current = &appointments[i]
			break
		}
	}
	if current == nil {
		h.renderAppointments(w, r, "Agendamento não encontrado. Atualize a lista.")
		return
	}
	if !booking.CanTransition(current.Status, target) {
		h.renderAppointments(w, r, "Essa mudança de status não é permitida.")
		return
	}

	if _, err := h.api.UpdateAppointmentStatus(r.Context(), id, target); err != nil {
		h.logger.Error("admin: update status failed", "appointment_id", id, "status", target, "error", err)
		h.renderAppointments(w, r, "Não foi possível atualizar o status. Tente novamente.")
		return
	}
	http.Redirect(w, r, "/admin/dashboard?tab=appointments", http.StatusSeeOther)
}

// CreateService adds a catalog entry from the console form.
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderServices(w, r, "Não foi possível ler o formulário.", serviceForm{})
		return
	}
	form := serviceForm{
		Title:    strings.TrimSpace(r.PostFormValue("title")),
		Price:    strings.TrimSpace(r.PostFormValue("price")),
		Duration: strings.TrimSpace(r.PostFormValue("duration")),
	}

	if form.Title == "" {
		h.renderServices(w, r, "Informe o nome do serviço.", form)
		return
	}
	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil || price < 0 {
		h.renderServices(w, r, "Informe um preço válido.", form)
		return
	}
	duration, err := strconv.Atoi(form.Duration)
	if err != nil || duration <= 0 {
		h.renderServices(w, r, "Informe uma duração em minutos maior que zero.", form)
		return
	}

	req := schedulingapi.CreateServiceRequest{
		Title:           form.Title,
		Price:           price,
		DurationMinutes: duration,
	}
	if _, err := h.api.CreateService(r.Context(), req); err != nil {
		h.logger.Error("admin: create service failed", "title", form.Title, "error", err)
		h.renderServices(w, r, "Não foi possível criar o serviço. Tente novamente.", form)
		return
	}
	http.Redirect(w, r, "/admin/dashboard?tab=services", http.StatusSeeOther)
}

// DeleteService removes a catalog entry.
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "serviceID")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := h.api.DeleteService(r.Context(), id); err != nil {
		h.logger.Error("admin: delete service failed", "service_id", id, "error", err)
		h.renderServices(w, r, "Não foi possível remover o serviço. Tente novamente.", serviceForm{})
		return
	}
	http.Redirect(w, r, "/admin/dashboard?tab=services", http.StatusSeeOther)
}
