package schedulingapi

import "time"

// Status is the lifecycle state of an appointment as reported by the backend.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCanceled  Status = "CANCELED"
	StatusDone      Status = "DONE"
)

// Service is a bookable service from the catalog.
type Service struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Active          bool    `json:"active"`
}

// Appointment is a booked slot for a client.
type Appointment struct {
	ID              int64     `json:"id"`
	ClientName      string    `json:"client_name"`
	ClientPhone     string    `json:"client_phone"`
	ServiceID       int64     `json:"service_id"`
	Service         *Service  `json:"service,omitempty"`
	AppointmentTime time.Time `json:"appointment_time"`
	Status          Status    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
}

// SlotsResponse is returned by the availability endpoint. Unlike the other
// endpoints it is not wrapped in a data envelope.
type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// CreateServiceRequest is the payload for adding a service to the catalog.
type CreateServiceRequest struct {
	Title           string  `json:"title"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

// CreateAppointmentRequest is the payload for booking an appointment.
// AppointmentTime is the ISO-8601 instant built from the chosen date and slot.
type CreateAppointmentRequest struct {
	ClientName      string `json:"client_name"`
	ClientPhone     string `json:"client_phone"`
	ServiceID       int64  `json:"service_id"`
	AppointmentTime string `json:"appointment_time"`
	Notes           string `json:"notes,omitempty"`
	BarberPhone     string `json:"barber_phone,omitempty"`
}

type updateStatusRequest struct {
	Status Status `json:"status"`
}

// envelope is the `{data: ...}` wrapper most backend responses use.
type envelope[T any] struct {
	Data T `json:"data"`
}
