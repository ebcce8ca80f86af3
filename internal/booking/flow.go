// Package booking holds the two-step booking workflow as a pure state machine
// plus the appointment-status transition rules. Nothing here touches the HTTP
// layer; handlers hydrate a Flow from request values and read view state back
// out of it.
package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/barbershop-express/booking-web/internal/schedulingapi"
)

// State identifies where the client is in the booking workflow.
type State string

const (
	StateSelectingDate       State = "selecting_date"
	StateSelectingSlot       State = "selecting_slot"
	StateEnteringContactInfo State = "entering_contact_info"
	StateSubmitting          State = "submitting"
	StateConfirmed           State = "confirmed"
)

var (
	ErrInvalidDate      = errors.New("booking: date must be YYYY-MM-DD")
	ErrSlotNotAvailable = errors.New("booking: slot is not in the available list")
	ErrSelectionMissing = errors.New("booking: date and slot must both be selected")
	ErrNameRequired     = errors.New("booking: client name is required")
	ErrPhoneRequired    = errors.New("booking: client phone is required")
)

// Flow is the booking workflow for one service. Transitions mutate the value;
// a Flow is only ever touched by a single request at a time.
type Flow struct {
	Service schedulingapi.Service

	state State
	date  string
	slot  string
	slots []string

	// fence is the token of the newest slot query. Results carrying an older
	// token are discarded, so a superseded date selection can never overwrite
	// the slots of the current one.
	fence uint64

	Name  string
	Phone string
	Notes string
}

// NewFlow starts a workflow at date selection.
func NewFlow(service schedulingapi.Service) *Flow {
	return &Flow{Service: service, state: StateSelectingDate}
}

// State reports the current workflow state.
func (f *Flow) State() State {
	return f.state
}

// Date returns the selected date (YYYY-MM-DD), empty until one is chosen.
func (f *Flow) Date() string {
	return f.date
}

// Slot returns the selected time-of-day slot, empty until one is chosen.
func (f *Flow) Slot() string {
	return f.slot
}

// Slots returns the applied availability list for the selected date.
func (f *Flow) Slots() []string {
	return f.slots
}

// SelectDate records a date choice, clears any previous slot state and returns
// the fence token the resulting availability query must carry.
func (f *Flow) SelectDate(date string) (uint64, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return 0, ErrInvalidDate
	}
	f.date = date
	f.slot = ""
	f.slots = nil
	f.fence++
	if f.state == StateSelectingDate {
		f.state = StateSelectingSlot
	}
	return f.fence, nil
}

// Fence returns the token of the newest slot query.
func (f *Flow) Fence() uint64 {
	return f.fence
}

// ApplySlots installs an availability result. It reports whether the result
// was applied; results for a superseded query are discarded.
func (f *Flow) ApplySlots(token uint64, slots []string) bool {
	if token != f.fence {
		return false
	}
	f.slots = slots
	return true
}

// SelectSlot records a slot choice from the applied availability list.
func (f *Flow) SelectSlot(slot string) error {
	for _, s := range f.slots {
		if s == slot {
			f.slot = slot
			return nil
		}
	}
	return ErrSlotNotAvailable
}

// CanContinue reports whether step two may be entered.
func (f *Flow) CanContinue() bool {
	return f.date != "" && f.slot != ""
}

// Continue advances to contact-info entry. Allowed only with date and slot set.
func (f *Flow) Continue() error {
	if !f.CanContinue() {
		return ErrSelectionMissing
	}
	f.state = StateEnteringContactInfo
	return nil
}

// Back returns to slot selection without clearing the chosen date or slot.
func (f *Flow) Back() {
	f.state = StateSelectingSlot
}

// SetContact records the step-two form values.
func (f *Flow) SetContact(name, phone, notes string) {
	f.Name = strings.TrimSpace(name)
	f.Phone = strings.TrimSpace(phone)
	f.Notes = strings.TrimSpace(notes)
}

// Validate checks the required contact fields. No format validation beyond
// non-emptiness; the backend is authoritative.
func (f *Flow) Validate() error {
	if f.Name == "" {
		return ErrNameRequired
	}
	if f.Phone == "" {
		return ErrPhoneRequired
	}
	return nil
}

// BeginSubmit validates and moves to the submitting state.
func (f *Flow) BeginSubmit() error {
	if !f.CanContinue() {
		return ErrSelectionMissing
	}
	if err := f.Validate(); err != nil {
		return err
	}
	f.state = StateSubmitting
	return nil
}

// Confirm marks the workflow as successfully completed.
func (f *Flow) Confirm() {
	f.state = StateConfirmed
}

// Fail returns to contact entry after a rejected submission.
func (f *Flow) Fail() {
	f.state = StateEnteringContactInfo
}

// AppointmentTime builds the absolute appointment instant from the selected
// date and slot, interpreted as UTC: "2025-06-10" + "14:30" -> "2025-06-10T14:30:00Z".
func (f *Flow) AppointmentTime() string {
	return fmt.Sprintf("%sT%s:00Z", f.date, f.slot)
}

// FormattedDate renders the selected date as DD/MM/YYYY for receipts.
func (f *Flow) FormattedDate() string {
	return FormatDateBR(f.date)
}

// FormatDateBR converts YYYY-MM-DD into DD/MM/YYYY.
func FormatDateBR(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}
