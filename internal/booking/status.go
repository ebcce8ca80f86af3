package booking

import "github.com/barbershop-express/booking-web/internal/schedulingapi"

// Appointment status machine, admin side:
// PENDING -> CONFIRMED or CANCELED, CONFIRMED -> DONE or CANCELED.
// DONE and CANCELED are terminal.

// AllowedTransitions lists the statuses an appointment may move to from its
// current one. Terminal statuses return nil, so the console renders no action.
func AllowedTransitions(current schedulingapi.Status) []schedulingapi.Status {
	switch current {
	case schedulingapi.StatusPending:
		return []schedulingapi.Status{schedulingapi.StatusConfirmed, schedulingapi.StatusCanceled}
	case schedulingapi.StatusConfirmed:
		return []schedulingapi.Status{schedulingapi.StatusDone, schedulingapi.StatusCanceled}
	default:
		return nil
	}
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to schedulingapi.Status) bool {
	for _, allowed := range AllowedTransitions(from) {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions exist.
func IsTerminal(status schedulingapi.Status) bool {
	return len(AllowedTransitions(status)) == 0
}
