package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barbershop-express/booking-web/internal/schedulingapi"
)

func TestAllowedTransitions(t *testing.T) {
	assert.Equal(t,
		[]schedulingapi.Status{schedulingapi.StatusConfirmed, schedulingapi.StatusCanceled},
		AllowedTransitions(schedulingapi.StatusPending))
	assert.Equal(t,
		[]schedulingapi.Status{schedulingapi.StatusDone, schedulingapi.StatusCanceled},
		AllowedTransitions(schedulingapi.StatusConfirmed))
	assert.Nil(t, AllowedTransitions(schedulingapi.StatusDone))
	assert.Nil(t, AllowedTransitions(schedulingapi.StatusCanceled))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(schedulingapi.StatusPending, schedulingapi.StatusConfirmed))
	assert.True(t, CanTransition(schedulingapi.StatusPending, schedulingapi.StatusCanceled))
	assert.True(t, CanTransition(schedulingapi.StatusConfirmed, schedulingapi.StatusDone))
	assert.True(t, CanTransition(schedulingapi.StatusConfirmed, schedulingapi.StatusCanceled))

	assert.False(t, CanTransition(schedulingapi.StatusPending, schedulingapi.StatusDone),
		"DONE is only reachable from CONFIRMED")
	assert.False(t, CanTransition(schedulingapi.StatusDone, schedulingapi.StatusCanceled))
	assert.False(t, CanTransition(schedulingapi.StatusCanceled, schedulingapi.StatusPending))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(schedulingapi.StatusPending))
	assert.False(t, IsTerminal(schedulingapi.StatusConfirmed))
	assert.True(t, IsTerminal(schedulingapi.StatusDone))
	assert.True(t, IsTerminal(schedulingapi.StatusCanceled))
}
