package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSlotStatus_Valid(t *testing.T) {
	assert.True(t, SlotStatusBusy.Valid())
	assert.True(t, SlotStatusSwappable.Valid())
	assert.True(t, SlotStatusSwapPending.Valid())
	assert.False(t, SlotStatus("FREE").Valid())
	assert.False(t, SlotStatus("").Valid())
}

func TestSlotStatus_CanOwnerSet(t *testing.T) {
	tests := []struct {
		name string
		from SlotStatus
		to   SlotStatus
		want bool
	}{
		{"busy to swappable", SlotStatusBusy, SlotStatusSwappable, true},
		{"swappable to busy", SlotStatusSwappable, SlotStatusBusy, true},
		{"busy unchanged", SlotStatusBusy, SlotStatusBusy, true},
		{"swappable unchanged", SlotStatusSwappable, SlotStatusSwappable, true},
		{"busy to swap pending", SlotStatusBusy, SlotStatusSwapPending, false},
		{"swappable to swap pending", SlotStatusSwappable, SlotStatusSwapPending, false},
		{"swap pending to busy", SlotStatusSwapPending, SlotStatusBusy, false},
		{"swap pending to swappable", SlotStatusSwapPending, SlotStatusSwappable, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanOwnerSet(tt.to))
		})
	}
}

func TestSlotStatus_CanEngineSet(t *testing.T) {
	tests := []struct {
		name string
		from SlotStatus
		to   SlotStatus
		want bool
	}{
		{"lock swappable", SlotStatusSwappable, SlotStatusSwapPending, true},
		{"release to swappable", SlotStatusSwapPending, SlotStatusSwappable, true},
		{"settle as busy", SlotStatusSwapPending, SlotStatusBusy, true},
		{"lock busy", SlotStatusBusy, SlotStatusSwapPending, false},
		{"swappable to busy", SlotStatusSwappable, SlotStatusBusy, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanEngineSet(tt.to))
		})
	}
}

func TestEvent_OwnedByAndLocked(t *testing.T) {
	owner := uuid.New()
	event := &Event{OwnerID: owner, Status: SlotStatusSwapPending}

	assert.True(t, event.OwnedBy(owner))
	assert.False(t, event.OwnedBy(uuid.New()))
	assert.True(t, event.Locked())

	event.Status = SlotStatusSwappable
	assert.False(t, event.Locked())
}
