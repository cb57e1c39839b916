package entity

import (
	"time"

	"slotswap/core/entity"

	"github.com/google/uuid"
)

// SlotStatus is the lifecycle state of a calendar slot.
//
// BUSY          — a normal calendar event, not offered for exchange.
// SWAPPABLE     — listed on the marketplace, open to swap requests.
// SWAP_PENDING  — locked by a pending swap request; only the negotiation
//                 engine may move it out of this state.
type SlotStatus string

const (
	SlotStatusBusy        SlotStatus = "BUSY"
	SlotStatusSwappable   SlotStatus = "SWAPPABLE"
	SlotStatusSwapPending SlotStatus = "SWAP_PENDING"
)

func (s SlotStatus) Valid() bool {
	switch s {
	case SlotStatusBusy, SlotStatusSwappable, SlotStatusSwapPending:
		return true
	}
	return false
}

// ownerTransitions lists the status changes a slot owner may request
// directly. Everything touching SWAP_PENDING belongs to the engine.
var ownerTransitions = map[SlotStatus]map[SlotStatus]bool{
	SlotStatusBusy:      {SlotStatusSwappable: true},
	SlotStatusSwappable: {SlotStatusBusy: true},
}

// engineTransitions lists the changes the negotiation engine performs
// inside its transactions.
var engineTransitions = map[SlotStatus]map[SlotStatus]bool{
	SlotStatusSwappable:   {SlotStatusSwapPending: true},
	SlotStatusSwapPending: {SlotStatusSwappable: true, SlotStatusBusy: true},
}

// CanOwnerSet reports whether the owner may move the slot from s to next.
func (s SlotStatus) CanOwnerSet(next SlotStatus) bool {
	if s == next {
		return true
	}
	return ownerTransitions[s][next]
}

// CanEngineSet reports whether the negotiation engine may move the slot
// from s to next.
func (s SlotStatus) CanEngineSet(next SlotStatus) bool {
	return engineTransitions[s][next]
}

type Event struct {
	Title     string     `db:"title" json:"title"`
	Slug      string     `db:"slug" json:"slug"`
	StartTime time.Time  `db:"start_time" json:"start_time"`
	EndTime   time.Time  `db:"end_time" json:"end_time"`
	OwnerID   uuid.UUID  `db:"owner_id" json:"owner_id"`
	Status    SlotStatus `db:"status" json:"status"`
	entity.BaseEntity
}

func (e *Event) OwnedBy(userID uuid.UUID) bool {
	return e.OwnerID == userID
}

// Locked reports whether the slot is held by a pending swap; locked slots
// cannot be edited or deleted outside the engine.
func (e *Event) Locked() bool {
	return e.Status == SlotStatusSwapPending
}
