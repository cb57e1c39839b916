package entity

import (
	"time"

	"slotswap/core/entity"
	eventEntity "slotswap/modules/event/entity"

	"github.com/google/uuid"
)

// SwapRequestStatus is the lifecycle state of a swap negotiation.
// A request is created PENDING and resolved exactly once; resolved
// requests are immutable and never deleted.
type SwapRequestStatus string

const (
	SwapRequestStatusPending  SwapRequestStatus = "PENDING"
	SwapRequestStatusAccepted SwapRequestStatus = "ACCEPTED"
	SwapRequestStatusRejected SwapRequestStatus = "REJECTED"
)

type SwapRequest struct {
	Reference       string            `db:"reference" json:"reference"`
	RequesterSlotID uuid.UUID         `db:"requester_slot_id" json:"requester_slot_id"`
	DesiredSlotID   uuid.UUID         `db:"desired_slot_id" json:"desired_slot_id"`
	RequesterID     uuid.UUID         `db:"requester_id" json:"requester_id"`
	OwnerID         uuid.UUID         `db:"owner_id" json:"owner_id"`
	Status          SwapRequestStatus `db:"status" json:"status"`
	entity.BaseEntity
}

func (r *SwapRequest) Resolved() bool {
	return r.Status != SwapRequestStatusPending
}

// SwapRequestDetail is a SwapRequest joined with both slots and both
// parties' display identities.
type SwapRequestDetail struct {
	SwapRequest

	RequesterSlotTitle  string                 `db:"requester_slot_title"`
	RequesterSlotStart  time.Time              `db:"requester_slot_start"`
	RequesterSlotEnd    time.Time              `db:"requester_slot_end"`
	RequesterSlotStatus eventEntity.SlotStatus `db:"requester_slot_status"`

	DesiredSlotTitle  string                 `db:"desired_slot_title"`
	DesiredSlotStart  time.Time              `db:"desired_slot_start"`
	DesiredSlotEnd    time.Time              `db:"desired_slot_end"`
	DesiredSlotStatus eventEntity.SlotStatus `db:"desired_slot_status"`

	RequesterName  string `db:"requester_name"`
	RequesterEmail string `db:"requester_email"`
	OwnerName      string `db:"owner_name"`
	OwnerEmail     string `db:"owner_email"`
}
