package dto

import (
	"time"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

type CreateSwapRequestBody struct {
	MySlotID    string `json:"my_slot_id"`
	TheirSlotID string `json:"their_slot_id"`
}

// SwapResponseBody carries the owner's decision. Accept is a pointer so
// a missing field is distinguishable from an explicit false.
type SwapResponseBody struct {
	Accept *bool `json:"accept"`
}

// ===================== Response DTOs =====================

type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type SlotSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

type SwapRequestResponse struct {
	ID            uuid.UUID   `json:"id"`
	Reference     string      `json:"reference"`
	Status        string      `json:"status"`
	RequesterSlot SlotSummary `json:"requester_slot"`
	DesiredSlot   SlotSummary `json:"desired_slot"`
	Requester     UserSummary `json:"requester"`
	Owner         UserSummary `json:"owner"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type CreateSwapRequestResponse struct {
	SwapRequest SwapRequestResponse `json:"swap_request"`
}

// SwappedSlot describes one side of a completed exchange.
type SwappedSlot struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	NewOwner uuid.UUID `json:"new_owner"`
}

type SwappedSlots struct {
	Slot1 SwappedSlot `json:"slot1"`
	Slot2 SwappedSlot `json:"slot2"`
}

type RespondToSwapResponse struct {
	SwapRequest  SwapRequestResponse `json:"swap_request"`
	SwappedSlots *SwappedSlots       `json:"swapped_slots,omitempty"`
}

type SwapRequestList struct {
	Requests []SwapRequestResponse `json:"requests"`
	Count    int                   `json:"count"`
}

type ListSwapRequestsResponse struct {
	Incoming SwapRequestList `json:"incoming"`
	Outgoing SwapRequestList `json:"outgoing"`
	Total    int             `json:"total"`
}
