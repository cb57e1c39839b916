package dto

import (
	"time"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

type CreateEventRequest struct {
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"` // optional; BUSY when omitted
}

// UpdateEventRequest uses pointers so omitted fields stay untouched.
type UpdateEventRequest struct {
	Title     *string    `json:"title"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Status    *string    `json:"status"`
}

// ===================== Response DTOs =====================

type EventResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Count  int             `json:"count"`
}

// MarketplaceSlot is a swappable slot with its owner's display identity.
type MarketplaceSlot struct {
	EventResponse
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`
}

type MarketplaceResponse struct {
	Slots []MarketplaceSlot `json:"slots"`
	Count int               `json:"count"`
}
