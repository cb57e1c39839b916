package service

import (
	"context"
	"errors"

	eventEntity "slotswap/modules/event/entity"
	"slotswap/modules/swap/entity"

	"github.com/google/uuid"
)

// ErrDuplicatePair reports that the unordered slot pair already has a
// PENDING swap request.
var ErrDuplicatePair = errors.New("a pending swap request already exists for these slots")

// SwapStore is the storage boundary of the negotiation engine. Both
// negotiation operations run entirely inside one SwapTx so that no other
// transaction ever observes a half-flipped pair of slots.
type SwapStore interface {
	Begin(ctx context.Context) (SwapTx, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*entity.SwapRequestDetail, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.SwapRequestDetail, error)
}

// SwapTx is a single atomic negotiation transaction. Lock methods take
// row locks so that concurrent negotiations over the same slots or the
// same request serialize; (nil, nil) means the row does not exist.
//
// ErrDuplicatePair must be returned by InsertRequest when the unordered
// (requester slot, desired slot) pair already has a PENDING request —
// the storage uniqueness constraint decides races the status checks
// cannot see.
type SwapTx interface {
	LockSlot(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error)
	LockRequest(ctx context.Context, id uuid.UUID) (*entity.SwapRequest, error)
	HasPendingPair(ctx context.Context, slotA, slotB uuid.UUID) (bool, error)
	InsertRequest(ctx context.Context, request *entity.SwapRequest) error
	UpdateSlotStatus(ctx context.Context, slotID uuid.UUID, status eventEntity.SlotStatus) error
	UpdateSlotOwnerAndStatus(ctx context.Context, slotID, newOwner uuid.UUID, status eventEntity.SlotStatus) error
	UpdateRequestStatus(ctx context.Context, requestID uuid.UUID, status entity.SwapRequestStatus) error
	Commit() error
	Rollback() error
}

// SwapNotifier receives swap lifecycle events after the transaction has
// committed. Implementations must not block the request path.
type SwapNotifier interface {
	SwapRequested(ctx context.Context, detail *entity.SwapRequestDetail)
	SwapResolved(ctx context.Context, detail *entity.SwapRequestDetail, accepted bool)
}
