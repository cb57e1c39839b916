package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"slotswap/core/errors"
	"slotswap/core/logger"
	"slotswap/core/utils"
	eventEntity "slotswap/modules/event/entity"
	"slotswap/modules/swap/dto"
	"slotswap/modules/swap/entity"

	"github.com/google/uuid"
)

type SwapServiceInterface interface {
	CreateSwapRequest(ctx context.Context, requesterID, mySlotID, theirSlotID uuid.UUID) (*dto.CreateSwapRequestResponse, *errors.AppError)
	RespondToSwapRequest(ctx context.Context, responderID, requestID uuid.UUID, accept bool) (*dto.RespondToSwapResponse, *errors.AppError)
	GetSwapRequests(ctx context.Context, userID uuid.UUID) (*dto.ListSwapRequestsResponse, *errors.AppError)
}

// SwapService is the negotiation engine. Every state transition on a
// slot pair happens inside one storage transaction; the engine never
// holds in-process locks.
type SwapService struct {
	store    SwapStore
	notifier SwapNotifier
}

func NewSwapService(store SwapStore, notifier SwapNotifier) *SwapService {
	return &SwapService{store: store, notifier: notifier}
}

func (s *SwapService) CreateSwapRequest(ctx context.Context, requesterID, mySlotID, theirSlotID uuid.UUID) (*dto.CreateSwapRequestResponse, *errors.AppError) {
	if mySlotID == theirSlotID {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Cannot swap a slot with itself", nil)
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		logger.Error("SwapService:CreateSwapRequest:Begin:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create swap request", err)
	}
	defer tx.Rollback()

	// Lock both slots in ascending id order so two overlapping
	// negotiations can never deadlock on each other.
	first, second := orderSlotIDs(mySlotID, theirSlotID)
	locked := map[uuid.UUID]*eventEntity.Event{}
	for _, id := range []uuid.UUID{first, second} {
		slot, err := tx.LockSlot(ctx, id)
		if err != nil {
			logger.Error("SwapService:CreateSwapRequest:LockSlot:Error:", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create swap request", err)
		}
		locked[id] = slot
	}

	mySlot, theirSlot := locked[mySlotID], locked[theirSlotID]
	if mySlot == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Your slot not found", nil)
	}
	if theirSlot == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Desired slot not found", nil)
	}
	if !mySlot.OwnedBy(requesterID) {
		return nil, errors.NewAppError(errors.ErrForbidden, "You do not own the slot you are trying to swap", nil)
	}
	if theirSlot.OwnedBy(requesterID) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "You cannot swap with your own slot", nil)
	}
	if mySlot.Status != eventEntity.SlotStatusSwappable {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("Your slot must have status SWAPPABLE (current: %s)", mySlot.Status), nil)
	}
	if theirSlot.Status != eventEntity.SlotStatusSwappable {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("Desired slot must have status SWAPPABLE (current: %s)", theirSlot.Status), nil)
	}

	exists, err := tx.HasPendingPair(ctx, mySlotID, theirSlotID)
	if err != nil {
		logger.Error("SwapService:CreateSwapRequest:HasPendingPair:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create swap request", err)
	}
	if exists {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "A pending swap request already exists for these slots", nil)
	}

	request := &entity.SwapRequest{
		Reference:       utils.GenerateReference(),
		RequesterSlotID: mySlotID,
		DesiredSlotID:   theirSlotID,
		RequesterID:     requesterID,
		OwnerID:         theirSlot.OwnerID,
		Status:          entity.SwapRequestStatusPending,
	}
	if err := tx.InsertRequest(ctx, request); err != nil {
		// A concurrent create for the same pair committed between our
		// pending-pair check and the insert; the unique index decides.
		if err == ErrDuplicatePair {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "A pending swap request already exists for these slots", err)
		}
		logger.Error("SwapService:CreateSwapRequest:InsertRequest:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create swap request", err)
	}

	for _, slotID := range []uuid.UUID{mySlotID, theirSlotID} {
		if err := tx.UpdateSlotStatus(ctx, slotID, eventEntity.SlotStatusSwapPending); err != nil {
			logger.Error("SwapService:CreateSwapRequest:UpdateSlotStatus:Error:", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create swap request", err)
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("SwapService:CreateSwapRequest:Commit:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create swap request", err)
	}

	detail, err := s.store.GetDetail(ctx, request.ID)
	if err != nil || detail == nil {
		logger.Error("SwapService:CreateSwapRequest:GetDetail:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load created swap request", err)
	}

	if s.notifier != nil {
		s.notifier.SwapRequested(ctx, detail)
	}

	logger.Info("SwapService:CreateSwapRequest:Success",
		"request_id", request.ID,
		"reference", request.Reference,
		"requester_id", requesterID,
		"owner_id", request.OwnerID,
	)
	return &dto.CreateSwapRequestResponse{SwapRequest: toSwapRequestResponse(detail)}, nil
}

func (s *SwapService) RespondToSwapRequest(ctx context.Context, responderID, requestID uuid.UUID, accept bool) (*dto.RespondToSwapResponse, *errors.AppError) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		logger.Error("SwapService:RespondToSwapRequest:Begin:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to respond to swap request", err)
	}
	defer tx.Rollback()

	// The row lock serializes concurrent responses; exactly one caller
	// sees PENDING here.
	request, err := tx.LockRequest(ctx, requestID)
	if err != nil {
		logger.Error("SwapService:RespondToSwapRequest:LockRequest:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to respond to swap request", err)
	}
	if request == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Swap request not found", nil)
	}
	if request.OwnerID != responderID {
		return nil, errors.NewAppError(errors.ErrForbidden, "You are not authorized to respond to this swap request", nil)
	}
	if request.Resolved() {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("This swap request has already been %s", strings.ToLower(string(request.Status))), nil)
	}

	first, second := orderSlotIDs(request.RequesterSlotID, request.DesiredSlotID)
	locked := map[uuid.UUID]*eventEntity.Event{}
	for _, id := range []uuid.UUID{first, second} {
		slot, err := tx.LockSlot(ctx, id)
		if err != nil {
			logger.Error("SwapService:RespondToSwapRequest:LockSlot:Error:", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to respond to swap request", err)
		}
		locked[id] = slot
	}

	requesterSlot, desiredSlot := locked[request.RequesterSlotID], locked[request.DesiredSlotID]
	if requesterSlot == nil || desiredSlot == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "One or both slots not found", nil)
	}

	// The PENDING request is supposed to hold both slots in
	// SWAP_PENDING; anything else means some outside path moved a slot
	// and the exchange is no longer safe.
	if requesterSlot.Status != eventEntity.SlotStatusSwapPending || desiredSlot.Status != eventEntity.SlotStatusSwapPending {
		logger.Warn("SwapService:RespondToSwapRequest:SlotDrift",
			"request_id", requestID,
			"requester_slot_status", requesterSlot.Status,
			"desired_slot_status", desiredSlot.Status,
		)
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Slot state changed outside the negotiation, request cannot be resolved", nil)
	}

	var swapped *dto.SwappedSlots

	if accept {
		// Capture both owners from the locked snapshot before any
		// write; both slots mutate in this transaction and writing one
		// first must not feed the other's new value.
		originalRequesterOwner := requesterSlot.OwnerID
		originalDesiredOwner := desiredSlot.OwnerID

		if err := tx.UpdateRequestStatus(ctx, requestID, entity.SwapRequestStatusAccepted); err != nil {
			logger.Error("SwapService:RespondToSwapRequest:UpdateRequestStatus:Error:", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to respond to swap request", err)
		}
		if err := tx.UpdateSlotOwnerAndStatus(ctx, requesterSlot.ID, originalDesiredOwner, eventEntity.SlotStatusBusy); err != nil {
			logger.Error("SwapService:RespondToSwapRequest:SwapRequesterSlot:Error:", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to respond to swap request", err)
		}
		if err := tx.UpdateSlotOwnerAndStatus(ctx, desiredSlot.ID, originalRequesterOwner, eventEntity.SlotStatusBusy); err != nil {
			logger.Error("SwapService:RespondToSwapRequest:SwapDesiredSlot:Error:", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to respond to swap request", err)
		}

		swapped = &dto.SwappedSlots{
			Slot1: dto.SwappedSlot{ID: requesterSlot.ID, Title: requesterSlot.Title, NewOwner: originalDesiredOwner},
			Slot2: dto.SwappedSlot{ID: desiredSlot.ID, Title: desiredSlot.Title, NewOwner: originalRequesterOwner},
		}
	} else {
		if err := tx.UpdateRequestStatus(ctx, requestID, entity.SwapRequestStatusRejected); err != nil {
			logger.Error("SwapService:RespondToSwapRequest:UpdateRequestStatus:Error:", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to respond to swap request", err)
		}
		for _, slotID := range []uuid.UUID{requesterSlot.ID, desiredSlot.ID} {
			if err := tx.UpdateSlotStatus(ctx, slotID, eventEntity.SlotStatusSwappable); err != nil {
				logger.Error("SwapService:RespondToSwapRequest:ReleaseSlot:Error:", err)
				return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to respond to swap request", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("SwapService:RespondToSwapRequest:Commit:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to respond to swap request", err)
	}

	detail, err := s.store.GetDetail(ctx, requestID)
	if err != nil || detail == nil {
		logger.Error("SwapService:RespondToSwapRequest:GetDetail:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load swap request", err)
	}

	if s.notifier != nil {
		s.notifier.SwapResolved(ctx, detail, accept)
	}

	logger.Info("SwapService:RespondToSwapRequest:Success",
		"request_id", requestID,
		"accepted", accept,
	)
	return &dto.RespondToSwapResponse{
		SwapRequest:  toSwapRequestResponse(detail),
		SwappedSlots: swapped,
	}, nil
}

func (s *SwapService) GetSwapRequests(ctx context.Context, userID uuid.UUID) (*dto.ListSwapRequestsResponse, *errors.AppError) {
	details, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("SwapService:GetSwapRequests:ListByUser:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get swap requests", err)
	}

	resp := &dto.ListSwapRequestsResponse{Total: len(details)}
	resp.Incoming.Requests = []dto.SwapRequestResponse{}
	resp.Outgoing.Requests = []dto.SwapRequestResponse{}

	for i := range details {
		r := toSwapRequestResponse(&details[i])
		if details[i].OwnerID == userID {
			resp.Incoming.Requests = append(resp.Incoming.Requests, r)
		}
		if details[i].RequesterID == userID {
			resp.Outgoing.Requests = append(resp.Outgoing.Requests, r)
		}
	}
	resp.Incoming.Count = len(resp.Incoming.Requests)
	resp.Outgoing.Count = len(resp.Outgoing.Requests)

	return resp, nil
}

// orderSlotIDs returns the two ids in ascending byte order.
func orderSlotIDs(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return a, b
	}
	return b, a
}

func toSwapRequestResponse(d *entity.SwapRequestDetail) dto.SwapRequestResponse {
	return dto.SwapRequestResponse{
		ID:        d.ID,
		Reference: d.Reference,
		Status:    string(d.Status),
		RequesterSlot: dto.SlotSummary{
			ID:        d.RequesterSlotID,
			Title:     d.RequesterSlotTitle,
			StartTime: d.RequesterSlotStart,
			EndTime:   d.RequesterSlotEnd,
			Status:    string(d.RequesterSlotStatus),
		},
		DesiredSlot: dto.SlotSummary{
			ID:        d.DesiredSlotID,
			Title:     d.DesiredSlotTitle,
			StartTime: d.DesiredSlotStart,
			EndTime:   d.DesiredSlotEnd,
			Status:    string(d.DesiredSlotStatus),
		},
		Requester: dto.UserSummary{ID: d.RequesterID, Name: d.RequesterName, Email: d.RequesterEmail},
		Owner:     dto.UserSummary{ID: d.OwnerID, Name: d.OwnerName, Email: d.OwnerEmail},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
