package service

import (
	"context"
	"fmt"

	"slotswap/core/errors"
	"slotswap/core/logger"
	"slotswap/modules/event/dto"
	"slotswap/modules/event/entity"
	"slotswap/modules/event/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type EventServiceInterface interface {
	CreateEvent(ctx context.Context, ownerID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	GetMyEvents(ctx context.Context, ownerID uuid.UUID) (*dto.EventListResponse, *errors.AppError)
	UpdateEvent(ctx context.Context, userID, eventID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError)
	DeleteEvent(ctx context.Context, userID, eventID uuid.UUID) *errors.AppError
	GetMarketplace(ctx context.Context, userID uuid.UUID) (*dto.MarketplaceResponse, *errors.AppError)
}

type EventService struct {
	repo repository.EventRepositoryInterface
}

func NewEventService(repo repository.EventRepositoryInterface) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) CreateEvent(ctx context.Context, ownerID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	status := entity.SlotStatusBusy
	if req.Status != "" {
		status = entity.SlotStatus(req.Status)
	}

	event := &entity.Event{
		Title:     req.Title,
		Slug:      slug.Make(req.Title),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		OwnerID:   ownerID,
		Status:    status,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		logger.Error("EventService:CreateEvent:Create:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	logger.Info("EventService:CreateEvent:Success", "event_id", event.ID, "owner_id", ownerID, "status", event.Status)
	resp := toEventResponse(event)
	return &resp, nil
}

func (s *EventService) GetMyEvents(ctx context.Context, ownerID uuid.UUID) (*dto.EventListResponse, *errors.AppError) {
	events, err := s.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		logger.Error("EventService:GetMyEvents:GetByOwner:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get events", err)
	}

	resp := &dto.EventListResponse{
		Events: make([]dto.EventResponse, len(events)),
		Count:  len(events),
	}
	for i := range events {
		resp.Events[i] = toEventResponse(&events[i])
	}
	return resp, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, userID, eventID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		logger.Error("EventService:UpdateEvent:GetByID:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	if !event.OwnedBy(userID) {
		return nil, errors.NewAppError(errors.ErrForbidden, "You are not authorized to update this event", nil)
	}
	if event.Locked() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Event is locked by a pending swap request", nil)
	}

	expectedStatus := event.Status

	if req.Title != nil {
		event.Title = *req.Title
		event.Slug = slug.Make(*req.Title)
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if !event.EndTime.After(event.StartTime) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "End time must be after start time", nil)
	}

	if req.Status != nil {
		next := entity.SlotStatus(*req.Status)
		if !event.Status.CanOwnerSet(next) {
			return nil, errors.NewAppError(errors.ErrInvalidInput,
				fmt.Sprintf("Cannot change status from %s to %s", event.Status, next), nil)
		}
		event.Status = next
	}

	ok, err := s.repo.Update(ctx, event, expectedStatus)
	if err != nil {
		logger.Error("EventService:UpdateEvent:Update:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event", err)
	}
	if !ok {
		// Status moved between our read and write, e.g. a swap request
		// just locked the slot.
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Event was modified concurrently, please retry", nil)
	}

	logger.Info("EventService:UpdateEvent:Success", "event_id", event.ID, "status", event.Status)
	resp := toEventResponse(event)
	return &resp, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, userID, eventID uuid.UUID) *errors.AppError {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		logger.Error("EventService:DeleteEvent:GetByID:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete event", err)
	}
	if event == nil {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	if !event.OwnedBy(userID) {
		return errors.NewAppError(errors.ErrForbidden, "You are not authorized to delete this event", nil)
	}
	if event.Locked() {
		return errors.NewAppError(errors.ErrInvalidInput, "Event is locked by a pending swap request", nil)
	}

	ok, err := s.repo.Delete(ctx, eventID)
	if err != nil {
		logger.Error("EventService:DeleteEvent:Delete:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete event", err)
	}
	if !ok {
		return errors.NewAppError(errors.ErrAlreadyExists, "Event was modified concurrently, please retry", nil)
	}

	logger.Info("EventService:DeleteEvent:Success", "event_id", eventID)
	return nil
}

func (s *EventService) GetMarketplace(ctx context.Context, userID uuid.UUID) (*dto.MarketplaceResponse, *errors.AppError) {
	slots, err := s.repo.GetMarketplace(ctx, userID)
	if err != nil {
		logger.Error("EventService:GetMarketplace:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get swappable slots", err)
	}

	resp := &dto.MarketplaceResponse{
		Slots: make([]dto.MarketplaceSlot, len(slots)),
		Count: len(slots),
	}
	for i := range slots {
		resp.Slots[i] = dto.MarketplaceSlot{
			EventResponse: toEventResponse(&slots[i].Event),
			OwnerName:     slots[i].OwnerName,
			OwnerEmail:    slots[i].OwnerEmail,
		}
	}
	return resp, nil
}

func toEventResponse(event *entity.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:        event.ID,
		Title:     event.Title,
		Slug:      event.Slug,
		StartTime: event.StartTime,
		EndTime:   event.EndTime,
		OwnerID:   event.OwnerID,
		Status:    string(event.Status),
		CreatedAt: event.CreatedAt,
		UpdatedAt: event.UpdatedAt,
	}
}
