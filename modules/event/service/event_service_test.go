package service

import (
	"context"
	"testing"
	"time"

	coreErrors "slotswap/core/errors"
	"slotswap/modules/event/dto"
	"slotswap/modules/event/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock EventRepository ---

type mockEventRepo struct {
	createFn         func(ctx context.Context, event *entity.Event) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	getByOwnerFn     func(ctx context.Context, ownerID uuid.UUID) ([]entity.Event, error)
	updateFn         func(ctx context.Context, event *entity.Event, expectedStatus entity.SlotStatus) (bool, error)
	deleteFn         func(ctx context.Context, id uuid.UUID) (bool, error)
	getMarketplaceFn func(ctx context.Context, excludeOwner uuid.UUID) ([]entity.SlotWithOwner, error)
}

func (m *mockEventRepo) Create(ctx context.Context, event *entity.Event) error {
	return m.createFn(ctx, event)
}
func (m *mockEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockEventRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Event, error) {
	return m.getByOwnerFn(ctx, ownerID)
}
func (m *mockEventRepo) Update(ctx context.Context, event *entity.Event, expectedStatus entity.SlotStatus) (bool, error) {
	return m.updateFn(ctx, event, expectedStatus)
}
func (m *mockEventRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.deleteFn(ctx, id)
}
func (m *mockEventRepo) GetMarketplace(ctx context.Context, excludeOwner uuid.UUID) ([]entity.SlotWithOwner, error) {
	return m.getMarketplaceFn(ctx, excludeOwner)
}

// --- Tests ---

func sampleEvent(owner uuid.UUID, status entity.SlotStatus) *entity.Event {
	start := time.Now().Add(48 * time.Hour)
	e := &entity.Event{
		Title:     "Sprint planning",
		Slug:      "sprint-planning",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		OwnerID:   owner,
		Status:    status,
	}
	e.ID = uuid.New()
	return e
}

func TestCreateEvent_DefaultsToBusy(t *testing.T) {
	owner := uuid.New()
	var created *entity.Event
	repo := &mockEventRepo{
		createFn: func(ctx context.Context, event *entity.Event) error {
			event.ID = uuid.New()
			created = event
			return nil
		},
	}

	svc := NewEventService(repo)
	start := time.Now().Add(24 * time.Hour)
	resp, appErr := svc.CreateEvent(context.Background(), owner, &dto.CreateEventRequest{
		Title:     "Team Sync",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})

	require.Nil(t, appErr)
	assert.Equal(t, string(entity.SlotStatusBusy), resp.Status)
	assert.Equal(t, "team-sync", created.Slug)
	assert.Equal(t, owner, created.OwnerID)
}

func TestCreateEvent_SwappableWhenRequested(t *testing.T) {
	repo := &mockEventRepo{
		createFn: func(ctx context.Context, event *entity.Event) error {
			event.ID = uuid.New()
			return nil
		},
	}

	svc := NewEventService(repo)
	start := time.Now().Add(24 * time.Hour)
	resp, appErr := svc.CreateEvent(context.Background(), uuid.New(), &dto.CreateEventRequest{
		Title:     "Open slot",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    string(entity.SlotStatusSwappable),
	})

	require.Nil(t, appErr)
	assert.Equal(t, string(entity.SlotStatusSwappable), resp.Status)
}

func TestUpdateEvent_NotFound(t *testing.T) {
	repo := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
			return nil, nil
		},
	}

	svc := NewEventService(repo)
	_, appErr := svc.UpdateEvent(context.Background(), uuid.New(), uuid.New(), &dto.UpdateEventRequest{})

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrNotFound, appErr.Code)
}

func TestUpdateEvent_NotOwner(t *testing.T) {
	event := sampleEvent(uuid.New(), entity.SlotStatusBusy)
	repo := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
			return event, nil
		},
	}

	svc := NewEventService(repo)
	_, appErr := svc.UpdateEvent(context.Background(), uuid.New(), event.ID, &dto.UpdateEventRequest{})

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrForbidden, appErr.Code)
}

func TestUpdateEvent_LockedByPendingSwap(t *testing.T) {
	owner := uuid.New()
	event := sampleEvent(owner, entity.SlotStatusSwapPending)
	repo := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
			return event, nil
		},
	}

	svc := NewEventService(repo)
	_, appErr := svc.UpdateEvent(context.Background(), owner, event.ID, &dto.UpdateEventRequest{})

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrInvalidInput, appErr.Code)
	assert.Equal(t, "Event is locked by a pending swap request", appErr.Message)
}

func TestUpdateEvent_InvalidStatusTransition(t *testing.T) {
	owner := uuid.New()
	event := sampleEvent(owner, entity.SlotStatusBusy)
	repo := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
			return event, nil
		},
	}

	svc := NewEventService(repo)
	pending := string(entity.SlotStatusSwapPending)
	_, appErr := svc.UpdateEvent(context.Background(), owner, event.ID, &dto.UpdateEventRequest{Status: &pending})

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrInvalidInput, appErr.Code)
	assert.Equal(t, "Cannot change status from BUSY to SWAP_PENDING", appErr.Message)
}

func TestUpdateEvent_ConcurrentModification(t *testing.T) {
	owner := uuid.New()
	event := sampleEvent(owner, entity.SlotStatusSwappable)
	repo := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
			return event, nil
		},
		updateFn: func(ctx context.Context, event *entity.Event, expectedStatus entity.SlotStatus) (bool, error) {
			// Simulates the engine locking the slot between read and write.
			return false, nil
		},
	}

	svc := NewEventService(repo)
	title := "Renamed"
	_, appErr := svc.UpdateEvent(context.Background(), owner, event.ID, &dto.UpdateEventRequest{Title: &title})

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrAlreadyExists, appErr.Code)
}

func TestUpdateEvent_StatusChange(t *testing.T) {
	owner := uuid.New()
	event := sampleEvent(owner, entity.SlotStatusBusy)
	var gotExpected entity.SlotStatus
	repo := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
			return event, nil
		},
		updateFn: func(ctx context.Context, event *entity.Event, expectedStatus entity.SlotStatus) (bool, error) {
			gotExpected = expectedStatus
			return true, nil
		},
	}

	svc := NewEventService(repo)
	swappable := string(entity.SlotStatusSwappable)
	resp, appErr := svc.UpdateEvent(context.Background(), owner, event.ID, &dto.UpdateEventRequest{Status: &swappable})

	require.Nil(t, appErr)
	assert.Equal(t, string(entity.SlotStatusSwappable), resp.Status)
	// The guard compares against the status read before mutation.
	assert.Equal(t, entity.SlotStatusBusy, gotExpected)
}

func TestDeleteEvent_LockedByPendingSwap(t *testing.T) {
	owner := uuid.New()
	event := sampleEvent(owner, entity.SlotStatusSwapPending)
	repo := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
			return event, nil
		},
	}

	svc := NewEventService(repo)
	appErr := svc.DeleteEvent(context.Background(), owner, event.ID)

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrInvalidInput, appErr.Code)
}

func TestDeleteEvent_Success(t *testing.T) {
	owner := uuid.New()
	event := sampleEvent(owner, entity.SlotStatusBusy)
	repo := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
			return event, nil
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) (bool, error) {
			return true, nil
		},
	}

	svc := NewEventService(repo)
	appErr := svc.DeleteEvent(context.Background(), owner, event.ID)

	assert.Nil(t, appErr)
}

func TestGetMarketplace_MapsOwnerDetails(t *testing.T) {
	me := uuid.New()
	other := uuid.New()
	slot := entity.SlotWithOwner{
		Event:      *sampleEvent(other, entity.SlotStatusSwappable),
		OwnerName:  "Bob",
		OwnerEmail: "bob@example.com",
	}
	var gotExclude uuid.UUID
	repo := &mockEventRepo{
		getMarketplaceFn: func(ctx context.Context, excludeOwner uuid.UUID) ([]entity.SlotWithOwner, error) {
			gotExclude = excludeOwner
			return []entity.SlotWithOwner{slot}, nil
		},
	}

	svc := NewEventService(repo)
	resp, appErr := svc.GetMarketplace(context.Background(), me)

	require.Nil(t, appErr)
	assert.Equal(t, me, gotExclude)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Bob", resp.Slots[0].OwnerName)
	assert.Equal(t, string(entity.SlotStatusSwappable), resp.Slots[0].Status)
}
