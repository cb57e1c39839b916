package repository

import (
	"context"
	"time"

	"slotswap/core/database"
	"slotswap/core/logger"
	"slotswap/modules/event/entity"

	"github.com/google/uuid"
)

type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Event, error)
	Update(ctx context.Context, event *entity.Event, expectedStatus entity.SlotStatus) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	GetMarketplace(ctx context.Context, excludeOwner uuid.UUID) ([]entity.SlotWithOwner, error)
}

type EventRepository struct {
	DB database.Database
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (title, slug, start_time, end_time, owner_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	row := r.DB.QueryRowContext(ctx, query,
		event.Title,
		event.Slug,
		event.StartTime,
		event.EndTime,
		event.OwnerID,
		event.Status,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err := row.Scan(&event.ID); err != nil {
		logger.Error("EventRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `
		SELECT id, title, slug, start_time, end_time, owner_id, status, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	var event entity.Event
	if err := r.DB.GetContext(ctx, &event, query, id); err != nil {
		if database.IsNotFound(err) {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID:Error:", err)
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Event, error) {
	query := `
		SELECT id, title, slug, start_time, end_time, owner_id, status, created_at, updated_at
		FROM events
		WHERE owner_id = $1
		ORDER BY start_time ASC
	`
	var events []entity.Event
	if err := r.DB.SelectContext(ctx, &events, query, ownerID); err != nil {
		logger.Error("EventRepository:GetByOwner:Error:", err)
		return nil, err
	}
	return events, nil
}

// Update writes the mutable fields, guarded by a compare-and-swap on the
// status the caller read. Returns false when no row matched, meaning the
// slot vanished or its status moved concurrently (e.g. the negotiation
// engine locked it).
func (r *EventRepository) Update(ctx context.Context, event *entity.Event, expectedStatus entity.SlotStatus) (bool, error) {
	query := `
		UPDATE events
		SET title = $1, slug = $2, start_time = $3, end_time = $4, status = $5, updated_at = $6
		WHERE id = $7 AND status = $8
	`
	event.UpdatedAt = time.Now()

	res, err := r.DB.SQLx().ExecContext(ctx, query,
		event.Title,
		event.Slug,
		event.StartTime,
		event.EndTime,
		event.Status,
		event.UpdatedAt,
		event.ID,
		expectedStatus,
	)
	if err != nil {
		logger.Error("EventRepository:Update:Error:", err)
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete removes a slot unless the negotiation engine holds it. Returns
// false when nothing was deleted.
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		DELETE FROM events
		WHERE id = $1 AND status <> $2
	`
	res, err := r.DB.SQLx().ExecContext(ctx, query, id, entity.SlotStatusSwapPending)
	if err != nil {
		logger.Error("EventRepository:Delete:Error:", err)
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *EventRepository) GetMarketplace(ctx context.Context, excludeOwner uuid.UUID) ([]entity.SlotWithOwner, error) {
	query := `
		SELECT e.id, e.title, e.slug, e.start_time, e.end_time, e.owner_id, e.status,
		       e.created_at, e.updated_at,
		       u.name AS owner_name, u.email AS owner_email
		FROM events e
		JOIN users u ON u.id = e.owner_id
		WHERE e.status = $1 AND e.owner_id <> $2
		ORDER BY e.start_time ASC
	`
	var slots []entity.SlotWithOwner
	if err := r.DB.SelectContext(ctx, &slots, query, entity.SlotStatusSwappable, excludeOwner); err != nil {
		logger.Error("EventRepository:GetMarketplace:Error:", err)
		return nil, err
	}
	return slots, nil
}
