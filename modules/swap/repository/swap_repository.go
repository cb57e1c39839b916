package repository

import (
	"context"
	"time"

	"slotswap/core/database"
	"slotswap/core/logger"
	eventEntity "slotswap/modules/event/entity"
	"slotswap/modules/swap/entity"
	"slotswap/modules/swap/service"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Slots join LEFT so history listing survives a deleted slot; the
// COALESCEs keep the scan targets non-null.
const detailSelect = `
	SELECT sr.id, sr.reference, sr.requester_slot_id, sr.desired_slot_id,
	       sr.requester_id, sr.owner_id, sr.status, sr.created_at, sr.updated_at,
	       COALESCE(rs.title, '') AS requester_slot_title,
	       COALESCE(rs.start_time, to_timestamp(0)) AS requester_slot_start,
	       COALESCE(rs.end_time, to_timestamp(0)) AS requester_slot_end,
	       COALESCE(rs.status, '') AS requester_slot_status,
	       COALESCE(ds.title, '') AS desired_slot_title,
	       COALESCE(ds.start_time, to_timestamp(0)) AS desired_slot_start,
	       COALESCE(ds.end_time, to_timestamp(0)) AS desired_slot_end,
	       COALESCE(ds.status, '') AS desired_slot_status,
	       ru.name AS requester_name, ru.email AS requester_email,
	       ou.name AS owner_name, ou.email AS owner_email
	FROM swap_requests sr
	LEFT JOIN events rs ON rs.id = sr.requester_slot_id
	LEFT JOIN events ds ON ds.id = sr.desired_slot_id
	JOIN users ru ON ru.id = sr.requester_id
	JOIN users ou ON ou.id = sr.owner_id
`

// pendingPairConstraint is the partial unique index guarding one PENDING
// request per unordered slot pair (migrations/001_init.sql).
const pendingPairConstraint = "swap_requests_pending_pair_unique"

// SwapRepository implements service.SwapStore on Postgres.
type SwapRepository struct {
	DB database.Database
}

func NewSwapRepository(db database.Database) *SwapRepository {
	return &SwapRepository{DB: db}
}

func (r *SwapRepository) Begin(ctx context.Context) (service.SwapTx, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("SwapRepository:Begin:Error:", err)
		return nil, err
	}
	return &swapTx{tx: tx}, nil
}

func (r *SwapRepository) GetDetail(ctx context.Context, id uuid.UUID) (*entity.SwapRequestDetail, error) {
	query := detailSelect + ` WHERE sr.id = $1`

	var detail entity.SwapRequestDetail
	if err := r.DB.GetContext(ctx, &detail, query, id); err != nil {
		if database.IsNotFound(err) {
			return nil, nil
		}
		logger.Error("SwapRepository:GetDetail:Error:", err)
		return nil, err
	}
	return &detail, nil
}

func (r *SwapRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.SwapRequestDetail, error) {
	query := detailSelect + `
	WHERE sr.requester_id = $1 OR sr.owner_id = $1
	ORDER BY sr.created_at DESC`

	var details []entity.SwapRequestDetail
	if err := r.DB.SelectContext(ctx, &details, query, userID); err != nil {
		logger.Error("SwapRepository:ListByUser:Error:", err)
		return nil, err
	}
	return details, nil
}

// swapTx holds one negotiation transaction. All row locks it takes are
// released at commit or rollback.
type swapTx struct {
	tx *sqlx.Tx
}

func (t *swapTx) LockSlot(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error) {
	query := `
		SELECT id, title, slug, start_time, end_time, owner_id, status, created_at, updated_at
		FROM events
		WHERE id = $1
		FOR UPDATE
	`
	var slot eventEntity.Event
	if err := t.tx.GetContext(ctx, &slot, query, id); err != nil {
		if database.IsNotFound(err) {
			return nil, nil
		}
		logger.Error("SwapRepository:LockSlot:Error:", err)
		return nil, err
	}
	return &slot, nil
}

func (t *swapTx) LockRequest(ctx context.Context, id uuid.UUID) (*entity.SwapRequest, error) {
	query := `
		SELECT id, reference, requester_slot_id, desired_slot_id, requester_id, owner_id,
		       status, created_at, updated_at
		FROM swap_requests
		WHERE id = $1
		FOR UPDATE
	`
	var request entity.SwapRequest
	if err := t.tx.GetContext(ctx, &request, query, id); err != nil {
		if database.IsNotFound(err) {
			return nil, nil
		}
		logger.Error("SwapRepository:LockRequest:Error:", err)
		return nil, err
	}
	return &request, nil
}

func (t *swapTx) HasPendingPair(ctx context.Context, slotA, slotB uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM swap_requests
			WHERE status = $1
			  AND ((requester_slot_id = $2 AND desired_slot_id = $3)
			    OR (requester_slot_id = $3 AND desired_slot_id = $2))
		)
	`
	var exists bool
	if err := t.tx.GetContext(ctx, &exists, query, entity.SwapRequestStatusPending, slotA, slotB); err != nil {
		logger.Error("SwapRepository:HasPendingPair:Error:", err)
		return false, err
	}
	return exists, nil
}

func (t *swapTx) InsertRequest(ctx context.Context, request *entity.SwapRequest) error {
	query := `
		INSERT INTO swap_requests (reference, requester_slot_id, desired_slot_id,
		                           requester_id, owner_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now

	row := t.tx.QueryRowContext(ctx, query,
		request.Reference,
		request.RequesterSlotID,
		request.DesiredSlotID,
		request.RequesterID,
		request.OwnerID,
		request.Status,
		request.CreatedAt,
		request.UpdatedAt,
	)
	if err := row.Scan(&request.ID); err != nil {
		// Only the pending-pair index means "duplicate request"; the
		// reference column is unique too and must not alias to it.
		if database.IsUniqueViolationOn(err, pendingPairConstraint) {
			return service.ErrDuplicatePair
		}
		logger.Error("SwapRepository:InsertRequest:Error:", err)
		return err
	}
	return nil
}

func (t *swapTx) UpdateSlotStatus(ctx context.Context, slotID uuid.UUID, status eventEntity.SlotStatus) error {
	query := `UPDATE events SET status = $1, updated_at = $2 WHERE id = $3`
	if _, err := t.tx.ExecContext(ctx, query, status, time.Now(), slotID); err != nil {
		logger.Error("SwapRepository:UpdateSlotStatus:Error:", err)
		return err
	}
	return nil
}

func (t *swapTx) UpdateSlotOwnerAndStatus(ctx context.Context, slotID, newOwner uuid.UUID, status eventEntity.SlotStatus) error {
	query := `UPDATE events SET owner_id = $1, status = $2, updated_at = $3 WHERE id = $4`
	if _, err := t.tx.ExecContext(ctx, query, newOwner, status, time.Now(), slotID); err != nil {
		logger.Error("SwapRepository:UpdateSlotOwnerAndStatus:Error:", err)
		return err
	}
	return nil
}

func (t *swapTx) UpdateRequestStatus(ctx context.Context, requestID uuid.UUID, status entity.SwapRequestStatus) error {
	query := `UPDATE swap_requests SET status = $1, updated_at = $2 WHERE id = $3`
	if _, err := t.tx.ExecContext(ctx, query, status, time.Now(), requestID); err != nil {
		logger.Error("SwapRepository:UpdateRequestStatus:Error:", err)
		return err
	}
	return nil
}

func (t *swapTx) Commit() error {
	return t.tx.Commit()
}

func (t *swapTx) Rollback() error {
	return t.tx.Rollback()
}
