package task

import (
	"context"
	"encoding/json"
	"fmt"

	"slotswap/core/constants"
	"slotswap/core/logger"
	"slotswap/modules/notification/entity"
	"slotswap/modules/notification/service"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// DeliverPayload is the wire format of a notification:deliver task.
type DeliverPayload struct {
	UserID  uuid.UUID      `json:"user_id"`
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Type    string         `json:"type"`
	Data    map[string]any `json:"data"`
}

func NewDeliverTask(payload DeliverPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskNotificationDeliver, b), nil
}

// Handler processes queued notification tasks.
type Handler struct {
	service service.NotificationServiceInterface
}

func NewHandler(service service.NotificationServiceInterface) *Handler {
	return &Handler{service: service}
}

func (h *Handler) HandleDeliver(ctx context.Context, t *asynq.Task) error {
	var payload DeliverPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		// Malformed payloads never succeed on retry.
		logger.Error("NotificationTask:HandleDeliver:Unmarshal:Error:", err)
		return fmt.Errorf("unmarshal deliver payload: %w: %w", err, asynq.SkipRetry)
	}

	notification := &entity.Notification{
		UserID:  payload.UserID,
		Title:   payload.Title,
		Message: payload.Message,
		Type:    payload.Type,
		Data:    entity.JSONB(payload.Data),
	}
	if err := h.service.Create(ctx, notification); err != nil {
		logger.Error("NotificationTask:HandleDeliver:Create:Error:", err)
		return err
	}

	logger.Debug("NotificationTask:HandleDeliver:Success",
		"user_id", payload.UserID,
		"type", payload.Type,
	)
	return nil
}
