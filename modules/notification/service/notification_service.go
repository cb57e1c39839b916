package service

import (
	"context"
	"time"

	coreEntity "slotswap/core/entity"
	"slotswap/core/errors"
	"slotswap/core/logger"
	"slotswap/core/params"
	"slotswap/modules/notification/dto"
	"slotswap/modules/notification/entity"
	"slotswap/modules/notification/repository"

	"github.com/google/uuid"
)

type NotificationServiceInterface interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetMyNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedNotificationResponse, *errors.AppError)
	MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) *errors.AppError
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) *errors.AppError
	CountUnread(ctx context.Context, userID uuid.UUID) (int, *errors.AppError)
}

type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

// Create persists a notification. Called from the task worker, not the
// HTTP path.
func (s *NotificationService) Create(ctx context.Context, notification *entity.Notification) error {
	now := time.Now()
	notification.BaseEntity = coreEntity.BaseEntity{CreatedAt: now, UpdatedAt: now}
	if notification.Data == nil {
		notification.Data = entity.JSONB{}
	}
	return s.repo.Create(ctx, notification)
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedNotificationResponse, *errors.AppError) {
	page, err := s.repo.GetByUserID(ctx, userID, queryParams)
	if err != nil {
		logger.Error("NotificationService:GetMyNotifications:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get notifications", err)
	}

	items := make([]dto.NotificationResponse, 0, len(page.Items))
	for i := range page.Items {
		n := &page.Items[i]
		items = append(items, dto.NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			Data:      n.Data,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}

	return &dto.PaginatedNotificationResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) *errors.AppError {
	if err := s.repo.MarkAsRead(ctx, userID, ids); err != nil {
		logger.Error("NotificationService:MarkAsRead:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to mark notifications as read", err)
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) *errors.AppError {
	if err := s.repo.MarkAllAsRead(ctx, userID); err != nil {
		logger.Error("NotificationService:MarkAllAsRead:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to mark notifications as read", err)
	}
	return nil
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int, *errors.AppError) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		logger.Error("NotificationService:CountUnread:Error:", err)
		return 0, errors.NewAppError(errors.ErrInternalServer, "Failed to count unread notifications", err)
	}
	return count, nil
}
