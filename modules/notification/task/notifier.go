package task

import (
	"context"
	"fmt"

	"slotswap/core/logger"
	"slotswap/core/queue"
	notifEntity "slotswap/modules/notification/entity"
	swapEntity "slotswap/modules/swap/entity"
)

// Notifier turns swap lifecycle events into queued notification tasks.
// Delivery failures are logged and dropped; a notification is never
// worth failing a committed swap for.
type Notifier struct {
	queue *queue.Client
}

func NewNotifier(queue *queue.Client) *Notifier {
	return &Notifier{queue: queue}
}

func (n *Notifier) SwapRequested(ctx context.Context, detail *swapEntity.SwapRequestDetail) {
	n.enqueue(ctx, DeliverPayload{
		UserID: detail.OwnerID,
		Title:  "New swap request",
		Message: fmt.Sprintf("%s wants to swap %q for your slot %q",
			detail.RequesterName, detail.RequesterSlotTitle, detail.DesiredSlotTitle),
		Type: notifEntity.TypeSwapRequested,
		Data: map[string]any{
			"swap_request_id": detail.ID,
			"reference":       detail.Reference,
		},
	})
}

func (n *Notifier) SwapResolved(ctx context.Context, detail *swapEntity.SwapRequestDetail, accepted bool) {
	payload := DeliverPayload{
		UserID: detail.RequesterID,
		Data: map[string]any{
			"swap_request_id": detail.ID,
			"reference":       detail.Reference,
		},
	}
	if accepted {
		payload.Title = "Swap request accepted"
		payload.Message = fmt.Sprintf("%s accepted your swap request %s; you now own %q",
			detail.OwnerName, detail.Reference, detail.DesiredSlotTitle)
		payload.Type = notifEntity.TypeSwapAccepted
	} else {
		payload.Title = "Swap request rejected"
		payload.Message = fmt.Sprintf("%s rejected your swap request %s",
			detail.OwnerName, detail.Reference)
		payload.Type = notifEntity.TypeSwapRejected
	}
	n.enqueue(ctx, payload)
}

func (n *Notifier) enqueue(ctx context.Context, payload DeliverPayload) {
	t, err := NewDeliverTask(payload)
	if err != nil {
		logger.Error("Notifier:Enqueue:Marshal:Error:", err)
		return
	}
	if err := n.queue.Enqueue(ctx, t); err != nil {
		logger.Error("Notifier:Enqueue:Error:", err, "type", payload.Type, "user_id", payload.UserID)
	}
}
