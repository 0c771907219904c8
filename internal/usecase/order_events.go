package usecase

import (
	"context"
	"time"

	"craveconnect/internal/domain/model"
	"craveconnect/internal/logging"
)

type OrderEventType string

const (
	OrderCreated       OrderEventType = "order.created"
	OrderUpdated       OrderEventType = "order.updated"
	OrderItemRemoved   OrderEventType = "order.item_removed"
	OrderDeleted       OrderEventType = "order.deleted"
	OrderStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent is emitted after a committed order mutation.
type OrderEvent struct {
	ID         string            `json:"id"`
	Type       OrderEventType    `json:"type"`
	OrderID    int64             `json:"order_id"`
	UserID     int64             `json:"user_id"`
	Status     model.OrderStatus `json:"status"`
	TotalPrice int64             `json:"total_price"`
	FoodID     int64             `json:"food_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, ev OrderEvent) error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderEvent(context.Context, OrderEvent) error { return nil }

const publishTimeout = 2 * time.Second

func newOrderEvent(t OrderEventType, o model.Order, now time.Time) OrderEvent {
	return OrderEvent{
		Type:       t,
		OrderID:    o.ID,
		UserID:     o.UserID,
		Status:     o.Status,
		TotalPrice: o.TotalPrice,
		OccurredAt: now,
	}
}

// publish runs after commit; the request outcome never depends on it.
func (u *OrderUsecase) publish(ctx context.Context, ev OrderEvent) {
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := u.events.PublishOrderEvent(pctx, ev); err != nil {
		logging.FromContext(ctx).Warn("order event not published",
			"type", ev.Type, "order_id", ev.OrderID, "error", err)
	}
}
