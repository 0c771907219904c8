package repository

import (
	"context"

	"craveconnect/internal/domain/model"
)

// OrderFilter narrows FindOne and Delete. Zero fields are ignored.
type OrderFilter struct {
	ID     int64
	UserID int64
	Status model.OrderStatus
}

// OrderRepository persists orders together with their line items.
type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindOne(ctx context.Context, f OrderFilter) (model.Order, error)
	FindPendingByUserID(ctx context.Context, userID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)

	// Save writes total, status and items when o.Version still matches the
	// stored row, then bumps o.Version. A mismatch returns ErrConflict.
	Save(ctx context.Context, o *model.Order) error
	// UpdateStatus is Save without touching line items.
	UpdateStatus(ctx context.Context, o *model.Order) error

	Delete(ctx context.Context, f OrderFilter) error
	Count(ctx context.Context) (int64, error)
	CountCustomersByVendor(ctx context.Context, vendorID int64) (int64, error)
}

// UserOrderIndex keeps each user's set of order ids. Add and Remove are
// idempotent.
type UserOrderIndex interface {
	AddOrderRef(ctx context.Context, userID, orderID int64) error
	RemoveOrderRef(ctx context.Context, userID, orderID int64) error
	ListOrderRefs(ctx context.Context, userID int64) ([]int64, error)
	RemoveAllForUser(ctx context.Context, userID int64) error
}
