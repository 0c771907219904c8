package repository

import (
	"context"

	"craveconnect/internal/domain/model"
)

// ReviewFilter narrows List. Zero fields are ignored.
type ReviewFilter struct {
	UserID   int64
	FoodID   int64
	VendorID int64
}

type ReviewRepository interface {
	Create(ctx context.Context, r *model.Review) error
	FindByID(ctx context.Context, id int64) (model.Review, error)
	Update(ctx context.Context, r *model.Review) error
	Delete(ctx context.Context, id int64) error
	DeleteByUserID(ctx context.Context, userID int64) error
	List(ctx context.Context, f ReviewFilter) ([]model.Review, error)
	Count(ctx context.Context, f ReviewFilter) (int64, error)
}
