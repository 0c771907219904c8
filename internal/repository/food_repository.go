package repository

import (
	"context"

	"craveconnect/internal/domain/model"
)

type FoodListQuery struct {
	VendorID *int64
}

type FoodRepository interface {
	List(ctx context.Context, q FoodListQuery) ([]model.Food, error)
	FindByID(ctx context.Context, id int64) (model.Food, error)
	Create(ctx context.Context, f *model.Food) error
	Update(ctx context.Context, f *model.Food) error
	SoftDelete(ctx context.Context, id int64) error
	SoftDeleteByVendor(ctx context.Context, vendorID int64) error
	CountByVendor(ctx context.Context, vendorID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}
