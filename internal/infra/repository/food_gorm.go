package repository

import (
	"context"

	"craveconnect/internal/domain/model"
	repo "craveconnect/internal/repository"

	"gorm.io/gorm"
)

type FoodGormRepository struct {
	db *gorm.DB
}

func NewFoodGormRepository(db *gorm.DB) *FoodGormRepository {
	return &FoodGormRepository{db: db}
}

func (r *FoodGormRepository) List(ctx context.Context, q repo.FoodListQuery) ([]model.Food, error) {
	tx := r.db.WithContext(ctx).Model(&model.Food{})
	if q.VendorID != nil {
		tx = tx.Where("vendor_id = ?", *q.VendorID)
	}
	var foods []model.Food
	if err := tx.Order("id asc").Find(&foods).Error; err != nil {
		return []model.Food{}, err
	}
	return foods, nil
}

// FindByID ignores soft-deleted foods.
func (r *FoodGormRepository) FindByID(ctx context.Context, id int64) (model.Food, error) {
	var f model.Food
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return model.Food{}, translate(err)
	}
	return f, nil
}

func (r *FoodGormRepository) Create(ctx context.Context, f *model.Food) error {
	return translate(r.db.WithContext(ctx).Create(f).Error)
}

func (r *FoodGormRepository) Update(ctx context.Context, f *model.Food) error {
	return affected(r.db.WithContext(ctx).Model(&model.Food{}).
		Where("id = ?", f.ID).
		Select("name", "description", "recipes", "price", "available_from", "available_to", "vendor_id", "updated_at").
		Updates(f))
}

func (r *FoodGormRepository) SoftDelete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&model.Food{}, id))
}

func (r *FoodGormRepository) SoftDeleteByVendor(ctx context.Context, vendorID int64) error {
	return r.db.WithContext(ctx).Where("vendor_id = ?", vendorID).Delete(&model.Food{}).Error
}

func (r *FoodGormRepository) CountByVendor(ctx context.Context, vendorID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Food{}).Where("vendor_id = ?", vendorID).Count(&n).Error
	return n, err
}

func (r *FoodGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Food{}).Count(&n).Error
	return n, err
}
