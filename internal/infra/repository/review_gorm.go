package repository

import (
	"context"

	"craveconnect/internal/domain/model"
	repo "craveconnect/internal/repository"

	"gorm.io/gorm"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) filtered(ctx context.Context, f repo.ReviewFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Review{})
	if f.UserID != 0 {
		q = q.Where("reviews.user_id = ?", f.UserID)
	}
	if f.FoodID != 0 {
		q = q.Where("reviews.food_id = ?", f.FoodID)
	}
	if f.VendorID != 0 {
		q = q.Joins("JOIN foods ON foods.id = reviews.food_id").
			Where("foods.vendor_id = ?", f.VendorID)
	}
	return q
}

func (r *ReviewGormRepository) Create(ctx context.Context, rv *model.Review) error {
	return translate(r.db.WithContext(ctx).Create(rv).Error)
}

func (r *ReviewGormRepository) FindByID(ctx context.Context, id int64) (model.Review, error) {
	var rv model.Review
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return model.Review{}, translate(err)
	}
	return rv, nil
}

func (r *ReviewGormRepository) Update(ctx context.Context, rv *model.Review) error {
	return affected(r.db.WithContext(ctx).Model(&model.Review{}).
		Where("id = ?", rv.ID).
		Select("comment", "rating", "updated_at").
		Updates(rv))
}

func (r *ReviewGormRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&model.Review{}, id))
}

func (r *ReviewGormRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Review{}).Error
}

func (r *ReviewGormRepository) List(ctx context.Context, f repo.ReviewFilter) ([]model.Review, error) {
	var out []model.Review
	if err := r.filtered(ctx, f).Order("reviews.id asc").Find(&out).Error; err != nil {
		return []model.Review{}, err
	}
	return out, nil
}

func (r *ReviewGormRepository) Count(ctx context.Context, f repo.ReviewFilter) (int64, error) {
	var n int64
	err := r.filtered(ctx, f).Count(&n).Error
	return n, err
}
