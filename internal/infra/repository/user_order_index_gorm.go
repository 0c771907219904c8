package repository

import (
	"context"

	"craveconnect/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserOrderIndexGorm struct {
	db *gorm.DB
}

func NewUserOrderIndexGorm(db *gorm.DB) *UserOrderIndexGorm {
	return &UserOrderIndexGorm{db: db}
}

func (r *UserOrderIndexGorm) AddOrderRef(ctx context.Context, userID, orderID int64) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.UserOrderRef{UserID: userID, OrderID: orderID}).Error
}

func (r *UserOrderIndexGorm) RemoveOrderRef(ctx context.Context, userID, orderID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND order_id = ?", userID, orderID).
		Delete(&model.UserOrderRef{}).Error
}

func (r *UserOrderIndexGorm) ListOrderRefs(ctx context.Context, userID int64) ([]int64, error) {
	ids := []int64{}
	err := r.db.WithContext(ctx).Model(&model.UserOrderRef{}).
		Where("user_id = ?", userID).
		Order("order_id asc").
		Pluck("order_id", &ids).Error
	return ids, err
}

func (r *UserOrderIndexGorm) RemoveAllForUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.UserOrderRef{}).Error
}
