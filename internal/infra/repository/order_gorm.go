package repository

import (
	"context"

	"craveconnect/internal/domain/model"
	repo "craveconnect/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id asc")
	})
}

func applyOrderFilter(q *gorm.DB, f repo.OrderFilter) *gorm.DB {
	if f.ID != 0 {
		q = q.Where("id = ?", f.ID)
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return q
}

// Create inserts the order and its items. The partial unique index on
// pending orders turns a second pending order for the same user into
// ErrConflict.
func (r *OrderGormRepository) Create(ctx context.Context, o *model.Order) error {
	if o.Version == 0 {
		o.Version = 1
	}
	return translate(r.db.WithContext(ctx).Create(o).Error)
}

func (r *OrderGormRepository) FindOne(ctx context.Context, f repo.OrderFilter) (model.Order, error) {
	var o model.Order
	err := applyOrderFilter(r.withItems(ctx), f).First(&o).Error
	if err != nil {
		return model.Order{}, translate(err)
	}
	return o, nil
}

func (r *OrderGormRepository) FindPendingByUserID(ctx context.Context, userID int64) (model.Order, error) {
	return r.FindOne(ctx, repo.OrderFilter{UserID: userID, Status: model.OrderStatusPending})
}

func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var items []model.Order
	err := r.withItems(ctx).
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.Order{}, translate(err)
	}
	return items, nil
}

func (r *OrderGormRepository) bumpVersion(ctx context.Context, o *model.Order, fields map[string]any) error {
	fields["version"] = gorm.Expr("version + 1")
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND version = ?", o.ID, o.Version).
		Updates(fields)
	if res.Error != nil {
		return translate(res.Error)
	}
	// The caller loaded the row in this transaction, so a miss means
	// someone else wrote it first.
	if res.RowsAffected == 0 {
		return repo.ErrConflict
	}
	o.Version++
	return nil
}

func (r *OrderGormRepository) Save(ctx context.Context, o *model.Order) error {
	if err := r.bumpVersion(ctx, o, map[string]any{
		"total_price": o.TotalPrice,
		"status":      o.Status,
	}); err != nil {
		return err
	}

	// Items are rewritten as a whole; the (order_id, food_id) key keeps one
	// row per food.
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", o.ID).
		Delete(&model.OrderItem{}).Error; err != nil {
		return err
	}
	if len(o.Items) == 0 {
		return nil
	}
	for i := range o.Items {
		o.Items[i].ID = 0
		o.Items[i].OrderID = o.ID
	}
	return translate(r.db.WithContext(ctx).Create(&o.Items).Error)
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, o *model.Order) error {
	return r.bumpVersion(ctx, o, map[string]any{"status": o.Status})
}

// Delete removes the matching order and its items. f.ID is required.
func (r *OrderGormRepository) Delete(ctx context.Context, f repo.OrderFilter) error {
	if f.ID == 0 {
		return repo.ErrNotFound
	}
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", f.ID).
		Delete(&model.OrderItem{}).Error; err != nil {
		return err
	}
	return affected(applyOrderFilter(r.db.WithContext(ctx), f).Delete(&model.Order{}))
}

func (r *OrderGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&n).Error
	return n, err
}

// CountCustomersByVendor counts distinct users with at least one line for a
// food of the vendor.
func (r *OrderGormRepository) CountCustomersByVendor(ctx context.Context, vendorID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN foods ON foods.id = order_items.food_id").
		Where("foods.vendor_id = ?", vendorID).
		Distinct("orders.user_id").
		Count(&n).Error
	return n, err
}
