package repository

import (
	"context"
	"strings"

	"craveconnect/internal/domain/model"
	domainrepo "craveconnect/internal/repository"

	"gorm.io/gorm"
)

type vendorGormRepository struct {
	db *gorm.DB
}

func NewVendorGormRepository(db *gorm.DB) domainrepo.VendorRepository {
	return &vendorGormRepository{db: db}
}

func (r *vendorGormRepository) Create(ctx context.Context, v *model.Vendor) error {
	return translate(r.db.WithContext(ctx).Create(v).Error)
}

func (r *vendorGormRepository) FindByID(ctx context.Context, id int64) (model.Vendor, error) {
	var v model.Vendor
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		return model.Vendor{}, translate(err)
	}
	return v, nil
}

func (r *vendorGormRepository) FindByEmail(ctx context.Context, email string) (model.Vendor, error) {
	var v model.Vendor
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&v).Error
	if err != nil {
		return model.Vendor{}, translate(err)
	}
	return v, nil
}

func (r *vendorGormRepository) List(ctx context.Context) ([]model.Vendor, error) {
	var out []model.Vendor
	if err := r.db.WithContext(ctx).Order("id asc").Find(&out).Error; err != nil {
		return []model.Vendor{}, err
	}
	return out, nil
}

func (r *vendorGormRepository) Update(ctx context.Context, v *model.Vendor) error {
	return translate(r.db.WithContext(ctx).Save(v).Error)
}

func (r *vendorGormRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&model.Vendor{}, id))
}

func (r *vendorGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Vendor{}).Count(&n).Error
	return n, err
}
