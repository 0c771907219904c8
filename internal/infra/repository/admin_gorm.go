package repository

import (
	"context"
	"strings"

	"craveconnect/internal/domain/model"
	domainrepo "craveconnect/internal/repository"

	"gorm.io/gorm"
)

type adminGormRepository struct {
	db *gorm.DB
}

func NewAdminGormRepository(db *gorm.DB) domainrepo.AdminRepository {
	return &adminGormRepository{db: db}
}

func (r *adminGormRepository) Create(ctx context.Context, a *model.Admin) error {
	return translate(r.db.WithContext(ctx).Create(a).Error)
}

func (r *adminGormRepository) FindByID(ctx context.Context, id int64) (model.Admin, error) {
	var a model.Admin
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return model.Admin{}, translate(err)
	}
	return a, nil
}

func (r *adminGormRepository) FindByEmail(ctx context.Context, email string) (model.Admin, error) {
	var a model.Admin
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&a).Error
	if err != nil {
		return model.Admin{}, translate(err)
	}
	return a, nil
}

func (r *adminGormRepository) List(ctx context.Context) ([]model.Admin, error) {
	var out []model.Admin
	if err := r.db.WithContext(ctx).Order("id asc").Find(&out).Error; err != nil {
		return []model.Admin{}, err
	}
	return out, nil
}

func (r *adminGormRepository) Update(ctx context.Context, a *model.Admin) error {
	return translate(r.db.WithContext(ctx).Save(a).Error)
}

func (r *adminGormRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&model.Admin{}, id))
}
