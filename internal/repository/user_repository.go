package repository

import (
	"context"

	"craveconnect/internal/domain/model"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type VendorRepository interface {
	Create(ctx context.Context, v *model.Vendor) error
	FindByID(ctx context.Context, id int64) (model.Vendor, error)
	FindByEmail(ctx context.Context, email string) (model.Vendor, error)
	List(ctx context.Context) ([]model.Vendor, error)
	Update(ctx context.Context, v *model.Vendor) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type AdminRepository interface {
	Create(ctx context.Context, a *model.Admin) error
	FindByID(ctx context.Context, id int64) (model.Admin, error)
	FindByEmail(ctx context.Context, email string) (model.Admin, error)
	List(ctx context.Context) ([]model.Admin, error)
	Update(ctx context.Context, a *model.Admin) error
	Delete(ctx context.Context, id int64) error
}
