package usecase

import (
	"context"

	"craveconnect/internal/domain/model"
	repo "craveconnect/internal/repository"
)

type AdminUsecase struct {
	admins  repo.AdminRepository
	users   repo.UserRepository
	vendors repo.VendorRepository
	orders  repo.OrderRepository
	reviews repo.ReviewRepository
	foods   repo.FoodRepository
}

func NewAdminUsecase(
	admins repo.AdminRepository,
	users repo.UserRepository,
	vendors repo.VendorRepository,
	orders repo.OrderRepository,
	reviews repo.ReviewRepository,
	foods repo.FoodRepository,
) *AdminUsecase {
	return &AdminUsecase{
		admins:  admins,
		users:   users,
		vendors: vendors,
		orders:  orders,
		reviews: reviews,
		foods:   foods,
	}
}

type UpdateAdminInput struct {
	Firstname        *string `json:"firstname"`
	Lastname         *string `json:"lastname"`
	Phone            *string `json:"phone"`
	StateOfResidence *string `json:"stateOfResidence"`
	Location         *string `json:"location"`
}

func requireAdmin(p model.Principal) error {
	if p.ID <= 0 || p.Role != model.RoleAdmin {
		return Forbidden("forbidden")
	}
	return nil
}

func (u *AdminUsecase) Stats(ctx context.Context, p model.Principal) (model.PlatformStats, error) {
	if err := requireAdmin(p); err != nil {
		return model.PlatformStats{}, err
	}
	var (
		s   model.PlatformStats
		err error
	)
	if s.Users, err = u.users.Count(ctx); err != nil {
		return model.PlatformStats{}, fromRepo(err, "")
	}
	if s.Vendors, err = u.vendors.Count(ctx); err != nil {
		return model.PlatformStats{}, fromRepo(err, "")
	}
	if s.Orders, err = u.orders.Count(ctx); err != nil {
		return model.PlatformStats{}, fromRepo(err, "")
	}
	if s.Reviews, err = u.reviews.Count(ctx, repo.ReviewFilter{}); err != nil {
		return model.PlatformStats{}, fromRepo(err, "")
	}
	if s.Foods, err = u.foods.Count(ctx); err != nil {
		return model.PlatformStats{}, fromRepo(err, "")
	}
	return s, nil
}

func (u *AdminUsecase) List(ctx context.Context, p model.Principal) ([]model.Admin, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	admins, err := u.admins.List(ctx)
	if err != nil {
		return nil, fromRepo(err, "admin not found")
	}
	return admins, nil
}

func (u *AdminUsecase) Get(ctx context.Context, p model.Principal, id int64) (model.Admin, error) {
	if err := requireAdmin(p); err != nil {
		return model.Admin{}, err
	}
	if id <= 0 {
		return model.Admin{}, ValidationError("invalid admin id")
	}
	a, err := u.admins.FindByID(ctx, id)
	if err != nil {
		return model.Admin{}, fromRepo(err, "admin not found")
	}
	return a, nil
}

// Update lets any admin edit any admin profile.
func (u *AdminUsecase) Update(ctx context.Context, p model.Principal, id int64, in UpdateAdminInput) (model.Admin, error) {
	a, err := u.Get(ctx, p, id)
	if err != nil {
		return model.Admin{}, err
	}

	for _, f := range []struct {
		dst      *string
		v        *string
		name     string
		required bool
	}{
		{&a.Firstname, in.Firstname, "firstname", true},
		{&a.Lastname, in.Lastname, "lastname", true},
		{&a.Phone, in.Phone, "phone", true},
		{&a.StateOfResidence, in.StateOfResidence, "stateOfResidence", true},
		{&a.Location, in.Location, "location", false},
	} {
		if err := setText(f.dst, f.v, f.name, f.required); err != nil {
			return model.Admin{}, err
		}
	}

	if err := u.admins.Update(ctx, &a); err != nil {
		return model.Admin{}, fromRepo(err, "admin not found")
	}
	return a, nil
}

func (u *AdminUsecase) Delete(ctx context.Context, p model.Principal, id int64) error {
	if err := requireAdmin(p); err != nil {
		return err
	}
	if id <= 0 {
		return ValidationError("invalid admin id")
	}
	return fromRepo(u.admins.Delete(ctx, id), "admin not found")
}
