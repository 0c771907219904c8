package usecase

import (
	"context"

	"craveconnect/internal/domain/model"
	repo "craveconnect/internal/repository"
)

type VendorUsecase struct {
	tx      repo.TransactionManager
	vendors repo.VendorRepository
	foods   repo.FoodRepository
	reviews repo.ReviewRepository
	orders  repo.OrderRepository
}

func NewVendorUsecase(
	tx repo.TransactionManager,
	vendors repo.VendorRepository,
	foods repo.FoodRepository,
	reviews repo.ReviewRepository,
	orders repo.OrderRepository,
) *VendorUsecase {
	return &VendorUsecase{tx: tx, vendors: vendors, foods: foods, reviews: reviews, orders: orders}
}

type UpdateVendorInput struct {
	Firstname        *string `json:"firstname"`
	Lastname         *string `json:"lastname"`
	Username         *string `json:"username"`
	Phone            *string `json:"phone"`
	StateOfResidence *string `json:"stateOfResidence"`
	Location         *string `json:"location"`
}

func (u *VendorUsecase) List(ctx context.Context) ([]model.Vendor, error) {
	vendors, err := u.vendors.List(ctx)
	if err != nil {
		return nil, fromRepo(err, "vendor not found")
	}
	return vendors, nil
}

func (u *VendorUsecase) Get(ctx context.Context, id int64) (model.Vendor, error) {
	if id <= 0 {
		return model.Vendor{}, ValidationError("invalid vendor id")
	}
	v, err := u.vendors.FindByID(ctx, id)
	if err != nil {
		return model.Vendor{}, fromRepo(err, "vendor not found")
	}
	return v, nil
}

func (u *VendorUsecase) Update(ctx context.Context, p model.Principal, id int64, in UpdateVendorInput) (model.Vendor, error) {
	if err := self(p, model.RoleVendor, id); err != nil {
		return model.Vendor{}, err
	}
	v, err := u.vendors.FindByID(ctx, id)
	if err != nil {
		return model.Vendor{}, fromRepo(err, "vendor not found")
	}

	for _, f := range []struct {
		dst      *string
		v        *string
		name     string
		required bool
	}{
		{&v.Firstname, in.Firstname, "firstname", true},
		{&v.Lastname, in.Lastname, "lastname", true},
		{&v.Username, in.Username, "username", false},
		{&v.Phone, in.Phone, "phone", false},
		{&v.StateOfResidence, in.StateOfResidence, "stateOfResidence", true},
		{&v.Location, in.Location, "location", true},
	} {
		if err := setText(f.dst, f.v, f.name, f.required); err != nil {
			return model.Vendor{}, err
		}
	}

	if err := u.vendors.Update(ctx, &v); err != nil {
		return model.Vendor{}, fromRepo(err, "vendor not found")
	}
	return v, nil
}

// Delete removes the vendor and soft-deletes its foods.
func (u *VendorUsecase) Delete(ctx context.Context, p model.Principal, id int64) error {
	if err := self(p, model.RoleVendor, id); err != nil {
		return err
	}
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Foods().SoftDeleteByVendor(ctx, id); err != nil {
			return fromRepo(err, "vendor not found")
		}
		return fromRepo(r.Vendors().Delete(ctx, id), "vendor not found")
	})
}

func (u *VendorUsecase) ListFoods(ctx context.Context, p model.Principal) ([]model.Food, error) {
	if p.Role != model.RoleVendor {
		return nil, Forbidden("forbidden")
	}
	vendorID := p.ID
	foods, err := u.foods.List(ctx, repo.FoodListQuery{VendorID: &vendorID})
	if err != nil {
		return nil, fromRepo(err, "food not found")
	}
	return foods, nil
}

// ListFoodReviews lists reviews of one of the caller's own foods.
func (u *VendorUsecase) ListFoodReviews(ctx context.Context, p model.Principal, foodID int64) ([]model.Review, error) {
	if p.Role != model.RoleVendor {
		return nil, Forbidden("forbidden")
	}
	if foodID <= 0 {
		return nil, ValidationError("invalid food id")
	}
	f, err := u.foods.FindByID(ctx, foodID)
	if err != nil {
		return nil, fromRepo(err, "food not found")
	}
	if f.VendorID != p.ID {
		return nil, Forbidden("not your food")
	}
	reviews, err := u.reviews.List(ctx, repo.ReviewFilter{FoodID: foodID})
	if err != nil {
		return nil, fromRepo(err, "review not found")
	}
	return reviews, nil
}

// Reviews lists every review left on the vendor's foods.
func (u *VendorUsecase) Reviews(ctx context.Context, vendorID int64) ([]model.Review, error) {
	if _, err := u.Get(ctx, vendorID); err != nil {
		return nil, err
	}
	reviews, err := u.reviews.List(ctx, repo.ReviewFilter{VendorID: vendorID})
	if err != nil {
		return nil, fromRepo(err, "review not found")
	}
	return reviews, nil
}

func (u *VendorUsecase) Dashboard(ctx context.Context, p model.Principal, vendorID int64) (model.VendorDashboard, error) {
	if err := self(p, model.RoleVendor, vendorID); err != nil {
		return model.VendorDashboard{}, err
	}
	foods, err := u.foods.CountByVendor(ctx, vendorID)
	if err != nil {
		return model.VendorDashboard{}, fromRepo(err, "vendor not found")
	}
	customers, err := u.orders.CountCustomersByVendor(ctx, vendorID)
	if err != nil {
		return model.VendorDashboard{}, fromRepo(err, "vendor not found")
	}
	reviews, err := u.reviews.Count(ctx, repo.ReviewFilter{VendorID: vendorID})
	if err != nil {
		return model.VendorDashboard{}, fromRepo(err, "vendor not found")
	}
	return model.VendorDashboard{
		VendorID:  vendorID,
		TotalFood: foods,
		Customers: customers,
		Reviews:   reviews,
	}, nil
}
