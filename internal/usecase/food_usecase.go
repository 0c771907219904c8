package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"craveconnect/internal/domain/model"
	repo "craveconnect/internal/repository"
	"craveconnect/internal/validator"
)

type FoodUsecase struct {
	foods   repo.FoodRepository
	vendors repo.VendorRepository
}

func NewFoodUsecase(foods repo.FoodRepository, vendors repo.VendorRepository) *FoodUsecase {
	return &FoodUsecase{foods: foods, vendors: vendors}
}

type CreateFoodInput struct {
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Recipes       string     `json:"recipes"`
	Price         int64      `json:"price"`
	AvailableFrom *time.Time `json:"availableFrom"`
	AvailableTo   *time.Time `json:"availableTo"`
	// VendorID is only read when an admin creates the food.
	VendorID int64 `json:"vendorId"`
}

type UpdateFoodInput struct {
	Name          *string    `json:"name"`
	Description   *string    `json:"description"`
	Recipes       *string    `json:"recipes"`
	Price         *int64     `json:"price"`
	AvailableFrom *time.Time `json:"availableFrom"`
	AvailableTo   *time.Time `json:"availableTo"`
}

func invalidInput(err error) error {
	if errors.Is(err, validator.ErrInvalidInput) {
		return ValidationError(validator.Message(err))
	}
	return err
}

func (u *FoodUsecase) List(ctx context.Context, vendorID *int64) ([]model.Food, error) {
	foods, err := u.foods.List(ctx, repo.FoodListQuery{VendorID: vendorID})
	if err != nil {
		return nil, fromRepo(err, "food not found")
	}
	return foods, nil
}

func (u *FoodUsecase) Get(ctx context.Context, id int64) (model.Food, error) {
	if id <= 0 {
		return model.Food{}, ValidationError("invalid food id")
	}
	f, err := u.foods.FindByID(ctx, id)
	if err != nil {
		return model.Food{}, fromRepo(err, "food not found")
	}
	return f, nil
}

// ownerFor decides which vendor a new food belongs to.
func (u *FoodUsecase) ownerFor(ctx context.Context, p model.Principal, requested int64) (int64, error) {
	switch p.Role {
	case model.RoleVendor:
		return p.ID, nil
	case model.RoleAdmin:
		if requested <= 0 {
			return 0, ValidationError("vendorId is required")
		}
		if _, err := u.vendors.FindByID(ctx, requested); err != nil {
			return 0, fromRepo(err, "vendor not found")
		}
		return requested, nil
	}
	return 0, Forbidden("forbidden")
}

// editable loads a food the principal may change.
func (u *FoodUsecase) editable(ctx context.Context, p model.Principal, id int64) (model.Food, error) {
	if id <= 0 {
		return model.Food{}, ValidationError("invalid food id")
	}
	f, err := u.foods.FindByID(ctx, id)
	if err != nil {
		return model.Food{}, fromRepo(err, "food not found")
	}
	switch {
	case p.Role == model.RoleAdmin:
	case p.Role == model.RoleVendor && f.VendorID == p.ID:
	default:
		return model.Food{}, Forbidden("not your food")
	}
	return f, nil
}

func (u *FoodUsecase) Create(ctx context.Context, p model.Principal, in CreateFoodInput) (model.Food, error) {
	if err := validator.Required(map[string]string{
		"name":        in.Name,
		"description": in.Description,
		"recipes":     in.Recipes,
	}); err != nil {
		return model.Food{}, invalidInput(err)
	}
	if err := validator.Price(in.Price); err != nil {
		return model.Food{}, invalidInput(err)
	}
	if err := validator.Window(in.AvailableFrom, in.AvailableTo); err != nil {
		return model.Food{}, invalidInput(err)
	}
	vendorID, err := u.ownerFor(ctx, p, in.VendorID)
	if err != nil {
		return model.Food{}, err
	}

	f := model.Food{
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Recipes:       in.Recipes,
		Price:         in.Price,
		AvailableFrom: in.AvailableFrom,
		AvailableTo:   in.AvailableTo,
		VendorID:      vendorID,
	}
	if err := u.foods.Create(ctx, &f); err != nil {
		return model.Food{}, fromRepo(err, "food not found")
	}
	return f, nil
}

func (u *FoodUsecase) Update(ctx context.Context, p model.Principal, id int64, in UpdateFoodInput) (model.Food, error) {
	f, err := u.editable(ctx, p, id)
	if err != nil {
		return model.Food{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return model.Food{}, ValidationError("name is required")
		}
		f.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		f.Description = *in.Description
	}
	if in.Recipes != nil {
		f.Recipes = *in.Recipes
	}
	if in.Price != nil {
		if err := validator.Price(*in.Price); err != nil {
			return model.Food{}, invalidInput(err)
		}
		f.Price = *in.Price
	}
	if in.AvailableFrom != nil {
		f.AvailableFrom = in.AvailableFrom
	}
	if in.AvailableTo != nil {
		f.AvailableTo = in.AvailableTo
	}
	if err := validator.Window(f.AvailableFrom, f.AvailableTo); err != nil {
		return model.Food{}, invalidInput(err)
	}

	if err := u.foods.Update(ctx, &f); err != nil {
		return model.Food{}, fromRepo(err, "food not found")
	}
	return f, nil
}

// Delete soft-deletes the food. Existing order lines keep their totals.
func (u *FoodUsecase) Delete(ctx context.Context, p model.Principal, id int64) error {
	if _, err := u.editable(ctx, p, id); err != nil {
		return err
	}
	return fromRepo(u.foods.SoftDelete(ctx, id), "food not found")
}
