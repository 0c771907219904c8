package usecase

import (
	"context"
	"net/http"
	"testing"

	"craveconnect/internal/domain/model"
	infraRepo "craveconnect/internal/infra/repository"
	repo "craveconnect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountsFixture struct {
	*orderFixture
	users   repo.UserRepository
	vendors repo.VendorRepository
	admins  repo.AdminRepository
	reviews repo.ReviewRepository
}

func newAccountsFixture(t *testing.T) *accountsFixture {
	t.Helper()
	f := &accountsFixture{orderFixture: newOrderFixture(t)}
	f.users = infraRepo.NewUserGormRepository(f.db)
	f.vendors = infraRepo.NewVendorGormRepository(f.db)
	f.admins = infraRepo.NewAdminGormRepository(f.db)
	f.reviews = infraRepo.NewReviewGormRepository(f.db)

	ctx := context.Background()
	require.NoError(t, f.users.Create(ctx, &model.User{ID: 1, Firstname: "a", Lastname: "a", Email: "alice@example.com", StateOfResidence: "Lagos", PasswordHash: "x"}))
	require.NoError(t, f.users.Create(ctx, &model.User{ID: 2, Firstname: "b", Lastname: "b", Email: "bob@example.com", StateOfResidence: "Lagos", PasswordHash: "x", IsBlocked: true}))
	require.NoError(t, f.vendors.Create(ctx, &model.Vendor{ID: 1, Firstname: "v", Lastname: "v", Email: "v1@example.com", StateOfResidence: "Oyo", Location: "Ibadan", PasswordHash: "x"}))
	require.NoError(t, f.vendors.Create(ctx, &model.Vendor{ID: 2, Firstname: "w", Lastname: "w", Email: "v2@example.com", StateOfResidence: "Oyo", Location: "Ibadan", PasswordHash: "x"}))
	require.NoError(t, f.admins.Create(ctx, &model.Admin{ID: 1, Firstname: "ad", Lastname: "min", Email: "admin@example.com", Phone: "1", StateOfResidence: "Abuja", PasswordHash: "x"}))
	return f
}

var (
	vendor1 = model.Principal{ID: 1, Role: model.RoleVendor}
	vendor2 = model.Principal{ID: 2, Role: model.RoleVendor}
	admin1  = model.Principal{ID: 1, Role: model.RoleAdmin}
)

func TestFoodUsecase_Ownership(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()
	uc := NewFoodUsecase(f.foods, f.vendors)

	food, err := uc.Create(ctx, vendor2, CreateFoodInput{Name: "suya", Description: "beef", Recipes: "pepper", Price: 15, VendorID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), food.VendorID)

	price := int64(20)
	_, err = uc.Update(ctx, vendor1, food.ID, UpdateFoodInput{Price: &price})
	assertStatus(t, err, http.StatusForbidden)
	updated, err := uc.Update(ctx, vendor2, food.ID, UpdateFoodInput{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, int64(20), updated.Price)

	_, err = uc.Create(ctx, admin1, CreateFoodInput{Name: "x", Description: "x", Recipes: "x", Price: 1})
	assertStatus(t, err, http.StatusBadRequest)
	_, err = uc.Create(ctx, admin1, CreateFoodInput{Name: "x", Description: "x", Recipes: "x", Price: 1, VendorID: 99})
	assertStatus(t, err, http.StatusNotFound)
	_, err = uc.Create(ctx, alice, CreateFoodInput{Name: "x", Description: "x", Recipes: "x", Price: 1})
	assertStatus(t, err, http.StatusForbidden)
	_, err = uc.Create(ctx, vendor1, CreateFoodInput{Name: "x", Description: "", Recipes: "x", Price: 1})
	assertStatus(t, err, http.StatusBadRequest)

	assertStatus(t, uc.Delete(ctx, vendor1, food.ID), http.StatusForbidden)
	require.NoError(t, uc.Delete(ctx, admin1, food.ID))
	_, err = uc.Get(ctx, food.ID)
	assertStatus(t, err, http.StatusNotFound)
}

func TestFoodUsecase_PriceChangeKeepsOrderTotals(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()
	foods := NewFoodUsecase(f.foods, f.vendors)

	o, _, err := f.uc.MakeOrder(ctx, alice, items(1, 2))
	require.NoError(t, err)

	price := int64(50)
	_, err = foods.Update(ctx, vendor1, 1, UpdateFoodInput{Price: &price})
	require.NoError(t, err)

	stored, err := f.uc.GetOrder(ctx, alice, o.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stored.TotalPrice)

	merged, _, err := f.uc.MakeOrder(ctx, alice, items(1, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(60), merged.TotalPrice)
}

func TestReviewUsecase_OnlyOwnReviews(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()
	uc := NewReviewUsecase(f.reviews, f.foods)

	rv, err := uc.Create(ctx, alice, CreateReviewInput{FoodID: 1, Comment: "  tasty ", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, "tasty", rv.Comment)

	_, err = uc.Create(ctx, alice, CreateReviewInput{FoodID: 1, Comment: "x", Rating: 6})
	assertStatus(t, err, http.StatusBadRequest)
	_, err = uc.Create(ctx, alice, CreateReviewInput{FoodID: 42, Comment: "x", Rating: 3})
	assertStatus(t, err, http.StatusNotFound)

	rating := 2
	_, err = uc.Update(ctx, bob, rv.ID, UpdateReviewInput{Rating: &rating})
	assertStatus(t, err, http.StatusNotFound)
	updated, err := uc.Update(ctx, alice, rv.ID, UpdateReviewInput{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)

	mine, err := uc.List(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	theirs, err := uc.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	_, err = uc.Delete(ctx, bob, rv.ID)
	assertStatus(t, err, http.StatusNotFound)
	deleted, err := uc.Delete(ctx, alice, rv.ID)
	require.NoError(t, err)
	assert.Equal(t, rv.ID, deleted.ID)
}

func TestUserUsecase_GetAndDelete(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()
	uc := NewUserUsecase(txFor(f), f.users, f.index)

	o, _, err := f.uc.MakeOrder(ctx, alice, items(1, 1))
	require.NoError(t, err)
	require.NoError(t, f.reviews.Create(ctx, &model.Review{UserID: alice.ID, FoodID: 1, Comment: "ok", Rating: 3}))

	got, err := uc.Get(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{o.ID}, got.Orders)

	name := " Alicia "
	_, err = uc.Update(ctx, bob, alice.ID, UpdateUserInput{Firstname: &name})
	assertStatus(t, err, http.StatusForbidden)
	updated, err := uc.Update(ctx, alice, alice.ID, UpdateUserInput{Firstname: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Firstname)

	assertStatus(t, uc.Delete(ctx, bob, alice.ID), http.StatusForbidden)
	require.NoError(t, uc.Delete(ctx, alice, alice.ID))

	_, err = uc.Get(ctx, alice.ID)
	assertStatus(t, err, http.StatusNotFound)
	n, err := f.orders.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	f.assertIndex(t, alice.ID)
	left, err := f.reviews.Count(ctx, repo.ReviewFilter{UserID: alice.ID})
	require.NoError(t, err)
	assert.Zero(t, left)
}

func TestVendorUsecase_DashboardAndDelete(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()
	uc := NewVendorUsecase(txFor(f), f.vendors, f.foods, f.reviews, f.orders)

	_, _, err := f.uc.MakeOrder(ctx, alice, items(1, 1, 2, 1))
	require.NoError(t, err)
	_, _, err = f.uc.MakeOrder(ctx, bob, items(3, 1))
	require.NoError(t, err)
	require.NoError(t, f.reviews.Create(ctx, &model.Review{UserID: alice.ID, FoodID: 2, Comment: "ok", Rating: 4}))

	dash, err := uc.Dashboard(ctx, vendor1, 1)
	require.NoError(t, err)
	assert.Equal(t, model.VendorDashboard{VendorID: 1, TotalFood: 3, Customers: 2, Reviews: 1}, dash)

	_, err = uc.Dashboard(ctx, vendor2, 1)
	assertStatus(t, err, http.StatusForbidden)
	_, err = uc.ListFoodReviews(ctx, vendor2, 2)
	assertStatus(t, err, http.StatusForbidden)

	reviews, err := uc.Reviews(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	require.NoError(t, uc.Delete(ctx, vendor1, 1))
	_, err = uc.Get(ctx, 1)
	assertStatus(t, err, http.StatusNotFound)
	left, err := f.foods.CountByVendor(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, left)
}

func TestAdminUsecase_Stats(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()
	uc := NewAdminUsecase(f.admins, f.users, f.vendors, f.orders, f.reviews, f.foods)

	_, _, err := f.uc.MakeOrder(ctx, alice, items(1, 1))
	require.NoError(t, err)

	_, err = uc.Stats(ctx, alice)
	assertStatus(t, err, http.StatusForbidden)

	s, err := uc.Stats(ctx, admin1)
	require.NoError(t, err)
	assert.Equal(t, model.PlatformStats{Users: 2, Vendors: 2, Reviews: 0, Orders: 1, Foods: 3}, s)
}

func TestAccountChecker(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()
	c := NewAccountChecker(f.users, f.vendors, f.admins)

	require.NoError(t, c.CheckActive(ctx, alice))
	require.NoError(t, c.CheckActive(ctx, vendor1))
	require.NoError(t, c.CheckActive(ctx, admin1))
	assertStatus(t, c.CheckActive(ctx, bob), http.StatusForbidden)
	assertStatus(t, c.CheckActive(ctx, model.Principal{ID: 77, Role: model.RoleUser}), http.StatusUnauthorized)
	assertStatus(t, c.CheckActive(ctx, model.Principal{ID: 1, Role: "root"}), http.StatusUnauthorized)
}

func txFor(f *accountsFixture) repo.TransactionManager {
	return infraRepo.NewTxManagerGorm(f.db)
}
