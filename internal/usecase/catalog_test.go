package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"craveconnect/internal/domain/model"
	repo "craveconnect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type FoodRepoMock struct{ mock.Mock }

func (m *FoodRepoMock) List(ctx context.Context, q repo.FoodListQuery) ([]model.Food, error) {
	args := m.Called(ctx, q)
	foods, _ := args.Get(0).([]model.Food)
	return foods, args.Error(1)
}

func (m *FoodRepoMock) FindByID(ctx context.Context, id int64) (model.Food, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(model.Food)
	return f, args.Error(1)
}

func (m *FoodRepoMock) Create(ctx context.Context, f *model.Food) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *FoodRepoMock) Update(ctx context.Context, f *model.Food) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *FoodRepoMock) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *FoodRepoMock) SoftDeleteByVendor(ctx context.Context, vendorID int64) error {
	args := m.Called(ctx, vendorID)
	return args.Error(0)
}

func (m *FoodRepoMock) CountByVendor(ctx context.Context, vendorID int64) (int64, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *FoodRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestResolvePrices_DedupsIDs(t *testing.T) {
	foods := &FoodRepoMock{}
	foods.On("FindByID", mock.Anything, int64(1)).Return(model.Food{ID: 1, Price: 5}, nil).Once()
	foods.On("FindByID", mock.Anything, int64(2)).Return(model.Food{ID: 2, Price: 10}, nil).Once()

	prices, err := NewCatalogLookup(foods, time.Second).ResolvePrices(context.Background(), []int64{1, 2, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, model.PriceBook{1: 5, 2: 10}, prices)
	foods.AssertExpectations(t)
}

func TestResolvePrices_Missing(t *testing.T) {
	foods := &FoodRepoMock{}
	foods.On("FindByID", mock.Anything, int64(1)).Return(model.Food{ID: 1, Price: 5}, nil).Maybe()
	foods.On("FindByID", mock.Anything, int64(7)).Return(model.Food{}, repo.ErrNotFound)

	_, err := NewCatalogLookup(foods, time.Second).ResolvePrices(context.Background(), []int64{1, 7})
	assertStatus(t, err, http.StatusNotFound)
	assert.Contains(t, err.Error(), "food 7 not found")
}

func TestResolvePrices_Timeout(t *testing.T) {
	foods := &FoodRepoMock{}
	foods.On("FindByID", mock.Anything, int64(1)).
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return(model.Food{}, context.DeadlineExceeded)

	start := time.Now()
	_, err := NewCatalogLookup(foods, 20*time.Millisecond).ResolvePrices(context.Background(), []int64{1})
	assertStatus(t, err, http.StatusGatewayTimeout)
	assert.Less(t, time.Since(start), time.Second)
}

func TestResolvePrices_BackendError(t *testing.T) {
	foods := &FoodRepoMock{}
	foods.On("FindByID", mock.Anything, int64(1)).Return(model.Food{}, errors.New("connection refused"))

	_, err := NewCatalogLookup(foods, time.Second).ResolvePrices(context.Background(), []int64{1})
	assertStatus(t, err, http.StatusServiceUnavailable)
}

func TestResolvePrice_DeletedFood(t *testing.T) {
	foods := &FoodRepoMock{}
	foods.On("FindByID", mock.Anything, int64(3)).Return(model.Food{}, repo.ErrNotFound)

	price, ok, err := NewCatalogLookup(foods, 0).ResolvePrice(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, price)
}

func TestMakeOrder_CatalogTimeoutOpensNoTransaction(t *testing.T) {
	foods := &FoodRepoMock{}
	foods.On("FindByID", mock.Anything, int64(1)).
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return(model.Food{}, context.DeadlineExceeded)

	tx := &TxManagerMock{}
	uc := NewOrderUsecase(tx, nil, NewCatalogLookup(foods, 10*time.Millisecond), nil)

	_, _, err := uc.MakeOrder(context.Background(), alice, items(1, 1))
	assertStatus(t, err, http.StatusGatewayTimeout)
	tx.AssertNotCalled(t, "WithinTx", mock.Anything, mock.Anything)
}

type TxManagerMock struct{ mock.Mock }

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}
