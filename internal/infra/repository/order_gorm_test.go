package repository

import (
	"context"
	"testing"

	"craveconnect/internal/domain/model"
	"craveconnect/internal/infra/db"
	repo "craveconnect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func pendingOrder(t *testing.T, userID int64, reqs ...model.LineRequest) model.Order {
	t.Helper()
	o, err := model.NewPendingOrder(userID, reqs, model.PriceBook{1: 5, 2: 10, 3: 7})
	require.NoError(t, err)
	return o
}

func TestOrderGorm_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	r := NewOrderGormRepository(newTestDB(t))

	o := pendingOrder(t, 1, model.LineRequest{FoodID: 1, Quantity: 3}, model.LineRequest{FoodID: 2, Quantity: 1})
	require.NoError(t, r.Create(ctx, &o))
	require.NotZero(t, o.ID)

	got, err := r.FindPendingByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, int64(25), got.TotalPrice)
	assert.Equal(t, int64(1), got.Version)
	require.Len(t, got.Items, 2)
	assert.Equal(t, int64(1), got.Items[0].FoodID)

	_, err = r.FindOne(ctx, repo.OrderFilter{ID: o.ID, UserID: 2})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestOrderGorm_OnePendingPerUser(t *testing.T) {
	ctx := context.Background()
	r := NewOrderGormRepository(newTestDB(t))

	first := pendingOrder(t, 1, model.LineRequest{FoodID: 1, Quantity: 1})
	require.NoError(t, r.Create(ctx, &first))

	second := pendingOrder(t, 1, model.LineRequest{FoodID: 2, Quantity: 1})
	assert.ErrorIs(t, r.Create(ctx, &second), repo.ErrConflict)

	// a delivered order does not block a new pending one
	require.NoError(t, first.TransitionTo(model.OrderStatusDelivered))
	require.NoError(t, r.UpdateStatus(ctx, &first))
	third := pendingOrder(t, 1, model.LineRequest{FoodID: 2, Quantity: 1})
	require.NoError(t, r.Create(ctx, &third))
}

func TestOrderGorm_SaveRewritesItems(t *testing.T) {
	ctx := context.Background()
	r := NewOrderGormRepository(newTestDB(t))

	o := pendingOrder(t, 1, model.LineRequest{FoodID: 1, Quantity: 3}, model.LineRequest{FoodID: 2, Quantity: 1})
	require.NoError(t, r.Create(ctx, &o))

	loaded, err := r.FindOne(ctx, repo.OrderFilter{ID: o.ID})
	require.NoError(t, err)
	_, err = loaded.RemoveItem(2)
	require.NoError(t, err)
	require.NoError(t, loaded.MergeItems([]model.LineRequest{{FoodID: 3, Quantity: 2}}, model.PriceBook{3: 7}))
	require.NoError(t, r.Save(ctx, &loaded))
	assert.Equal(t, int64(2), loaded.Version)

	got, err := r.FindOne(ctx, repo.OrderFilter{ID: o.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(29), got.TotalPrice)
	assert.Equal(t, int64(2), got.Version)
	require.Len(t, got.Items, 2)
	var sum int64
	for _, it := range got.Items {
		sum += it.LineTotal
		assert.NotEqual(t, int64(2), it.FoodID)
	}
	assert.Equal(t, got.TotalPrice, sum)
}

func TestOrderGorm_SaveStaleVersion(t *testing.T) {
	ctx := context.Background()
	r := NewOrderGormRepository(newTestDB(t))

	o := pendingOrder(t, 1, model.LineRequest{FoodID: 1, Quantity: 1})
	require.NoError(t, r.Create(ctx, &o))

	a, err := r.FindOne(ctx, repo.OrderFilter{ID: o.ID})
	require.NoError(t, err)
	b, err := r.FindOne(ctx, repo.OrderFilter{ID: o.ID})
	require.NoError(t, err)

	require.NoError(t, a.MergeItems([]model.LineRequest{{FoodID: 1, Quantity: 1}}, model.PriceBook{1: 5}))
	require.NoError(t, r.Save(ctx, &a))

	require.NoError(t, b.MergeItems([]model.LineRequest{{FoodID: 2, Quantity: 1}}, model.PriceBook{2: 10}))
	assert.ErrorIs(t, r.Save(ctx, &b), repo.ErrConflict)

	got, err := r.FindOne(ctx, repo.OrderFilter{ID: o.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.TotalPrice)
	require.Len(t, got.Items, 1)
}

func TestOrderGorm_Delete(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	r := NewOrderGormRepository(gdb)

	o := pendingOrder(t, 1, model.LineRequest{FoodID: 1, Quantity: 1})
	require.NoError(t, r.Create(ctx, &o))

	assert.ErrorIs(t, r.Delete(ctx, repo.OrderFilter{}), repo.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, repo.OrderFilter{ID: o.ID, UserID: 2}), repo.ErrNotFound)
	require.NoError(t, r.Delete(ctx, repo.OrderFilter{ID: o.ID, UserID: 1}))

	var items int64
	require.NoError(t, gdb.Model(&model.OrderItem{}).Where("order_id = ?", o.ID).Count(&items).Error)
	assert.Zero(t, items)
	_, err := r.FindOne(ctx, repo.OrderFilter{ID: o.ID})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestOrderGorm_CountCustomersByVendor(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	r := NewOrderGormRepository(gdb)
	foods := NewFoodGormRepository(gdb)

	f1 := model.Food{ID: 1, Name: "rice", Price: 5, VendorID: 10}
	f2 := model.Food{ID: 2, Name: "stew", Price: 10, VendorID: 20}
	require.NoError(t, foods.Create(ctx, &f1))
	require.NoError(t, foods.Create(ctx, &f2))

	for _, uid := range []int64{1, 2} {
		o := pendingOrder(t, uid, model.LineRequest{FoodID: 1, Quantity: 1})
		require.NoError(t, r.Create(ctx, &o))
	}
	o := pendingOrder(t, 3, model.LineRequest{FoodID: 2, Quantity: 1})
	require.NoError(t, r.Create(ctx, &o))

	n, err := r.CountCustomersByVendor(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestUserOrderIndex_Idempotent(t *testing.T) {
	ctx := context.Background()
	idx := NewUserOrderIndexGorm(newTestDB(t))

	require.NoError(t, idx.AddOrderRef(ctx, 1, 7))
	require.NoError(t, idx.AddOrderRef(ctx, 1, 7))
	require.NoError(t, idx.AddOrderRef(ctx, 1, 3))

	ids, err := idx.ListOrderRefs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 7}, ids)

	require.NoError(t, idx.RemoveOrderRef(ctx, 1, 7))
	require.NoError(t, idx.RemoveOrderRef(ctx, 1, 7))
	ids, err = idx.ListOrderRefs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, ids)

	require.NoError(t, idx.RemoveAllForUser(ctx, 1))
	ids, err = idx.ListOrderRefs(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestTxManager_RollsBack(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	tm := NewTxManagerGorm(gdb)

	boom := assert.AnError
	err := tm.WithinTx(ctx, func(r repo.TxRepos) error {
		o := pendingOrder(t, 1, model.LineRequest{FoodID: 1, Quantity: 1})
		if err := r.Orders().Create(ctx, &o); err != nil {
			return err
		}
		if err := r.OrderIndex().AddOrderRef(ctx, 1, o.ID); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := NewOrderGormRepository(gdb).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	ids, err := NewUserOrderIndexGorm(gdb).ListOrderRefs(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestOrderGorm_ListByUserID(t *testing.T) {
	ctx := context.Background()
	r := NewOrderGormRepository(newTestDB(t))

	list, err := r.ListByUserID(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	o := pendingOrder(t, 1, model.LineRequest{FoodID: 2, Quantity: 2})
	require.NoError(t, r.Create(ctx, &o))
	list, err = r.ListByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Items, 1)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	list, err = r.ListByUserID(canceled, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
