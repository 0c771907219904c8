package repository

import (
	"context"

	repo "craveconnect/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders  repo.OrderRepository
	index   repo.UserOrderIndex
	foods   repo.FoodRepository
	users   repo.UserRepository
	vendors repo.VendorRepository
	reviews repo.ReviewRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository    { return r.orders }
func (r *txReposGorm) OrderIndex() repo.UserOrderIndex { return r.index }
func (r *txReposGorm) Foods() repo.FoodRepository      { return r.foods }
func (r *txReposGorm) Users() repo.UserRepository      { return r.users }
func (r *txReposGorm) Vendors() repo.VendorRepository  { return r.vendors }
func (r *txReposGorm) Reviews() repo.ReviewRepository  { return r.reviews }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// every repo is rebuilt on tx
		r := &txReposGorm{
			orders:  NewOrderGormRepository(tx),
			index:   NewUserOrderIndexGorm(tx),
			foods:   NewFoodGormRepository(tx),
			users:   NewUserGormRepository(tx),
			vendors: NewVendorGormRepository(tx),
			reviews: NewReviewGormRepository(tx),
		}
		return fn(r)
	})
}
