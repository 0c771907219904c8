package repository

import "context"

// TxRepos hands out repositories bound to one transaction.
type TxRepos interface {
	Orders() OrderRepository
	OrderIndex() UserOrderIndex
	Foods() FoodRepository
	Users() UserRepository
	Vendors() VendorRepository
	Reviews() ReviewRepository
}

// TransactionManager hides begin/commit/rollback from usecases. fn's error
// rolls the transaction back and is returned unchanged.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
