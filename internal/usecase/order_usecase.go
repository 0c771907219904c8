package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"craveconnect/internal/domain/model"
	"craveconnect/internal/logging"
	repo "craveconnect/internal/repository"
)

// PriceResolver is the slice of CatalogLookup the order engine needs.
type PriceResolver interface {
	ResolvePrices(ctx context.Context, ids []int64) (model.PriceBook, error)
}

// OrderUsecase is the order reconciliation engine. Prices are resolved
// before the transaction opens; every write of one call commits together.
type OrderUsecase struct {
	tx      repo.TransactionManager
	orders  repo.OrderRepository
	catalog PriceResolver
	events  OrderEventPublisher
	now     func() time.Time
}

func NewOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository, catalog PriceResolver, events OrderEventPublisher) *OrderUsecase {
	if events == nil {
		events = NopPublisher{}
	}
	return &OrderUsecase{
		tx:      tx,
		orders:  orders,
		catalog: catalog,
		events:  events,
		now:     time.Now,
	}
}

type OrderItemInput struct {
	FoodID   int64 `json:"foodId"`
	Quantity int64 `json:"quantity"`
}

type OrderItemsInput struct {
	FoodItems []OrderItemInput `json:"foodItems"`
}

// minQty is 1 for merge and 0 for replace.
func (in OrderItemsInput) lines(minQty int64) ([]model.LineRequest, error) {
	if len(in.FoodItems) == 0 {
		return nil, ValidationError("foodItems is required")
	}
	out := make([]model.LineRequest, 0, len(in.FoodItems))
	for _, it := range in.FoodItems {
		if it.FoodID <= 0 {
			return nil, ValidationError("invalid foodId")
		}
		if it.Quantity < minQty || it.Quantity > model.MaxLineQuantity {
			return nil, ValidationError(fmt.Sprintf("quantity must be between %d and %d", minQty, model.MaxLineQuantity))
		}
		out = append(out, model.LineRequest{FoodID: it.FoodID, Quantity: it.Quantity})
	}
	return out, nil
}

func pricedIDs(reqs []model.LineRequest) []int64 {
	ids := make([]int64, 0, len(reqs))
	for _, r := range reqs {
		if r.Quantity > 0 {
			ids = append(ids, r.FoodID)
		}
	}
	return ids
}

func requireUser(p model.Principal) error {
	if p.ID <= 0 || p.Role != model.RoleUser {
		return Unauthorized("unauthorized")
	}
	return nil
}

// domainErr maps reconciliation rule failures.
func domainErr(err error) error {
	switch {
	case errors.Is(err, model.ErrItemNotInOrder):
		return NotFound("item not in order")
	case errors.Is(err, model.ErrOrderNotPending):
		return Conflict("order is not pending")
	case errors.Is(err, model.ErrInvalidQuantity):
		return ValidationError("invalid quantity")
	case errors.Is(err, model.ErrInvalidOrderStat):
		return ValidationError("invalid status")
	case errors.Is(err, model.ErrPriceUnresolved):
		return Internal("price not resolved")
	}
	return fromRepo(err, "order not found")
}

// MakeOrder merges the requested items into the caller's pending order, or
// opens a new pending order when there is none. created reports which.
func (u *OrderUsecase) MakeOrder(ctx context.Context, p model.Principal, in OrderItemsInput) (model.Order, bool, error) {
	if err := requireUser(p); err != nil {
		return model.Order{}, false, err
	}
	reqs, err := in.lines(1)
	if err != nil {
		return model.Order{}, false, err
	}
	prices, err := u.catalog.ResolvePrices(ctx, pricedIDs(reqs))
	if err != nil {
		return model.Order{}, false, err
	}

	var (
		out     model.Order
		created bool
	)
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		pending, err := r.Orders().FindPendingByUserID(ctx, p.ID)
		if errors.Is(err, repo.ErrNotFound) {
			o, err := model.NewPendingOrder(p.ID, reqs, prices)
			if err != nil {
				return domainErr(err)
			}
			if err := r.Orders().Create(ctx, &o); err != nil {
				return fromRepo(err, "order not found")
			}
			if err := r.OrderIndex().AddOrderRef(ctx, p.ID, o.ID); err != nil {
				return fromRepo(err, "user not found")
			}
			out, created = o, true
			return nil
		}
		if err != nil {
			return fromRepo(err, "order not found")
		}

		if err := pending.MergeItems(reqs, prices); err != nil {
			return domainErr(err)
		}
		if err := r.Orders().Save(ctx, &pending); err != nil {
			return fromRepo(err, "order not found")
		}
		out = pending
		return nil
	})
	if err != nil {
		return model.Order{}, false, err
	}

	evType := OrderUpdated
	if created {
		evType = OrderCreated
	}
	logging.FromContext(ctx).Info("order merged",
		"order_id", out.ID, "user_id", p.ID, "created", created, "total_price", out.TotalPrice)
	u.publish(ctx, newOrderEvent(evType, out, u.now()))
	return out, created, nil
}

func (u *OrderUsecase) ListOrders(ctx context.Context, p model.Principal) ([]model.Order, error) {
	if err := requireUser(p); err != nil {
		return nil, err
	}
	orders, err := u.orders.ListByUserID(ctx, p.ID)
	if err != nil {
		return nil, fromRepo(err, "order not found")
	}
	return orders, nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, p model.Principal, orderID int64) (model.Order, error) {
	if err := requireUser(p); err != nil {
		return model.Order{}, err
	}
	if orderID <= 0 {
		return model.Order{}, ValidationError("invalid order id")
	}
	o, err := u.orders.FindOne(ctx, repo.OrderFilter{ID: orderID, UserID: p.ID})
	if err != nil {
		return model.Order{}, fromRepo(err, "order not found")
	}
	return o, nil
}

// ReplaceOrderItems sets each named line to the requested quantity on the
// caller's pending order. Quantity 0 drops the line.
func (u *OrderUsecase) ReplaceOrderItems(ctx context.Context, p model.Principal, orderID int64, in OrderItemsInput) (model.Order, error) {
	if err := requireUser(p); err != nil {
		return model.Order{}, err
	}
	if orderID <= 0 {
		return model.Order{}, ValidationError("invalid order id")
	}
	reqs, err := in.lines(0)
	if err != nil {
		return model.Order{}, err
	}
	prices, err := u.catalog.ResolvePrices(ctx, pricedIDs(reqs))
	if err != nil {
		return model.Order{}, err
	}

	var out model.Order
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindOne(ctx, repo.OrderFilter{ID: orderID, UserID: p.ID, Status: model.OrderStatusPending})
		if err != nil {
			return fromRepo(err, "order not found")
		}
		if err := o.ReplaceItems(reqs, prices); err != nil {
			return domainErr(err)
		}
		if err := r.Orders().Save(ctx, &o); err != nil {
			return fromRepo(err, "order not found")
		}
		if err := r.OrderIndex().AddOrderRef(ctx, p.ID, o.ID); err != nil {
			return fromRepo(err, "user not found")
		}
		out = o
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}

	u.publish(ctx, newOrderEvent(OrderUpdated, out, u.now()))
	return out, nil
}

// RemoveOrderItem drops one line and subtracts its line total.
func (u *OrderUsecase) RemoveOrderItem(ctx context.Context, p model.Principal, orderID, foodID int64) (model.Order, error) {
	if err := requireUser(p); err != nil {
		return model.Order{}, err
	}
	if orderID <= 0 {
		return model.Order{}, ValidationError("invalid order id")
	}
	if foodID <= 0 {
		return model.Order{}, ValidationError("invalid foodId")
	}

	var out model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindOne(ctx, repo.OrderFilter{ID: orderID, UserID: p.ID, Status: model.OrderStatusPending})
		if err != nil {
			return fromRepo(err, "order not found")
		}
		if _, err := o.RemoveItem(foodID); err != nil {
			return domainErr(err)
		}
		if err := r.Orders().Save(ctx, &o); err != nil {
			return fromRepo(err, "order not found")
		}
		out = o
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}

	ev := newOrderEvent(OrderItemRemoved, out, u.now())
	ev.FoodID = foodID
	u.publish(ctx, ev)
	return out, nil
}

// DeleteOrder removes a pending order owned by the caller and its index entry.
func (u *OrderUsecase) DeleteOrder(ctx context.Context, p model.Principal, orderID int64) error {
	if err := requireUser(p); err != nil {
		return err
	}
	if orderID <= 0 {
		return ValidationError("invalid order id")
	}

	filter := repo.OrderFilter{ID: orderID, UserID: p.ID, Status: model.OrderStatusPending}
	var deleted model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindOne(ctx, filter)
		if err != nil {
			return fromRepo(err, "order not found")
		}
		if err := r.OrderIndex().RemoveOrderRef(ctx, p.ID, o.ID); err != nil {
			return fromRepo(err, "order not found")
		}
		if err := r.Orders().Delete(ctx, filter); err != nil {
			return fromRepo(err, "order not found")
		}
		deleted = o
		return nil
	})
	if err != nil {
		return err
	}

	u.publish(ctx, newOrderEvent(OrderDeleted, deleted, u.now()))
	return nil
}

// SetOrderStatus moves the caller's own order out of pending.
func (u *OrderUsecase) SetOrderStatus(ctx context.Context, p model.Principal, orderID int64, status model.OrderStatus) (model.Order, error) {
	if err := requireUser(p); err != nil {
		return model.Order{}, err
	}
	return u.setStatus(ctx, repo.OrderFilter{ID: orderID, UserID: p.ID}, status)
}

// AdminSetOrderStatus is SetOrderStatus without the ownership filter.
func (u *OrderUsecase) AdminSetOrderStatus(ctx context.Context, p model.Principal, orderID int64, status model.OrderStatus) (model.Order, error) {
	if p.ID <= 0 || p.Role != model.RoleAdmin {
		return model.Order{}, Forbidden("forbidden")
	}
	return u.setStatus(ctx, repo.OrderFilter{ID: orderID}, status)
}

func (u *OrderUsecase) setStatus(ctx context.Context, f repo.OrderFilter, status model.OrderStatus) (model.Order, error) {
	if f.ID <= 0 {
		return model.Order{}, ValidationError("invalid order id")
	}
	if !status.Valid() {
		return model.Order{}, ValidationError("invalid status")
	}

	var (
		out     model.Order
		changed bool
	)
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindOne(ctx, f)
		if err != nil {
			return fromRepo(err, "order not found")
		}
		prev := o.Status
		if err := o.TransitionTo(status); err != nil {
			return domainErr(err)
		}
		if prev == o.Status {
			out = o
			return nil
		}
		if err := r.Orders().UpdateStatus(ctx, &o); err != nil {
			return fromRepo(err, "order not found")
		}
		out, changed = o, true
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}

	if changed {
		u.publish(ctx, newOrderEvent(OrderStatusChanged, out, u.now()))
	}
	return out, nil
}
