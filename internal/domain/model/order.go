package model

import (
	"errors"
	"math"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

// Terminal reports whether no further line-item mutation is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCanceled
}

var (
	ErrItemNotInOrder   = errors.New("item not in order")
	ErrOrderNotPending  = errors.New("order is not pending")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrPriceUnresolved  = errors.New("price not resolved")
	ErrInvalidOrderStat = errors.New("invalid order status")
)

// MaxLineQuantity bounds the quantity of a single line.
const MaxLineQuantity int64 = 10_000

func checkedMul(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, ErrInvalidQuantity
	}
	if a != 0 && b > math.MaxInt64/a {
		return 0, ErrInvalidQuantity
	}
	return a * b, nil
}

func checkedAdd(a, b int64) (int64, error) {
	if a < 0 || b < 0 || a > math.MaxInt64-b {
		return 0, ErrInvalidQuantity
	}
	return a + b, nil
}

// Order is one user basket. A user has at most one pending order.
type Order struct {
	ID         int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64       `gorm:"not null;index;uniqueIndex:idx_orders_one_pending,where:status = 'pending'" json:"userId"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalPrice int64       `gorm:"not null" json:"totalPrice"`
	Version    int64       `gorm:"not null;default:1" json:"version"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"foodItems"`
	CreatedAt  time.Time   `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time   `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// LineRequest is one requested {foodId, quantity} pair.
type LineRequest struct {
	FoodID   int64
	Quantity int64
}

// PriceBook maps food id to the unit price resolved for the current mutation.
type PriceBook map[int64]int64

func (o *Order) findItem(foodID int64) int {
	return indexOf(o.Items, foodID)
}

func indexOf(items []OrderItem, foodID int64) int {
	for i := range items {
		if items[i].FoodID == foodID {
			return i
		}
	}
	return -1
}

// Item returns the line for foodID, if present.
func (o *Order) Item(foodID int64) (OrderItem, bool) {
	if i := o.findItem(foodID); i >= 0 {
		return o.Items[i], true
	}
	return OrderItem{}, false
}

// MergeItems adds each requested quantity to the matching line, appending new
// lines for unknown foods. Every price must be present in prices before any
// line is touched. On error the order is left unchanged.
func (o *Order) MergeItems(reqs []LineRequest, prices PriceBook) error {
	if o.Status != OrderStatusPending {
		return ErrOrderNotPending
	}
	for _, r := range reqs {
		if r.Quantity < 1 || r.Quantity > MaxLineQuantity {
			return ErrInvalidQuantity
		}
		if _, ok := prices[r.FoodID]; !ok {
			return ErrPriceUnresolved
		}
	}

	items := append([]OrderItem(nil), o.Items...)
	for _, r := range reqs {
		price := prices[r.FoodID]
		delta, err := checkedMul(price, r.Quantity)
		if err != nil {
			return err
		}
		i := indexOf(items, r.FoodID)
		if i < 0 {
			items = append(items, OrderItem{
				OrderID:   o.ID,
				FoodID:    r.FoodID,
				Quantity:  r.Quantity,
				UnitPrice: price,
				LineTotal: delta,
			})
			continue
		}
		qty, err := checkedAdd(items[i].Quantity, r.Quantity)
		if err != nil || qty > MaxLineQuantity {
			return ErrInvalidQuantity
		}
		total, err := checkedAdd(items[i].LineTotal, delta)
		if err != nil {
			return err
		}
		items[i].Quantity = qty
		items[i].UnitPrice = price
		items[i].LineTotal = total
	}

	return o.commitItems(items)
}

// ReplaceItems sets each requested line to exactly the requested quantity.
// Quantity 0 drops the line. Lines not named in reqs are left as they are.
// On error the order is left unchanged.
func (o *Order) ReplaceItems(reqs []LineRequest, prices PriceBook) error {
	if o.Status != OrderStatusPending {
		return ErrOrderNotPending
	}
	for _, r := range reqs {
		if r.Quantity < 0 || r.Quantity > MaxLineQuantity {
			return ErrInvalidQuantity
		}
		if _, ok := prices[r.FoodID]; !ok && r.Quantity > 0 {
			return ErrPriceUnresolved
		}
	}

	items := append([]OrderItem(nil), o.Items...)
	for _, r := range reqs {
		i := indexOf(items, r.FoodID)
		if r.Quantity == 0 {
			if i >= 0 {
				items = append(items[:i], items[i+1:]...)
			}
			continue
		}

		price := prices[r.FoodID]
		total, err := checkedMul(price, r.Quantity)
		if err != nil {
			return err
		}
		if i >= 0 {
			items[i].Quantity = r.Quantity
			items[i].UnitPrice = price
			items[i].LineTotal = total
			continue
		}
		items = append(items, OrderItem{
			OrderID:   o.ID,
			FoodID:    r.FoodID,
			Quantity:  r.Quantity,
			UnitPrice: price,
			LineTotal: total,
		})
	}

	return o.commitItems(items)
}

// commitItems installs items only when their total is representable.
func (o *Order) commitItems(items []OrderItem) error {
	total, err := sumLines(items)
	if err != nil {
		return err
	}
	o.Items = items
	o.TotalPrice = total
	return nil
}

func sumLines(items []OrderItem) (int64, error) {
	var total int64
	for _, it := range items {
		var err error
		if total, err = checkedAdd(total, it.LineTotal); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// RemoveItem drops the line for foodID and returns it.
func (o *Order) RemoveItem(foodID int64) (OrderItem, error) {
	if o.Status != OrderStatusPending {
		return OrderItem{}, ErrOrderNotPending
	}
	i := o.findItem(foodID)
	if i < 0 {
		return OrderItem{}, ErrItemNotInOrder
	}

	removed := o.Items[i]
	items := append(append([]OrderItem(nil), o.Items[:i]...), o.Items[i+1:]...)
	if err := o.commitItems(items); err != nil {
		return OrderItem{}, err
	}
	return removed, nil
}

// Recalculate sets TotalPrice to the sum of all line totals. A sum that
// does not fit leaves TotalPrice untouched.
func (o *Order) Recalculate() error {
	total, err := sumLines(o.Items)
	if err != nil {
		return err
	}
	o.TotalPrice = total
	return nil
}

// TransitionTo moves the order to next. Only pending orders move; a terminal
// order accepts its own status again as a no-op.
func (o *Order) TransitionTo(next OrderStatus) error {
	if !next.Valid() {
		return ErrInvalidOrderStat
	}
	if o.Status.Terminal() && next != o.Status {
		return ErrOrderNotPending
	}
	o.Status = next
	return nil
}

// NewPendingOrder builds a fresh pending order from requests, summing
// quantities of repeated foods into one line.
func NewPendingOrder(userID int64, reqs []LineRequest, prices PriceBook) (Order, error) {
	o := Order{
		UserID:  userID,
		Status:  OrderStatusPending,
		Version: 1,
	}
	if err := o.MergeItems(reqs, prices); err != nil {
		return Order{}, err
	}
	return o, nil
}
