package model

import "time"

// OrderItem is one line of an order. UnitPrice is the price resolved when the
// line was last touched; LineTotal accumulates price*quantity contributions.
type OrderItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64     `gorm:"not null;uniqueIndex:idx_order_items_order_food" json:"orderId"`
	FoodID    int64     `gorm:"not null;uniqueIndex:idx_order_items_order_food;index" json:"foodId"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	UnitPrice int64     `gorm:"not null" json:"unitPrice"`
	LineTotal int64     `gorm:"not null" json:"lineTotal"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// UserOrderRef is one entry of a user's order back-index.
type UserOrderRef struct {
	UserID    int64     `gorm:"primaryKey;autoIncrement:false"`
	OrderID   int64     `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}
