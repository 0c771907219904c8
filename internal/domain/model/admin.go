package model

import "time"

type Admin struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Firstname        string    `gorm:"type:varchar(100);not null" json:"firstname"`
	Lastname         string    `gorm:"type:varchar(100);not null" json:"lastname"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone            string    `gorm:"type:varchar(30);not null" json:"phone"`
	StateOfResidence string    `gorm:"type:varchar(100);not null" json:"stateOfResidence"`
	Location         string    `gorm:"type:varchar(255)" json:"location"`
	PasswordHash     string    `gorm:"column:password_hash;not null" json:"-"`
	CreatedAt        time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// PlatformStats is the admin overview.
type PlatformStats struct {
	Users   int64 `json:"totalUsers"`
	Vendors int64 `json:"totalVendors"`
	Reviews int64 `json:"totalReviews"`
	Orders  int64 `json:"totalOrders"`
	Foods   int64 `json:"totalFoods"`
}
