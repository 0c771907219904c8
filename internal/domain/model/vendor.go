package model

import "time"

type Vendor struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Firstname        string    `gorm:"type:varchar(100);not null" json:"firstname"`
	Lastname         string    `gorm:"type:varchar(100);not null" json:"lastname"`
	Username         string    `gorm:"type:varchar(100)" json:"username"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone            string    `gorm:"type:varchar(30)" json:"phone"`
	StateOfResidence string    `gorm:"type:varchar(100);not null" json:"stateOfResidence"`
	Location         string    `gorm:"type:varchar(255);not null" json:"location"`
	PasswordHash     string    `gorm:"column:password_hash;not null" json:"-"`
	IsSuspended      bool      `gorm:"not null;default:false" json:"isSuspended"`
	IsBlocked        bool      `gorm:"not null;default:false" json:"isBlocked"`
	CreatedAt        time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (v Vendor) Active() bool {
	return !v.IsSuspended && !v.IsBlocked
}

// VendorDashboard is the per-vendor stats view.
type VendorDashboard struct {
	VendorID  int64 `json:"vendorId"`
	TotalFood int64 `json:"totalFood"`
	Customers int64 `json:"customers"`
	Reviews   int64 `json:"reviews"`
}
