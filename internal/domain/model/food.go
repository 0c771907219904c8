package model

import (
	"time"

	"gorm.io/gorm"
)

type Food struct {
	ID            int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	Description   string         `gorm:"type:text;not null" json:"description"`
	Recipes       string         `gorm:"type:text;not null" json:"recipes"`
	Price         int64          `gorm:"not null" json:"price"`
	AvailableFrom *time.Time     `json:"availableFrom"`
	AvailableTo   *time.Time     `json:"availableTo"`
	VendorID      int64          `gorm:"not null;index" json:"vendorId"`
	CreatedAt     time.Time      `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"not null;autoUpdateTime" json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
