package model

import "time"

type Role string

const (
	RoleUser   Role = "user"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

// Principal is the authenticated caller of a request.
type Principal struct {
	ID   int64
	Role Role
}

type User struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Firstname        string    `gorm:"type:varchar(100);not null" json:"firstname"`
	Lastname         string    `gorm:"type:varchar(100);not null" json:"lastname"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone            string    `gorm:"type:varchar(30)" json:"phone"`
	StateOfResidence string    `gorm:"type:varchar(100);not null" json:"stateOfResidence"`
	Address          string    `gorm:"type:varchar(255)" json:"address"`
	PasswordHash     string    `gorm:"column:password_hash;not null" json:"-"`
	IsSuspended      bool      `gorm:"not null;default:false" json:"isSuspended"`
	IsBlocked        bool      `gorm:"not null;default:false" json:"isBlocked"`
	Orders           []int64   `gorm:"-" json:"orders"`
	CreatedAt        time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// Active reports whether the account may sign in and call guarded routes.
func (u User) Active() bool {
	return !u.IsSuspended && !u.IsBlocked
}
