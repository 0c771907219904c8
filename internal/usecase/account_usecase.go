package usecase

import (
	"context"
	"errors"

	"craveconnect/internal/domain/model"
	repo "craveconnect/internal/repository"
)

// AccountChecker confirms that a token's principal still has a usable
// account. It backs the account guard middleware.
type AccountChecker struct {
	users   repo.UserRepository
	vendors repo.VendorRepository
	admins  repo.AdminRepository
}

func NewAccountChecker(users repo.UserRepository, vendors repo.VendorRepository, admins repo.AdminRepository) *AccountChecker {
	return &AccountChecker{users: users, vendors: vendors, admins: admins}
}

// CheckActive returns Unauthorized when the account is gone and Forbidden
// when it is blocked or suspended.
func (c *AccountChecker) CheckActive(ctx context.Context, p model.Principal) error {
	var (
		active = true
		err    error
	)
	switch p.Role {
	case model.RoleUser:
		var u model.User
		u, err = c.users.FindByID(ctx, p.ID)
		active = u.Active()
	case model.RoleVendor:
		var v model.Vendor
		v, err = c.vendors.FindByID(ctx, p.ID)
		active = v.Active()
	case model.RoleAdmin:
		_, err = c.admins.FindByID(ctx, p.ID)
	default:
		return Unauthorized("unauthorized")
	}
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return Unauthorized("account not found")
		}
		return fromRepo(err, "")
	}
	if !active {
		return Forbidden("account is blocked")
	}
	return nil
}
