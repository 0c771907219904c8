package usecase

import (
	"context"
	"errors"
	"strings"

	"craveconnect/internal/domain/model"
	"craveconnect/internal/logging"
	repo "craveconnect/internal/repository"
)

type UserUsecase struct {
	tx    repo.TransactionManager
	users repo.UserRepository
	index repo.UserOrderIndex
}

func NewUserUsecase(tx repo.TransactionManager, users repo.UserRepository, index repo.UserOrderIndex) *UserUsecase {
	return &UserUsecase{tx: tx, users: users, index: index}
}

type UpdateUserInput struct {
	Firstname        *string `json:"firstname"`
	Lastname         *string `json:"lastname"`
	Phone            *string `json:"phone"`
	StateOfResidence *string `json:"stateOfResidence"`
	Address          *string `json:"address"`
}

func (u *UserUsecase) List(ctx context.Context) ([]model.User, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, fromRepo(err, "user not found")
	}
	return users, nil
}

// Get fills Orders from the order index.
func (u *UserUsecase) Get(ctx context.Context, id int64) (model.User, error) {
	if id <= 0 {
		return model.User{}, ValidationError("invalid user id")
	}
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return model.User{}, fromRepo(err, "user not found")
	}
	refs, err := u.index.ListOrderRefs(ctx, id)
	if err != nil {
		return model.User{}, fromRepo(err, "user not found")
	}
	user.Orders = refs
	return user, nil
}

func self(p model.Principal, role model.Role, id int64) error {
	if p.Role != role || p.ID != id {
		return Forbidden("forbidden")
	}
	return nil
}

// setText trims v into dst, rejecting blanks when required.
func setText(dst *string, v *string, name string, required bool) error {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if required && t == "" {
		return ValidationError(name + " is required")
	}
	*dst = t
	return nil
}

func (u *UserUsecase) Update(ctx context.Context, p model.Principal, id int64, in UpdateUserInput) (model.User, error) {
	if err := self(p, model.RoleUser, id); err != nil {
		return model.User{}, err
	}
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return model.User{}, fromRepo(err, "user not found")
	}

	for _, f := range []struct {
		dst      *string
		v        *string
		name     string
		required bool
	}{
		{&user.Firstname, in.Firstname, "firstname", true},
		{&user.Lastname, in.Lastname, "lastname", true},
		{&user.Phone, in.Phone, "phone", false},
		{&user.StateOfResidence, in.StateOfResidence, "stateOfResidence", true},
		{&user.Address, in.Address, "address", false},
	} {
		if err := setText(f.dst, f.v, f.name, f.required); err != nil {
			return model.User{}, err
		}
	}

	if err := u.users.Update(ctx, &user); err != nil {
		return model.User{}, fromRepo(err, "user not found")
	}
	return user, nil
}

// Delete removes the account with its pending order, order index and reviews.
func (u *UserUsecase) Delete(ctx context.Context, p model.Principal, id int64) error {
	if err := self(p, model.RoleUser, id); err != nil {
		return err
	}
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		pending, err := r.Orders().FindPendingByUserID(ctx, id)
		switch {
		case err == nil:
			if err := r.Orders().Delete(ctx, repo.OrderFilter{ID: pending.ID, UserID: id}); err != nil {
				return fromRepo(err, "order not found")
			}
		case !errors.Is(err, repo.ErrNotFound):
			return fromRepo(err, "order not found")
		}
		if err := r.OrderIndex().RemoveAllForUser(ctx, id); err != nil {
			return fromRepo(err, "user not found")
		}
		if err := r.Reviews().DeleteByUserID(ctx, id); err != nil {
			return fromRepo(err, "user not found")
		}
		return fromRepo(r.Users().Delete(ctx, id), "user not found")
	})
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Info("user deleted", "user_id", id)
	return nil
}
