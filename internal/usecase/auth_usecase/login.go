package auth

import (
	"context"
	"errors"

	"craveconnect/internal/domain/model"
	"craveconnect/internal/repository"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountBlocked     = errors.New("account is blocked")
	ErrUnknownRole        = errors.New("unknown role")
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginOutput struct {
	AccessToken string
	ExpiresIn   int
	Principal   model.Principal
	// Account is the model.User, model.Vendor or model.Admin that signed in.
	Account any
}

type LoginUsecase struct {
	users     repository.UserRepository
	vendors   repository.VendorRepository
	admins    repository.AdminRepository
	verifier  PasswordVerifier
	issuer    AccessTokenIssuer
	validator AccountValidator
	clock     Clock
}

func NewLoginUsecase(
	users repository.UserRepository,
	vendors repository.VendorRepository,
	admins repository.AdminRepository,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	validator AccountValidator,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		users:     users,
		vendors:   vendors,
		admins:    admins,
		verifier:  verifier,
		issuer:    issuer,
		validator: validator,
		clock:     clock,
	}
}

type credentials struct {
	id     int64
	hash   string
	active bool
	acct   any
}

func (u *LoginUsecase) lookup(ctx context.Context, role model.Role, email string) (credentials, error) {
	switch role {
	case model.RoleUser:
		a, err := u.users.FindByEmail(ctx, email)
		if err != nil {
			return credentials{}, err
		}
		a.Orders = nil
		return credentials{a.ID, a.PasswordHash, a.Active(), a}, nil
	case model.RoleVendor:
		a, err := u.vendors.FindByEmail(ctx, email)
		if err != nil {
			return credentials{}, err
		}
		return credentials{a.ID, a.PasswordHash, a.Active(), a}, nil
	case model.RoleAdmin:
		a, err := u.admins.FindByEmail(ctx, email)
		if err != nil {
			return credentials{}, err
		}
		return credentials{a.ID, a.PasswordHash, true, a}, nil
	}
	return credentials{}, ErrUnknownRole
}

// Execute signs in an account of the given role and issues an access token.
func (u *LoginUsecase) Execute(ctx context.Context, role model.Role, in LoginInput) (LoginOutput, error) {
	if err := u.validator.ValidateLogin(in.Email, in.Password); err != nil {
		return LoginOutput{}, err
	}

	c, err := u.lookup(ctx, role, normalizeEmail(in.Email))
	if errors.Is(err, repository.ErrNotFound) {
		return LoginOutput{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginOutput{}, err
	}

	if !u.verifier.Verify(in.Password, c.hash) {
		return LoginOutput{}, ErrInvalidCredentials
	}
	if !c.active {
		return LoginOutput{}, ErrAccountBlocked
	}

	now := u.clock.Now()
	p := model.Principal{ID: c.id, Role: role}
	token, exp, err := u.issuer.Issue(p, now)
	if err != nil {
		return LoginOutput{}, err
	}

	return LoginOutput{
		AccessToken: token,
		ExpiresIn:   int(exp.Sub(now).Seconds()),
		Principal:   p,
		Account:     c.acct,
	}, nil
}
