package auth

import (
	"context"
	"errors"
	"strings"

	"craveconnect/internal/domain/model"
	"craveconnect/internal/repository"
)

var ErrEmailAlreadyExists = errors.New("email already exists")

// AccountValidator checks raw registration and login input.
type AccountValidator interface {
	ValidateRegister(email, password string, required map[string]string) error
	ValidateLogin(email, password string) error
}

type RegisterUserInput struct {
	Firstname        string `json:"firstname"`
	Lastname         string `json:"lastname"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	StateOfResidence string `json:"stateOfResidence"`
	Address          string `json:"address"`
	Password         string `json:"password"`
}

type RegisterVendorInput struct {
	Firstname        string `json:"firstname"`
	Lastname         string `json:"lastname"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	StateOfResidence string `json:"stateOfResidence"`
	Location         string `json:"location"`
	Password         string `json:"password"`
}

type RegisterAdminInput struct {
	Firstname        string `json:"firstname"`
	Lastname         string `json:"lastname"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	StateOfResidence string `json:"stateOfResidence"`
	Location         string `json:"location"`
	Password         string `json:"password"`
}

// RegisterUsecase creates accounts for all three roles.
type RegisterUsecase struct {
	users     repository.UserRepository
	vendors   repository.VendorRepository
	admins    repository.AdminRepository
	hasher    PasswordHasher
	validator AccountValidator
}

func NewRegisterUsecase(
	users repository.UserRepository,
	vendors repository.VendorRepository,
	admins repository.AdminRepository,
	hasher PasswordHasher,
	validator AccountValidator,
) *RegisterUsecase {
	return &RegisterUsecase{
		users:     users,
		vendors:   vendors,
		admins:    admins,
		hasher:    hasher,
		validator: validator,
	}
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// emailFree turns a lookup result into ErrEmailAlreadyExists or nil.
func emailFree(err error) error {
	if err == nil {
		return ErrEmailAlreadyExists
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}

func createErr(err error) error {
	if errors.Is(err, repository.ErrConflict) {
		return ErrEmailAlreadyExists
	}
	return err
}

func (u *RegisterUsecase) RegisterUser(ctx context.Context, in RegisterUserInput) (model.User, error) {
	if err := u.validator.ValidateRegister(in.Email, in.Password, map[string]string{
		"firstname":        in.Firstname,
		"lastname":         in.Lastname,
		"stateOfResidence": in.StateOfResidence,
	}); err != nil {
		return model.User{}, err
	}
	email := normalizeEmail(in.Email)
	if _, err := u.users.FindByEmail(ctx, email); emailFree(err) != nil {
		return model.User{}, emailFree(err)
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, err
	}
	user := model.User{
		Firstname:        strings.TrimSpace(in.Firstname),
		Lastname:         strings.TrimSpace(in.Lastname),
		Email:            email,
		Phone:            strings.TrimSpace(in.Phone),
		StateOfResidence: strings.TrimSpace(in.StateOfResidence),
		Address:          strings.TrimSpace(in.Address),
		PasswordHash:     hashed,
	}
	if err := u.users.Create(ctx, &user); err != nil {
		return model.User{}, createErr(err)
	}
	user.Orders = []int64{}
	return user, nil
}

func (u *RegisterUsecase) RegisterVendor(ctx context.Context, in RegisterVendorInput) (model.Vendor, error) {
	if err := u.validator.ValidateRegister(in.Email, in.Password, map[string]string{
		"firstname":        in.Firstname,
		"lastname":         in.Lastname,
		"stateOfResidence": in.StateOfResidence,
		"location":         in.Location,
	}); err != nil {
		return model.Vendor{}, err
	}
	email := normalizeEmail(in.Email)
	if _, err := u.vendors.FindByEmail(ctx, email); emailFree(err) != nil {
		return model.Vendor{}, emailFree(err)
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.Vendor{}, err
	}
	vendor := model.Vendor{
		Firstname:        strings.TrimSpace(in.Firstname),
		Lastname:         strings.TrimSpace(in.Lastname),
		Username:         strings.TrimSpace(in.Username),
		Email:            email,
		Phone:            strings.TrimSpace(in.Phone),
		StateOfResidence: strings.TrimSpace(in.StateOfResidence),
		Location:         strings.TrimSpace(in.Location),
		PasswordHash:     hashed,
	}
	if err := u.vendors.Create(ctx, &vendor); err != nil {
		return model.Vendor{}, createErr(err)
	}
	return vendor, nil
}

func (u *RegisterUsecase) RegisterAdmin(ctx context.Context, in RegisterAdminInput) (model.Admin, error) {
	if err := u.validator.ValidateRegister(in.Email, in.Password, map[string]string{
		"firstname":        in.Firstname,
		"lastname":         in.Lastname,
		"phone":            in.Phone,
		"stateOfResidence": in.StateOfResidence,
	}); err != nil {
		return model.Admin{}, err
	}
	email := normalizeEmail(in.Email)
	if _, err := u.admins.FindByEmail(ctx, email); emailFree(err) != nil {
		return model.Admin{}, emailFree(err)
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.Admin{}, err
	}
	admin := model.Admin{
		Firstname:        strings.TrimSpace(in.Firstname),
		Lastname:         strings.TrimSpace(in.Lastname),
		Email:            email,
		Phone:            strings.TrimSpace(in.Phone),
		StateOfResidence: strings.TrimSpace(in.StateOfResidence),
		Location:         strings.TrimSpace(in.Location),
		PasswordHash:     hashed,
	}
	if err := u.admins.Create(ctx, &admin); err != nil {
		return model.Admin{}, createErr(err)
	}
	return admin, nil
}
