package validator

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"time"
)

// ErrInvalidInput wraps every validation failure.
var ErrInvalidInput = errors.New("invalid input")

const (
	minPasswordLen = 8
	maxPasswordLen = 64
	minRating      = 1
	maxRating      = 5
	// a cap well below the point where price*quantity could overflow
	maxPrice int64 = 1_000_000_000
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Message strips the sentinel prefix for client responses.
func Message(err error) string {
	return strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": ")
}

func Required(fields map[string]string) error {
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		if strings.TrimSpace(fields[name]) == "" {
			return invalid("%s is required", name)
		}
	}
	return nil
}

func Email(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return invalid("email is required")
	}
	if !emailRe.MatchString(s) {
		return invalid("email is invalid")
	}
	return nil
}

func Password(s string) error {
	if len(s) < minPasswordLen || len(s) > maxPasswordLen {
		return invalid("password must be %d to %d characters", minPasswordLen, maxPasswordLen)
	}
	return nil
}

func Rating(n int) error {
	if n < minRating || n > maxRating {
		return invalid("rating must be between %d and %d", minRating, maxRating)
	}
	return nil
}

func Price(p int64) error {
	if p < 0 || p > maxPrice {
		return invalid("price must be between 0 and %d", maxPrice)
	}
	return nil
}

// Window checks from <= to when both are set.
func Window(from, to *time.Time) error {
	if from != nil && to != nil && from.After(*to) {
		return invalid("availableFrom must be before availableTo")
	}
	return nil
}

// AccountValidator checks registration and login payloads for every role.
type AccountValidator struct{}

func NewAccountValidator() *AccountValidator { return &AccountValidator{} }

func (AccountValidator) ValidateRegister(email, password string, required map[string]string) error {
	if err := Required(required); err != nil {
		return err
	}
	if err := Email(email); err != nil {
		return err
	}
	return Password(password)
}

func (AccountValidator) ValidateLogin(email, password string) error {
	if err := Email(email); err != nil {
		return err
	}
	if password == "" {
		return invalid("password is required")
	}
	return nil
}
