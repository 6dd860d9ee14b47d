package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

// ErrInvalidCustomer некорректные данные клиента
var ErrInvalidCustomer = errors.New("invalid customer data")

// Validate проверяет обязательные поля клиента
func (c Customer) Validate() error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCustomer)
	}
	if len(name) > MaxCustomerNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidCustomer, MaxCustomerNameLength)
	}

	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidCustomer)
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("%w: invalid email %q", ErrInvalidCustomer, c.Email)
	}

	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidCustomer)
	}

	if c.Note != nil && len(*c.Note) > MaxCustomerNoteLength {
		return fmt.Errorf("%w: note is longer than %d characters", ErrInvalidCustomer, MaxCustomerNoteLength)
	}

	return nil
}
