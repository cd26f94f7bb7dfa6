package booking

import (
	"staybook/internal/domain"
	"staybook/internal/pkg/validator"
)

const (
	MsgFieldsRequired    = "All fields are required."
	MsgInvalidCardNumber = "Invalid card number."
	MsgInvalidCVV        = "Invalid CVV."
)

// Validate applies the submission rules in order and reports the first violation.
// Expiration date and billing address are not checked here.
func Validate(f domain.BookingFields) error {
	for _, v := range []string{f.FirstName, f.LastName, f.Email, f.PhoneNumber} {
		if !validator.Var(v, "required") {
			return &ValidationError{Message: MsgFieldsRequired}
		}
	}
	if !validator.Var(f.CardNumber, "cardnumber") {
		return &ValidationError{Message: MsgInvalidCardNumber}
	}
	if !validator.Var(f.CVV, "cvv") {
		return &ValidationError{Message: MsgInvalidCVV}
	}
	return nil
}
