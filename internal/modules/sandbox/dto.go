package sandbox

import "staybook/internal/domain"

// CreateBookingRequest is the JSON body of POST /bookings. The rules match
// what the storefront checks before sending, so expiration date and billing
// address stay unchecked.
type CreateBookingRequest struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Email          string `json:"email" validate:"required"`
	PhoneNumber    string `json:"phoneNumber" validate:"required"`
	CardNumber     string `json:"cardNumber" validate:"required,cardnumber"`
	ExpirationDate string `json:"expirationDate"`
	CVV            string `json:"cvv" validate:"required,cvv"`
	BillingAddress string `json:"billingAddress"`
}

func (r CreateBookingRequest) Fields() domain.BookingFields {
	return domain.BookingFields{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		PhoneNumber:    r.PhoneNumber,
		CardNumber:     r.CardNumber,
		ExpirationDate: r.ExpirationDate,
		CVV:            r.CVV,
		BillingAddress: r.BillingAddress,
	}
}
