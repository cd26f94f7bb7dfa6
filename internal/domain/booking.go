package domain

import "time"

// Field names of the booking form record, as posted and as sent to the backend.
const (
	FieldFirstName      = "firstName"
	FieldLastName       = "lastName"
	FieldEmail          = "email"
	FieldPhoneNumber    = "phoneNumber"
	FieldCardNumber     = "cardNumber"
	FieldExpirationDate = "expirationDate"
	FieldCVV            = "cvv"
	FieldBillingAddress = "billingAddress"
)

// BookingFields is the flat record a user fills in to book and pay.
type BookingFields struct {
	FirstName      string `json:"firstName" form:"firstName"`
	LastName       string `json:"lastName" form:"lastName"`
	Email          string `json:"email" form:"email"`
	PhoneNumber    string `json:"phoneNumber" form:"phoneNumber"`
	CardNumber     string `json:"cardNumber" form:"cardNumber"`
	ExpirationDate string `json:"expirationDate" form:"expirationDate"`
	CVV            string `json:"cvv" form:"cvv"`
	BillingAddress string `json:"billingAddress" form:"billingAddress"`
}

// Set replaces a single field by its record name.
func (f *BookingFields) Set(name, value string) bool {
	switch name {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldEmail:
		f.Email = value
	case FieldPhoneNumber:
		f.PhoneNumber = value
	case FieldCardNumber:
		f.CardNumber = value
	case FieldExpirationDate:
		f.ExpirationDate = value
	case FieldCVV:
		f.CVV = value
	case FieldBillingAddress:
		f.BillingAddress = value
	default:
		return false
	}
	return true
}

// StoredBooking is what the sandbox backend persists for a booking request.
// Card data is reduced to the last four digits; the CVV is never stored.
type StoredBooking struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	RequestID      *string   `json:"request_id,omitempty" gorm:"uniqueIndex"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number"`
	CardLast4      string    `json:"card_last4"`
	ExpirationDate string    `json:"expiration_date"`
	BillingAddress string    `json:"billing_address"`
	CreatedAt      time.Time `json:"created_at"`
}

func (StoredBooking) TableName() string { return "bookings" }

// StoredReview is the sandbox backend's row for a review.
type StoredReview struct {
	ID         string `gorm:"primaryKey"`
	PropertyID string `gorm:"index"`
	User       string
	Rating     float64
	Comment    string `gorm:"type:text"`
	Date       string
}

func (StoredReview) TableName() string { return "reviews" }

func (r StoredReview) ToReview() Review {
	return Review{ID: ReviewID(r.ID), User: r.User, Rating: r.Rating, Comment: r.Comment, Date: r.Date}
}
