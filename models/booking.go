// models/booking.go
package models

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"
)

const BookingStatusConfirmed = "confirmed"

// BookingDateLayout is how booking dates are written and displayed.
const BookingDateLayout = "2006-01-02"

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

// ParsePaymentMethod accepts "cash" or "card" in any case.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(raw))) {
	case PaymentCash:
		return PaymentCash, nil
	case PaymentCard:
		return PaymentCard, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, raw)
}

// Booking is one row of bookings. The table has no surrogate key of its own.
type Booking struct {
	RoomID        string         `gorm:"column:room_id;type:varchar(64);index" json:"room_id"`
	HotelID       string         `gorm:"column:hotel_id;type:varchar(64)" json:"hotel_id"`
	BookingDate   datatypes.Date `gorm:"column:booking_date" json:"booking_date"`
	GuestName     string         `gorm:"column:guest_name;type:varchar(255)" json:"guest_name"`
	GuestPhone    string         `gorm:"column:guest_phone;type:varchar(64)" json:"guest_phone"`
	PaymentMethod PaymentMethod  `gorm:"column:payment_method;type:varchar(16)" json:"payment_method"`
	Status        string         `gorm:"column:status;type:varchar(32)" json:"status"`
}

func (Booking) TableName() string {
	return "bookings"
}
