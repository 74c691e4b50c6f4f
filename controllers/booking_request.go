package controllers

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"hotel-booking/models"
)

// ErrInvalidBooking wraps every field validation failure of a booking request.
var ErrInvalidBooking = errors.New("invalid booking")

// BookingRequest is the guest-supplied part of a booking.
type BookingRequest struct {
	BookingDate   string `json:"booking_date" binding:"required"`
	GuestName     string `json:"guest_name" binding:"required"`
	GuestPhone    string `json:"guest_phone" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type validBooking struct {
	date       time.Time
	guestName  string
	guestPhone string
	payment    models.PaymentMethod
}

func (r BookingRequest) validate() (validBooking, error) {
	date, err := parseBookingDate(r.BookingDate)
	if err != nil {
		return validBooking{}, fmt.Errorf("%w: %v", ErrInvalidBooking, err)
	}
	if err := requireText("Name")(r.GuestName); err != nil {
		return validBooking{}, fmt.Errorf("%w: %v", ErrInvalidBooking, err)
	}
	if err := requireText("Phone number")(r.GuestPhone); err != nil {
		return validBooking{}, fmt.Errorf("%w: %v", ErrInvalidBooking, err)
	}
	payment, err := parsePayment(r.PaymentMethod)
	if err != nil {
		return validBooking{}, fmt.Errorf("%w: %v", ErrInvalidBooking, err)
	}
	return validBooking{
		date:       date,
		guestName:  strings.TrimSpace(r.GuestName),
		guestPhone: strings.TrimSpace(r.GuestPhone),
		payment:    payment,
	}, nil
}

// ---------------------------
// input validators, shared by the menu prompts and the HTTP handlers
// ---------------------------

// bookingDateInput accepts unpadded month and day ("2024-1-1") as well as
// models.BookingDateLayout.
const bookingDateInput = "2006-1-2"

func parseBookingDate(raw string) (time.Time, error) {
	date, err := time.Parse(bookingDateInput, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, errors.New("Please enter a valid date in YYYY-MM-DD format")
	}
	return date, nil
}

func validateBookingDate(raw string) error {
	_, err := parseBookingDate(raw)
	return err
}

func requireText(field string) func(string) error {
	return func(raw string) error {
		if strings.TrimSpace(raw) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

func parsePayment(raw string) (models.PaymentMethod, error) {
	pm, err := models.ParsePaymentMethod(raw)
	if err != nil {
		return "", errors.New("Please enter either 'cash' or 'card'")
	}
	return pm, nil
}

func validatePayment(raw string) error {
	_, err := parsePayment(raw)
	return err
}

func parsePrice(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) {
		return 0, errors.New("Please enter a valid number")
	}
	return v, nil
}

func parseCapacity(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.New("Please enter a whole number")
	}
	return v, nil
}
