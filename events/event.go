// Package events defines the messages this tool publishes to the broker.
package events

import (
	"time"

	"github.com/google/uuid"

	"hotel-booking/models"
)

// BookingConfirmedQueue is the durable queue confirmed bookings are sent to.
const BookingConfirmedQueue = "booking.confirmed"

// BookingConfirmedEvent carries enough for consumers to notify or report
// without reading the bookings table.
type BookingConfirmedEvent struct {
	EventID       string `json:"event_id"`
	RoomID        string `json:"room_id"`
	HotelID       string `json:"hotel_id"`
	RoomNumber    string `json:"room_number"`
	RoomType      string `json:"room_type"`
	BookingDate   string `json:"booking_date"`
	GuestName     string `json:"guest_name"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
	ConfirmedAt   string `json:"confirmed_at"`
}

func NewBookingConfirmedEvent(b models.Booking, roomNumber, roomType string, at time.Time) BookingConfirmedEvent {
	return BookingConfirmedEvent{
		EventID:       uuid.NewString(),
		RoomID:        b.RoomID,
		HotelID:       b.HotelID,
		RoomNumber:    roomNumber,
		RoomType:      roomType,
		BookingDate:   time.Time(b.BookingDate).Format(models.BookingDateLayout),
		GuestName:     b.GuestName,
		PaymentMethod: string(b.PaymentMethod),
		Status:        b.Status,
		ConfirmedAt:   at.UTC().Format(time.RFC3339),
	}
}
