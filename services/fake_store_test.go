package services

import (
	"context"

	"hotel-booking/models"
)

// fakeBookingStore keeps bookings in memory.
type fakeBookingStore struct {
	bookings  []models.Booking
	listErr   error
	createErr error
	creates   int
}

func (f *fakeBookingStore) ListByRoom(_ context.Context, roomID string) ([]models.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Booking
	for _, b := range f.bookings {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) Create(_ context.Context, booking *models.Booking) error {
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	f.bookings = append(f.bookings, *booking)
	return nil
}
