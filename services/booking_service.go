// services/booking_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"hotel-booking/models"
)

// BookingStore is what a Room needs from the bookings table.
type BookingStore interface {
	ListByRoom(ctx context.Context, roomID string) ([]models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
}

// BookingService is the gorm-backed BookingStore.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

func (s *BookingService) ListByRoom(ctx context.Context, roomID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.WithContext(ctx).Where("room_id = ?", roomID).Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings for room %s: %w", roomID, err)
	}
	return bookings, nil
}

func (s *BookingService) Create(ctx context.Context, booking *models.Booking) error {
	if err := s.DB.WithContext(ctx).Create(booking).Error; err != nil {
		if isDuplicateKeyError(err) {
			day := time.Time(booking.BookingDate).Format(models.BookingDateLayout)
			return fmt.Errorf("%w: room %s on %s", ErrDuplicateBooking, booking.RoomID, day)
		}
		return fmt.Errorf("create booking for room %s: %w", booking.RoomID, err)
	}
	return nil
}

func isDuplicateKeyError(err error) bool {
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
