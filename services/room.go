package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"hotel-booking/models"
)

// Room wraps one hotel_rooms row. The id never changes after construction and
// the price can only be set to non-negative values.
type Room struct {
	id       string
	category models.RoomCategory

	Type     string
	HotelID  string
	Number   string
	Capacity int
	Rating   float64
	Status   string

	mu    sync.RWMutex
	price float64

	bookings BookingStore
	log      *zap.Logger
}

// NewRoom builds a Room from a stored row. The category is fixed here.
func NewRoom(rec models.HotelRoom, bookings BookingStore, log *zap.Logger) *Room {
	if log == nil {
		log = zap.NewNop()
	}
	return &Room{
		id:       rec.RoomID,
		category: models.CategoryOf(rec.RoomType),
		Type:     rec.RoomType,
		HotelID:  rec.HotelID,
		Number:   rec.RoomNumber,
		Capacity: rec.Capacity,
		Rating:   rec.Rating,
		Status:   rec.RoomStatus,
		price:    rec.PriceUSD,
		bookings: bookings,
		log:      log.With(zap.String("room_id", rec.RoomID)),
	}
}

// LoadRooms wraps raw rows, splitting suites from standard rooms by room type.
func LoadRooms(records []models.HotelRoom, bookings BookingStore, log *zap.Logger) []*Room {
	rooms := make([]*Room, 0, len(records))
	for _, rec := range records {
		rooms = append(rooms, NewRoom(rec, bookings, log))
	}
	return rooms
}

func (r *Room) ID() string {
	return r.id
}

func (r *Room) Category() models.RoomCategory {
	return r.category
}

func (r *Room) Price() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.price
}

// SetPrice changes the in-memory price only; it is not written to the store.
func (r *Room) SetPrice(value float64) error {
	if value < 0 {
		return fmt.Errorf("%w: %v", ErrNegativePrice, value)
	}
	r.mu.Lock()
	r.price = value
	r.mu.Unlock()
	return nil
}

// Vacant reports whether the room status allows a new booking.
func (r *Room) Vacant() bool {
	return strings.EqualFold(r.Status, models.RoomStatusVacant)
}

func (r *Room) HasPool() bool {
	return r.category == models.CategorySuite
}

// Minibar returns the suite catalog. ok is false for standard rooms.
func (r *Room) Minibar() (models.Minibar, bool) {
	if r.category != models.CategorySuite {
		return models.Minibar{}, false
	}
	return models.SuiteMinibar(), true
}

// CleanPool only announces the cleaning; no state changes.
func (r *Room) CleanPool() error {
	if !r.HasPool() {
		return fmt.Errorf("%w: %s", ErrNoPool, r.id)
	}
	r.log.Info("cleaning pool", zap.String("room_number", r.Number))
	return nil
}

func (r *Room) GetBookings(ctx context.Context) ([]models.Booking, error) {
	return r.bookings.ListByRoom(ctx, r.id)
}

// AddBooking stores a booking for this room as given. Callers validate the fields.
func (r *Room) AddBooking(ctx context.Context, date time.Time, guestName, guestPhone string, payment models.PaymentMethod, status string) (*models.Booking, error) {
	booking := &models.Booking{
		RoomID:        r.id,
		HotelID:       r.HotelID,
		BookingDate:   datatypes.Date(date),
		GuestName:     guestName,
		GuestPhone:    guestPhone,
		PaymentMethod: payment,
		Status:        status,
	}
	if err := r.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	r.log.Info("booking stored",
		zap.String("booking_date", date.Format(models.BookingDateLayout)),
		zap.String("status", status),
	)
	return booking, nil
}
