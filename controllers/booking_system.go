package controllers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"hotel-booking/events"
	"hotel-booking/models"
	"hotel-booking/services"
)

const rule = "--------------------------------------------------------------------------------"

// RoomBookingSystem serves the interactive menu over a snapshot of rooms taken
// at startup. The snapshot is never refreshed: rooms added or changed in the
// store while the program runs are not seen until the next start.
type RoomBookingSystem struct {
	rooms     []*services.Room
	in        *bufio.Scanner
	out       io.Writer
	publisher events.Publisher
	log       *zap.Logger
	now       func() time.Time
}

func NewRoomBookingSystem(rooms []*services.Room, in io.Reader, out io.Writer, publisher events.Publisher, log *zap.Logger) *RoomBookingSystem {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RoomBookingSystem{
		rooms:     rooms,
		in:        bufio.NewScanner(in),
		out:       out,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

func (s *RoomBookingSystem) FindRoom(roomID string) (*services.Room, error) {
	for _, room := range s.rooms {
		if room.ID() == roomID {
			return room, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", services.ErrRoomNotFound, roomID)
}

// FilterRooms keeps rooms with minPrice <= price <= maxPrice and capacity >= minCapacity.
func (s *RoomBookingSystem) FilterRooms(minPrice, maxPrice float64, minCapacity int) []*services.Room {
	out := make([]*services.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		price := room.Price()
		if minPrice <= price && price <= maxPrice && room.Capacity >= minCapacity {
			out = append(out, room)
		}
	}
	return out
}

func (s *RoomBookingSystem) DisplayRooms(rooms []*services.Room) {
	fmt.Fprintln(s.out, "\nAvailable Rooms:")
	fmt.Fprintln(s.out, rule)
	fmt.Fprintf(s.out, "%-10s %-15s %-10s %-10s %-10s %-8s %-10s\n",
		"Room ID", "Type", "Number", "Capacity", "Price", "Rating", "Status")
	fmt.Fprintln(s.out, rule)
	for _, room := range rooms {
		fmt.Fprintf(s.out, "%-10s %-15s %-10s %-10d $%-9s %-8s %-10s\n",
			room.ID(),
			room.Type,
			room.Number,
			room.Capacity,
			strconv.FormatFloat(room.Price(), 'f', 2, 64),
			strconv.FormatFloat(room.Rating, 'f', -1, 64),
			room.Status,
		)
	}
	fmt.Fprintln(s.out, rule)
}

// bookable applies the two booking gates: the room is loaded and it is vacant.
func (s *RoomBookingSystem) bookable(roomID string) (*services.Room, error) {
	room, err := s.FindRoom(roomID)
	if err != nil {
		return nil, err
	}
	if !room.Vacant() {
		return nil, fmt.Errorf("%w: %s is %s", services.ErrRoomNotVacant, roomID, room.Status)
	}
	return room, nil
}

// BookRoom runs the interactive booking flow. Failures are reported to the
// user and yield false; nothing in memory changes before the single insert.
// The room status is left as it is after a booking.
func (s *RoomBookingSystem) BookRoom(ctx context.Context, roomID string) bool {
	room, err := s.bookable(roomID)
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		fmt.Fprintln(s.out, "Room not found.")
		return false
	case errors.Is(err, services.ErrRoomNotVacant):
		fmt.Fprintln(s.out, "This room is not available for booking.")
		return false
	case err != nil:
		return s.bookingFailed(roomID, err)
	}

	req, err := s.promptBooking()
	if err != nil {
		return s.bookingFailed(roomID, err)
	}
	valid, err := req.validate()
	if err != nil {
		return s.bookingFailed(roomID, err)
	}

	booking, err := room.AddBooking(ctx, valid.date, valid.guestName, valid.guestPhone, valid.payment, models.BookingStatusConfirmed)
	if err != nil {
		return s.bookingFailed(roomID, err)
	}
	s.announce(ctx, room, booking)

	fmt.Fprintln(s.out, "\nBooking successful!")
	return true
}

func (s *RoomBookingSystem) bookingFailed(roomID string, err error) bool {
	s.log.Warn("booking failed", zap.String("room_id", roomID), zap.Error(err))
	fmt.Fprintf(s.out, "An error occurred while booking: %v\n", err)
	return false
}

func (s *RoomBookingSystem) promptBooking() (BookingRequest, error) {
	var (
		req BookingRequest
		err error
	)
	if req.BookingDate, err = s.prompt("Enter booking date (YYYY-MM-DD): ", validateBookingDate); err != nil {
		return req, err
	}
	if req.GuestName, err = s.prompt("Enter guest name: ", requireText("Name")); err != nil {
		return req, err
	}
	if req.GuestPhone, err = s.prompt("Enter guest phone number: ", requireText("Phone number")); err != nil {
		return req, err
	}
	if req.PaymentMethod, err = s.prompt("Enter payment method (cash/card): ", validatePayment); err != nil {
		return req, err
	}
	return req, nil
}

// Book is the non-interactive booking path used by the HTTP API. It applies
// the same gates and field rules as BookRoom.
func (s *RoomBookingSystem) Book(ctx context.Context, roomID string, req BookingRequest) (*models.Booking, error) {
	room, err := s.bookable(roomID)
	if err != nil {
		return nil, err
	}
	valid, err := req.validate()
	if err != nil {
		return nil, err
	}
	booking, err := room.AddBooking(ctx, valid.date, valid.guestName, valid.guestPhone, valid.payment, models.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	s.announce(ctx, room, booking)
	return booking, nil
}

// announce publishes the confirmation. A publish failure is logged only.
func (s *RoomBookingSystem) announce(ctx context.Context, room *services.Room, booking *models.Booking) {
	event := events.NewBookingConfirmedEvent(*booking, room.Number, room.Type, s.now())
	if err := s.publisher.PublishBookingConfirmed(ctx, event); err != nil {
		s.log.Warn("booking event not published",
			zap.String("room_id", room.ID()),
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
	}
}

// ViewBookings prints every booking of a loaded room.
func (s *RoomBookingSystem) ViewBookings(ctx context.Context, roomID string) error {
	room, err := s.FindRoom(roomID)
	if err != nil {
		fmt.Fprintln(s.out, "Room not found.")
		return nil
	}

	bookings, err := room.GetBookings(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\nBookings for room", roomID)
	fmt.Fprintln(s.out, rule)
	for _, b := range bookings {
		fmt.Fprintf(s.out, "Date: %s\n", time.Time(b.BookingDate).Format(models.BookingDateLayout))
		fmt.Fprintf(s.out, "Guest: %s\n", b.GuestName)
		fmt.Fprintf(s.out, "Status: %s\n", b.Status)
		fmt.Fprintln(s.out, rule)
	}
	return nil
}

// prompt asks until validate accepts the answer. It returns io.EOF once input is exhausted.
func (s *RoomBookingSystem) prompt(label string, validate func(string) error) (string, error) {
	for {
		fmt.Fprint(s.out, label)
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		answer := strings.TrimRight(s.in.Text(), "\r")
		if validate != nil {
			if err := validate(answer); err != nil {
				fmt.Fprintf(s.out, "Error: %v\n", err)
				continue
			}
		}
		return answer, nil
	}
}

func (s *RoomBookingSystem) printMenu() {
	fmt.Fprintln(s.out, "\n=== Hotel Room Booking System ===")
	fmt.Fprintln(s.out, "1. Search rooms by price and capacity")
	fmt.Fprintln(s.out, "2. View all rooms")
	fmt.Fprintln(s.out, "3. Book a room")
	fmt.Fprintln(s.out, "4. View room bookings")
	fmt.Fprintln(s.out, "5. Exit")
}

func validateChoice(raw string) error {
	switch strings.TrimSpace(raw) {
	case "1", "2", "3", "4", "5":
		return nil
	}
	return errors.New("Please enter a number between 1 and 5")
}

// Run drives the menu until the user picks exit (nil) or input ends (io.EOF).
// Store errors outside the booking flow end the loop and are returned.
func (s *RoomBookingSystem) Run(ctx context.Context) error {
	for {
		s.printMenu()

		choice, err := s.prompt("\nEnter your choice (1-5): ", validateChoice)
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if err := s.search(); err != nil {
				return err
			}
		case "2":
			s.DisplayRooms(s.rooms)
		case "3":
			roomID, err := s.prompt("Enter room ID to book: ", nil)
			if err != nil {
				return err
			}
			s.BookRoom(ctx, strings.TrimSpace(roomID))
		case "4":
			roomID, err := s.prompt("Enter room ID to view bookings: ", nil)
			if err != nil {
				return err
			}
			if err := s.ViewBookings(ctx, strings.TrimSpace(roomID)); err != nil {
				return err
			}
		case "5":
			fmt.Fprintln(s.out, "Thank you for using the Hotel Room Booking System!")
			return nil
		}
	}
}

func (s *RoomBookingSystem) search() error {
	raw, err := s.prompt("Enter minimum price: ", func(x string) error {
		v, err := parsePrice(x)
		if err != nil {
			return err
		}
		if v < 0 {
			return errors.New("Price must be non-negative")
		}
		return nil
	})
	if err != nil {
		return err
	}
	minPrice, _ := parsePrice(raw)

	raw, err = s.prompt("Enter maximum price: ", func(x string) error {
		v, err := parsePrice(x)
		if err != nil {
			return err
		}
		if v < minPrice {
			return fmt.Errorf("Price must be greater than or equal to %v", minPrice)
		}
		return nil
	})
	if err != nil {
		return err
	}
	maxPrice, _ := parsePrice(raw)

	raw, err = s.prompt("Enter minimum capacity: ", func(x string) error {
		v, err := parseCapacity(x)
		if err != nil {
			return err
		}
		if v <= 0 {
			return errors.New("Capacity must be positive")
		}
		return nil
	})
	if err != nil {
		return err
	}
	minCapacity, _ := parseCapacity(raw)

	s.DisplayRooms(s.FilterRooms(minPrice, maxPrice, minCapacity))
	return nil
}
