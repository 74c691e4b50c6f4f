package services

import "errors"

var (
	// ErrNegativePrice is returned by Room.SetPrice for any value below zero.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrNoPool is returned when a pool operation targets a non-suite room.
	ErrNoPool = errors.New("room has no pool")

	// ErrRoomNotFound means the id is not part of the loaded snapshot or the table.
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomNotVacant blocks booking a room whose status is anything but vacant.
	ErrRoomNotVacant = errors.New("room is not available for booking")

	// ErrDuplicateBooking is a unique-key violation reported by the store.
	ErrDuplicateBooking = errors.New("booking already exists")
)
