package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hotel-booking/models"
)

// RoomService reads hotel_rooms. Rooms are never written back by this tool.
type RoomService struct {
	DB       *gorm.DB
	Bookings BookingStore
	Log      *zap.Logger
}

func NewRoomService(db *gorm.DB, bookings BookingStore, log *zap.Logger) *RoomService {
	if log == nil {
		log = zap.NewNop()
	}
	return &RoomService{DB: db, Bookings: bookings, Log: log}
}

func (s *RoomService) GetAll(ctx context.Context) ([]models.HotelRoom, error) {
	var rooms []models.HotelRoom
	if err := s.DB.WithContext(ctx).Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

// LoadRooms reads every room once and wraps each row in a Room.
func (s *RoomService) LoadRooms(ctx context.Context) ([]*Room, error) {
	records, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	rooms := LoadRooms(records, s.Bookings, s.Log)
	s.Log.Info("rooms loaded", zap.Int("count", len(rooms)))
	return rooms, nil
}
