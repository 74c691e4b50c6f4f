package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"hotel-booking/models"
)

func sampleRecord(id, roomType string, price float64) models.HotelRoom {
	return models.HotelRoom{
		RoomID:     id,
		RoomType:   roomType,
		HotelID:    "hotel-1",
		RoomNumber: "10" + id,
		Capacity:   2,
		Rating:     4.5,
		PriceUSD:   price,
		RoomStatus: "vacant",
	}
}

func TestRoom_SetPrice(t *testing.T) {
	room := NewRoom(sampleRecord("r1", "Double", 80), &fakeBookingStore{}, nil)
	assert.Equal(t, 80.0, room.Price())

	for _, bad := range []float64{-0.01, -1, -1000} {
		err := room.SetPrice(bad)
		assert.ErrorIs(t, err, ErrNegativePrice)
		assert.Equal(t, 80.0, room.Price(), "rejected value must not be stored")
	}

	for _, good := range []float64{0, 0.5, 120, 99999.99} {
		require.NoError(t, room.SetPrice(good))
		assert.Equal(t, good, room.Price())
	}
}

func TestRoom_IDIsFixed(t *testing.T) {
	room := NewRoom(sampleRecord("r7", "Single", 40), &fakeBookingStore{}, nil)
	assert.Equal(t, "r7", room.ID())
	require.NoError(t, room.SetPrice(10))
	assert.Equal(t, "r7", room.ID())
}

func TestRoom_Vacant(t *testing.T) {
	rec := sampleRecord("r1", "Single", 40)
	for status, want := range map[string]bool{"vacant": true, "VACANT": true, "Vacant": true, "occupied": false, "": false} {
		rec.RoomStatus = status
		assert.Equal(t, want, NewRoom(rec, nil, nil).Vacant(), status)
	}
}

func TestLoadRooms_PartitionsSuites(t *testing.T) {
	records := []models.HotelRoom{
		sampleRecord("r1", "Single", 50),
		sampleRecord("r2", "Suite", 300),
		sampleRecord("r3", "honeymoon SUITE", 450),
		sampleRecord("r4", "Deluxe", 150),
	}

	rooms := LoadRooms(records, &fakeBookingStore{}, zap.NewNop())
	require.Len(t, rooms, 4)

	want := []models.RoomCategory{models.CategoryStandard, models.CategorySuite, models.CategorySuite, models.CategoryStandard}
	for i, room := range rooms {
		assert.Equal(t, records[i].RoomID, room.ID(), "load order is kept")
		assert.Equal(t, want[i], room.Category())
		assert.Equal(t, want[i] == models.CategorySuite, room.HasPool())
	}
}

func TestRoom_SuiteCapabilities(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	suite := NewRoom(sampleRecord("s1", "Executive Suite", 500), &fakeBookingStore{}, zap.New(core))

	mb, ok := suite.Minibar()
	require.True(t, ok)
	assert.Equal(t, models.SuiteMinibar(), mb)

	require.NoError(t, suite.CleanPool())
	require.Equal(t, 1, logs.FilterMessage("cleaning pool").Len())
	assert.Equal(t, 500.0, suite.Price())
	assert.Equal(t, "vacant", suite.Status)

	standard := NewRoom(sampleRecord("r1", "Twin", 70), &fakeBookingStore{}, nil)
	_, ok = standard.Minibar()
	assert.False(t, ok)
	assert.ErrorIs(t, standard.CleanPool(), ErrNoPool)
}

func TestRoom_AddAndGetBookings(t *testing.T) {
	store := &fakeBookingStore{}
	room := NewRoom(sampleRecord("r1", "Double", 80), store, nil)
	other := NewRoom(sampleRecord("r2", "Double", 80), store, nil)

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b, err := room.AddBooking(context.Background(), day, "Alice", "555-0100", models.PaymentCash, models.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, "r1", b.RoomID)
	assert.Equal(t, "hotel-1", b.HotelID)
	assert.Equal(t, day, time.Time(b.BookingDate))

	_, err = other.AddBooking(context.Background(), day, "Bob", "555-0101", models.PaymentCard, models.BookingStatusConfirmed)
	require.NoError(t, err)

	got, err := room.GetBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].GuestName)
	assert.Equal(t, models.PaymentCash, got[0].PaymentMethod)
	assert.Equal(t, "confirmed", got[0].Status)
}

func TestRoom_StoreErrorsPropagate(t *testing.T) {
	boom := errors.New("connection reset")
	store := &fakeBookingStore{listErr: boom, createErr: boom}
	room := NewRoom(sampleRecord("r1", "Double", 80), store, nil)

	_, err := room.GetBookings(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = room.AddBooking(context.Background(), time.Now(), "A", "1", models.PaymentCard, models.BookingStatusConfirmed)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, store.creates)
}
