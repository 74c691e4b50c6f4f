package controllers

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"
)

// RoomController exposes the booking system over HTTP.
type RoomController struct {
	System *RoomBookingSystem
	Log    *zap.Logger
}

func NewRoomController(system *RoomBookingSystem, log *zap.Logger) *RoomController {
	return &RoomController{System: system, Log: log}
}

type roomView struct {
	RoomID     string  `json:"room_id"`
	RoomType   string  `json:"room_type"`
	HotelID    string  `json:"hotel_id"`
	RoomNumber string  `json:"room_number"`
	Capacity   int     `json:"capacity"`
	Rating     float64 `json:"rating"`
	PriceUSD   float64 `json:"price_USD"`
	RoomStatus string  `json:"room_status"`
	Category   string  `json:"category"`
	HasPool    bool    `json:"has_pool"`
}

func toRoomView(r *services.Room) roomView {
	return roomView{
		RoomID:     r.ID(),
		RoomType:   r.Type,
		HotelID:    r.HotelID,
		RoomNumber: r.Number,
		Capacity:   r.Capacity,
		Rating:     r.Rating,
		PriceUSD:   r.Price(),
		RoomStatus: r.Status,
		Category:   r.Category().String(),
		HasPool:    r.HasPool(),
	}
}

func toRoomViews(rooms []*services.Room) []roomView {
	out := make([]roomView, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, toRoomView(r))
	}
	return out
}

// ----------------------------------------------------
// GET /api/rooms?min_price=&max_price=&min_capacity=
// ----------------------------------------------------

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	minPrice, maxPrice, minCapacity := 0.0, math.MaxFloat64, 0

	if raw, ok := c.GetQuery("min_price"); ok {
		v, err := parsePrice(raw)
		if err != nil || v < 0 {
			utils.JSONError(c, http.StatusBadRequest, "min_price must be a non-negative number")
			return
		}
		minPrice = v
	}
	if raw, ok := c.GetQuery("max_price"); ok {
		v, err := parsePrice(raw)
		if err != nil || v < minPrice {
			utils.JSONError(c, http.StatusBadRequest, "max_price must be a number >= min_price")
			return
		}
		maxPrice = v
	}
	if raw, ok := c.GetQuery("min_capacity"); ok {
		v, err := parseCapacity(raw)
		if err != nil || v <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "min_capacity must be a positive integer")
			return
		}
		minCapacity = v
	}

	rooms := ctrl.System.FilterRooms(minPrice, maxPrice, minCapacity)
	utils.JSONList(c, toRoomViews(rooms), len(rooms))
}

// GET /api/rooms/:id
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	room, ok := ctrl.findRoom(c)
	if !ok {
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toRoomView(room))
}

// GET /api/rooms/:id/bookings
func (ctrl *RoomController) GetBookings(c *gin.Context) {
	room, ok := ctrl.findRoom(c)
	if !ok {
		return
	}
	bookings, err := room.GetBookings(c.Request.Context())
	if err != nil {
		ctrl.Log.Error("list bookings failed", zap.String("room_id", room.ID()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	utils.JSONList(c, bookings, len(bookings))
}

// POST /api/rooms/:id/bookings
func (ctrl *RoomController) CreateBooking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	booking, err := ctrl.System.Book(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, "Room not found.")
		case errors.Is(err, services.ErrRoomNotVacant):
			utils.JSONError(c, http.StatusConflict, "This room is not available for booking.")
		case errors.Is(err, services.ErrDuplicateBooking):
			utils.JSONError(c, http.StatusConflict, err.Error())
		case errors.Is(err, ErrInvalidBooking):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			ctrl.Log.Error("create booking failed", zap.String("room_id", c.Param("id")), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GET /api/rooms/:id/minibar
func (ctrl *RoomController) GetMinibar(c *gin.Context) {
	room, ok := ctrl.findRoom(c)
	if !ok {
		return
	}
	minibar, ok := room.Minibar()
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Room has no minibar.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, minibar)
}

type priceUpdate struct {
	Price *float64 `json:"price" binding:"required"`
}

// PUT /api/rooms/:id/price changes the in-memory price only.
func (ctrl *RoomController) UpdatePrice(c *gin.Context) {
	room, ok := ctrl.findRoom(c)
	if !ok {
		return
	}
	var body priceUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := room.SetPrice(*body.Price); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toRoomView(room))
}

func (ctrl *RoomController) findRoom(c *gin.Context) (*services.Room, bool) {
	room, err := ctrl.System.FindRoom(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Room not found.")
		return nil, false
	}
	return room, true
}
