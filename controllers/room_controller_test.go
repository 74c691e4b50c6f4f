package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Error   string          `json:"error"`
}

func newTestRouter(h *harness) *gin.Engine {
	gin.SetMode(gin.TestMode)
	rc := NewRoomController(h.system, zap.NewNop())

	r := gin.New()
	rooms := r.Group("/api/rooms")
	rooms.GET("", rc.GetRooms)
	rooms.GET("/:id", rc.GetRoom)
	rooms.PUT("/:id/price", rc.UpdatePrice)
	rooms.GET("/:id/minibar", rc.GetMinibar)
	rooms.GET("/:id/bookings", rc.GetBookings)
	rooms.POST("/:id/bookings", rc.CreateBooking)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func TestGetRooms_Filter(t *testing.T) {
	r := newTestRouter(newHarness("", defaultRooms()))

	w, resp := doRequest(t, r, http.MethodGet, "/api/rooms?min_price=0&max_price=100&min_capacity=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rooms []roomView
	require.NoError(t, json.Unmarshal(resp.Data, &rooms))
	require.Len(t, rooms, 2)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 2, *resp.Count)
	assert.Equal(t, "r1", rooms[0].RoomID)
	assert.Equal(t, "r3", rooms[1].RoomID)

	w, resp = doRequest(t, r, http.MethodGet, "/api/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &rooms))
	require.Len(t, rooms, 3)
	assert.Equal(t, "suite", rooms[1].Category)
	assert.True(t, rooms[1].HasPool)
	assert.False(t, rooms[0].HasPool)
}

func TestGetRooms_BadQuery(t *testing.T) {
	r := newTestRouter(newHarness("", defaultRooms()))

	for _, q := range []string{"min_price=-1", "min_price=abc", "min_price=NaN", "max_price=NaN", "min_price=50&max_price=10", "min_capacity=0", "min_capacity=two"} {
		w, resp := doRequest(t, r, http.MethodGet, "/api/rooms?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
		assert.False(t, resp.Success, q)
	}
}

func TestGetRoom(t *testing.T) {
	r := newTestRouter(newHarness("", defaultRooms()))

	w, resp := doRequest(t, r, http.MethodGet, "/api/rooms/r2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var room roomView
	require.NoError(t, json.Unmarshal(resp.Data, &room))
	assert.Equal(t, 150.0, room.PriceUSD)

	w, resp = doRequest(t, r, http.MethodGet, "/api/rooms/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Room not found.", resp.Error)
}

func TestCreateBooking(t *testing.T) {
	h := newHarness("", defaultRooms())
	r := newTestRouter(h)

	body := BookingRequest{BookingDate: "2024-01-01", GuestName: "Alice", GuestPhone: "555-0100", PaymentMethod: "cash"}

	w, resp := doRequest(t, r, http.MethodPost, "/api/rooms/r1/bookings", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, resp.Success)
	require.Len(t, h.store.bookings, 1)
	assert.Equal(t, "confirmed", h.store.bookings[0].Status)
	assert.Len(t, h.pub.events, 1)

	w, _ = doRequest(t, r, http.MethodPost, "/api/rooms/r3/bookings", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = doRequest(t, r, http.MethodPost, "/api/rooms/r404/bookings", body)
	assert.Equal(t, http.StatusNotFound, w.Code)

	bad := body
	bad.BookingDate = "2024/01/01"
	w, _ = doRequest(t, r, http.MethodPost, "/api/rooms/r1/bookings", bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodPost, "/api/rooms/r1/bookings", map[string]string{"guest_name": "Alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Len(t, h.store.bookings, 1)
}

func TestCreateBooking_StoreFailure(t *testing.T) {
	h := newHarness("", defaultRooms())
	h.store.createErr = errors.New("deadlock")
	r := newTestRouter(h)

	body := BookingRequest{BookingDate: "2024-01-01", GuestName: "Alice", GuestPhone: "555", PaymentMethod: "card"}
	w, resp := doRequest(t, r, http.MethodPost, "/api/rooms/r1/bookings", body)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Database error", resp.Error)
}

func TestGetBookings(t *testing.T) {
	h := newHarness("", defaultRooms())
	r := newTestRouter(h)

	w, resp := doRequest(t, r, http.MethodGet, "/api/rooms/r1/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", string(resp.Data))

	h.store.listErr = errors.New("gone")
	w, _ = doRequest(t, r, http.MethodGet, "/api/rooms/r1/bookings", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetMinibar(t *testing.T) {
	r := newTestRouter(newHarness("", defaultRooms()))

	w, resp := doRequest(t, r, http.MethodGet, "/api/rooms/r2/minibar", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(resp.Data), "Chocolate bar")

	w, _ = doRequest(t, r, http.MethodGet, "/api/rooms/r1/minibar", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePrice(t *testing.T) {
	h := newHarness("", defaultRooms())
	r := newTestRouter(h)

	w, resp := doRequest(t, r, http.MethodPut, "/api/rooms/r1/price", map[string]float64{"price": -10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Error, "price cannot be negative")

	w, _ = doRequest(t, r, http.MethodPut, "/api/rooms/r1/price", map[string]float64{"price": 0})
	require.Equal(t, http.StatusOK, w.Code)

	room, err := h.system.FindRoom("r1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, room.Price())

	w, _ = doRequest(t, r, http.MethodPut, "/api/rooms/r1/price", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
