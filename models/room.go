// models/room.go
package models

// HotelRoom is one row of hotel_rooms. Column names follow the hosted schema,
// including the mixed-case price_USD column.
type HotelRoom struct {
	RoomID     string  `gorm:"column:room_id;primaryKey;type:varchar(64)" json:"room_id"`
	RoomType   string  `gorm:"column:room_type;type:varchar(100)" json:"room_type"`
	HotelID    string  `gorm:"column:hotel_id;type:varchar(64);index" json:"hotel_id"`
	RoomNumber string  `gorm:"column:room_number;type:varchar(50)" json:"room_number"`
	Capacity   int     `gorm:"column:capacity" json:"capacity"`
	Rating     float64 `gorm:"column:rating" json:"rating"`
	PriceUSD   float64 `gorm:"column:price_USD" json:"price_USD"`
	RoomStatus string  `gorm:"column:room_status;type:varchar(32)" json:"room_status"`
}

func (HotelRoom) TableName() string {
	return "hotel_rooms"
}

// RoomStatusVacant is the only status that accepts new bookings.
const RoomStatusVacant = "vacant"
