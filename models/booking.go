package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking reserves one unit of a room for the nights in [DateFrom, DateTo).
// Price is copied from the room when the booking is made and never follows
// later room price changes.
type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"column:user_id;not null;index" json:"user_id"`
	RoomID    uint           `gorm:"column:room_id;not null;index:idx_booking_room_dates" json:"room_id"`
	DateFrom  datatypes.Date `gorm:"column:date_from;not null;index:idx_booking_room_dates" json:"date_from"`
	DateTo    datatypes.Date `gorm:"column:date_to;not null;index:idx_booking_room_dates" json:"date_to"`
	Price     int            `gorm:"column:price;not null" json:"price"`
	CreatedAt time.Time      `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Room Room `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"-"`
}

// Nights is the number of nights covered by the booking.
func (b Booking) Nights() int {
	from := time.Time(b.DateFrom)
	to := time.Time(b.DateTo)
	return int(to.Sub(from).Hours() / 24)
}

// TotalCost is the snapshot price multiplied by the number of nights.
func (b Booking) TotalCost() int {
	return b.Price * b.Nights()
}
