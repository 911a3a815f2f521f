// Package events announces committed bookings to other systems.
package events

import (
	"context"
	"time"

	"hotel-booking/models"
)

type Publisher interface {
	PublishBookingCreated(ctx context.Context, booking models.Booking) error
	Close() error
}

// BookingCreated is the message body for a committed booking.
type BookingCreated struct {
	BookingID uint      `json:"booking_id"`
	UserID    uint      `json:"user_id"`
	RoomID    uint      `json:"room_id"`
	DateFrom  string    `json:"date_from"`
	DateTo    string    `json:"date_to"`
	Price     int       `json:"price"`
	TotalCost int       `json:"total_cost"`
	CreatedAt time.Time `json:"created_at"`
}

func NewBookingCreated(b models.Booking) BookingCreated {
	return BookingCreated{
		BookingID: b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		DateFrom:  time.Time(b.DateFrom).Format(time.DateOnly),
		DateTo:    time.Time(b.DateTo).Format(time.DateOnly),
		Price:     b.Price,
		TotalCost: b.TotalCost(),
		CreatedAt: b.CreatedAt,
	}
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishBookingCreated(context.Context, models.Booking) error { return nil }

func (NopPublisher) Close() error { return nil }
