package services

import (
	"context"
	"time"

	"hotel-booking/models"
	"hotel-booking/repositories"
)

// CountOverlapping counts the bookings of roomID that share at least one
// night with [from, to). It only reads; pass a transactional store to get a
// value consistent with a write in the same transaction.
func CountOverlapping(ctx context.Context, store *repositories.Store, roomID uint, from, to time.Time) (int64, error) {
	from, to, err := validRange(from, to)
	if err != nil {
		return 0, err
	}
	return store.Bookings.CountOverlapping(ctx, roomID, from, to)
}

// HasCapacity reports whether one more booking of room fits in [from, to).
func HasCapacity(ctx context.Context, store *repositories.Store, room models.Room, from, to time.Time) (bool, error) {
	n, err := CountOverlapping(ctx, store, room.ID, from, to)
	if err != nil {
		return false, err
	}
	return n < int64(room.Quantity), nil
}

// day truncates t to midnight UTC of its calendar date.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validRange(from, to time.Time) (time.Time, time.Time, error) {
	from, to = day(from), day(to)
	if !to.After(from) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return from, to, nil
}
