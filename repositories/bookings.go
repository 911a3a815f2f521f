package repositories

import (
	"context"
	"time"

	"hotel-booking/models"
)

type BookingRepository struct {
	Repository[models.Booking]
}

// CountOverlapping counts bookings of roomID whose half-open interval
// [date_from, date_to) intersects [from, to). A booking ending on from or
// starting on to does not overlap.
func (r BookingRepository) CountOverlapping(ctx context.Context, roomID uint, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("room_id = ? AND date_from < ? AND date_to > ?", roomID, to, from).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return n, nil
}
