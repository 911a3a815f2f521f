package repositories

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"hotel-booking/models"
)

type HotelRepository struct {
	Repository[models.Hotel]
}

// HotelQuery narrows a hotel search. Title and Location match as
// case-insensitive substrings. When both dates are set only hotels with at
// least one room free across [DateFrom, DateTo) are returned.
type HotelQuery struct {
	Title    string
	Location string
	DateFrom *time.Time
	DateTo   *time.Time
}

func (r HotelRepository) Search(ctx context.Context, hq HotelQuery, offset, limit int) ([]models.Hotel, error) {
	q := r.db.WithContext(ctx).Model(&models.Hotel{})
	if s := strings.TrimSpace(hq.Title); s != "" {
		q = q.Where("LOWER(title) LIKE ?", likePattern(s))
	}
	if s := strings.TrimSpace(hq.Location); s != "" {
		q = q.Where("LOWER(location) LIKE ?", likePattern(s))
	}
	if hq.DateFrom != nil && hq.DateTo != nil {
		freeRooms := r.db.Session(&gorm.Session{NewDB: true}).
			Model(&models.Room{}).
			Select("rooms.hotel_id").
			Where("rooms.quantity > (?)", bookedCount(r.db, *hq.DateFrom, *hq.DateTo))
		q = q.Where("id IN (?)", freeRooms)
	}

	var hotels []models.Hotel
	if err := q.Order("id").Offset(offset).Limit(limit).Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
