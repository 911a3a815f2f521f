package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-booking/models"
)

type RoomRepository struct {
	Repository[models.Room]
}

// LockByID reads a room and holds a row lock on it until the surrounding
// transaction ends. Dialects without row locks get a plain read.
func (r RoomRepository) LockByID(ctx context.Context, id uint) (*models.Room, error) {
	q := r.db.WithContext(ctx)
	if supportsRowLocks(q) {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var room models.Room
	if err := q.Where("id = ?", id).Take(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// FreeForHotel lists the rooms of a hotel that still have at least one
// unit free across [from, to).
func (r RoomRepository) FreeForHotel(ctx context.Context, hotelID uint, from, to time.Time) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Where("rooms.quantity > (?)", bookedCount(r.db, from, to)).
		Order("id").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// bookedCount is a subquery correlated on rooms.id.
func bookedCount(db *gorm.DB, from, to time.Time) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&models.Booking{}).
		Select("COUNT(*)").
		Where("bookings.room_id = rooms.id AND bookings.date_from < ? AND bookings.date_to > ?", to, from)
}
