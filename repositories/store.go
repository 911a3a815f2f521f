package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hotel-booking/models"
)

// Store bundles the repositories that share one database handle. Inside
// Transaction every repository of the store passed to fn runs on the same
// transaction.
type Store struct {
	db *gorm.DB

	Hotels         HotelRepository
	Rooms          RoomRepository
	Facilities     FacilityRepository
	RoomFacilities RoomFacilityRepository
	Users          UserRepository
	Bookings       BookingRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:             db,
		Hotels:         HotelRepository{NewRepository[models.Hotel](db)},
		Rooms:          RoomRepository{NewRepository[models.Room](db)},
		Facilities:     FacilityRepository{NewRepository[models.Facility](db)},
		RoomFacilities: RoomFacilityRepository{NewRepository[models.RoomFacility](db)},
		Users:          UserRepository{NewRepository[models.User](db)},
		Bookings:       BookingRepository{NewRepository[models.Booking](db)},
	}
}

// Transaction commits when fn returns nil and rolls back otherwise. fn must
// only use the store it receives: on SQLite the pool holds a single
// connection, and touching the outer store from inside fn blocks forever.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func supportsRowLocks(db *gorm.DB) bool {
	return db.Dialector.Name() != "sqlite"
}
