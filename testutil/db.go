// Package testutil provides an in-memory database and fixtures for tests.
package testutil

import (
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"hotel-booking/config"
	"hotel-booking/models"
)

// NewDB returns a migrated, private in-memory SQLite database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		DBDriver:    config.DriverSQLite,
		DatabaseURL: "file::memory:?_pragma=foreign_keys(1)&_time_format=sqlite",
	}
	db, err := config.OpenDatabase(cfg, logger.Discard)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Date parses a YYYY-MM-DD literal and fails the test on error.
func Date(t testing.TB, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func CreateUser(t testing.TB, db *gorm.DB, email string) models.User {
	t.Helper()
	u := models.User{Email: email, HashedPassword: "x"}
	mustCreate(t, db, &u)
	return u
}

func CreateHotel(t testing.TB, db *gorm.DB, title, location string) models.Hotel {
	t.Helper()
	h := models.Hotel{Title: title, Location: location}
	mustCreate(t, db, &h)
	return h
}

func CreateRoom(t testing.TB, db *gorm.DB, hotelID uint, price, quantity int) models.Room {
	t.Helper()
	r := models.Room{HotelID: hotelID, Title: "Standard", Price: price, Quantity: quantity}
	mustCreate(t, db, &r)
	return r
}

func CreateFacility(t testing.TB, db *gorm.DB, title string) models.Facility {
	t.Helper()
	f := models.Facility{Title: title}
	mustCreate(t, db, &f)
	return f
}

func CreateBooking(t testing.TB, db *gorm.DB, userID, roomID uint, from, to string, price int) models.Booking {
	t.Helper()
	b := models.Booking{
		UserID:   userID,
		RoomID:   roomID,
		DateFrom: datatypes.Date(Date(t, from)),
		DateTo:   datatypes.Date(Date(t, to)),
		Price:    price,
	}
	mustCreate(t, db, &b)
	return b
}

func mustCreate(t testing.TB, db *gorm.DB, v any) {
	t.Helper()
	if err := db.Omit(clause.Associations).Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}
