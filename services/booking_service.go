package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"

	"hotel-booking/events"
	"hotel-booking/models"
	"hotel-booking/pagination"
	"hotel-booking/repositories"
)

type BookingRequest struct {
	RoomID   uint
	DateFrom time.Time
	DateTo   time.Time
}

type BookingService struct {
	store  *repositories.Store
	events events.Publisher
	log    *slog.Logger
}

func NewBookingService(store *repositories.Store, publisher events.Publisher, log *slog.Logger) *BookingService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &BookingService{store: store, events: publisher, log: log}
}

// CreateBooking books one unit of the requested room for userID.
//
// The room row is locked first, then capacity is counted and the booking
// inserted in the same transaction, so two requests for the last free unit
// cannot both succeed. The price is copied from the room at this moment.
func (s *BookingService) CreateBooking(ctx context.Context, userID uint, req BookingRequest) (*models.Booking, error) {
	from, to, err := validRange(req.DateFrom, req.DateTo)
	if err != nil {
		return nil, err
	}

	var booking models.Booking
	err = s.store.Transaction(ctx, func(tx *repositories.Store) error {
		room, err := tx.Rooms.LockByID(ctx, req.RoomID)
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRoomNotFound
		}
		if err != nil {
			return fmt.Errorf("lock room %d: %w", req.RoomID, err)
		}

		free, err := HasCapacity(ctx, tx, *room, from, to)
		if err != nil {
			return fmt.Errorf("check capacity: %w", err)
		}
		if !free {
			return ErrAllRoomsBooked
		}

		booking = models.Booking{
			UserID:   userID,
			RoomID:   room.ID,
			DateFrom: datatypes.Date(from),
			DateTo:   datatypes.Date(to),
			Price:    room.Price,
		}
		if err := tx.Bookings.Add(ctx, &booking); err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("booking created",
		"booking_id", booking.ID,
		"room_id", booking.RoomID,
		"user_id", booking.UserID,
		"date_from", from.Format(time.DateOnly),
		"date_to", to.Format(time.DateOnly),
	)
	if err := s.events.PublishBookingCreated(ctx, booking); err != nil {
		s.log.Warn("publish booking event failed", "booking_id", booking.ID, "error", err)
	}
	return &booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context, page pagination.Params) ([]models.Booking, error) {
	return s.store.Bookings.GetAll(ctx, repositories.Paginate(page.Offset(), page.Limit()))
}

func (s *BookingService) ListBookingsForUser(ctx context.Context, userID uint, page pagination.Params) ([]models.Booking, error) {
	return s.store.Bookings.GetFiltered(ctx,
		repositories.Filter{"user_id": userID},
		repositories.Paginate(page.Offset(), page.Limit()),
	)
}

func (s *BookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	b, err := s.store.Bookings.GetOne(ctx, repositories.Filter{"id": id})
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

// DeleteBooking cancels a booking. Only the user who made it may do so.
func (s *BookingService) DeleteBooking(ctx context.Context, userID, id uint) error {
	return s.store.Transaction(ctx, func(tx *repositories.Store) error {
		b, err := tx.Bookings.GetOne(ctx, repositories.Filter{"id": id})
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookingNotFound
		}
		if err != nil {
			return err
		}
		if b.UserID != userID {
			return ErrForbidden
		}
		return tx.Bookings.Delete(ctx, repositories.Filter{"id": id})
	})
}
