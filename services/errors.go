package services

import "errors"

var (
	ErrInvalidRange       = errors.New("date_to must be after date_from")
	ErrAllRoomsBooked     = errors.New("all rooms of this type are booked for the requested dates")
	ErrRoomNotFound       = errors.New("room not found")
	ErrHotelNotFound      = errors.New("hotel not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrFacilityNotFound   = errors.New("facility not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("operation not allowed for this user")
)
