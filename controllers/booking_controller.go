package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-booking/apperrors"
	"hotel-booking/middleware"
	"hotel-booking/services"
	"hotel-booking/utils"
)

type CreateBookingRequest struct {
	RoomID   uint   `json:"room_id" binding:"required,gt=0"`
	DateFrom string `json:"date_from" binding:"required,datetime=2006-01-02"`
	DateTo   string `json:"date_to" binding:"required,datetime=2006-01-02"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// CreateBooking handles POST /api/bookings.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.JSONError(c, apperrors.Unauthorized("authentication required"))
		return
	}
	var req CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	// Both dates already passed the datetime binding check.
	from, _ := time.Parse(time.DateOnly, req.DateFrom)
	to, _ := time.Parse(time.DateOnly, req.DateTo)

	booking, err := bc.BookingSvc.CreateBooking(c.Request.Context(), userID, services.BookingRequest{
		RoomID:   req.RoomID,
		DateFrom: from,
		DateTo:   to,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GetBookings handles GET /api/bookings.
func (bc *BookingController) GetBookings(c *gin.Context) {
	page, ok := pageParams(c)
	if !ok {
		return
	}
	bookings, err := bc.BookingSvc.ListBookings(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetMyBookings handles GET /api/bookings/me.
func (bc *BookingController) GetMyBookings(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	page, ok := pageParams(c)
	if !ok {
		return
	}
	bookings, err := bc.BookingSvc.ListBookingsForUser(c.Request.Context(), userID, page)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetBooking handles GET /api/bookings/:id. Users only see their own bookings.
func (bc *BookingController) GetBooking(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	booking, err := bc.BookingSvc.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if booking.UserID != userID {
		respondError(c, services.ErrForbidden)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// DeleteBooking handles DELETE /api/bookings/:id.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := bc.BookingSvc.DeleteBooking(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}
