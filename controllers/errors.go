package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-booking/apperrors"
	"hotel-booking/repositories"
	"hotel-booking/services"
	"hotel-booking/utils"
)

// toAppError maps service and repository errors onto HTTP answers.
func toAppError(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		return apperrors.NotFound("room")
	case errors.Is(err, services.ErrHotelNotFound):
		return apperrors.NotFound("hotel")
	case errors.Is(err, services.ErrBookingNotFound):
		return apperrors.NotFound("booking")
	case errors.Is(err, services.ErrFacilityNotFound):
		return apperrors.NotFound("facility")
	case errors.Is(err, services.ErrUserNotFound):
		return apperrors.NotFound("user")
	case errors.Is(err, services.ErrAllRoomsBooked):
		return apperrors.Conflict(services.ErrAllRoomsBooked.Error())
	case errors.Is(err, services.ErrInvalidRange):
		return apperrors.Validation(services.ErrInvalidRange.Error(), map[string]any{
			"date_to": "must be after date_from",
		})
	case errors.Is(err, services.ErrInvalidRoom):
		return apperrors.Validation(services.ErrInvalidRoom.Error(), nil)
	case errors.Is(err, services.ErrEmailTaken):
		return apperrors.Conflict(services.ErrEmailTaken.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return apperrors.Unauthorized(services.ErrInvalidCredentials.Error())
	case errors.Is(err, services.ErrForbidden):
		return apperrors.Forbidden(services.ErrForbidden.Error())
	case errors.Is(err, repositories.ErrNotFound):
		return apperrors.NotFound("object")
	case errors.Is(err, repositories.ErrAlreadyExists):
		return apperrors.Conflict(repositories.ErrAlreadyExists.Error())
	case errors.Is(err, repositories.ErrInvalidReference):
		return apperrors.Validation(repositories.ErrInvalidReference.Error(), nil)
	default:
		// ErrAmbiguousFilter lands here: a filter that should select one row
		// selecting several is a server side bug.
		return apperrors.Internal(err)
	}
}

func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	if appErr, ok := apperrors.As(err); ok {
		utils.JSONError(c, appErr)
		return
	}
	utils.JSONError(c, toAppError(err).WithCause(err))
}

// bindJSON binds the body into dst and answers 422 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(err)
		utils.JSONError(c, apperrors.FromValidation(err))
		return false
	}
	return true
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, apperrors.Validation("invalid path parameter", map[string]any{
			name: "must be a positive integer",
		}))
		return 0, false
	}
	return uint(id), true
}

// dateRangeQuery reads optional date_from and date_to query parameters.
// Both or neither must be present.
func dateRangeQuery(c *gin.Context) (*time.Time, *time.Time, bool) {
	rawFrom, hasFrom := c.GetQuery("date_from")
	rawTo, hasTo := c.GetQuery("date_to")
	if !hasFrom && !hasTo {
		return nil, nil, true
	}
	if hasFrom != hasTo {
		utils.JSONError(c, apperrors.Validation("date_from and date_to must be given together", nil))
		return nil, nil, false
	}
	from, err := time.Parse(time.DateOnly, rawFrom)
	if err != nil {
		utils.JSONError(c, apperrors.Validation("invalid date", map[string]any{"date_from": "must be a date in 2006-01-02 format"}))
		return nil, nil, false
	}
	to, err := time.Parse(time.DateOnly, rawTo)
	if err != nil {
		utils.JSONError(c, apperrors.Validation("invalid date", map[string]any{"date_to": "must be a date in 2006-01-02 format"}))
		return nil, nil, false
	}
	return &from, &to, true
}
