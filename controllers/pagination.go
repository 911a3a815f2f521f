package controllers

import (
	"github.com/gin-gonic/gin"

	"hotel-booking/apperrors"
	"hotel-booking/pagination"
	"hotel-booking/utils"
)

func pageParams(c *gin.Context) (pagination.Params, bool) {
	var q pagination.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, apperrors.FromValidation(err))
		return pagination.Params{}, false
	}
	p, err := q.Params()
	if err != nil {
		utils.JSONError(c, apperrors.FromValidation(err))
		return pagination.Params{}, false
	}
	return p, true
}
