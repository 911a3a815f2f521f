package utils

import (
	"github.com/gin-gonic/gin"

	"hotel-booking/apperrors"
)

func JSONSuccess(c *gin.Context, code int, data any) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// JSONError writes err and aborts the handler chain.
func JSONError(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.HTTPStatus, gin.H{"success": false, "error": err})
}
