package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-booking/apperrors"
	"hotel-booking/utils"
)

const (
	AccessTokenCookie = "access_token"
	UserIDKey         = "user_id"
)

// RequireAuth accepts the access token from the access_token cookie or an
// Authorization: Bearer header and stores the user id in the context.
func RequireAuth(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			utils.JSONError(c, apperrors.Unauthorized("missing access token"))
			return
		}
		userID, err := tokens.Parse(token)
		if err != nil {
			utils.JSONError(c, apperrors.Unauthorized("invalid access token"))
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth behaves like RequireAuth but lets anonymous requests through.
func OptionalAuth(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if userID, err := tokens.Parse(token); err == nil {
				c.Set(UserIDKey, userID)
			}
		}
		c.Next()
	}
}

func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
