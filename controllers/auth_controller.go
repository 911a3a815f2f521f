package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-booking/middleware"
	"hotel-booking/services"
	"hotel-booking/utils"
)

type AuthRequest struct {
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

type AuthController struct {
	AuthSvc      *services.AuthService
	TokenTTL     time.Duration
	CookieSecure bool
}

func NewAuthController(svc *services.AuthService, tokenTTL time.Duration, cookieSecure bool) *AuthController {
	return &AuthController{AuthSvc: svc, TokenTTL: tokenTTL, CookieSecure: cookieSecure}
}

func (ac *AuthController) Register(c *gin.Context) {
	var req AuthRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := ac.AuthSvc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, user)
}

// Login sets the access_token cookie and also returns the token in the body
// for clients that prefer the Authorization header.
func (ac *AuthController) Login(c *gin.Context) {
	var req AuthRequest
	if !bindJSON(c, &req) {
		return
	}
	token, user, err := ac.AuthSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, token, int(ac.TokenTTL.Seconds()), "/", "", ac.CookieSecure, true)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"access_token": token, "user": user})
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", ac.CookieSecure, true)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"status": "logged out"})
}

func (ac *AuthController) Me(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	user, err := ac.AuthSvc.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
