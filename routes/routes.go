package routes

import (
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hotel-booking/cache"
	"hotel-booking/controllers"
	"hotel-booking/middleware"
	"hotel-booking/utils"
)

type Handlers struct {
	Auth       *controllers.AuthController
	Hotels     *controllers.HotelController
	Rooms      *controllers.RoomController
	Facilities *controllers.FacilityController
	Bookings   *controllers.BookingController
	Health     *controllers.HealthController
}

type Options struct {
	Logger      *slog.Logger
	CORSOrigins []string
	Tokens      *utils.TokenManager
	// Cache is optional; GET responses are not cached without it.
	Cache    cache.Store
	CacheTTL time.Duration
}

func init() {
	// Report validation failures by JSON field name.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

func SetupRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(opts.Logger))
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	r.GET("/health", h.Health.Livez)
	r.GET("/ready", h.Health.Readyz)

	requireAuth := middleware.RequireAuth(opts.Tokens)
	optionalAuth := middleware.OptionalAuth(opts.Tokens)
	cached := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		if opts.Cache == nil {
			return []gin.HandlerFunc{handler}
		}
		return []gin.HandlerFunc{optionalAuth, middleware.Cache(opts.Cache, opts.CacheTTL, opts.Logger), handler}
	}

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", requireAuth, h.Auth.Me)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("", cached(h.Hotels.GetHotels)...)
			hotels.GET("/:hotel_id", cached(h.Hotels.GetHotel)...)
			hotels.POST("", requireAuth, h.Hotels.CreateHotel)
			hotels.PUT("/:hotel_id", requireAuth, h.Hotels.ReplaceHotel)
			hotels.PATCH("/:hotel_id", requireAuth, h.Hotels.PatchHotel)
			hotels.DELETE("/:hotel_id", requireAuth, h.Hotels.DeleteHotel)

			hotels.GET("/:hotel_id/rooms", cached(h.Rooms.GetRooms)...)
			hotels.GET("/:hotel_id/rooms/:room_id", cached(h.Rooms.GetRoom)...)
			hotels.POST("/:hotel_id/rooms", requireAuth, h.Rooms.CreateRoom)
			hotels.PUT("/:hotel_id/rooms/:room_id", requireAuth, h.Rooms.ReplaceRoom)
			hotels.PATCH("/:hotel_id/rooms/:room_id", requireAuth, h.Rooms.PatchRoom)
			hotels.DELETE("/:hotel_id/rooms/:room_id", requireAuth, h.Rooms.DeleteRoom)
		}

		facilities := api.Group("/facilities")
		{
			facilities.GET("", cached(h.Facilities.GetFacilities)...)
			facilities.POST("", requireAuth, h.Facilities.CreateFacility)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", cached(h.Bookings.GetBookings)...)
			bookings.POST("", requireAuth, h.Bookings.CreateBooking)
			// /me must be registered before /:id.
			bookings.GET("/me", requireAuth, h.Bookings.GetMyBookings)
			bookings.GET("/:id", requireAuth, h.Bookings.GetBooking)
			bookings.DELETE("/:id", requireAuth, h.Bookings.DeleteBooking)
		}
	}

	return r
}
