package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotel-booking/cache"
	"hotel-booking/config"
	"hotel-booking/controllers"
	"hotel-booking/events"
	"hotel-booking/logger"
	"hotel-booking/repositories"
	"hotel-booking/routes"
	"hotel-booking/services"
	"hotel-booking/utils"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.New(os.Getenv("APP_ENV"), "info").Fatal("invalid configuration", "error", err)
	}
	log := logger.New(cfg.AppEnv, cfg.LogLevel)
	if envErr != nil {
		log.Info(".env not loaded, using process environment")
	}
	cfg.LogConfiguration(log.Logger)
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDatabase(cfg, log.Logger)
	if err != nil {
		log.Fatal("database connect failed", "error", err)
	}
	log.Info("database ready", "driver", cfg.DBDriver)
	store := repositories.NewStore(db)

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaBookingsTopic, log.Logger)
		if err != nil {
			log.Fatal("kafka publisher init failed", "error", err)
		}
		publisher = kp
	}
	defer publisher.Close()

	var responseCache cache.Store
	if cfg.RedisURL != "" {
		rs, err := cache.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatal("redis init failed", "error", err)
		}
		if err := rs.Ping(context.Background()); err != nil {
			log.Warn("redis unreachable, responses will not be served from cache until it recovers", "error", err)
		}
		defer rs.Close()
		responseCache = rs
	}

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	hasher := utils.NewBcryptHasher(cfg.BcryptCost)

	bookingService := services.NewBookingService(store, publisher, log.Logger)
	hotelService := services.NewHotelService(store)
	roomService := services.NewRoomService(store)
	facilityService := services.NewFacilityService(store)
	authService := services.NewAuthService(store, hasher, tokens)

	router := routes.SetupRouter(routes.Handlers{
		Auth:       controllers.NewAuthController(authService, cfg.JWTTTL, cfg.CookieSecure),
		Hotels:     controllers.NewHotelController(hotelService),
		Rooms:      controllers.NewRoomController(roomService),
		Facilities: controllers.NewFacilityController(facilityService),
		Bookings:   controllers.NewBookingController(bookingService),
		Health:     controllers.NewHealthController(store),
	}, routes.Options{
		Logger:      log.Logger,
		CORSOrigins: cfg.CORSOrigins,
		Tokens:      tokens,
		Cache:       responseCache,
		CacheTTL:    cfg.CacheTTL,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout / 2,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	go func() {
		log.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server stopped")
}
