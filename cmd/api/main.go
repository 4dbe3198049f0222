package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/catalog"
	"hotelbooking/internal/modules/events"
	"hotelbooking/internal/modules/payment"
	"hotelbooking/internal/modules/review"
	"hotelbooking/internal/pkg/clock"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/repository"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	hub := events.NewHub()
	defer hub.Close()
	notifier := events.NewNotifier(hub)
	eventsHandler := events.NewHandler(hub, log)

	bookingService := booking.NewService(bookingRepo, roomRepo, notifier, clock.Real{})
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(bookingRepo)
	reviewHandler := review.NewHandler(reviewService)

	catalogService := catalog.NewService(hotelRepo, roomRepo, bookingRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	paymentService := payment.NewService(bookingRepo)
	paymentHandler := payment.NewHandler(paymentService)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.CORS(), middleware.RequestLogger(log))

	v1 := r.Group("/api/v1")
	{
		// public: browsing needs no identity
		catalogHandler.RegisterRoutes(v1)
		eventsHandler.RegisterRoutes(v1)

		// authenticated customers and staff
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(protected)

			staff := protected.Group("/")
			staff.Use(middleware.RequireRole("hotel", "admin"))
			catalogHandler.RegisterStaffRoutes(staff)
		}

		// service-to-service: payment gateway callbacks
		internal := v1.Group("/internal")
		internal.Use(middleware.InternalTokenAuth())
		paymentHandler.RegisterRoutes(internal)
	}

	log.WithField("port", cfg.Port).Info("starting api")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
