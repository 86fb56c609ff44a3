package main

import (
	"log"
	"os"

	"hotelbooking/internal/database"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/manager"
	"hotelbooking/internal/modules/room"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(secret, jwtsvc.DefaultTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	roomService := room.NewService(roomRepo, bookingRepo)
	roomHandler := room.NewHandler(roomService)

	bookingService := booking.NewService(bookingRepo, roomRepo, userRepo)
	bookingHandler := booking.NewHandler(bookingService)

	managerService := manager.NewService(bookingRepo, userRepo, roomRepo)
	managerHandler := manager.NewHandler(managerService)

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		roomHandler.RegisterPublicRoutes(v1)

		// authenticated clients
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
		}

		// manager-only room mutation, same /rooms prefix as the reads
		managed := v1.Group("/")
		managed.Use(middleware.Auth(j), middleware.RequireManager())
		{
			roomHandler.RegisterManagerRoutes(managed)
		}

		managers := v1.Group("/manager")
		managers.Use(middleware.Auth(j), middleware.RequireManager())
		{
			managerHandler.RegisterRoutes(managers)
		}
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
