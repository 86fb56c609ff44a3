package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotel.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)

	log.Println("Creating users...")

	managerHash, _ := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
	mgr := &domain.User{
		FirstName:    "Gulnara",
		LastName:     "Seitkali",
		Email:        "manager@hotel.kz",
		PasswordHash: string(managerHash),
		IsManager:    true,
	}
	if err := userRepo.Create(ctx, mgr); err != nil {
		log.Fatal("manager seed failed:", err)
	}
	log.Println("Manager created: manager@hotel.kz / manager123")

	clientNames := [][2]string{
		{"Asel", "Nurlanova"},
		{"Bekzat", "Omarov"},
		{"Dina", "Kairatkyzy"},
	}
	for i, name := range clientNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
		client := &domain.User{
			FirstName:    name[0],
			LastName:     name[1],
			Email:        fmt.Sprintf("client%d@mail.kz", i+1),
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, client); err != nil {
			log.Fatal("client seed failed:", err)
		}
	}

	log.Println("Creating rooms...")

	rooms := []*domain.Room{
		{Type: domain.RoomSingle, Number: 101, Description: "Cosy single room with a city view", NumberOfBeds: 1},
		{Type: domain.RoomSingle, Number: 102, Description: "Single room facing the courtyard", NumberOfBeds: 1},
		{Type: domain.RoomDouble, Number: 201, Description: "Double room with a queen-size bed", NumberOfBeds: 2},
		{Type: domain.RoomDouble, Number: 202, Description: "Double room with twin beds and a balcony", NumberOfBeds: 2},
		{Type: domain.RoomTriple, Number: 301, Description: "Triple room for families, extra fold-out bed", NumberOfBeds: 3},
		{Type: domain.RoomDeluxe, Number: 401, Description: "Deluxe suite with a separate living area", NumberOfBeds: 2},
	}
	for _, r := range rooms {
		if err := roomRepo.Create(ctx, r); err != nil {
			log.Fatal("room seed failed:", err)
		}
	}

	log.Printf("Seed complete: %d rooms, %d clients, 1 manager", len(rooms), len(clientNames))
}
