package room

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetAll(ctx context.Context) ([]domain.Room, error)
	GetAvailable(ctx context.Context, arrival, departure time.Time) ([]domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int64) error
}

// BookingReader is the slice of the booking repository the room module
// needs for its referential-integrity guard.
type BookingReader interface {
	ExistsForRoom(ctx context.Context, roomID int64) (bool, error)
}
