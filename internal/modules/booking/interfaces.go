package booking

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	IsRoomAvailable(ctx context.Context, roomID int64, arrival, departure time.Time, excludeBookingID int64) (bool, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id int64) error
	GetByUserArrivedBy(ctx context.Context, userID int64, cutoff time.Time) ([]domain.Booking, error)
	GetActiveApproved(ctx context.Context, at time.Time) ([]domain.Booking, error)
}

// RoomReader resolves room projections for booking responses.
type RoomReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Room, error)
}

// UserReader resolves user projections for booking responses.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.User, error)
}
