package manager

import (
	"context"

	"hotelbooking/internal/domain"
)

type BookingRepository interface {
	ApproveAndRejectOverlapping(ctx context.Context, id int64) (*domain.Booking, int64, error)
	GetAll(ctx context.Context) ([]domain.Booking, error)
}

type UserReader interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.User, error)
}

type RoomReader interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Room, error)
}
