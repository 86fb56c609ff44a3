package manager

import (
	"context"

	"hotelbooking/internal/domain"
)

type Service struct {
	bookings BookingRepository
	users    UserReader
	rooms    RoomReader
}

func NewService(bookings BookingRepository, users UserReader, rooms RoomReader) *Service {
	return &Service{bookings: bookings, users: users, rooms: rooms}
}

// ApproveBooking approves the request and rejects every pending request for
// the same room whose range overlaps the approved one. Both writes happen in
// a single transaction inside the repository.
func (s *Service) ApproveBooking(ctx context.Context, id int64) (*ApprovalResult, error) {
	approved, rejected, err := s.bookings.ApproveAndRejectOverlapping(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ApprovalResult{Booking: approved, RejectedCount: rejected}, nil
}

// ListBookings returns every booking with its user and room resolved, for
// the manager's full history view.
func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	items, err := s.bookings.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	userIDs := make([]int64, 0, len(items))
	roomIDs := make([]int64, 0, len(items))
	for _, b := range items {
		userIDs = append(userIDs, b.UserID)
		roomIDs = append(roomIDs, b.RoomID)
	}

	users, err := s.users.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	rooms, err := s.rooms.GetByIDs(ctx, roomIDs)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if u := users[items[i].UserID]; u != nil {
			u.PasswordHash = ""
			items[i].User = u
		}
		items[i].Room = rooms[items[i].RoomID]
	}
	return items, nil
}
