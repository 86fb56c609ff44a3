package booking

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/voucher"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomReader
	users    UserReader
	now      func() time.Time
}

func NewService(bookings BookingRepository, rooms RoomReader, users UserReader) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		users:    users,
		now:      time.Now,
	}
}

// Create files a pending stay request over [arrival, departure). The room
// must exist and have no approved booking overlapping the range.
func (s *Service) Create(ctx context.Context, userID int64, req StayRequest) (*domain.Booking, error) {
	if !req.ArrivalDate.Before(req.DepartureDate) {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	free, err := s.bookings.IsRoomAvailable(ctx, req.RoomID, req.ArrivalDate, req.DepartureDate, 0)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrNotAvailable
	}

	b := &domain.Booking{
		UserID:        userID,
		RoomID:        req.RoomID,
		ArrivalDate:   req.ArrivalDate,
		DepartureDate: req.DepartureDate,
		IsApproved:    nil,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	b.Room = room
	return b, nil
}

// Get returns the booking with its user and room resolved. Only the owner
// or a manager may read it.
func (s *Service) Get(ctx context.Context, id, callerID int64, isManager bool) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != callerID && !isManager {
		return nil, ErrForbidden
	}

	if user, err := s.users.GetByID(ctx, b.UserID); err == nil {
		user.PasswordHash = ""
		b.User = user
	}
	if room, err := s.rooms.GetByID(ctx, b.RoomID); err == nil {
		b.Room = room
	}
	return b, nil
}

// Update reschedules the owner's booking. Any change throws the request
// back to pending; the availability check skips the booking's own record.
func (s *Service) Update(ctx context.Context, id, callerID int64, req StayRequest) (*domain.Booking, error) {
	if !req.ArrivalDate.Before(req.DepartureDate) {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != callerID {
		return nil, ErrForbidden
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	free, err := s.bookings.IsRoomAvailable(ctx, req.RoomID, req.ArrivalDate, req.DepartureDate, id)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrNotAvailable
	}

	b.RoomID = req.RoomID
	b.ArrivalDate = req.ArrivalDate
	b.DepartureDate = req.DepartureDate
	b.IsApproved = nil
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	b.Room = room
	return b, nil
}

// Delete withdraws the owner's booking while it is still pending or
// rejected. Approved stays must go through a manager.
func (s *Service) Delete(ctx context.Context, id, callerID int64) error {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.UserID != callerID {
		return ErrForbidden
	}
	if b.State() == domain.BookingApproved {
		return ErrApprovedLocked
	}
	return s.bookings.Delete(ctx, id)
}

// History returns the caller's bookings whose arrival date has passed,
// oldest first, with room details attached.
func (s *Service) History(ctx context.Context, userID int64) ([]domain.Booking, error) {
	items, err := s.bookings.GetByUserArrivedBy(ctx, userID, s.now())
	if err != nil {
		return nil, err
	}

	roomIDs := make([]int64, 0, len(items))
	for _, b := range items {
		roomIDs = append(roomIDs, b.RoomID)
	}
	rooms, err := s.rooms.GetByIDs(ctx, roomIDs)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Room = rooms[items[i].RoomID]
	}
	return items, nil
}

// CurrentClients lists each guest with an approved booking whose range
// contains the current instant, once per guest.
func (s *Service) CurrentClients(ctx context.Context) ([]ClientStay, error) {
	active, err := s.bookings.GetActiveApproved(ctx, s.now())
	if err != nil {
		return nil, err
	}

	userIDs := make([]int64, 0, len(active))
	for _, b := range active {
		userIDs = append(userIDs, b.UserID)
	}
	users, err := s.users.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(active))
	out := make([]ClientStay, 0, len(active))
	for _, b := range active {
		if seen[b.UserID] {
			continue
		}
		seen[b.UserID] = true
		u, ok := users[b.UserID]
		if !ok || u == nil {
			continue
		}
		out = append(out, ClientStay{
			User: UserPublic{
				ID:        u.ID,
				FirstName: u.FirstName,
				LastName:  u.LastName,
				Email:     u.Email,
			},
			RoomID:        b.RoomID,
			ArrivalDate:   b.ArrivalDate,
			DepartureDate: b.DepartureDate,
		})
	}
	return out, nil
}

// Voucher renders the owner's booking as a PDF document.
func (s *Service) Voucher(ctx context.Context, id, callerID int64) ([]byte, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != callerID {
		return nil, ErrForbidden
	}

	user, err := s.users.GetByID(ctx, b.UserID)
	if err != nil {
		return nil, err
	}
	room, err := s.rooms.GetByID(ctx, b.RoomID)
	if err != nil {
		return nil, err
	}
	b.User = user
	b.Room = room

	return voucher.Generate(b)
}
