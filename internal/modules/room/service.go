package room

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/validator"
)

type Service struct {
	rooms    RoomRepository
	bookings BookingReader
}

func NewService(rooms RoomRepository, bookings BookingReader) *Service {
	return &Service{rooms: rooms, bookings: bookings}
}

// ListRooms returns the whole catalog, or when both dates are given, only
// rooms with no approved booking overlapping [arrival, departure).
func (s *Service) ListRooms(ctx context.Context, arrival, departure *time.Time) ([]domain.Room, error) {
	if arrival == nil || departure == nil {
		return s.rooms.GetAll(ctx)
	}
	if !arrival.Before(*departure) {
		return nil, ErrValidation
	}
	return s.rooms.GetAvailable(ctx, *arrival, *departure)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	return s.rooms.GetByID(ctx, id)
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	roomType, err := domain.ParseRoomType(req.Type)
	if err != nil {
		return nil, ErrInvalidRoomType
	}

	room := &domain.Room{
		Type:         roomType,
		Number:       req.Number,
		Description:  req.Description,
		NumberOfBeds: req.NumberOfBeds,
	}
	if fields := validator.Validate(room); fields != nil {
		return nil, &FieldErrors{Fields: fields}
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, roomID int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		rt, err := domain.ParseRoomType(*req.Type)
		if err != nil {
			return nil, ErrInvalidRoomType
		}
		room.Type = rt
	}
	if req.Number != nil {
		room.Number = *req.Number
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.NumberOfBeds != nil {
		room.NumberOfBeds = *req.NumberOfBeds
	}

	if fields := validator.Validate(room); fields != nil {
		return nil, &FieldErrors{Fields: fields}
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom refuses to remove a room while any booking still references
// it, regardless of that booking's approval state.
func (s *Service) DeleteRoom(ctx context.Context, roomID int64) error {
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		return err
	}

	referenced, err := s.bookings.ExistsForRoom(ctx, roomID)
	if err != nil {
		return err
	}
	if referenced {
		return ErrRoomInUse
	}

	return s.rooms.Delete(ctx, roomID)
}
