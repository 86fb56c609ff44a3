package room

import (
	"context"
	"testing"
	"time"

	"hotelbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	if room != nil {
		room.ID = 101 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetAvailable(ctx context.Context, arrival, departure time.Time) ([]domain.Room, error) {
	args := m.Called(ctx, arrival, departure)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) ExistsForRoom(ctx context.Context, roomID int64) (bool, error) {
	args := m.Called(ctx, roomID)
	return args.Bool(0), args.Error(1)
}

func date(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func TestService_ListRooms_NoFilter(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	all := []domain.Room{{ID: 1, Type: domain.RoomSingle, Number: 101}}
	mockRooms.On("GetAll", mock.Anything).Return(all, nil)

	service := NewService(mockRooms, new(MockBookingReader))

	rooms, err := service.ListRooms(context.Background(), nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, all, rooms)
	mockRooms.AssertNotCalled(t, "GetAvailable", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ListRooms_DateFilter(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	arrival := date(2026, 8, 10)
	departure := date(2026, 8, 15)
	free := []domain.Room{{ID: 2, Type: domain.RoomDouble, Number: 201}}
	mockRooms.On("GetAvailable", mock.Anything, arrival, departure).Return(free, nil)

	service := NewService(mockRooms, new(MockBookingReader))

	rooms, err := service.ListRooms(context.Background(), &arrival, &departure)

	assert.NoError(t, err)
	assert.Equal(t, free, rooms)
}

func TestService_ListRooms_EmptyRange(t *testing.T) {
	service := NewService(new(MockRoomRepository), new(MockBookingReader))

	arrival := date(2026, 8, 15)
	departure := date(2026, 8, 15)
	_, err := service.ListRooms(context.Background(), &arrival, &departure)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateRoom_Success(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockRooms.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRooms, new(MockBookingReader))

	room, err := service.CreateRoom(context.Background(), CreateRoomRequest{
		Type:         "Deluxe",
		Number:       401,
		Description:  "Deluxe suite with a separate living area",
		NumberOfBeds: 2,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(101), room.ID)
	assert.Equal(t, domain.RoomDeluxe, room.Type)
}

func TestService_CreateRoom_UnknownType(t *testing.T) {
	service := NewService(new(MockRoomRepository), new(MockBookingReader))

	_, err := service.CreateRoom(context.Background(), CreateRoomRequest{
		Type:         "Penthouse",
		Number:       401,
		Description:  "Top floor suite",
		NumberOfBeds: 2,
	})

	assert.ErrorIs(t, err, ErrInvalidRoomType)
}

func TestService_CreateRoom_TooManyBeds(t *testing.T) {
	service := NewService(new(MockRoomRepository), new(MockBookingReader))

	_, err := service.CreateRoom(context.Background(), CreateRoomRequest{
		Type:         "Triple",
		Number:       301,
		Description:  "Family room with extra beds",
		NumberOfBeds: 6,
	})

	assert.ErrorIs(t, err, ErrValidation)

	var fieldErrs *FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "max", fieldErrs.Fields["NumberOfBeds"])
}

func TestService_UpdateRoom_PartialPatch(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	existing := &domain.Room{
		ID:           3,
		Type:         domain.RoomSingle,
		Number:       102,
		Description:  "Single room facing the courtyard",
		NumberOfBeds: 1,
	}
	mockRooms.On("GetByID", mock.Anything, int64(3)).Return(existing, nil)
	mockRooms.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRooms, new(MockBookingReader))

	newType := "Double"
	newBeds := 2
	room, err := service.UpdateRoom(context.Background(), 3, UpdateRoomRequest{
		Type:         &newType,
		NumberOfBeds: &newBeds,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoomDouble, room.Type)
	assert.Equal(t, 2, room.NumberOfBeds)
	assert.Equal(t, 102, room.Number) // untouched
}

func TestService_UpdateRoom_NotFound(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockRooms.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockRooms, new(MockBookingReader))

	_, err := service.UpdateRoom(context.Background(), 99, UpdateRoomRequest{})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestService_DeleteRoom_RefusedWhileReferenced(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockBookings := new(MockBookingReader)
	mockRooms.On("GetByID", mock.Anything, int64(5)).Return(&domain.Room{ID: 5}, nil)
	mockBookings.On("ExistsForRoom", mock.Anything, int64(5)).Return(true, nil)

	service := NewService(mockRooms, mockBookings)

	err := service.DeleteRoom(context.Background(), 5)

	assert.ErrorIs(t, err, ErrRoomInUse)
	mockRooms.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_DeleteRoom_Success(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockBookings := new(MockBookingReader)
	mockRooms.On("GetByID", mock.Anything, int64(5)).Return(&domain.Room{ID: 5}, nil)
	mockBookings.On("ExistsForRoom", mock.Anything, int64(5)).Return(false, nil)
	mockRooms.On("Delete", mock.Anything, int64(5)).Return(nil)

	service := NewService(mockRooms, mockBookings)

	assert.NoError(t, service.DeleteRoom(context.Background(), 5))
	mockRooms.AssertExpectations(t)
}
