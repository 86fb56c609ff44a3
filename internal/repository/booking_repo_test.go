package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway sqlite file. A memory DSN would give every
// pooled connection its own database, so migrations and queries could land
// on different ones.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, repo *UserRepository, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		FirstName:    "Test",
		LastName:     "Client",
		Email:        email,
		PasswordHash: "x",
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func seedRoom(t *testing.T, repo *RoomRepository, number int) *domain.Room {
	t.Helper()
	r := &domain.Room{
		Type:         domain.RoomDouble,
		Number:       number,
		Description:  "Double room with a queen-size bed",
		NumberOfBeds: 2,
	}
	require.NoError(t, repo.Create(context.Background(), r))
	return r
}

func seedBooking(t *testing.T, repo *BookingRepository, userID, roomID int64, arrival, departure time.Time, approved *bool) *domain.Booking {
	t.Helper()
	b := &domain.Booking{
		UserID:        userID,
		RoomID:        roomID,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		IsApproved:    approved,
	}
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func d(y int, mo time.Month, dd int) time.Time {
	return time.Date(y, mo, dd, 0, 0, 0, 0, time.UTC)
}

func TestIsRoomAvailable(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	rooms := NewRoomRepository(db)
	bookings := NewBookingRepository(db)

	u := seedUser(t, users, "guest@mail.kz")
	r := seedRoom(t, rooms, 201)

	bookedArrival, bookedDeparture := d(2026, 8, 10), d(2026, 8, 15)
	approved := true
	seedBooking(t, bookings, u.ID, r.ID, bookedArrival, bookedDeparture, &approved)

	cases := []struct {
		name      string
		arrival   time.Time
		departure time.Time
		want      bool
	}{
		{"overlap from the left", d(2026, 8, 8), d(2026, 8, 12), false},
		{"overlap from the right", d(2026, 8, 14), d(2026, 8, 20), false},
		{"fully inside", d(2026, 8, 11), d(2026, 8, 13), false},
		{"fully covering", d(2026, 8, 5), d(2026, 8, 20), false},
		{"before, touching arrival", d(2026, 8, 5), d(2026, 8, 10), true},
		{"after, touching departure", d(2026, 8, 15), d(2026, 8, 20), true},
		{"disjoint", d(2026, 8, 20), d(2026, 8, 25), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			free, err := bookings.IsRoomAvailable(ctx, r.ID, tc.arrival, tc.departure, 0)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, free)

			// the SQL predicate and domain.Overlaps must agree
			assert.Equal(t, !tc.want, domain.Overlaps(tc.arrival, tc.departure, bookedArrival, bookedDeparture))
		})
	}
}

func TestIsRoomAvailable_PendingAndRejectedDoNotBlock(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	rooms := NewRoomRepository(db)
	bookings := NewBookingRepository(db)

	u := seedUser(t, users, "guest@mail.kz")
	r := seedRoom(t, rooms, 201)

	rejected := false
	seedBooking(t, bookings, u.ID, r.ID, d(2026, 8, 10), d(2026, 8, 15), nil)
	seedBooking(t, bookings, u.ID, r.ID, d(2026, 8, 10), d(2026, 8, 15), &rejected)

	free, err := bookings.IsRoomAvailable(ctx, r.ID, d(2026, 8, 10), d(2026, 8, 15), 0)
	assert.NoError(t, err)
	assert.True(t, free)
}

func TestIsRoomAvailable_ExcludesOwnRecord(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	rooms := NewRoomRepository(db)
	bookings := NewBookingRepository(db)

	u := seedUser(t, users, "guest@mail.kz")
	r := seedRoom(t, rooms, 201)

	approved := true
	own := seedBooking(t, bookings, u.ID, r.ID, d(2026, 8, 10), d(2026, 8, 15), &approved)

	free, err := bookings.IsRoomAvailable(ctx, r.ID, d(2026, 8, 12), d(2026, 8, 17), own.ID)
	assert.NoError(t, err)
	assert.True(t, free)

	free, err = bookings.IsRoomAvailable(ctx, r.ID, d(2026, 8, 12), d(2026, 8, 17), 0)
	assert.NoError(t, err)
	assert.False(t, free)
}

// Two clients race for the same room: A has [Aug 10, Aug 15), B has
// [Aug 12, Aug 18). Approving A rejects B; B then re-books a free range
// and is pending again.
func TestApproveAndRejectOverlapping_CompetingClients(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	rooms := NewRoomRepository(db)
	bookings := NewBookingRepository(db)

	clientA := seedUser(t, users, "a@mail.kz")
	clientB := seedUser(t, users, "b@mail.kz")
	r := seedRoom(t, rooms, 201)

	bookingA := seedBooking(t, bookings, clientA.ID, r.ID, d(2026, 8, 10), d(2026, 8, 15), nil)
	bookingB := seedBooking(t, bookings, clientB.ID, r.ID, d(2026, 8, 12), d(2026, 8, 18), nil)

	approvedA, rejectedCount, err := bookings.ApproveAndRejectOverlapping(ctx, bookingA.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingApproved, approvedA.State())
	assert.Equal(t, int64(1), rejectedCount)

	reloadedB, err := bookings.GetByID(ctx, bookingB.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingRejected, reloadedB.State())

	// B re-books outside the approved range and waits for approval again
	retry := seedBooking(t, bookings, clientB.ID, r.ID, d(2026, 8, 20), d(2026, 8, 25), nil)
	assert.Equal(t, domain.BookingPending, retry.State())

	free, err := bookings.IsRoomAvailable(ctx, r.ID, d(2026, 8, 20), d(2026, 8, 25), 0)
	require.NoError(t, err)
	assert.True(t, free)
}

func TestApproveAndRejectOverlapping_LeavesOtherRoomsAndRanges(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	rooms := NewRoomRepository(db)
	bookings := NewBookingRepository(db)

	u := seedUser(t, users, "guest@mail.kz")
	roomA := seedRoom(t, rooms, 201)
	roomB := seedRoom(t, rooms, 202)

	target := seedBooking(t, bookings, u.ID, roomA.ID, d(2026, 8, 10), d(2026, 8, 15), nil)
	touching := seedBooking(t, bookings, u.ID, roomA.ID, d(2026, 8, 15), d(2026, 8, 20), nil)
	otherRoom := seedBooking(t, bookings, u.ID, roomB.ID, d(2026, 8, 10), d(2026, 8, 15), nil)
	rejected := false
	alreadyRejected := seedBooking(t, bookings, u.ID, roomA.ID, d(2026, 8, 11), d(2026, 8, 14), &rejected)

	_, rejectedCount, err := bookings.ApproveAndRejectOverlapping(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rejectedCount)

	for _, id := range []int64{touching.ID, otherRoom.ID} {
		b, err := bookings.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingPending, b.State(), "booking %d", id)
	}

	b, err := bookings.GetByID(ctx, alreadyRejected.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingRejected, b.State())
}

func TestApproveAndRejectOverlapping_NotFound(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingRepository(db)

	_, _, err := bookings.ApproveAndRejectOverlapping(context.Background(), 12345)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetAvailable_FiltersApprovedOverlaps(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	rooms := NewRoomRepository(db)
	bookings := NewBookingRepository(db)

	u := seedUser(t, users, "guest@mail.kz")
	taken := seedRoom(t, rooms, 201)
	free := seedRoom(t, rooms, 202)
	pendingOnly := seedRoom(t, rooms, 203)

	approved := true
	seedBooking(t, bookings, u.ID, taken.ID, d(2026, 8, 10), d(2026, 8, 15), &approved)
	seedBooking(t, bookings, u.ID, pendingOnly.ID, d(2026, 8, 10), d(2026, 8, 15), nil)

	got, err := rooms.GetAvailable(ctx, d(2026, 8, 12), d(2026, 8, 14))
	require.NoError(t, err)

	ids := make([]int64, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.NotContains(t, ids, taken.ID)
	assert.Contains(t, ids, free.ID)
	assert.Contains(t, ids, pendingOnly.ID)
}

func TestGetByUserArrivedBy(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	rooms := NewRoomRepository(db)
	bookings := NewBookingRepository(db)

	u := seedUser(t, users, "guest@mail.kz")
	other := seedUser(t, users, "other@mail.kz")
	r := seedRoom(t, rooms, 201)

	past := seedBooking(t, bookings, u.ID, r.ID, d(2026, 7, 1), d(2026, 7, 5), nil)
	seedBooking(t, bookings, u.ID, r.ID, d(2026, 12, 1), d(2026, 12, 5), nil)
	seedBooking(t, bookings, other.ID, r.ID, d(2026, 7, 1), d(2026, 7, 5), nil)

	got, err := bookings.GetByUserArrivedBy(ctx, u.ID, d(2026, 9, 1))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, past.ID, got[0].ID)
}

func TestGetActiveApproved(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	rooms := NewRoomRepository(db)
	bookings := NewBookingRepository(db)

	u := seedUser(t, users, "guest@mail.kz")
	r := seedRoom(t, rooms, 201)

	approved := true
	current := seedBooking(t, bookings, u.ID, r.ID, d(2026, 8, 10), d(2026, 8, 15), &approved)
	seedBooking(t, bookings, u.ID, r.ID, d(2026, 8, 20), d(2026, 8, 25), &approved)
	seedBooking(t, bookings, u.ID, r.ID, d(2026, 8, 10), d(2026, 8, 15), nil)

	got, err := bookings.GetActiveApproved(ctx, d(2026, 8, 12))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, current.ID, got[0].ID)
}

// Half-open containment: a guest checking in exactly at the queried instant
// is staying; one checking out exactly then is not.
func TestGetActiveApproved_Boundaries(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	rooms := NewRoomRepository(db)
	bookings := NewBookingRepository(db)

	u := seedUser(t, users, "guest@mail.kz")
	r := seedRoom(t, rooms, 201)

	approved := true
	stay := seedBooking(t, bookings, u.ID, r.ID, d(2026, 8, 10), d(2026, 8, 15), &approved)

	got, err := bookings.GetActiveApproved(ctx, d(2026, 8, 10))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, stay.ID, got[0].ID)

	got, err = bookings.GetActiveApproved(ctx, d(2026, 8, 15))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExistsForRoom(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	rooms := NewRoomRepository(db)
	bookings := NewBookingRepository(db)

	u := seedUser(t, users, "guest@mail.kz")
	booked := seedRoom(t, rooms, 201)
	empty := seedRoom(t, rooms, 202)

	seedBooking(t, bookings, u.ID, booked.ID, d(2026, 8, 10), d(2026, 8, 15), nil)

	got, err := bookings.ExistsForRoom(ctx, booked.ID)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = bookings.ExistsForRoom(ctx, empty.ID)
	require.NoError(t, err)
	assert.False(t, got)
}
