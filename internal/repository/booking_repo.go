package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	UserID        int64     `gorm:"column:user_id;index"`
	RoomID        int64     `gorm:"column:room_id;index"`
	ArrivalDate   time.Time `gorm:"column:arrival_date"`
	DepartureDate time.Time `gorm:"column:departure_date"`
	IsApproved    *bool     `gorm:"column:is_approved"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:            m.ID,
		UserID:        m.UserID,
		RoomID:        m.RoomID,
		ArrivalDate:   m.ArrivalDate,
		DepartureDate: m.DepartureDate,
		IsApproved:    m.IsApproved,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		UserID:        b.UserID,
		RoomID:        b.RoomID,
		ArrivalDate:   b.ArrivalDate,
		DepartureDate: b.DepartureDate,
		IsApproved:    b.IsApproved,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// IsRoomAvailable reports whether no approved booking for the room overlaps
// the half-open range [arrival, departure). Pending and rejected requests
// never block. excludeBookingID (0 = none) lets a booking being rescheduled
// skip its own record.
func (r *BookingRepository) IsRoomAvailable(ctx context.Context, roomID int64, arrival, departure time.Time, excludeBookingID int64) (bool, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM bookings
WHERE room_id = ?
  AND is_approved = ?
  AND arrival_date < ?
  AND departure_date > ?
  AND id <> ?
`
	tx := r.db.WithContext(ctx).Raw(q, roomID, true, departure, arrival, excludeBookingID).Scan(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt == 0, nil
}

// ApproveAndRejectOverlapping marks the booking approved and, in the same
// transaction, rejects every other pending booking for the same room whose
// range overlaps. Returns the approved booking and the number of requests
// rejected by the cascade.
func (r *BookingRepository) ApproveAndRejectOverlapping(ctx context.Context, id int64) (*domain.Booking, int64, error) {
	var approved bookingModel
	var rejected int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&approved, id).Error; err != nil {
			return err
		}

		t := true
		if err := tx.Model(&bookingModel{}).
			Where("id = ?", id).
			Update("is_approved", &t).Error; err != nil {
			return err
		}
		approved.IsApproved = &t

		res := tx.Model(&bookingModel{}).
			Where("room_id = ? AND id <> ? AND is_approved IS NULL", approved.RoomID, id).
			Where("arrival_date < ? AND departure_date > ?", approved.DepartureDate, approved.ArrivalDate).
			Update("is_approved", false)
		if res.Error != nil {
			return res.Error
		}
		rejected = res.RowsAffected
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return toDomainBooking(approved), rejected, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&bookingModel{}, id).Error
}

func (r *BookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).Order("arrival_date ASC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(rows), nil
}

// GetByUserArrivedBy returns the user's bookings whose arrival date is on or
// before the cutoff, oldest first. Used for the client booking history.
func (r *BookingRepository) GetByUserArrivedBy(ctx context.Context, userID int64, cutoff time.Time) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND arrival_date <= ?", userID, cutoff).
		Order("arrival_date ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(rows), nil
}

// GetActiveApproved returns approved bookings whose half-open range contains
// the given instant (arrival <= at < departure), i.e. guests currently
// staying. A guest arriving exactly at the instant counts as staying.
func (r *BookingRepository) GetActiveApproved(ctx context.Context, at time.Time) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("is_approved = ? AND arrival_date <= ? AND departure_date > ?", true, at, at).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(rows), nil
}

// ExistsForRoom is the referential-integrity guard for room deletion.
func (r *BookingRepository) ExistsForRoom(ctx context.Context, roomID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Table("bookings").
		Where("room_id = ?", roomID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func toDomainBookings(rows []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out
}
