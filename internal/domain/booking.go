package domain

import "time"

type ApprovalState string

const (
	BookingPending  ApprovalState = "pending"
	BookingApproved ApprovalState = "approved"
	BookingRejected ApprovalState = "rejected"
)

// Booking is a stay request over the half-open range
// [ArrivalDate, DepartureDate). IsApproved is tri-state: nil while the
// request waits for a manager, true once approved, false once rejected.
type Booking struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId" validate:"required"`
	RoomID        int64     `json:"roomId" validate:"required"`
	ArrivalDate   time.Time `json:"arrivalDate" validate:"required"`
	DepartureDate time.Time `json:"departureDate" validate:"required"`
	IsApproved    *bool     `json:"isApproved"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"-"`
	Room *Room `json:"room,omitempty" gorm:"-"`
}

func (b *Booking) State() ApprovalState {
	switch {
	case b.IsApproved == nil:
		return BookingPending
	case *b.IsApproved:
		return BookingApproved
	default:
		return BookingRejected
	}
}

// Overlaps reports whether two half-open date ranges share at least one
// night. Touching boundaries (departure == next arrival) do not overlap.
func Overlaps(arrivalA, departureA, arrivalB, departureB time.Time) bool {
	return arrivalA.Before(departureB) && departureA.After(arrivalB)
}
