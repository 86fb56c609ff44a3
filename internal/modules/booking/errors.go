package booking

import "errors"

var (
	ErrValidation     = errors.New("arrival date must be before departure date")
	ErrRoomNotFound   = errors.New("room not found")
	ErrNotAvailable   = errors.New("room is not available on those dates")
	ErrForbidden      = errors.New("booking belongs to another user")
	ErrApprovedLocked = errors.New("approved bookings cannot be deleted")
)
