package room

import "errors"

var (
	ErrInvalidRoomType = errors.New("invalid room type")
	ErrValidation      = errors.New("validation error")
	ErrRoomInUse       = errors.New("room is referenced by bookings")
)

// FieldErrors carries the per-field failures from the domain validator so
// handlers can report which fields were rejected and why.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string { return ErrValidation.Error() }

func (e *FieldErrors) Unwrap() error { return ErrValidation }
