package booking

import "time"

// StayRequest is the parsed roomId/arrivalDate/departureDate triple shared
// by the create and reschedule endpoints.
type StayRequest struct {
	RoomID        int64
	ArrivalDate   time.Time
	DepartureDate time.Time
}

// ClientStay pairs a currently staying guest with the booking that makes
// them a current client.
type ClientStay struct {
	User          UserPublic `json:"user"`
	RoomID        int64      `json:"roomId"`
	ArrivalDate   time.Time  `json:"arrivalDate"`
	DepartureDate time.Time  `json:"departureDate"`
}

type UserPublic struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
