package domain

import (
	"errors"
	"time"
)

type RoomType string

const (
	RoomSingle RoomType = "Single"
	RoomDouble RoomType = "Double"
	RoomTriple RoomType = "Triple"
	RoomDeluxe RoomType = "Deluxe"
)

func ValidRoomTypes() []RoomType {
	return []RoomType{RoomSingle, RoomDouble, RoomTriple, RoomDeluxe}
}

func ParseRoomType(s string) (RoomType, error) {
	for _, t := range ValidRoomTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errors.New("unknown room type: " + s)
}

type Room struct {
	ID           int64     `json:"id"`
	Type         RoomType  `json:"type" validate:"required"`
	Number       int       `json:"number" validate:"required,gt=0"`
	Description  string    `json:"description" validate:"required,min=5,max=500"`
	NumberOfBeds int       `json:"numberOfBeds" validate:"required,min=1,max=5"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
