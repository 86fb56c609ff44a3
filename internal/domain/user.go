package domain

import "time"

type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName" validate:"required,min=3,max=55"`
	LastName     string    `json:"lastName" validate:"required,min=3,max=55"`
	Email        string    `json:"email" validate:"required,email,max=55"`
	PasswordHash string    `json:"-"`
	IsManager    bool      `json:"isManager"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullName is used on vouchers and guest listings.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
