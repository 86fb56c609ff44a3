package auth

type SignupRequest struct {
	FirstName string `json:"firstName" binding:"required,min=3,max=55"`
	LastName  string `json:"lastName" binding:"required,min=3,max=55"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=255"`
	IsManager bool   `json:"isManager"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserPublic struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsManager bool   `json:"isManager"`
}
