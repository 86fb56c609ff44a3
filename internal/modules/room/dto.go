package room

type CreateRoomRequest struct {
	Type         string `json:"type" binding:"required"`
	Number       int    `json:"number" binding:"required,gt=0"`
	Description  string `json:"description" binding:"required,min=5,max=500"`
	NumberOfBeds int    `json:"numberOfBeds" binding:"required,min=1,max=5"`
}

type UpdateRoomRequest struct {
	Type         *string `json:"type"`
	Number       *int    `json:"number"`
	Description  *string `json:"description"`
	NumberOfBeds *int    `json:"numberOfBeds"`
}
