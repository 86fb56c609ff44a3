package room

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes wires the read-only catalog endpoints.
func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	rooms := v1.Group("/rooms")
	{
		rooms.GET("", h.ListRooms)
		rooms.GET("/:id", h.GetRoom)
	}
}

// RegisterManagerRoutes wires the mutating endpoints; the caller applies
// auth + manager middleware to the group.
func (h *Handler) RegisterManagerRoutes(manager *gin.RouterGroup) {
	rooms := manager.Group("/rooms")
	{
		rooms.POST("", h.CreateRoom)
		rooms.PUT("/:id", h.UpdateRoom)
		rooms.DELETE("/:id", h.DeleteRoom)
	}
}

// ListRooms lists rooms, optionally filtered to those free for a stay.
// @Summary		List rooms
// @Description	Without query parameters returns the full catalog. With arrivalDate and departureDate (YYYY-MM-DD) returns only rooms that have no approved booking overlapping the range; 404 when none are free.
// @Tags		Rooms
// @Param		arrivalDate		query	string	false	"Check-in date"
// @Param		departureDate	query	string	false	"Check-out date"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Bad date range"
// @Failure		404	{object}	map[string]interface{}	"No rooms available on those dates"
// @Router		/rooms [GET]
func (h *Handler) ListRooms(c *gin.Context) {
	arrivalStr := c.Query("arrivalDate")
	departureStr := c.Query("departureDate")

	var arrival, departure *time.Time
	filtered := arrivalStr != "" || departureStr != ""
	if filtered {
		a, errA := time.Parse(dateLayout, arrivalStr)
		d, errD := time.Parse(dateLayout, departureStr)
		if errA != nil || errD != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "arrivalDate and departureDate must be YYYY-MM-DD")
			return
		}
		arrival, departure = &a, &d
	}

	rooms, err := h.service.ListRooms(c.Request.Context(), arrival, departure)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "arrivalDate must be before departureDate")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list rooms")
		return
	}

	if filtered && len(rooms) == 0 {
		response.Error(c, http.StatusNotFound, "NO_ROOMS_AVAILABLE", "No rooms available on those dates")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

// GetRoom fetches one room by id.
// @Summary		Get a room
// @Tags		Rooms
// @Param		id	path	int	true	"Room ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Invalid id"
// @Failure		404	{object}	map[string]interface{}	"Room not found"
// @Router		/rooms/{id} [GET]
func (h *Handler) GetRoom(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get room")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

// CreateRoom adds a room to the catalog (manager only).
// @Summary		Create a room
// @Tags		Rooms
// @Security	BearerAuth
// @Param		request	body	CreateRoomRequest	true	"Room data"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Validation error"
// @Failure		403	{object}	map[string]interface{}	"Manager role required"
// @Router		/rooms [POST]
func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRoomType):
			response.Error(c, http.StatusBadRequest, "INVALID_ROOM_TYPE", "Room type must be one of: Single, Double, Triple, Deluxe")
		case errors.Is(err, ErrValidation):
			respondFieldErrors(c, err)
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create room")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

// respondFieldErrors reports which fields the validator rejected; range
// errors without field context fall back to the plain envelope.
func respondFieldErrors(c *gin.Context, err error) {
	var fieldErrs *FieldErrors
	if errors.As(err, &fieldErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room fields", fieldErrs.Fields)
		return
	}
	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room fields")
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), roomID, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case errors.Is(err, ErrInvalidRoomType):
			response.Error(c, http.StatusBadRequest, "INVALID_ROOM_TYPE", "Room type must be one of: Single, Double, Triple, Deluxe")
		case errors.Is(err, ErrValidation):
			respondFieldErrors(c, err)
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update room")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

// DeleteRoom removes a room unless bookings still reference it.
// @Summary		Delete a room
// @Tags		Rooms
// @Security	BearerAuth
// @Param		id	path	int	true	"Room ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}	"Room not found"
// @Failure		409	{object}	map[string]interface{}	"Room still referenced by bookings"
// @Router		/rooms/{id} [DELETE]
func (h *Handler) DeleteRoom(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	if err := h.service.DeleteRoom(c.Request.Context(), roomID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case errors.Is(err, ErrRoomInUse):
			response.Error(c, http.StatusConflict, "ROOM_IN_USE", "Room is still referenced by bookings")
		default:
			response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete room")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": roomID})
}
