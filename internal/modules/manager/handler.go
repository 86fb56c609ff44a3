package manager

import (
	"errors"
	"net/http"
	"strconv"

	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the approval endpoints; the caller applies auth +
// manager middleware to the group.
func (h *Handler) RegisterRoutes(manager *gin.RouterGroup) {
	bookings := manager.Group("/bookings")
	{
		bookings.GET("", h.ListBookings)
		bookings.POST("/:id/approve", h.ApproveBooking)
	}
}

// ApproveBooking resolves a stay request in the client's favor.
// @Summary		Approve a booking
// @Description	Marks the booking approved and rejects every other pending booking for the same room with an overlapping date range.
// @Tags		Manager
// @Security	BearerAuth
// @Param		id	path	int	true	"Booking ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}	"Booking not found"
// @Router		/manager/bookings/{id}/approve [POST]
func (h *Handler) ApproveBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	result, err := h.service.ApproveBooking(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "APPROVE_FAILED", "Failed to approve booking")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ListBookings returns the full booking history across all clients.
// @Summary		All bookings
// @Tags		Manager
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{}
// @Router		/manager/bookings [GET]
func (h *Handler) ListBookings(c *gin.Context) {
	items, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": items})
}
