package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hotelbooking/internal/middleware"
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

// RegisterRoutes wires the booking endpoints onto an authenticated group.
// The current-clients listing additionally requires the manager role.
func (h *Handler) RegisterRoutes(auth *gin.RouterGroup) {
	bookings := auth.Group("/bookings")
	{
		bookings.POST("", h.Create)
		bookings.GET("/history", h.History)
		bookings.GET("/current-clients", middleware.RequireManager(), h.CurrentClients)
		bookings.GET("/:id", h.Get)
		bookings.PUT("/:id", h.Update)
		bookings.DELETE("/:id", h.Delete)
		bookings.GET("/:id/voucher", h.Voucher)
	}
}

func parseStayRequest(c *gin.Context) (StayRequest, bool) {
	roomID, err := strconv.ParseInt(c.Query("roomId"), 10, 64)
	if err != nil || roomID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "roomId must be a positive integer")
		return StayRequest{}, false
	}

	arrival, errA := time.Parse(dateLayout, c.Query("arrivalDate"))
	departure, errD := time.Parse(dateLayout, c.Query("departureDate"))
	if errA != nil || errD != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "arrivalDate and departureDate must be YYYY-MM-DD")
		return StayRequest{}, false
	}

	return StayRequest{RoomID: roomID, ArrivalDate: arrival, DepartureDate: departure}, true
}

// Create files a stay request.
// @Summary		Request a booking
// @Description	Creates a pending booking for [arrivalDate, departureDate). Rejected with 409 when an approved booking already occupies the room on an overlapping range.
// @Tags		Bookings
// @Security	BearerAuth
// @Param		roomId			query	int		true	"Room ID"
// @Param		arrivalDate		query	string	true	"Check-in date (YYYY-MM-DD)"
// @Param		departureDate	query	string	true	"Check-out date (YYYY-MM-DD)"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Bad parameters or empty range"
// @Failure		404	{object}	map[string]interface{}	"Room not found"
// @Failure		409	{object}	map[string]interface{}	"Dates already taken"
// @Router		/bookings [POST]
func (h *Handler) Create(c *gin.Context) {
	req, ok := parseStayRequest(c)
	if !ok {
		return
	}

	b, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "arrivalDate must be before departureDate")
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		case errors.Is(err, ErrNotAvailable):
			response.Error(c, http.StatusConflict, "NOT_AVAILABLE", "Room is not available on those dates")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

// Get returns one booking with user and room details.
// @Summary		Get a booking
// @Tags		Bookings
// @Security	BearerAuth
// @Param		id	path	int	true	"Booking ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		403	{object}	map[string]interface{}	"Not the owner"
// @Failure		404	{object}	map[string]interface{}	"Booking not found"
// @Router		/bookings/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.Get(c.Request.Context(), bookingID, c.GetInt64("user_id"), c.GetBool("is_manager"))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Booking belongs to another user")
		default:
			response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

// Update reschedules a booking; approval resets to pending.
// @Summary		Reschedule a booking
// @Tags		Bookings
// @Security	BearerAuth
// @Param		id				path	int		true	"Booking ID"
// @Param		roomId			query	int		true	"Room ID"
// @Param		arrivalDate		query	string	true	"Check-in date (YYYY-MM-DD)"
// @Param		departureDate	query	string	true	"Check-out date (YYYY-MM-DD)"
// @Success		200	{object}	map[string]interface{}
// @Failure		403	{object}	map[string]interface{}	"Not the owner"
// @Failure		409	{object}	map[string]interface{}	"Dates already taken"
// @Router		/bookings/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	req, ok := parseStayRequest(c)
	if !ok {
		return
	}

	b, err := h.service.Update(c.Request.Context(), bookingID, c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Booking belongs to another user")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "arrivalDate must be before departureDate")
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		case errors.Is(err, ErrNotAvailable):
			response.Error(c, http.StatusConflict, "NOT_AVAILABLE", "Room is not available on those dates")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

// Delete withdraws a booking that is not yet approved.
// @Summary		Delete a booking
// @Tags		Bookings
// @Security	BearerAuth
// @Param		id	path	int	true	"Booking ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		403	{object}	map[string]interface{}	"Not the owner"
// @Failure		409	{object}	map[string]interface{}	"Booking already approved"
// @Router		/bookings/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), bookingID, c.GetInt64("user_id")); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Booking belongs to another user")
		case errors.Is(err, ErrApprovedLocked):
			response.Error(c, http.StatusConflict, "APPROVED_LOCKED", "Approved bookings cannot be deleted")
		default:
			response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": bookingID})
}

// History lists the caller's past and current stays.
// @Summary		Booking history
// @Description	Returns the caller's bookings whose arrival date is on or before today, oldest first, with room details.
// @Tags		Bookings
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{}
// @Router		/bookings/history [GET]
func (h *Handler) History(c *gin.Context) {
	items, err := h.service.History(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get booking history")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": items})
}

// CurrentClients lists guests staying right now (manager only).
// @Summary		Current clients
// @Tags		Bookings
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{}
// @Failure		403	{object}	map[string]interface{}	"Manager role required"
// @Router		/bookings/current-clients [GET]
func (h *Handler) CurrentClients(c *gin.Context) {
	clients, err := h.service.CurrentClients(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get current clients")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"clients": clients})
}

// Voucher streams the booking voucher as a PDF attachment.
// @Summary		Download voucher
// @Tags		Bookings
// @Security	BearerAuth
// @Param		id	path	int	true	"Booking ID"
// @Success		200	{file}		binary
// @Failure		403	{object}	map[string]interface{}	"Not the owner"
// @Failure		404	{object}	map[string]interface{}	"Booking not found"
// @Router		/bookings/{id}/voucher [GET]
func (h *Handler) Voucher(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	pdf, err := h.service.Voucher(c.Request.Context(), bookingID, c.GetInt64("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Booking belongs to another user")
		default:
			response.Error(c, http.StatusInternalServerError, "VOUCHER_FAILED", "Failed to generate voucher")
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="voucher.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
