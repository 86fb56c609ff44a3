package auth

import (
	"errors"
	"net/http"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
	}
}

// Signup registers a new guest (or manager) account.
// @Summary		Register an account
// @Description	Creates a new account. Managers are created with isManager=true. Returns the created user and a session token; the token is also set in the X-Auth-Token header.
// @Tags		Authentication
// @Param		request	body	SignupRequest	true	"Registration data (firstName, lastName, email, password, isManager)"
// @Success		201	{object}	map[string]interface{}	"Account created, token returned"
// @Failure		400	{object}	map[string]interface{}	"Validation error"
// @Failure		409	{object}	map[string]interface{}	"Email already registered"
// @Failure		500	{object}	map[string]interface{}	"Server error"
// @Router		/auth/signup [POST]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
			return
		}
		response.Error(c, http.StatusInternalServerError, "SIGNUP_FAILED", "Failed to create account")
		return
	}

	c.Header("X-Auth-Token", token)
	response.Success(c, http.StatusCreated, gin.H{
		"user":  toUserPublic(user),
		"token": token,
	})
}

// Login authenticates a user and issues a session token.
// @Summary		Log in
// @Description	Authenticates by email and password and returns a bearer token for subsequent requests.
// @Tags		Authentication
// @Param		request	body	LoginRequest	true	"Credentials (email, password)"
// @Success		200	{object}	map[string]interface{}	"Token issued"
// @Failure		400	{object}	map[string]interface{}	"Validation error"
// @Failure		401	{object}	map[string]interface{}	"Wrong email or password"
// @Failure		500	{object}	map[string]interface{}	"Server error"
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  toUserPublic(user),
		"token": token,
	})
}

func toUserPublic(u *domain.User) UserPublic {
	return UserPublic{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsManager: u.IsManager,
	}
}
