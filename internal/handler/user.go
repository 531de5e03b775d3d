package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"geogame/internal/domain"
	"geogame/internal/repository"
	"geogame/internal/service"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	identityService *service.IdentityService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(identityService *service.IdentityService) *UserHandler {
	return &UserHandler{identityService: identityService}
}

// RegisterRequest is the HTTP request body for user registration.
type RegisterRequest struct {
	UserName string `json:"userName"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserResponse is the HTTP response for user data. The password hash
// never leaves the service.
type UserResponse struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Register handles POST /v1/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.UserName == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "userName and password are required"})
		return
	}

	user, err := h.identityService.Register(c.Request.Context(), service.RegisterRequest{
		UserName: req.UserName,
		Name:     req.Name,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"message": "User already registered"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{
		ID:       user.ID,
		UserName: user.UserName,
		Name:     user.Name,
		Role:     string(user.Role),
	})
}

// Get handles GET /v1/users/:userName
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.identityService.GetUser(c.Request.Context(), c.Param("userName"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		ID:       user.ID,
		UserName: user.UserName,
		Name:     user.Name,
		Role:     string(user.Role),
	})
}

// GetAll handles GET /v1/users
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.identityService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	var response []UserResponse
	for _, u := range users {
		response = append(response, UserResponse{
			ID:       u.ID,
			UserName: u.UserName,
			Name:     u.Name,
			Role:     string(u.Role),
		})
	}

	c.JSON(http.StatusOK, response)
}
