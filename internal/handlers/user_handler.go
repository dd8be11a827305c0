package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// UserHandler handles user sign-in requests.
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// SignInRequest represents the request payload for signing in.
type SignInRequest struct {
	Username string `json:"username" binding:"required,username"`
}

// SignIn gets or creates a user by username.
// @Summary     Sign in
// @Description Idempotent get-or-create of a user by username
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body SignInRequest true "Username"
// @Success     200 {object} map[string]interface{} "Existing user"
// @Success     201 {object} map[string]interface{} "User created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users [post]
func (h *UserHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, created, err := h.userService.GetOrCreateUser(req.Username)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"user": user, "message": "User created"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "message": "User already exists & logged in"})
}
