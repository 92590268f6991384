package handler

import (
	"github.com/gin-gonic/gin"

	"auth-service/internal/domain"
	"auth-service/internal/middleware"
	"auth-service/internal/response"
)

// UserHandler handles user HTTP requests
type UserHandler struct{}

// NewUserHandler creates a new UserHandler
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// GetMe godoc
// @Summary Get the current user with shop context
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.MeResponse
// @Failure 401 {object} gin.H
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	log := getLogger(c)

	authUser, ok := middleware.GetAuthUser(c)
	if !ok {
		log.Warn("GetMe user not authenticated")
		response.UnauthorizedBearer(c, "Could not validate credentials")
		return
	}

	response.OK(c, domain.MeResponse{
		UserResponse:  authUser.User.ToResponse(),
		UserShopID:    authUser.UserShopID,
		LastInvoiceID: authUser.LastInvoiceID,
	})
}
