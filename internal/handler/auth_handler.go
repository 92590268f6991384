package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"auth-service/internal/domain"
	"auth-service/internal/response"
	"auth-service/internal/service"
)

// AuthService is the surface of the auth service the handlers need.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error)
}

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// @Summary Exchange credentials for an access token
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Login name"
// @Param password formData string true "Password"
// @Param grant_type formData string false "Must be 'password' when present"
// @Success 200 {object} domain.TokenResponse
// @Failure 400 {object} gin.H
// @Failure 401 {object} gin.H
// @Router /auth/token [post]
func (h *AuthHandler) Login(c *gin.Context) {
	log := getLogger(c)
	log.Debug("Login started")

	var req domain.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Warn("Login validation failed", zap.Error(err))
		response.ValidationError(c, err.Error())
		return
	}
	if req.GrantType != "" && req.GrantType != "password" {
		log.Warn("Login unsupported grant type", zap.String("grant_type", req.GrantType))
		response.ValidationError(c, "unsupported grant_type")
		return
	}

	tokenString, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Warn("Login rejected", zap.String("user.login", req.Username))
			response.UnauthorizedBearer(c, "Incorrect username or password")
		case errors.Is(err, service.ErrUserInactive):
			log.Warn("Login rejected for inactive user", zap.String("user.login", req.Username))
			response.BadRequest(c, "Inactive user")
		default:
			log.Error("Login service error", zap.Error(err))
			response.HandleError(c, err)
		}
		return
	}

	response.OK(c, domain.TokenResponse{
		AccessToken: tokenString,
		TokenType:   "bearer",
	})
}

// CreateUser godoc
// @Summary Create a new user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body domain.CreateUserRequest true "Create user request"
// @Success 201 {object} domain.UserResponse
// @Failure 400 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /users [post]
func (h *AuthHandler) CreateUser(c *gin.Context) {
	log := getLogger(c)
	log.Debug("CreateUser started")

	var req domain.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("CreateUser validation failed", zap.Error(err))
		response.ValidationError(c, err.Error())
		return
	}

	user, err := h.authService.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrLoginTaken) {
			response.Conflict(c, "User with this login already exists")
			return
		}
		log.Error("CreateUser service error", zap.Error(err))
		response.HandleError(c, err)
		return
	}

	log.Info("User created", zap.Int64("enduser.id", user.ID))
	response.Created(c, user.ToResponse())
}
