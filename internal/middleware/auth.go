package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"auth-service/internal/domain"
	"auth-service/internal/response"
	"auth-service/internal/service"
)

// AuthUserKey is the gin context key for the resolved current user.
const AuthUserKey = "auth_user"

// CurrentUserResolver resolves a bearer token into an authenticated user.
type CurrentUserResolver interface {
	CurrentUser(ctx context.Context, tokenString string) (*domain.AuthUser, error)
}

// Auth returns a middleware that authenticates requests from the
// Authorization header and stores the resolved user in the gin context.
//
// Missing or malformed headers, invalid tokens, tokens without a user id,
// and tokens for vanished users are all rejected with the same 401 and a
// Bearer challenge, so callers cannot distinguish a revoked account from
// one that never existed. An inactive user is rejected with a 400.
func Auth(resolver CurrentUserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			response.UnauthorizedBearer(c, "Could not validate credentials")
			c.Abort()
			return
		}

		authUser, err := resolver.CurrentUser(c.Request.Context(), tokenString)
		if err != nil {
			if errors.Is(err, service.ErrUserInactive) {
				response.BadRequest(c, "Inactive user")
				c.Abort()
				return
			}
			if service.IsTokenError(err) || errors.Is(err, service.ErrUserNotFound) {
				response.UnauthorizedBearer(c, "Could not validate credentials")
				c.Abort()
				return
			}
			response.InternalErrorWithDetails(c, "Failed to authenticate request", err)
			c.Abort()
			return
		}

		c.Set(AuthUserKey, authUser)
		c.Next()
	}
}

// GetAuthUser returns the authenticated user stored by Auth.
func GetAuthUser(c *gin.Context) (*domain.AuthUser, bool) {
	value, exists := c.Get(AuthUserKey)
	if !exists {
		return nil, false
	}
	authUser, ok := value.(*domain.AuthUser)
	return authUser, ok
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
