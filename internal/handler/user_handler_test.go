package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth-service/internal/domain"
	"auth-service/internal/middleware"
)

func TestUserHandler_GetMe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler()

	t.Run("returns user with shop context", func(t *testing.T) {
		shopID := int64(7)
		invoiceID := int64(99)
		router := gin.New()
		router.GET("/users/me", func(c *gin.Context) {
			c.Set(middleware.AuthUserKey, &domain.AuthUser{
				User:          &domain.User{ID: 42, Login: "alice", IsActive: true},
				UserShopID:    &shopID,
				LastInvoiceID: &invoiceID,
			})
		}, h.GetMe)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/me", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp domain.MeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "alice", resp.Login)
		require.NotNil(t, resp.UserShopID)
		assert.Equal(t, int64(7), *resp.UserShopID)
		require.NotNil(t, resp.LastInvoiceID)
		assert.Equal(t, int64(99), *resp.LastInvoiceID)
	})

	t.Run("shopless user serializes null ids", func(t *testing.T) {
		router := gin.New()
		router.GET("/users/me", func(c *gin.Context) {
			c.Set(middleware.AuthUserKey, &domain.AuthUser{
				User: &domain.User{ID: 42, Login: "alice", IsActive: true},
			})
		}, h.GetMe)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/me", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		assert.Equal(t, "null", string(raw["user_shop_id"]))
		assert.Equal(t, "null", string(raw["last_invoice_id"]))
	})

	t.Run("missing auth user", func(t *testing.T) {
		router := gin.New()
		router.GET("/users/me", h.GetMe)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	})
}
