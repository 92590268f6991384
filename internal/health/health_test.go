package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupHealthRouter(basePath string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewChecker(nil).RegisterRoutes(router, basePath)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestChecker_Liveness(t *testing.T) {
	w := get(setupHealthRouter(""), "/health/live")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alive")
}

func TestChecker_Readiness_NoDatabase(t *testing.T) {
	w := get(setupHealthRouter(""), "/health/ready")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "not_configured")
}

func TestChecker_RegisterRoutes_BasePath(t *testing.T) {
	router := setupHealthRouter("/api/v1")

	for _, path := range []string{
		"/health",
		"/health/live",
		"/health/ready",
		"/api/v1/health",
		"/api/v1/health/live",
		"/api/v1/health/ready",
	} {
		w := get(router, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
