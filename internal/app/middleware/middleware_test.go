package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger())
	router.Use(CORS())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": RequestID(c)})
	})
	return router
}

func TestCORS_AnyOrigin(t *testing.T) {
	router := newTestRouter()

	for _, origin := range []string{"http://localhost:3000", "https://anything.example.org"} {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	}
}

func TestCORS_Preflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "https://anything.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestCORS_PreflightAnyRequestHeaders(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "https://anything.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization,x-client-version")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	allowed := strings.Split(w.Header().Get("Access-Control-Allow-Headers"), ",")
	assert.Contains(t, allowed, "*")
	assert.Contains(t, allowed, "Authorization")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRequestLogger_AssignsID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	id := w.Header().Get("X-Request-ID")
	assert.Len(t, id, 36)
	assert.Contains(t, w.Body.String(), id)
}

func TestRequestLogger_KeepsIncomingID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	assert.JSONEq(t, `{"request_id":"abc-123"}`, w.Body.String())
}
