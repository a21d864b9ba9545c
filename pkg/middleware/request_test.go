package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/productshowcase/catalog-service/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/x", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/x", nil))
	require.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	require.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRequestID_PropagatesCallerID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestAccessLog_WritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.Init("info")
	defer logger.SetOutput(&bytes.Buffer{})

	r := gin.New()
	r.Use(RequestID(), AccessLog())
	r.GET("/products", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	req := httptest.NewRequest("GET", "/products?page=2", nil)
	req.Header.Set(RequestIDHeader, "rid-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.True(t, strings.Contains(out, `"path":"/products"`), out)
	require.Contains(t, out, `"status":418`)
	require.Contains(t, out, `"query":"page=2"`)
	require.Contains(t, out, `"request_id":"rid-1"`)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/products", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/products", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
