package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/productshowcase/catalog-service/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware_AllowsUnderLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(10, 2))
	r.GET("/ok", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	before := testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ok", nil))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest("GET", "/ok", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, http.StatusOK, w2.Code)
	require.Equal(t, before+2, testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory")))
}

func TestRateLimitMiddleware_BlocksWhenExceeded(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2, 1))
	r.GET("/limited", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest("GET", "/limited", nil))
	require.Equal(t, http.StatusOK, w1.Code)

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest("GET", "/limited", nil))
	require.Equal(t, http.StatusTooManyRequests, w2.Code)
	require.Equal(t, "1", w2.Header().Get("Retry-After"))

	// one token refills after 0.5s
	time.Sleep(600 * time.Millisecond)
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, httptest.NewRequest("GET", "/limited", nil))
	require.Equal(t, http.StatusOK, w3.Code)
}

func TestRateLimitMiddleware_KeysByClientIP(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(0.5, 1))
	r.GET("/ip", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	fromA := httptest.NewRequest("GET", "/ip", nil)
	fromA.RemoteAddr = "10.0.0.1:1111"
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, fromA)
	require.Equal(t, http.StatusOK, w1.Code)

	fromB := httptest.NewRequest("GET", "/ip", nil)
	fromB.RemoteAddr = "10.0.0.2:2222"
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, fromB)
	require.Equal(t, http.StatusOK, w2.Code, "a different client has its own bucket")

	againA := httptest.NewRequest("GET", "/ip", nil)
	againA.RemoteAddr = "10.0.0.1:3333"
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, againA)
	require.Equal(t, http.StatusTooManyRequests, w3.Code)
}
