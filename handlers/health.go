package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// WelcomeMessage is the plaintext body served on GET /.
const WelcomeMessage = "Products Showcase Server Is Running"

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a plain function to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// RegisterHealth registers GET /, /health and /ready.
// /ready pings every named dependency and answers 503 when any of them fails.
func RegisterHealth(r gin.IRoutes, started time.Time, deps map[string]Pinger) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, WelcomeMessage)
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		ready := true
		status := map[string]bool{}
		for name, p := range deps {
			ok := p.Ping(ctx) == nil
			status[name] = ok
			ready = ready && ok
		}

		uptime := time.Since(started).String()
		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": status, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": status, "uptime": uptime})
	})
}
