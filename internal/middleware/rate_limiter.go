package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/errors"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiterRegistry struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      int
	burst    int
}

// RateLimiter creates a middleware for rate limiting requests per IP
func RateLimiter(rps, burst int) echo.MiddlewareFunc {
	registry := &rateLimiterRegistry{
		visitors: make(map[string]*visitor),
		rps:      rps,
		burst:    burst,
	}
	go registry.cleanup()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limiter := registry.getVisitor(getIP(c))
			if !limiter.Allow() {
				traceID := GetTraceID(c)
				errorResponse := errors.NewErrorResponse(errors.SystemRateLimitExceeded, traceID)
				return c.JSON(http.StatusTooManyRequests, errorResponse)
			}

			return next(c)
		}
	}
}

func (r *rateLimiterRegistry) getVisitor(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, exists := r.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rate.Limit(r.rps), r.burst)
		r.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanup evicts visitors idle for more than three minutes
func (r *rateLimiterRegistry) cleanup() {
	for {
		time.Sleep(time.Minute)

		r.mu.Lock()
		for ip, v := range r.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(r.visitors, ip)
			}
		}
		r.mu.Unlock()
	}
}

func getIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	return c.RealIP()
}
