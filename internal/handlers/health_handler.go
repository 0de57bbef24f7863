package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/dto"
)

const serviceName = "CIBIL Analysis"

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct{}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler() *HealthCheckHandler {
	return &HealthCheckHandler{}
}

// HealthCheck reports service liveness. The engine holds no state and no
// connections, so liveness is the whole story; upstream health shows up on
// the analyze path as distinct error codes.
//
// Method: GET /health
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}
