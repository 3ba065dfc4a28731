package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports service liveness for load balancers and monitoring. It is
// the only JSON endpoint that does not use the response envelope.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"name":   "portfolio-api",
		"status": "ok",
	})
}
