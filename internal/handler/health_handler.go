package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Welcome is the root endpoint the mobile client pings to discover the
// API.
func Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Welcome to Ledger Master API"})
}

// Health reports service liveness.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
