// Package handler contains the HTTP handlers of the API delivery.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"tracenfind/internal/delivery/api/response"
	"tracenfind/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// userID returns the trimmed :userId path parameter.
func userID(c echo.Context) (string, bool) {
	id := strings.TrimSpace(c.Param(middleware.UserIDParam))

	return id, id != ""
}

// limitParam parses the optional ?limit= query parameter. Zero means the
// use case default.
func limitParam(c echo.Context) (int, bool) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, false
	}

	return limit, true
}

func missingUser(c echo.Context) error {
	return response.BadRequest(c, "INVALID_USER", "User ID is required")
}
