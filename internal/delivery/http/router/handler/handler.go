// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"tangoshop/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID extracts the authenticated user's ID placed in the context by
// the auth middleware. The second return value carries the already-written
// 401 response when the ID is missing.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// pathUUID parses a UUID path parameter. The second return value carries the
// already-written 400 response on a malformed ID.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, response.BadRequest(c, "INVALID_INPUT", "Invalid "+name+" parameter")
	}

	return id, nil
}

// pageParams reads the page/limit query parameters, falling back to the
// first page when they are absent or malformed.
func pageParams(c echo.Context) (int, int) {
	page := 1
	limit := 20

	if pageStr := c.QueryParam("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	return page, limit
}

// limitParam reads a bounded limit query parameter with a default.
func limitParam(c echo.Context, def int) int {
	limit := def
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	return limit
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
