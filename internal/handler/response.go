package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"geogame/internal/repository"
	"geogame/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Authorization failures
	case errors.Is(err, service.ErrWrongCredentials):
		return http.StatusForbidden

	// Validation and geofence failures - Bad Request
	case errors.Is(err, service.ErrPostNotReached),
		errors.Is(err, service.ErrInvalidUserName),
		errors.Is(err, service.ErrInvalidLocation),
		errors.Is(err, service.ErrInvalidDistance),
		errors.Is(err, service.ErrInvalidPostID),
		errors.Is(err, service.ErrMissingTask),
		errors.Is(err, service.ErrMissingPassword):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, repository.ErrDuplicate):
		return http.StatusConflict

	// Default to internal server error (store unavailability and the like)
	default:
		return http.StatusInternalServerError
	}
}
