package handler

import (
	"errors"
	"net/http"

	"github.com/amora-app/amora-backend/internal/delivery/http/middleware"
	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the shared error body
type ErrorResponse struct {
	Error string `json:"error"`
}

// userID reads the external user id set by the auth middleware.
func userID(c *gin.Context) (string, bool) {
	id, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return "", false
	}
	return id.(string), true
}

// respondError maps domain sentinel errors to HTTP statuses; anything
// unrecognized is a 500 with a generic body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrMatchNotFound),
		errors.Is(err, domain.ErrPhotoNotFound),
		errors.Is(err, domain.ErrMessageNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrProfileAlreadyExists),
		errors.Is(err, domain.ErrAlreadyBlocked):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrCannotActOnSelf),
		errors.Is(err, domain.ErrMatchNotActive),
		errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotMatchParticipant):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidSignature),
		errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
