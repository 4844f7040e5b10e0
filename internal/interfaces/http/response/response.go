package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "github.com/abeer2626/sami-shops/internal/domain/errors"
)

// sentinelStatus maps bare domain sentinels to HTTP statuses, so
// repository errors that reach a handler unwrapped still surface with
// the right code.
var sentinelStatus = []struct {
	err    error
	status int
}{
	{domainerrors.ErrNotFound, http.StatusNotFound},
	{domainerrors.ErrForbidden, http.StatusForbidden},
	{domainerrors.ErrUnauthorized, http.StatusUnauthorized},
	{domainerrors.ErrInvalidCredentials, http.StatusUnauthorized},
	{domainerrors.ErrTokenExpired, http.StatusUnauthorized},
	{domainerrors.ErrAlreadyExists, http.StatusBadRequest},
	{domainerrors.ErrInvalidInput, http.StatusBadRequest},
	{domainerrors.ErrInsufficientStock, http.StatusBadRequest},
	{domainerrors.ErrInvalidTransition, http.StatusBadRequest},
	{domainerrors.ErrInsufficientEarnings, http.StatusBadRequest},
	{domainerrors.ErrDuplicateReview, http.StatusBadRequest},
}

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. AppError values carry their own HTTP
// status; known domain sentinels map to theirs; anything else surfaces
// as a generic 500 so internals never leak to the client.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{
			"error": appErr.Message,
		})
		return
	}

	for _, m := range sentinelStatus {
		if errors.Is(err, m.err) {
			c.JSON(m.status, gin.H{
				"error": m.err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "internal server error",
	})
}

// ErrorWithStatus sends an error response with an explicit status
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error": message,
	})
}
