package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"plume/internal/adapters/httpapi/middleware"
	"plume/internal/core/apperr"
)

// writeError maps service errors onto the response conventions: missing
// records are 404, rejected input is 400 with the offending fields,
// anonymous access redirects to login and everything else is a 500.
// Forbidden gets route-specific handling (the edit path redirects to the
// read-only view), so controllers that expect it check before calling here;
// a stray Forbidden still maps to 403.
func writeError(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": ve.Fields})
	case errors.Is(err, apperr.ErrUnauthenticated):
		c.Redirect(http.StatusFound, middleware.LoginPath)
	case errors.Is(err, apperr.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
