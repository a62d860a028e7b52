package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eslsoft/coursecatalog/internal/core"
	"github.com/eslsoft/coursecatalog/internal/logger"
)

// NewErrorInterceptor creates a gin middleware that renders the last error a
// handler attached with c.Error as a JSON error body.
func NewErrorInterceptor(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, message := mapError(err)
		if status == http.StatusInternalServerError && log != nil {
			log.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		}
		c.JSON(status, gin.H{"error": message})
	}
}

func mapError(err error) (int, string) {
	var accessErr *core.AccessError
	if errors.As(err, &accessErr) {
		return http.StatusNotFound, accessErr.Error()
	}

	switch {
	case errors.Is(err, core.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, core.ErrUnauthenticated):
		return http.StatusUnauthorized, core.ErrUnauthenticated.Error()
	case errors.Is(err, core.ErrNotFoundOrForbidden), errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, core.ErrConflict):
		return http.StatusConflict, core.ErrConflict.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
