package api

import (
	"errors"
	"net/http"

	"examprep/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto HTTP status codes without
// conflating missing resources with upstream failures.
func respondError(c *gin.Context, err error) {
	var malformed *domain.MalformedOutputError
	var validation *domain.MindMapValidationError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &malformed), errors.As(err, &validation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
