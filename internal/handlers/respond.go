package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirehive-labs/careers-portal/internal/services"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// respondError translates the service error taxonomy into an HTTP status and
// a JSON error body. Nothing is retried here; errors reach the caller as-is.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var dependentsErr *services.HasDependentsError
	var uploadErr *services.UploadError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &dependentsErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":            dependentsErr.Error(),
			"applicationCount": dependentsErr.Count,
		})
	case errors.As(err, &uploadErr):
		status := http.StatusInternalServerError
		if uploadErr.Rejected {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": uploadErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		log.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
