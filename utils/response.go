package utils

import (
	"errors"
	"net/http"

	"horizon-hotel-backend/models"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONFromError maps service-layer sentinel errors onto HTTP responses.
// Unknown errors come back as a generic 500 so internals never leak.
func JSONFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidDateRange),
		errors.Is(err, models.ErrInvalidStay),
		errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrMaxOccupancyExceeded):
		JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrRoomTypeNotFound),
		errors.Is(err, models.ErrBookingNotFound),
		errors.Is(err, models.ErrCustomerNotFound):
		JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrNoAvailability),
		errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrInvalidBookingState),
		errors.Is(err, models.ErrOverlappingOverride),
		errors.Is(err, models.ErrConcurrencyConflict):
		JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrForbidden):
		JSONError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrStorageUnavailable):
		JSONError(c, http.StatusServiceUnavailable, err.Error())
	default:
		JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
