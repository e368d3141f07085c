package handlers

import (
	"net/http"

	"receptionist/services/booking"
	"receptionist/services/business"
	"receptionist/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetBusinessHandler returns the full business profile.
func GetBusinessHandler(svc business.BusinessService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := svc.GetProfile(c.Request.Context())
		if err != nil {
			utils.RespondError(c, getLogger(c, logger), err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func GetServicesHandler(svc business.BusinessService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		services, err := svc.GetServices(c.Request.Context())
		if err != nil {
			utils.RespondError(c, getLogger(c, logger), err)
			return
		}
		c.JSON(http.StatusOK, services)
	}
}

// GetSlotsHandler lists open slots, optionally filtered by ?date=YYYY-MM-DD.
func GetSlotsHandler(svc booking.BookingService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		slots, err := svc.ListAvailableSlots(c.Request.Context(), c.Query("date"))
		if err != nil {
			utils.RespondError(c, getLogger(c, logger), err)
			return
		}
		c.JSON(http.StatusOK, slots)
	}
}
