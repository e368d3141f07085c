package handlers

import (
	"net/http"

	"receptionist/models"
	"receptionist/services/booking"
	"receptionist/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler books a slot for a customer.
func ScheduleHandler(svc booking.BookingService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := getLogger(c, logger)

		var req models.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Debug("invalid booking request", zap.Error(err))
			c.JSON(http.StatusBadRequest, utils.ErrorResponse{
				Error:   "invalid_request",
				Message: "customer_name, service, date and time are required.",
			})
			return
		}

		appt, err := svc.Book(c.Request.Context(), req)
		if err != nil {
			utils.RespondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, models.BookingResponse{Message: "Appointment booked!", Appointment: appt})
	}
}

func ListAppointmentsHandler(svc booking.BookingService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		appts, err := svc.ListAppointments(c.Request.Context())
		if err != nil {
			utils.RespondError(c, getLogger(c, logger), err)
			return
		}
		c.JSON(http.StatusOK, appts)
	}
}
