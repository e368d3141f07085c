package handlers

import (
	"receptionist/services/admin"
	"receptionist/services/booking"
	"receptionist/services/business"
	ai "receptionist/services/intelligence"
	"receptionist/services/receptionist"
	"receptionist/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies are the services the HTTP layer talks to. Transcriber may be
// nil, which disables voice queries.
type Dependencies struct {
	Business    business.BusinessService
	Booking     booking.BookingService
	Templates   admin.TemplateService
	Resolver    receptionist.Resolver
	Transcriber ai.Transcriber
	Health      *utils.HealthMonitor
	Logger      *zap.Logger
}

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Business endpoints
	GetBusinessHandler gin.HandlerFunc
	GetServicesHandler gin.HandlerFunc
	GetSlotsHandler    gin.HandlerFunc

	// Booking endpoints
	ScheduleHandler         gin.HandlerFunc
	ListAppointmentsHandler gin.HandlerFunc

	// Admin endpoints
	SaveCustomResponseHandler  gin.HandlerFunc
	GetCustomResponseHandler   gin.HandlerFunc
	ListCustomResponsesHandler gin.HandlerFunc

	// AI endpoints
	AskAIHandler      gin.HandlerFunc
	AskAIVoiceHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

func NewHandlerBundle(deps Dependencies) *HandlerBundle {
	return &HandlerBundle{
		GetBusinessHandler: GetBusinessHandler(deps.Business, deps.Logger),
		GetServicesHandler: GetServicesHandler(deps.Business, deps.Logger),
		GetSlotsHandler:    GetSlotsHandler(deps.Booking, deps.Logger),

		ScheduleHandler:         ScheduleHandler(deps.Booking, deps.Logger),
		ListAppointmentsHandler: ListAppointmentsHandler(deps.Booking, deps.Logger),

		SaveCustomResponseHandler:  SaveCustomResponseHandler(deps.Templates, deps.Logger),
		GetCustomResponseHandler:   GetCustomResponseHandler(deps.Templates, deps.Logger),
		ListCustomResponsesHandler: ListCustomResponsesHandler(deps.Templates, deps.Logger),

		AskAIHandler:      AskAIHandler(deps.Resolver, deps.Logger),
		AskAIVoiceHandler: AskAIVoiceHandler(deps.Transcriber, deps.Resolver, deps.Logger),

		HealthHandler: HealthHandler(deps.Health),
	}
}
