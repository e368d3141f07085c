package routes

import (
	"fmt"
	"time"

	"receptionist/handlers"
	"receptionist/middleware"
	"receptionist/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter builds the engine with the standard middleware chain and every route.
// Forwarding headers are only honored from trustedProxies; with none, the
// client IP is the connection's remote address.
func NewRouter(hb *handlers.HandlerBundle, maxRequestsPerMin int, trustedProxies []string, logger *zap.Logger) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	r.Use(utils.ErrorHandler(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimitMiddleware(maxRequestsPerMin, logger))

	RegisterRoutes(r, hb)
	return r, nil
}

// RegisterBusinessRoutes registers the read-only business endpoints.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/business", hb.GetBusinessHandler)
	r.GET("/services", hb.GetServicesHandler)
	r.GET("/slots", hb.GetSlotsHandler)
}

// RegisterBookingRoutes sets up the scheduling endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/schedule", hb.ScheduleHandler)
	r.GET("/appointments", hb.ListAppointmentsHandler)
}

// RegisterAdminRoutes registers custom response management.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/admin")
	{
		admin.POST("/custom-response", hb.SaveCustomResponseHandler)
		admin.GET("/custom-response", hb.ListCustomResponsesHandler)
		admin.GET("/custom-response/:query_type", hb.GetCustomResponseHandler)
	}
}

// RegisterAIRoutes registers AI endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/ai")
	{
		api.POST("/ask-ai", hb.AskAIHandler)
		api.POST("/ask-ai/voice", hb.AskAIVoiceHandler)
	}
}

// RegisterOpsRoutes registers health and Prometheus endpoints.
func RegisterOpsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and CORS.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterBusinessRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterOpsRoutes(r, hb)
}
