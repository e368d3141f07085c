package handlers

import (
	"net/http"

	"receptionist/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last dependency snapshot without touching the network.
func HealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if monitor == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		status := "ok"
		if !monitor.Healthy() {
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{"status": status, "dependencies": monitor.Status()})
	}
}
