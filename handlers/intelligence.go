package handlers

import (
	"net/http"

	"receptionist/models"
	"receptionist/services/receptionist"
	"receptionist/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AskAIHandler answers a free-text customer query.
func AskAIHandler(resolver receptionist.Resolver, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := getLogger(c, logger)

		var req models.QueryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse{
				Error:   "invalid_request",
				Message: "Request body must be a JSON object.",
			})
			return
		}

		resp, err := resolver.Resolve(c.Request.Context(), req.UserQuery)
		if err != nil {
			utils.RespondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
