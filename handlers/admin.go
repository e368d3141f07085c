package handlers

import (
	"net/http"

	"receptionist/models"
	"receptionist/services/admin"
	"receptionist/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SaveCustomResponseHandler(svc admin.TemplateService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := getLogger(c, logger)

		var tpl models.CustomResponseTemplate
		if err := c.ShouldBindJSON(&tpl); err != nil {
			log.Debug("invalid custom response", zap.Error(err))
			c.JSON(http.StatusBadRequest, utils.ErrorResponse{
				Error:   "invalid_request",
				Message: "query_type and custom_response_template are required.",
			})
			return
		}

		if err := svc.SaveTemplate(c.Request.Context(), tpl); err != nil {
			utils.RespondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Custom response saved successfully."})
	}
}

func GetCustomResponseHandler(svc admin.TemplateService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tpl, err := svc.GetTemplate(c.Request.Context(), c.Param("query_type"))
		if err != nil {
			utils.RespondError(c, getLogger(c, logger), err)
			return
		}
		c.JSON(http.StatusOK, tpl)
	}
}

func ListCustomResponsesHandler(svc admin.TemplateService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tpls, err := svc.ListTemplates(c.Request.Context())
		if err != nil {
			utils.RespondError(c, getLogger(c, logger), err)
			return
		}
		c.JSON(http.StatusOK, tpls)
	}
}
