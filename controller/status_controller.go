package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github/itish2003/pdfchat/logger"
	"github/itish2003/pdfchat/models"
	"github/itish2003/pdfchat/services"
)

// StatusController serves GET / and GET /health.
type StatusController struct {
	hostService services.HostService
}

// NewStatusController is called from the router to inject the host lookup.
func NewStatusController(hostService services.HostService) *StatusController {
	return &StatusController{hostService: hostService}
}

// Home reports server identity and the available endpoints.
func (c *StatusController) Home(ctx *gin.Context) {
	info, err := c.hostService.ServerInfo(ctx.Request.Context())
	if err != nil {
		logger.ErrorWithFields("Error in home route", logger.Fields{"error": err.Error()})
		ctx.JSON(http.StatusInternalServerError, models.StatusResponse{
			Status:  "error",
			Message: "Error getting server information: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, models.StatusResponse{
		Status:     "running",
		Message:    "PDF Chat Backend Server is running",
		ServerInfo: info,
		Endpoints: map[string]string{
			"/":       "GET - Server information",
			"/health": "GET - Health check",
			"/chat":   "POST - Send chat messages",
		},
	})
}

// Health is the liveness probe.
func (c *StatusController) Health(ctx *gin.Context) {
	info, err := c.hostService.ServerInfo(ctx.Request.Context())
	if err != nil {
		logger.ErrorWithFields("Error in health check", logger.Fields{"error": err.Error()})
		ctx.JSON(http.StatusInternalServerError, models.StatusResponse{
			Status:  "unhealthy",
			Message: "Error checking server health: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, models.StatusResponse{
		Status:     "healthy",
		Message:    "Server is healthy",
		ServerInfo: info,
	})
}
