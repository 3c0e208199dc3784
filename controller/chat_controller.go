package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github/itish2003/pdfchat/logger"
	"github/itish2003/pdfchat/middleware"
	"github/itish2003/pdfchat/models"
	"github/itish2003/pdfchat/services"
)

const errNoMessage = "No message provided"

// ChatController handles the HTTP requests for the chat endpoint. It depends
// on the ChatService to perform the actual search and generation.
type ChatController struct {
	chatService services.ChatService
}

// NewChatController is called from the router to inject the service dependency.
func NewChatController(service services.ChatService) *ChatController {
	return &ChatController{
		chatService: service,
	}
}

// Chat is the Gin handler for POST /chat.
func (c *ChatController) Chat(ctx *gin.Context) {
	var req models.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Message == nil {
		logger.WarnWithFields("No message provided in request", logger.Fields{
			"request_id": middleware.GetRequestID(ctx.Request.Context()),
		})
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errNoMessage})
		return
	}

	response, err := c.chatService.Ask(ctx.Request.Context(), *req.Message)
	if err != nil {
		fields := logger.Fields{
			"request_id": middleware.GetRequestID(ctx.Request.Context()),
			"error":      err.Error(),
		}

		// Collaborator failures are surfaced verbatim.
		var collabErr *services.CollaboratorError
		if errors.As(err, &collabErr) {
			fields["stage"] = string(collabErr.Stage)
			logger.ErrorWithFields("Error in chat collaborator", fields)
			ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: collabErr.Error()})
			return
		}

		logger.ErrorWithFields("Error in chat endpoint", fields)
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Error processing request: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ChatPreflight answers OPTIONS /chat without touching any collaborator.
func (c *ChatController) ChatPreflight(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, models.AckResponse{Status: "ok"})
}
