package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github/itish2003/pdfchat/logger"
	"github/itish2003/pdfchat/middleware"
	"github/itish2003/pdfchat/models"
)

// AvailableEndpoints is listed in the 404 and 405 responses.
var AvailableEndpoints = []string{"/", "/health", "/chat"}

// NotFound handles any path that has no route.
func NotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, models.FallbackResponse{
		Error:              "Not Found",
		Message:            "The requested URL was not found on the server.",
		AvailableEndpoints: AvailableEndpoints,
	})
}

// MethodNotAllowed handles a known path hit with an unsupported method. A
// pre-flight OPTIONS request is acknowledged instead, with no body.
func MethodNotAllowed(ctx *gin.Context) {
	if ctx.Request.Method == http.MethodOptions {
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.JSON(http.StatusMethodNotAllowed, models.FallbackResponse{
		Error:              "Method Not Allowed",
		Message:            "The method is not allowed for the requested URL.",
		AvailableEndpoints: AvailableEndpoints,
	})
}

// Recovery turns a panic in any handler into the generic 500 response.
func Recovery(ctx *gin.Context, recovered any) {
	logger.ErrorWithFields("Internal server error", logger.Fields{
		"request_id": middleware.GetRequestID(ctx.Request.Context()),
		"path":       ctx.Request.URL.Path,
		"panic":      fmt.Sprint(recovered),
	})
	ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.FallbackResponse{
		Error:   "Internal Server Error",
		Message: "An internal server error occurred.",
	})
}
