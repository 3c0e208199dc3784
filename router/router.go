package router

import (
	"github.com/gin-gonic/gin"

	"github/itish2003/pdfchat/controller"
	"github/itish2003/pdfchat/middleware"
	"github/itish2003/pdfchat/services"
)

// Deps are the services the HTTP surface needs. They are built once in main.
type Deps struct {
	ChatService services.ChatService
	HostService services.HostService
}

// New builds the gin engine with every route, the fallbacks and the
// middleware chain. Recovery sits innermost so a panic is still logged and
// still carries the CORS and request id headers.
func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		middleware.RequestID(),
		middleware.CORS(),
		middleware.RequestLogging(),
		gin.CustomRecovery(controller.Recovery),
	)

	statusController := controller.NewStatusController(deps.HostService)
	chatController := controller.NewChatController(deps.ChatService)

	r.GET("/", statusController.Home)
	r.GET("/health", statusController.Health)
	r.POST("/chat", chatController.Chat)
	r.OPTIONS("/chat", chatController.ChatPreflight)

	r.NoRoute(controller.NotFound)
	r.NoMethod(controller.MethodNotAllowed)

	return r
}
