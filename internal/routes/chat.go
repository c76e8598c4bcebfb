package routes

import (
	"github.com/gin-gonic/gin"

	"kpi_platform/internal/handlers"
)

type ChatRoutes struct {
	handler *handlers.ChatHandler
}

func NewChatRoutes(handler *handlers.ChatHandler) *ChatRoutes {
	return &ChatRoutes{handler: handler}
}

func (r *ChatRoutes) RegisterRoutes(router *gin.Engine) {
	router.POST("/chat", r.handler.Chat)
	router.DELETE("/chat/:session_id", r.handler.Clear)
	router.GET("/chat/:session_id/history", r.handler.History)
}
