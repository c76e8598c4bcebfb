package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kpi_platform/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, chatHandler *handlers.ChatHandler, agentHandler *handlers.AgentHandler, kpiHandler *handlers.KPIHandler) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "KPI Analytics Chat API",
			"status":  "running",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	chatRoutes := NewChatRoutes(chatHandler)
	chatRoutes.RegisterRoutes(router)

	agentRoutes := NewAgentRoutes(agentHandler)
	agentRoutes.RegisterRoutes(router)

	kpiRoutes := NewKPIRoutes(kpiHandler)
	kpiRoutes.RegisterRoutes(router)
}
