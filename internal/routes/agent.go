package routes

import (
	"github.com/gin-gonic/gin"

	"kpi_platform/internal/handlers"
)

type AgentRoutes struct {
	handler *handlers.AgentHandler
}

func NewAgentRoutes(handler *handlers.AgentHandler) *AgentRoutes {
	return &AgentRoutes{handler: handler}
}

func (r *AgentRoutes) RegisterRoutes(router *gin.Engine) {
	agent := router.Group("/agent")
	{
		agent.POST("/ask", r.handler.Ask)
	}
}
