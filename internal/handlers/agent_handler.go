package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kpi_platform/internal/responses"
	"kpi_platform/internal/services"
)

type AgentHandler struct {
	agentService *services.AgentService
}

func NewAgentHandler(agentService *services.AgentService) *AgentHandler {
	return &AgentHandler{agentService: agentService}
}

// Ask handles POST /agent/ask: a natural-language question answered by the
// SQL agent.
func (h *AgentHandler) Ask(c *gin.Context) {
	var req services.AgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: question is required")
		return
	}

	answer, err := h.agentService.Ask(c.Request.Context(), req.Question)
	if err != nil {
		responses.Fail(c, http.StatusBadGateway, err, "Agent run failed")
		return
	}

	c.JSON(http.StatusOK, answer)
}
