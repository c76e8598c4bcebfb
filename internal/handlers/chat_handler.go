package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kpi_platform/internal/responses"
	"kpi_platform/internal/services"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat handles POST /chat: one conversational turn with session memory.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req services.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: session_id and message are required")
		return
	}

	reply, err := h.chatService.Send(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		responses.Fail(c, http.StatusBadGateway, err, "Chat completion failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// History handles GET /chat/:session_id/history.
func (h *ChatHandler) History(c *gin.Context) {
	sessionID := c.Param("session_id")

	messages, err := h.chatService.History(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"session_id":    sessionID,
				"message_count": 0,
				"messages":      []gin.H{},
				"error":         "session not found",
			})
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to read session history")
		return
	}

	out := make([]gin.H, 0, len(messages))
	for _, msg := range messages {
		out = append(out, gin.H{
			"type":    string(msg.GetType()),
			"content": msg.GetContent(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id":    sessionID,
		"message_count": len(out),
		"messages":      out,
	})
}

// Clear handles DELETE /chat/:session_id.
func (h *ChatHandler) Clear(c *gin.Context) {
	sessionID := c.Param("session_id")

	if err := h.chatService.Clear(c.Request.Context(), sessionID); err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			responses.Fail(c, http.StatusNotFound, nil, "Session not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to clear session history")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"session_id": sessionID}, "History cleared")
}
