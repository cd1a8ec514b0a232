package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/tax-advisor/dto"
	"github.com/Aashish23092/tax-advisor/service"
)

type ChatHandler struct {
	chatAdvisor *service.ChatAdvisor
}

func NewChatHandler(chatAdvisor *service.ChatAdvisor) *ChatHandler {
	return &ChatHandler{chatAdvisor: chatAdvisor}
}

// Chat handles POST /chat: one follow-up question within an existing
// calculation session.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "CHAT_FAILED", "session_id and message are required", err)
		return
	}

	response, err := h.chatAdvisor.Ask(req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, dto.ErrSessionNotFound) {
			sendError(c, http.StatusNotFound, "SESSION_NOT_FOUND",
				"Chat session not found or expired; run a new calculation first", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "CHAT_FAILED", "Failed to answer question", err)
		return
	}

	log.Printf("Chat reply sent for session %s (ai_generated=%t)", req.SessionID, response.AIGenerated)
	c.JSON(http.StatusOK, response)
}
