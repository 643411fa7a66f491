package handler

import (
	"net/http"

	"github.com/amora-app/amora-backend/internal/usecase/message"
	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUseCase *message.MessageUseCase
}

func NewMessageHandler(messageUseCase *message.MessageUseCase) *MessageHandler {
	return &MessageHandler{messageUseCase: messageUseCase}
}

// Send handles POST /matches/:match_id/messages
func (h *MessageHandler) Send(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req message.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	sent, err := h.messageUseCase.Send(c.Request.Context(), uid, c.Param("match_id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sent)
}

// List handles GET /matches/:match_id/messages
func (h *MessageHandler) List(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	messages, err := h.messageUseCase.List(c.Request.Context(), uid, c.Param("match_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// UpdateStatus handles PUT /messages/:message_id/status
func (h *MessageHandler) UpdateStatus(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req message.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.messageUseCase.UpdateStatus(c.Request.Context(), uid, c.Param("message_id"), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
