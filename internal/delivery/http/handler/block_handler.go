package handler

import (
	"net/http"

	"github.com/amora-app/amora-backend/internal/usecase/block"
	"github.com/amora-app/amora-backend/internal/usecase/notification"
	"github.com/gin-gonic/gin"
)

type BlockHandler struct {
	blockUseCase *block.BlockUseCase
}

func NewBlockHandler(blockUseCase *block.BlockUseCase) *BlockHandler {
	return &BlockHandler{blockUseCase: blockUseCase}
}

// Block handles POST /blocks/:profile_id
func (h *BlockHandler) Block(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.blockUseCase.Block(c.Request.Context(), uid, c.Param("profile_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "blocked"})
}

// Unblock handles DELETE /blocks/:profile_id
func (h *BlockHandler) Unblock(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.blockUseCase.Unblock(c.Request.Context(), uid, c.Param("profile_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "unblocked"})
}

// List handles GET /blocks
func (h *BlockHandler) List(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	blocked, err := h.blockUseCase.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blocked": blocked})
}

type NotificationHandler struct {
	notificationUseCase *notification.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *notification.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{notificationUseCase: notificationUseCase}
}

// List handles GET /notifications
func (h *NotificationHandler) List(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	notifications, err := h.notificationUseCase.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkRead handles PUT /notifications/:notification_id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.notificationUseCase.MarkRead(c.Request.Context(), uid, c.Param("notification_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
