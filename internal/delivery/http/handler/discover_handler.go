package handler

import (
	"net/http"

	"github.com/amora-app/amora-backend/internal/usecase/discover"
	"github.com/gin-gonic/gin"
)

type DiscoverHandler struct {
	discoverUseCase *discover.DiscoverUseCase
}

func NewDiscoverHandler(discoverUseCase *discover.DiscoverUseCase) *DiscoverHandler {
	return &DiscoverHandler{discoverUseCase: discoverUseCase}
}

// Discover handles GET /discover
func (h *DiscoverHandler) Discover(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	candidates, err := h.discoverUseCase.Discover(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": candidates})
}
