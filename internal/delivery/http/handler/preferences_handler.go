package handler

import (
	"net/http"

	"github.com/amora-app/amora-backend/internal/usecase/preferences"
	"github.com/gin-gonic/gin"
)

type PreferencesHandler struct {
	preferencesUseCase *preferences.PreferencesUseCase
}

func NewPreferencesHandler(preferencesUseCase *preferences.PreferencesUseCase) *PreferencesHandler {
	return &PreferencesHandler{preferencesUseCase: preferencesUseCase}
}

// Get handles GET /preferences
func (h *PreferencesHandler) Get(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	prefs, err := h.preferencesUseCase.Get(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// Update handles PUT /preferences
func (h *PreferencesHandler) Update(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req preferences.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	prefs, err := h.preferencesUseCase.Update(c.Request.Context(), uid, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}
