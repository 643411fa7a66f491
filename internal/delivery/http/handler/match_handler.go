package handler

import (
	"net/http"

	"github.com/amora-app/amora-backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{matchUseCase: matchUseCase}
}

// Like handles POST /matches/like/:profile_id
func (h *MatchHandler) Like(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	resp, err := h.matchUseCase.Like(c.Request.Context(), uid, c.Param("profile_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Pass handles POST /matches/pass/:profile_id
func (h *MatchHandler) Pass(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	resp, err := h.matchUseCase.Pass(c.Request.Context(), uid, c.Param("profile_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// List handles GET /matches
func (h *MatchHandler) List(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	matches, err := h.matchUseCase.ListMatches(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}
