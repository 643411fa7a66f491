package handler

import (
	"net/http"

	"github.com/amora-app/amora-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{profileUseCase: profileUseCase}
}

// Create handles POST /profile
func (h *ProfileHandler) Create(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req profile.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.profileUseCase.Create(c.Request.Context(), uid, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetMe handles GET /profile/me
func (h *ProfileHandler) GetMe(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	p, err := h.profileUseCase.GetMyProfile(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateMe handles PUT /profile/me
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.profileUseCase.Update(c.Request.Context(), uid, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Complete handles POST /profile/me/complete
func (h *ProfileHandler) Complete(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	completed, err := h.profileUseCase.Complete(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, completed)
}

// GetByID handles GET /profile/:profile_id
func (h *ProfileHandler) GetByID(c *gin.Context) {
	if _, ok := userID(c); !ok {
		return
	}

	p, err := h.profileUseCase.GetByID(c.Request.Context(), c.Param("profile_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}
