package handler

import (
	"net/http"

	"github.com/amora-app/amora-backend/internal/usecase/photo"
	"github.com/gin-gonic/gin"
)

// maxPhotoSize caps one uploaded photo at 10 MB.
const maxPhotoSize = 10 << 20

type PhotoHandler struct {
	photoUseCase *photo.PhotoUseCase
}

func NewPhotoHandler(photoUseCase *photo.PhotoUseCase) *PhotoHandler {
	return &PhotoHandler{photoUseCase: photoUseCase}
}

// Upload handles POST /photos (multipart form, field "photo")
func (h *PhotoHandler) Upload(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing photo file"})
		return
	}
	if fileHeader.Size > maxPhotoSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "photo too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable photo file"})
		return
	}
	defer file.Close()

	uploaded, err := h.photoUseCase.Upload(
		c.Request.Context(),
		uid,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, uploaded)
}

// List handles GET /photos
func (h *PhotoHandler) List(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	photos, err := h.photoUseCase.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

// SetPrimary handles PUT /photos/:photo_id/primary
func (h *PhotoHandler) SetPrimary(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.photoUseCase.SetPrimary(c.Request.Context(), uid, c.Param("photo_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Delete handles DELETE /photos/:photo_id
func (h *PhotoHandler) Delete(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.photoUseCase.Delete(c.Request.Context(), uid, c.Param("photo_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
