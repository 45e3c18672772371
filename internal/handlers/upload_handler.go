package handlers

import (
	"net/http"

	"vk_randomizer_backend/internal/services"
	"vk_randomizer_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/uploads", h.UploadPhoto)
}

func (h *UploadHandler) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing form file: photo"))
		return
	}

	result, err := h.uploadService.UploadPhoto(c.Request.Context(), file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
