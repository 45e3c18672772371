package handlers

import (
	"net/http"

	"vk_randomizer_backend/internal/services"
	"vk_randomizer_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CommunityModalHandler struct {
	*BaseHandler
	modalService services.CommunityModalService
}

func NewCommunityModalHandler(base *BaseHandler, modalService services.CommunityModalService) *CommunityModalHandler {
	return &CommunityModalHandler{
		BaseHandler:  base,
		modalService: modalService,
	}
}

func (h *CommunityModalHandler) RegisterRoutes(r *gin.RouterGroup) {
	modals := r.Group("/community-modals")
	{
		modals.POST("", h.CreateModal)
		modals.GET("", h.ListModals)
		modals.GET("/:id", h.GetModal)
		modals.PUT("/:id", h.UpdateModal)
		modals.DELETE("/:id", h.DeleteModal)
	}
}

func (h *CommunityModalHandler) CreateModal(c *gin.Context) {
	var modal dto.CommunityModal
	if !h.BindAndValidate_JSON(c, &modal) {
		return
	}

	created, err := h.modalService.Create(&modal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CommunityModalResponse{Modal: *created})
}

func (h *CommunityModalHandler) ListModals(c *gin.Context) {
	result, err := h.modalService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CommunityModalHandler) GetModal(c *gin.Context) {
	modal, err := h.modalService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CommunityModalResponse{Modal: *modal})
}

func (h *CommunityModalHandler) UpdateModal(c *gin.Context) {
	var modal dto.CommunityModal
	if !h.BindAndValidate_JSON(c, &modal) {
		return
	}

	updated, err := h.modalService.Update(c.Param("id"), &modal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CommunityModalResponse{Modal: *updated})
}

func (h *CommunityModalHandler) DeleteModal(c *gin.Context) {
	if err := h.modalService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
