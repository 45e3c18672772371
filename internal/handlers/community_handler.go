package handlers

import (
	"net/http"

	"vk_randomizer_backend/internal/services"
	"vk_randomizer_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	*BaseHandler
	communityService services.CommunityService
}

func NewCommunityHandler(base *BaseHandler, communityService services.CommunityService) *CommunityHandler {
	return &CommunityHandler{
		BaseHandler:      base,
		communityService: communityService,
	}
}

func (h *CommunityHandler) RegisterRoutes(r *gin.RouterGroup) {
	communities := r.Group("/communities")
	{
		communities.POST("", h.CreateCommunity)
		communities.GET("", h.ListCommunities)
		communities.GET("/:id", h.GetCommunity)
		communities.PUT("/:id", h.UpdateCommunity)
		communities.PATCH("/:id", h.UpdateCommunity)
		communities.DELETE("/:id", h.DeleteCommunity)
	}
}

func (h *CommunityHandler) CreateCommunity(c *gin.Context) {
	var req dto.CreateCommunityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	community, err := h.communityService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, community)
}

func (h *CommunityHandler) ListCommunities(c *gin.Context) {
	result, err := h.communityService.List(c.Query("vk_user_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CommunityHandler) GetCommunity(c *gin.Context) {
	community, err := h.communityService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, community)
}

func (h *CommunityHandler) UpdateCommunity(c *gin.Context) {
	var req dto.UpdateCommunityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	community, err := h.communityService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, community)
}

func (h *CommunityHandler) DeleteCommunity(c *gin.Context) {
	if err := h.communityService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
