package handlers

import (
	"net/http"

	"vk_randomizer_backend/internal/services"
	"vk_randomizer_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NotificationCardHandler struct {
	*BaseHandler
	cardService services.NotificationCardService
}

func NewNotificationCardHandler(base *BaseHandler, cardService services.NotificationCardService) *NotificationCardHandler {
	return &NotificationCardHandler{
		BaseHandler: base,
		cardService: cardService,
	}
}

func (h *NotificationCardHandler) RegisterRoutes(r *gin.RouterGroup) {
	cards := r.Group("/notification-cards")
	{
		cards.POST("", h.CreateCard)
		cards.GET("", h.ListCards)
		cards.GET("/:id", h.GetCard)
		cards.PUT("/:id", h.UpdateCard)
		cards.DELETE("/:id", h.DeleteCard)
	}
}

func (h *NotificationCardHandler) CreateCard(c *gin.Context) {
	var req dto.CreateNotificationCardRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	card, err := h.cardService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NotificationCardResponse{Notification: *card})
}

func (h *NotificationCardHandler) ListCards(c *gin.Context) {
	result, err := h.cardService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *NotificationCardHandler) GetCard(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	card, err := h.cardService.Get(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NotificationCardResponse{Notification: *card})
}

func (h *NotificationCardHandler) UpdateCard(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var payload dto.NotificationCardPayload
	if !h.BindAndValidate_JSON(c, &payload) {
		return
	}

	card, err := h.cardService.Update(id, &payload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NotificationCardResponse{Notification: *card})
}

func (h *NotificationCardHandler) DeleteCard(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.cardService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
