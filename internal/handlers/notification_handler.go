package handlers

import (
	"net/http"

	"vk_randomizer_backend/internal/repositories"
	"vk_randomizer_backend/internal/services"
	"vk_randomizer_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.POST("", h.CreateNotification)
		notifications.GET("", h.ListNotifications)
		notifications.GET("/:id", h.GetNotification)
		notifications.PUT("/:id", h.UpdateNotification)
		notifications.PUT("/:id/read", h.MarkNotificationRead)
		notifications.DELETE("/:id", h.DeleteNotification)
	}

	settings := r.Group("/notification-settings")
	{
		settings.GET("/:userId", h.GetSettings)
		settings.PUT("/:userId", h.UpdateSettings)
	}
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	notification, err := h.notificationService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, notification)
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	var criteria repositories.NotificationCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	result, err := h.notificationService.List(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *NotificationHandler) GetNotification(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	notification, err := h.notificationService.Get(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) UpdateNotification(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateNotificationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	notification, err := h.notificationService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.notificationService.MarkAsRead(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.notificationService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Настройки уведомлений ---

func (h *NotificationHandler) GetSettings(c *gin.Context) {
	settings, err := h.notificationService.GetSettings(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *NotificationHandler) UpdateSettings(c *gin.Context) {
	var req dto.NotificationSettingsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	settings, err := h.notificationService.UpdateSettings(c.Param("userId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
