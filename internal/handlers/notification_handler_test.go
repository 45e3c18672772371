package handlers_test

import (
	"net/http"
	"testing"

	"vk_randomizer_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notificationPayload(id int) gin.H {
	return gin.H{
		"id":         id,
		"type":       "INFO",
		"title":      "Розыгрыш запущен",
		"message":    "Ваш розыгрыш опубликован в сообществе",
		"created_at": "2026-08-01T10:00:00Z",
	}
}

func TestNotificationAPI_CreateAndGet(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/notifications", notificationPayload(1))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/v1/notifications/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got dto.NotificationResponse
	decodeBody(t, w, &got)
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "INFO", got.Type)
	assert.False(t, got.IsRead)
}

func TestNotificationAPI_Create_InvalidType(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	payload := notificationPayload(1)
	payload["type"] = "SPAM"

	w := doJSON(t, router, http.MethodPost, "/api/v1/notifications", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "type")
}

func TestNotificationAPI_NonIntegerID(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/notifications/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationAPI_MarkRead(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/notifications", notificationPayload(1))

	w := doJSON(t, router, http.MethodPut, "/api/v1/notifications/1/read", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "ok", body["status"])

	var got dto.NotificationResponse
	w = doJSON(t, router, http.MethodGet, "/api/v1/notifications/1", nil)
	decodeBody(t, w, &got)
	assert.True(t, got.IsRead)

	w = doJSON(t, router, http.MethodPut, "/api/v1/notifications/999/read", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificationAPI_ListUnread(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/notifications", notificationPayload(1))
	doJSON(t, router, http.MethodPost, "/api/v1/notifications", notificationPayload(2))
	doJSON(t, router, http.MethodPut, "/api/v1/notifications/1/read", nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/notifications?unread_only=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.NotificationListResponse
	decodeBody(t, w, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, 2, list.Notifications[0].ID)
}

func TestNotificationAPI_Settings(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	// Настройки есть у любого пользователя, дефолты без записи
	w := doJSON(t, router, http.MethodGet, "/api/v1/notification-settings/100", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var settings dto.NotificationSettingsResponse
	decodeBody(t, w, &settings)
	assert.True(t, settings.Sound)
	assert.True(t, settings.WinNotify)

	w = doJSON(t, router, http.MethodPut, "/api/v1/notification-settings/100", gin.H{
		"sound": false,
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &settings)
	assert.False(t, settings.Sound)
	assert.True(t, settings.WinNotify)

	w = doJSON(t, router, http.MethodGet, "/api/v1/notification-settings/100", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &settings)
	assert.False(t, settings.Sound)
}
