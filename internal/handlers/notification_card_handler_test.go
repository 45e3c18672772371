package handlers_test

import (
	"net/http"
	"testing"

	"vk_randomizer_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationCardAPI_CRUD(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/notification-cards", gin.H{
		"id":                38289,
		"type":              "completed",
		"raffleId":          38289,
		"participantsCount": 150,
		"winners":           []string{"593IF", "REOOJ", "DOXO"},
		"reasonEnd":         "По времени",
		"new":               true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.NotificationCardResponse
	decodeBody(t, w, &resp)
	require.NotNil(t, resp.Notification.Completed)
	assert.Equal(t, 38289, resp.Notification.Completed.RaffleID)

	w = doJSON(t, router, http.MethodGet, "/api/v1/notification-cards/38289", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Обновление заменяет вариант целиком
	w = doJSON(t, router, http.MethodPut, "/api/v1/notification-cards/38289", gin.H{
		"type":             "error",
		"errorTitle":       "Ошибка запуска",
		"errorDescription": "Сообщество недоступно",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var replaced dto.NotificationCardResponse
	decodeBody(t, w, &replaced)
	assert.Nil(t, replaced.Notification.Completed)
	require.NotNil(t, replaced.Notification.Error)

	w = doJSON(t, router, http.MethodGet, "/api/v1/notification-cards", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.NotificationCardListResponse
	decodeBody(t, w, &list)
	assert.Len(t, list.Notifications, 1)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/notification-cards/38289", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/notification-cards/38289", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificationCardAPI_UnknownTypeRejected(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/notification-cards", gin.H{
		"id":   1,
		"type": "celebration",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
