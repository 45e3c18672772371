package services

import (
	"net/http"
	"testing"

	"vk_randomizer_backend/internal/repositories"
	"vk_randomizer_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationCardService(t *testing.T) NotificationCardService {
	t.Helper()
	return NewNotificationCardService(repositories.NewNotificationCardRepository(newTestDB(t)))
}

func completedCardRequest(id int) *dto.CreateNotificationCardRequest {
	return &dto.CreateNotificationCardRequest{
		ID: id,
		Payload: dto.NotificationCardPayload{
			Completed: &dto.CompletedNotificationCard{
				Type:              "completed",
				RaffleID:          38289,
				ParticipantsCount: 150,
				Winners:           []string{"593IF", "REOOJ", "DOXO"},
				ReasonEnd:         "По времени",
				New:               true,
			},
		},
	}
}

func TestNotificationCardService_Create_RoundTripsVariants(t *testing.T) {
	t.Parallel()
	svc := newNotificationCardService(t)

	created, err := svc.Create(completedCardRequest(1))
	require.NoError(t, err)
	require.NotNil(t, created.Completed)
	assert.Equal(t, "completed", created.Kind())

	got, err := svc.Get(1)
	require.NoError(t, err)
	require.NotNil(t, got.Completed)
	assert.Equal(t, 38289, got.Completed.RaffleID)
	assert.Equal(t, 150, got.Completed.ParticipantsCount)
	assert.Equal(t, []string{"593IF", "REOOJ", "DOXO"}, got.Completed.Winners)
	assert.Equal(t, "По времени", got.Completed.ReasonEnd)
	assert.True(t, got.Completed.New)
	assert.Nil(t, got.Warning)
	assert.Nil(t, got.Error)
}

func TestNotificationCardService_Create_WarningVariant(t *testing.T) {
	t.Parallel()
	svc := newNotificationCardService(t)

	_, err := svc.Create(&dto.CreateNotificationCardRequest{
		ID: 2,
		Payload: dto.NotificationCardPayload{
			Warning: &dto.WarningNotificationCard{
				Type:               "warning",
				WarningTitle:       "Розыгрыш приостановлен",
				WarningDescription: []string{"Сообщество отключено", "Проверьте права"},
			},
		},
	})
	require.NoError(t, err)

	got, err := svc.Get(2)
	require.NoError(t, err)
	require.NotNil(t, got.Warning)
	assert.Equal(t, "Розыгрыш приостановлен", got.Warning.WarningTitle)
	assert.Len(t, got.Warning.WarningDescription, 2)
}

func TestNotificationCardService_Create_ViewedCardStaysViewed(t *testing.T) {
	t.Parallel()
	svc := newNotificationCardService(t)

	// Просмотренная карточка: явный new=false должен дойти до хранилища
	_, err := svc.Create(&dto.CreateNotificationCardRequest{
		ID: 7,
		Payload: dto.NotificationCardPayload{
			Error: &dto.ErrorNotificationCard{
				Type:             "error",
				ErrorTitle:       "Ошибка запуска",
				ErrorDescription: "Сообщество недоступно",
				New:              false,
			},
		},
	})
	require.NoError(t, err)

	got, err := svc.Get(7)
	require.NoError(t, err)
	require.NotNil(t, got.Error)
	assert.False(t, got.Error.New)
}

func TestNotificationCardService_Create_EmptyPayloadRejected(t *testing.T) {
	t.Parallel()
	svc := newNotificationCardService(t)

	_, err := svc.Create(&dto.CreateNotificationCardRequest{ID: 1})
	appErr := requireAppError(t, err, http.StatusUnprocessableEntity)

	details, ok := appErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "type")
}

func TestNotificationCardService_Create_DuplicateID(t *testing.T) {
	t.Parallel()
	svc := newNotificationCardService(t)

	_, err := svc.Create(completedCardRequest(1))
	require.NoError(t, err)

	_, err = svc.Create(completedCardRequest(1))
	requireAppError(t, err, http.StatusBadRequest)
}

func TestNotificationCardService_Update_ReplacesVariant(t *testing.T) {
	t.Parallel()
	svc := newNotificationCardService(t)

	_, err := svc.Create(completedCardRequest(1))
	require.NoError(t, err)

	// Обновление меняет вариант целиком: completed -> error
	updated, err := svc.Update(1, &dto.NotificationCardPayload{
		Error: &dto.ErrorNotificationCard{
			Type:             "error",
			ErrorTitle:       "Ошибка запуска",
			ErrorDescription: "Сообщество недоступно",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "error", updated.Kind())

	got, err := svc.Get(1)
	require.NoError(t, err)
	require.NotNil(t, got.Error)
	assert.Nil(t, got.Completed)
	assert.Equal(t, "Ошибка запуска", got.Error.ErrorTitle)
}

func TestNotificationCardService_Update_NotFound(t *testing.T) {
	t.Parallel()
	svc := newNotificationCardService(t)

	_, err := svc.Update(999, &completedCardRequest(999).Payload)
	requireAppError(t, err, http.StatusNotFound)
}

func TestNotificationCardService_ListAndDelete(t *testing.T) {
	t.Parallel()
	svc := newNotificationCardService(t)

	_, err := svc.Create(completedCardRequest(1))
	require.NoError(t, err)
	_, err = svc.Create(completedCardRequest(2))
	require.NoError(t, err)

	list, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, list.Notifications, 2)

	require.NoError(t, svc.Delete(1))

	_, err = svc.Get(1)
	requireAppError(t, err, http.StatusNotFound)

	err = svc.Delete(1)
	requireAppError(t, err, http.StatusNotFound)
}
