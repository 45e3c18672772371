package services

import (
	"net/http"
	"testing"
	"time"

	"vk_randomizer_backend/internal/models"
	"vk_randomizer_backend/internal/repositories"
	"vk_randomizer_backend/internal/services/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRaffleService(t *testing.T) RaffleService {
	t.Helper()
	return NewRaffleService(repositories.NewRaffleRepository(newTestDB(t)))
}

func TestRaffleService_Create(t *testing.T) {
	t.Parallel()
	svc := newRaffleService(t)

	req := validRaffleRequest()
	created, err := svc.Create(req)
	require.NoError(t, err)

	// Статус форсируется в draft, счетчик участников обнуляется
	assert.Equal(t, "draft", created.Status)
	assert.Equal(t, 0, created.ParticipantsCount)

	// Идентификатор генерирует сервер
	_, err = uuid.Parse(created.ID)
	assert.NoError(t, err)

	// Не переданные флаги получают значения по умолчанию
	assert.True(t, created.RequireCommunitySubscription)
	assert.True(t, created.PublishResults)
	assert.False(t, created.RequireTelegramSubscription)

	assert.Equal(t, req.Name, created.Name)
	assert.Equal(t, req.Photos, created.Photos)
	assert.Equal(t, req.RequiredCommunities, created.RequiredCommunities)
}

func TestRaffleService_Create_ExplicitFalseFlags(t *testing.T) {
	t.Parallel()
	svc := newRaffleService(t)

	req := validRaffleRequest()
	req.RequireCommunitySubscription = boolPtr(false)
	req.PublishResults = boolPtr(false)

	created, err := svc.Create(req)
	require.NoError(t, err)

	// Явный false отличим от "не передано"
	assert.False(t, created.RequireCommunitySubscription)
	assert.False(t, created.PublishResults)
}

func TestRaffleService_Create_EndDateNotAfterStart(t *testing.T) {
	t.Parallel()
	svc := newRaffleService(t)

	req := validRaffleRequest()
	req.EndDate = req.StartDate // равные даты тоже отклоняются

	_, err := svc.Create(req)
	appErr := requireAppError(t, err, http.StatusUnprocessableEntity)

	details, ok := appErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "end_date")
}

func TestRaffleService_Create_WinnersOutOfRange(t *testing.T) {
	t.Parallel()
	svc := newRaffleService(t)

	for _, winners := range []int{0, 101} {
		req := validRaffleRequest()
		req.WinnersCount = winners

		_, err := svc.Create(req)
		requireAppError(t, err, http.StatusUnprocessableEntity)
	}
}

func TestRaffleService_Create_TooManyPhotos(t *testing.T) {
	t.Parallel()
	svc := newRaffleService(t)

	req := validRaffleRequest()
	req.Photos = []string{"1", "2", "3", "4", "5", "6"}

	_, err := svc.Create(req)
	requireAppError(t, err, http.StatusUnprocessableEntity)
}

func TestRaffleService_Get_NotFound(t *testing.T) {
	t.Parallel()
	svc := newRaffleService(t)

	_, err := svc.Get("missing")
	requireAppError(t, err, http.StatusNotFound)
}

func TestRaffleService_Update_MergesOnlyProvidedFields(t *testing.T) {
	t.Parallel()
	svc := newRaffleService(t)

	created, err := svc.Create(validRaffleRequest())
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, &dto.UpdateRaffleRequest{
		Name:         strPtr("Новое название"),
		WinnersCount: intPtr(10),
	})
	require.NoError(t, err)

	assert.Equal(t, "Новое название", updated.Name)
	assert.Equal(t, 10, updated.WinnersCount)

	// Остальные поля не тронуты
	assert.Equal(t, created.ContestText, updated.ContestText)
	assert.Equal(t, created.Photos, updated.Photos)
	assert.Equal(t, created.StartDate.Unix(), updated.StartDate.Unix())
	assert.Equal(t, created.Status, updated.Status)
}

func TestRaffleService_Update_InvalidDatePairRejectedWithoutMutation(t *testing.T) {
	t.Parallel()
	svc := newRaffleService(t)

	created, err := svc.Create(validRaffleRequest())
	require.NoError(t, err)

	// Новый end_date раньше сохраненного start_date
	_, err = svc.Update(created.ID, &dto.UpdateRaffleRequest{
		Name:    strPtr("Не должно примениться"),
		EndDate: dtPtr(created.StartDate.Add(-time.Hour)),
	})
	requireAppError(t, err, http.StatusUnprocessableEntity)

	// Розыгрыш остался прежним, включая поля из отклоненного запроса
	stored, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, stored.Name)
	assert.Equal(t, created.EndDate.Unix(), stored.EndDate.Unix())
}

func TestRaffleService_Update_PhotosLimitCountsFinalState(t *testing.T) {
	t.Parallel()
	svc := newRaffleService(t)

	created, err := svc.Create(validRaffleRequest())
	require.NoError(t, err)

	_, err = svc.Update(created.ID, &dto.UpdateRaffleRequest{
		Photos: strsPtr([]string{"1", "2", "3", "4", "5", "6"}),
	})
	requireAppError(t, err, http.StatusUnprocessableEntity)
}

func TestRaffleService_ChangeStatus(t *testing.T) {
	t.Parallel()
	svc := newRaffleService(t)

	created, err := svc.Create(validRaffleRequest())
	require.NoError(t, err)

	// Переходы свободные, пока розыгрыш не завершен
	updated, err := svc.ChangeStatus(created.ID, models.RaffleStatusActive)
	require.NoError(t, err)
	assert.Equal(t, "active", updated.Status)

	updated, err = svc.ChangeStatus(created.ID, models.RaffleStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)

	// completed терминален
	_, err = svc.ChangeStatus(created.ID, models.RaffleStatusPaused)
	requireAppError(t, err, http.StatusBadRequest)

	// Повторный перевод в completed - идемпотентный no-op
	updated, err = svc.ChangeStatus(created.ID, models.RaffleStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
}

func TestRaffleService_ChangeStatus_NotFound(t *testing.T) {
	t.Parallel()
	svc := newRaffleService(t)

	_, err := svc.ChangeStatus("missing", models.RaffleStatusActive)
	requireAppError(t, err, http.StatusNotFound)
}

func TestRaffleService_List_FiltersAndPaginates(t *testing.T) {
	t.Parallel()
	svc := newRaffleService(t)

	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		req := validRaffleRequest()
		if i == 2 {
			req.CommunityID = "2"
			req.VkUserID = "200"
		}
		created, err := svc.Create(req)
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}
	_, err := svc.ChangeStatus(ids[0], models.RaffleStatusActive)
	require.NoError(t, err)

	// Фильтр по статусу
	result, err := svc.List(repositories.RaffleCriteria{Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Raffles, 1)
	assert.Equal(t, ids[0], result.Raffles[0].ID)

	// Фильтр по сообществу и пользователю
	result, err = svc.List(repositories.RaffleCriteria{CommunityID: "2", VkUserID: "200"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)

	// Пагинация: total считается по всей выборке
	result, err = svc.List(repositories.RaffleCriteria{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Total)
	assert.Len(t, result.Raffles, 1)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 2, result.PerPage)
}

func TestRaffleService_List_NormalizesPagination(t *testing.T) {
	t.Parallel()
	svc := newRaffleService(t)

	result, err := svc.List(repositories.RaffleCriteria{Page: 0, PerPage: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 100, result.PerPage)
	assert.NotNil(t, result.Raffles)
}

func TestRaffleService_Delete(t *testing.T) {
	t.Parallel()
	svc := newRaffleService(t)

	created, err := svc.Create(validRaffleRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.Get(created.ID)
	requireAppError(t, err, http.StatusNotFound)

	// Повторное удаление - 404
	err = svc.Delete(created.ID)
	requireAppError(t, err, http.StatusNotFound)
}
