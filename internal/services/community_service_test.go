package services

import (
	"net/http"
	"testing"

	"vk_randomizer_backend/internal/repositories"
	"vk_randomizer_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommunityService(t *testing.T) CommunityService {
	t.Helper()
	return NewCommunityService(repositories.NewCommunityRepository(newTestDB(t)))
}

func TestCommunityService_CreateAndGet(t *testing.T) {
	t.Parallel()
	svc := newCommunityService(t)

	req := validCommunityRequest()
	created, err := svc.Create(req)
	require.NoError(t, err)
	assert.Equal(t, req.ID, created.ID)
	assert.Equal(t, req.Nickname, created.Nickname)
	assert.Equal(t, "owner", created.AdminType)
	assert.Equal(t, "green", created.Status)

	got, err := svc.Get(req.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCommunityService_Create_DuplicateIDOrNickname(t *testing.T) {
	t.Parallel()
	svc := newCommunityService(t)

	_, err := svc.Create(validCommunityRequest())
	require.NoError(t, err)

	// Дубликат id
	_, err = svc.Create(validCommunityRequest())
	requireAppError(t, err, http.StatusBadRequest)

	// Другой id, но занятый никнейм
	dup := validCommunityRequest()
	dup.ID = "2"
	_, err = svc.Create(dup)
	requireAppError(t, err, http.StatusBadRequest)
}

func TestCommunityService_List_FiltersByUser(t *testing.T) {
	t.Parallel()
	svc := newCommunityService(t)

	first := validCommunityRequest()
	_, err := svc.Create(first)
	require.NoError(t, err)

	second := validCommunityRequest()
	second.ID = "2"
	second.Nickname = "mosnews24"
	second.VkUserID = "200"
	_, err = svc.Create(second)
	require.NoError(t, err)

	// Без фильтра возвращаются все
	all, err := svc.List("")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	filtered, err := svc.List("200")
	require.NoError(t, err)
	require.Equal(t, 1, filtered.Total)
	assert.Equal(t, "mosnews24", filtered.Communities[0].Nickname)
}

func TestCommunityService_Update_MergesOnlyProvidedFields(t *testing.T) {
	t.Parallel()
	svc := newCommunityService(t)

	created, err := svc.Create(validCommunityRequest())
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, &dto.UpdateCommunityRequest{
		Status:    strPtr("red"),
		StateText: strPtr("Ошибка подключения"),
	})
	require.NoError(t, err)

	assert.Equal(t, "red", updated.Status)
	assert.Equal(t, "Ошибка подключения", updated.StateText)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.AdminType, updated.AdminType)
}

func TestCommunityService_Update_NotFound(t *testing.T) {
	t.Parallel()
	svc := newCommunityService(t)

	_, err := svc.Update("missing", &dto.UpdateCommunityRequest{Name: strPtr("x")})
	requireAppError(t, err, http.StatusNotFound)
}

func TestCommunityService_Delete(t *testing.T) {
	t.Parallel()
	svc := newCommunityService(t)

	created, err := svc.Create(validCommunityRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	err = svc.Delete(created.ID)
	requireAppError(t, err, http.StatusNotFound)
}
