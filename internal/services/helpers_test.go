package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"vk_randomizer_backend/internal/models"
	"vk_randomizer_backend/internal/services/dto"
	"vk_randomizer_backend/pkg/apperrors"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB поднимает изолированную in-memory БД для одного теста.
// Имя берется из t.Name(), чтобы соединения пула gorm видели одну
// и ту же базу, а параллельные тесты - разные.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Raffle{},
		&models.Community{},
		&models.Notification{},
		&models.UserNotificationSettings{},
		&models.NotificationCard{},
	)
	require.NoError(t, err)

	return db
}

// requireAppError проверяет, что ошибка - AppError с ожидаемым HTTP-кодом
func requireAppError(t *testing.T, err error, httpCode int) *apperrors.AppError {
	t.Helper()
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr), "ожидался AppError, получено: %v", err)
	require.Equal(t, httpCode, appErr.HTTPCode)
	return appErr
}

func boolPtr(v bool) *bool       { return &v }
func intPtr(v int) *int          { return &v }
func strPtr(v string) *string    { return &v }
func strsPtr(v []string) *[]string { return &v }

func dtPtr(t time.Time) *dto.DateTime { return &dto.DateTime{Time: t} }

// validRaffleRequest - минимально валидный запрос на создание розыгрыша
func validRaffleRequest() *dto.CreateRaffleRequest {
	return &dto.CreateRaffleRequest{
		VkUserID:            "100",
		Name:                "Розыгрыш мерча",
		CommunityID:         "1",
		ContestText:         "Подпишись на сообщество и нажми кнопку",
		Photos:              []string{"https://example.com/photo1.jpg"},
		RequiredCommunities: []string{"techclub"},
		WinnersCount:        3,
		StartDate:           dto.DateTime{Time: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)},
		EndDate:             dto.DateTime{Time: time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)},
	}
}

func validCommunityRequest() *dto.CreateCommunityRequest {
	return &dto.CreateCommunityRequest{
		ID:           "1",
		VkUserID:     "100",
		Name:         "Техноклуб",
		Nickname:     "techclub",
		MembersCount: "522K",
		RaffleCount:  "8",
		AdminType:    "owner",
		AvatarURL:    "https://example.com/avatar.jpg",
		Status:       "green",
		ButtonDesc:   "Последнее изменение: 01.09.2026",
		StateText:    "Подключено",
	}
}
