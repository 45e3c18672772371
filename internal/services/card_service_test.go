package services

import (
	"net/http"
	"testing"
	"time"

	"vk_randomizer_backend/internal/models"
	"vk_randomizer_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newCardServiceAt собирает сервис с фиксированными часами
func newCardServiceAt(t *testing.T, now time.Time) (*cardService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return &cardService{
		raffleRepo:    repositories.NewRaffleRepository(db),
		communityRepo: repositories.NewCommunityRepository(db),
		now:           func() time.Time { return now },
	}, db
}

func seedCardFixtures(t *testing.T, db *gorm.DB, now time.Time) {
	t.Helper()

	require.NoError(t, db.Create(&models.Community{
		ID:           "2",
		VkUserID:     "100",
		Name:         "Москва 24",
		Nickname:     "mosnews24",
		MembersCount: "522K",
		AdminType:    models.AdminRoleEditor,
		Status:       models.CommunityStatusGreen,
		StateText:    "Подключено",
	}).Error)

	max := 27
	require.NoError(t, db.Create(&models.Raffle{
		ID:                "492850",
		VkUserID:          "100",
		Name:              "Розыгрыш мерча",
		CommunityID:       "2",
		ContestText:       "Участвуй",
		WinnersCount:      5,
		StartDate:         now.Add(-24 * time.Hour),
		EndDate:           now.Add(2*24*time.Hour + 9*time.Hour + 21*time.Minute),
		MaxParticipants:   &max,
		Status:            models.RaffleStatusActive,
		ParticipantsCount: 26,
	}).Error)
}

func TestCardService_GetRaffleCard(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)
	svc, db := newCardServiceAt(t, now)
	seedCardFixtures(t, db, now)

	resp, err := svc.GetRaffleCard("492850")
	require.NoError(t, err)
	card := resp.Raffle

	assert.Equal(t, "492850", card.RaffleID)
	// Имя берется из подключенного сообщества
	assert.Equal(t, "Москва 24", card.Name)
	assert.Equal(t, "Активно", card.TextRaffleState)
	assert.Equal(t, 5, card.WinnersCount)
	assert.Equal(t, "both", card.Mode)
	assert.Equal(t, "27", card.MemberCount)
	assert.Equal(t, "2Д 9Ч 21М", card.TimeLeft)
	assert.Equal(t, 96, card.Progress) // 26 из 27
	assert.Equal(t, "connected", card.StatusCommunity)
	assert.Equal(t, "green", card.StatusNestedCard)
	assert.Equal(t, "Подключено", card.StatusNestedText)
	assert.Equal(t, "mosnews24", card.Nickname)
	assert.Equal(t, "522K", card.MembersCountNested)
	assert.Equal(t, "Редактор", card.ModifiedBy)
}

func TestCardService_GetRaffleCard_WithoutCommunity(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)
	svc, db := newCardServiceAt(t, now)

	// Розыгрыш ссылается на несуществующее сообщество
	require.NoError(t, db.Create(&models.Raffle{
		ID:           "1",
		VkUserID:     "100",
		Name:         "Без сообщества",
		CommunityID:  "999",
		ContestText:  "x",
		WinnersCount: 1,
		StartDate:    now.Add(-2 * time.Hour),
		EndDate:      now.Add(2 * time.Hour),
		Status:       models.RaffleStatusActive,
	}).Error)

	resp, err := svc.GetRaffleCard("1")
	require.NoError(t, err)

	assert.Equal(t, "notConfig", resp.Raffle.StatusCommunity)
	assert.Equal(t, "Без сообщества", resp.Raffle.Name)
	assert.Equal(t, "time", resp.Raffle.Mode)
	// Прошла половина срока
	assert.Equal(t, 50, resp.Raffle.Progress)
}

func TestCardService_GetRaffleCard_NotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newCardServiceAt(t, time.Now())

	_, err := svc.GetRaffleCard("missing")
	requireAppError(t, err, http.StatusNotFound)
}

func TestCardService_GetCarouselCard(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)
	svc, db := newCardServiceAt(t, now)
	seedCardFixtures(t, db, now)

	resp, err := svc.GetCarouselCard("492850")
	require.NoError(t, err)
	card := resp.Raffle

	assert.Equal(t, "Москва 24", card.Name)
	assert.Equal(t, "active", card.Status)
	assert.Equal(t, "Активно", card.StateText)
	assert.Equal(t, "26 участников", card.Members)
	assert.Equal(t, "07.09 21:21", card.EndDate)
}

func TestCardService_GetCarouselCard_DraftPlaceholders(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)
	svc, db := newCardServiceAt(t, now)

	require.NoError(t, db.Create(&models.Raffle{
		ID:           "1",
		VkUserID:     "100",
		Name:         "Черновик",
		CommunityID:  "999",
		ContestText:  "x",
		WinnersCount: 1,
		StartDate:    now,
		EndDate:      now.Add(24 * time.Hour),
		Status:       models.RaffleStatusDraft,
	}).Error)

	resp, err := svc.GetCarouselCard("1")
	require.NoError(t, err)

	// У черновика участники и дата окончания скрыты
	assert.Equal(t, "Черновик", resp.Raffle.StateText)
	assert.Equal(t, "—", resp.Raffle.Members)
	assert.Equal(t, "—", resp.Raffle.EndDate)
}

func TestCardService_NestedCommunityCards(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)
	svc, db := newCardServiceAt(t, now)
	seedCardFixtures(t, db, now)

	list, err := svc.ListNestedCommunityCards()
	require.NoError(t, err)
	require.Len(t, list.Cards, 1)

	resp, err := svc.GetNestedCommunityCard("mosnews24")
	require.NoError(t, err)
	assert.Equal(t, "Москва 24", resp.Card.Name)
	assert.Equal(t, "green", resp.Card.Status)
	assert.Equal(t, "editor", resp.Card.AdminType)
	assert.Equal(t, "522K", resp.Card.MembersCount)

	_, err = svc.GetNestedCommunityCard("missing")
	requireAppError(t, err, http.StatusNotFound)
}

func TestRoleDisplayName(t *testing.T) {
	t.Parallel()

	cases := map[models.AdminRole]string{
		models.AdminRoleOwner:      "Владелец",
		models.AdminRoleAdmin:      "Администратор",
		models.AdminRoleEditor:     "Редактор",
		models.AdminRoleModerator:  "Модератор",
		models.AdminRoleMember:     "Участник",
		models.AdminRoleAdvertiser: "Рекламодатель",
		models.AdminRole("robot"):  "Неизвестная роль",
	}
	for role, want := range cases {
		assert.Equal(t, want, RoleDisplayName(role))
	}
}

func TestRaffleStateText(t *testing.T) {
	t.Parallel()

	cases := map[models.RaffleStatus]string{
		models.RaffleStatusDraft:     "Черновик",
		models.RaffleStatusActive:    "Активно",
		models.RaffleStatusPaused:    "Приостановлено",
		models.RaffleStatusCompleted: "Завершено",
		models.RaffleStatusCancelled: "Отменено",
	}
	for status, want := range cases {
		assert.Equal(t, want, RaffleStateText(status))
	}
}

func TestCommunityConnectionStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "connected", communityConnectionStatus(models.CommunityStatusGreen))
	assert.Equal(t, "notConfig", communityConnectionStatus(models.CommunityStatusYellow))
	assert.Equal(t, "error", communityConnectionStatus(models.CommunityStatusRed))
}

func TestFormatTimeLeft(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2Д 9Ч 21М", formatTimeLeft(2*24*time.Hour+9*time.Hour+21*time.Minute))
	assert.Equal(t, "9Ч 0М", formatTimeLeft(9*time.Hour))
	assert.Equal(t, "21М", formatTimeLeft(21*time.Minute))
	assert.Equal(t, "0М", formatTimeLeft(0))
	assert.Equal(t, "0М", formatTimeLeft(-time.Hour))
}

func TestFormatMembers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "26 участников", formatMembers(26))
	assert.Equal(t, "4 280 участников", formatMembers(4280))
	assert.Equal(t, "1 000 000 участников", formatMembers(1000000))
}
