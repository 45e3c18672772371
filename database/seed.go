package database

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"vk_randomizer_backend/internal/logger"
	"vk_randomizer_backend/internal/models"
)

// SeedDemoData наполняет базу демонстрационными данными.
// Каждая запись создается только если ее еще нет, так что
// повторный запуск ничего не ломает.
func SeedDemoData(db *gorm.DB) error {
	if err := seedCommunities(db); err != nil {
		return err
	}
	if err := seedRaffles(db); err != nil {
		return err
	}
	if err := seedNotificationCards(db); err != nil {
		return err
	}
	logger.Info("Демо-данные загружены")
	return nil
}

func seedCommunities(db *gorm.DB) error {
	communities := []models.Community{
		{
			ID:           "1",
			Name:         "Техно-сообщество",
			Nickname:     "@techclub",
			MembersCount: "12 500",
			RaffleCount:  "8",
			AdminType:    models.AdminRoleOwner,
			AvatarURL:    "https://example.com/avatar.jpg",
			Status:       models.CommunityStatusGreen,
			ButtonDesc:   "Последнее изменение: 14.10 21:31 – Администратор",
			StateText:    "Активен",
		},
		{
			ID:           "2",
			Name:         "Москва 24 – Новости",
			Nickname:     "@mosnews24",
			MembersCount: "522K",
			RaffleCount:  "15",
			AdminType:    models.AdminRoleAdmin,
			AvatarURL:    "https://example.com/mosnews.jpg",
			Status:       models.CommunityStatusYellow,
			ButtonDesc:   "Последнее изменение: 15.10 14:20 – Модератор",
			StateText:    "Требует внимания",
		},
		{
			ID:           "3",
			Name:         "Казань 24 – Новости",
			Nickname:     "@kazan24",
			MembersCount: "804K",
			RaffleCount:  "12",
			AdminType:    models.AdminRoleOwner,
			AvatarURL:    "https://example.com/kazan.jpg",
			Status:       models.CommunityStatusRed,
			ButtonDesc:   "Последнее изменение: 16.10 09:15 – Администратор",
			StateText:    "Ошибка",
		},
		{
			ID:           "4",
			Name:         "Санкт-Петербург Онлайн",
			Nickname:     "@spbonline",
			MembersCount: "878K",
			RaffleCount:  "20",
			AdminType:    models.AdminRoleAdmin,
			AvatarURL:    "https://example.com/spb.jpg",
			Status:       models.CommunityStatusGreen,
			ButtonDesc:   "Последнее изменение: 17.10 16:45 – Админ",
			StateText:    "Активен",
		},
	}

	for i := range communities {
		if err := createIfAbsent(db, &models.Community{}, "id = ?", communities[i].ID, &communities[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedRaffles(db *gorm.DB) error {
	now := time.Now()
	maxKazan := 27
	maxSpb := 100

	raffles := []models.Raffle{
		{
			ID:                  "492850",
			VkUserID:            "demo",
			Name:                "Розыгрыш призов от Казань 24",
			CommunityID:         "3",
			ContestText:         "Подпишитесь на сообщество и нажмите кнопку участия.",
			Photos:              mustJSON([]string{"/photos/kazan_prize.jpg"}),
			RequiredCommunities: mustJSON([]string{"@kazan24"}),
			WinnersCount:        5,
			StartDate:           now.AddDate(0, 0, -7),
			EndDate:             now.AddDate(0, 0, 2),
			MaxParticipants:     &maxKazan,
			PublishResults:      true,
			Status:              models.RaffleStatusActive,
			ParticipantsCount:   26,
		},
		{
			ID:                  "382189",
			VkUserID:            "demo",
			Name:                "Конкурс от Москва 24",
			CommunityID:         "2",
			ContestText:         "Сделайте репост записи и оставайтесь подписанным до итогов.",
			Photos:              mustJSON([]string{"/photos/mos_prize.jpg"}),
			RequiredCommunities: mustJSON([]string{"@mosnews24"}),
			WinnersCount:        3,
			StartDate:           now.AddDate(0, 0, -3),
			EndDate:             now.AddDate(0, 0, 1),
			PublishResults:      true,
			Status:              models.RaffleStatusActive,
			ParticipantsCount:   4280,
		},
		{
			ID:                  "818394",
			VkUserID:            "demo",
			Name:                "Розыгрыш от Санкт-Петербург Онлайн",
			CommunityID:         "4",
			ContestText:         "Участвуйте и выигрывайте призы от партнеров сообщества.",
			Photos:              mustJSON([]string{"/photos/spb_prize.jpg"}),
			RequiredCommunities: mustJSON([]string{"@spbonline"}),
			WinnersCount:        10,
			StartDate:           now.AddDate(0, 0, -14),
			EndDate:             now.AddDate(0, 0, -1),
			MaxParticipants:     &maxSpb,
			PublishResults:      true,
			Status:              models.RaffleStatusCompleted,
			ParticipantsCount:   100,
		},
	}

	for i := range raffles {
		if err := createIfAbsent(db, &models.Raffle{}, "id = ?", raffles[i].ID, &raffles[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedNotificationCards(db *gorm.DB) error {
	raffle1 := 38289
	participants1 := 5920
	reason1 := "Достигнут лимит по числу участников."
	raffle2 := 38941
	participants2 := 4780
	reason2 := "Истекло время проведения розыгрыша."
	warningTitle := "Не удалось подключить виджет"
	errorTitle := "Ошибка подключения сообщества"
	errorDescription := "На сервере VK ведутся технические работы. Приносим извинения за доставленные неудобства!"

	cards := []models.NotificationCard{
		{
			ID:                38289,
			Type:              models.NotificationCardCompleted,
			RaffleID:          &raffle1,
			ParticipantsCount: &participants1,
			Winners:           mustJSON([]string{"593IF", "REOOJ", "DOXO"}),
			ReasonEnd:         &reason1,
			New:               true,
		},
		{
			ID:                38941,
			Type:              models.NotificationCardCompleted,
			RaffleID:          &raffle2,
			ParticipantsCount: &participants2,
			Winners:           mustJSON([]string{"XZ13B", "LK9FD"}),
			ReasonEnd:         &reason2,
			New:               false,
		},
		{
			ID:           1,
			Type:         models.NotificationCardWarning,
			WarningTitle: &warningTitle,
			WarningDescription: mustJSON([]string{
				`Сообщество "Казань 24 – Новости"`,
				"У пользователя недостаточно прав.",
				"Розыгрыш не запущен.",
			}),
			New: true,
		},
		{
			ID:               2,
			Type:             models.NotificationCardError,
			ErrorTitle:       &errorTitle,
			ErrorDescription: &errorDescription,
			New:              false,
		},
	}

	for i := range cards {
		if err := createIfAbsent(db, &models.NotificationCard{}, "id = ?", cards[i].ID, &cards[i]); err != nil {
			return err
		}
	}
	return nil
}

func createIfAbsent(db *gorm.DB, model interface{}, query string, id interface{}, record interface{}) error {
	var count int64
	if err := db.Model(model).Where(query, id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(record).Error
}

func mustJSON(v interface{}) datatypes.JSON {
	data, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(data)
}
