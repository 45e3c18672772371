package models

import (
	"time"

	"gorm.io/datatypes"
)

// Raffle - розыгрыш в сообществе VK.
// Списковые поля хранятся как JSONB, идентификаторы VK - непрозрачные строки
// без ссылочной целостности.
type Raffle struct {
	ID          string         `gorm:"primaryKey"`
	VkUserID    string         `gorm:"not null;index"`
	Name        string         `gorm:"not null;index"`
	CommunityID string         `gorm:"not null;index"`
	ContestText string         `gorm:"type:text;not null"`
	Photos      datatypes.JSON `gorm:"type:jsonb"` // до 5 URL

	// Обязательные условия участия. Булевы колонки без default:
	// нулевое значение GORM не попадает в INSERT и default из схемы
	// перекрыл бы явный false, значения по умолчанию ставит сервис.
	RequireCommunitySubscription bool           `gorm:"not null"`
	RequireTelegramSubscription  bool           `gorm:"not null"`
	TelegramChannel              *string
	RequiredCommunities          datatypes.JSON `gorm:"type:jsonb"` // теги сообществ
	PartnerTags                  datatypes.JSON `gorm:"type:jsonb"`

	// Основные параметры
	WinnersCount          int            `gorm:"not null"`
	BlacklistParticipants datatypes.JSON `gorm:"type:jsonb"`

	// Условия завершения
	StartDate       time.Time `gorm:"not null;index"`
	EndDate         time.Time `gorm:"not null;index"`
	MaxParticipants *int

	// Дополнительные настройки
	PublishResults        bool `gorm:"not null"`
	HideParticipantsCount bool `gorm:"not null"`
	ExcludeMe             bool `gorm:"not null"`
	ExcludeAdmins         bool `gorm:"not null"`

	// Статус и метаданные
	Status            RaffleStatus `gorm:"type:varchar(16);not null;default:'draft';index"`
	ParticipantsCount int          `gorm:"not null;default:0"`
	CreatedAt         time.Time    `gorm:"autoCreateTime"`
	UpdatedAt         time.Time    `gorm:"autoUpdateTime"`
}
