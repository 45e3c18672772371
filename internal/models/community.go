package models

import "time"

// Community - сообщество VK, которым управляет пользователь мини-аппа.
// MembersCount и RaffleCount - свободный текст ("522K", "8"), как их
// отдает фронт VK, без числовой интерпретации.
type Community struct {
	ID           string          `gorm:"primaryKey"`
	VkUserID     string          `gorm:"index"`
	Name         string          `gorm:"not null"`
	Nickname     string          `gorm:"uniqueIndex;not null"`
	MembersCount string
	RaffleCount  string
	AdminType    AdminRole       `gorm:"type:varchar(16);not null"`
	AvatarURL    string
	Status       CommunityStatus `gorm:"type:varchar(8);not null"`
	ButtonDesc   string          // аннотация "Последнее изменение: ..."
	StateText    string
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime"`
}
