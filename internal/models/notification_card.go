package models

import "gorm.io/datatypes"

// NotificationCard - карточка уведомления для ленты мини-аппа.
// Три взаимоисключающих варианта полезной нагрузки (completed/warning/error)
// хранятся в одной таблице, заполняются только поля своего варианта.
// Наружу отдается как размеченное объединение (см. dto.NotificationCardPayload).
type NotificationCard struct {
	ID   int                  `gorm:"primaryKey;autoIncrement:false"`
	Type NotificationCardType `gorm:"type:varchar(16);not null"`

	// completed
	RaffleID          *int
	ParticipantsCount *int
	Winners           datatypes.JSON `gorm:"type:jsonb"`
	ReasonEnd         *string

	// warning
	WarningTitle       *string
	WarningDescription datatypes.JSON `gorm:"type:jsonb"` // список строк

	// error
	ErrorTitle       *string
	ErrorDescription *string

	// Общее поле
	New bool `gorm:"not null"`
}
