package models

import "time"

// Notification - обычное уведомление с заголовком и текстом.
// Идентификатор числовой и приходит от клиента при создании.
type Notification struct {
	ID        int              `gorm:"primaryKey;autoIncrement:false"`
	Type      NotificationType `gorm:"type:varchar(16);not null"`
	Title     string           `gorm:"not null"`
	Message   string           `gorm:"not null"`
	IsRead    bool             `gorm:"not null"`
	CreatedAt time.Time
}

// UserNotificationSettings - настройки уведомлений пользователя,
// одна строка на vk_user_id. Создается лениво при первой записи,
// чтение без строки возвращает значения по умолчанию.
// Без default на колонках: false - нулевое значение, GORM выкинул бы
// его из INSERT и схема восстановила бы true вместо явного false.
type UserNotificationSettings struct {
	UserID       string     `gorm:"primaryKey"`
	WinNotify    bool       `gorm:"not null"`
	StartNotify  bool       `gorm:"not null"`
	FinishNotify bool       `gorm:"not null"`
	WidgetNotify bool       `gorm:"not null"`
	Banner       bool       `gorm:"not null"`
	Sound        bool       `gorm:"not null"`
	DndUntil     *time.Time
}

// DefaultNotificationSettings возвращает настройки по умолчанию для пользователя
func DefaultNotificationSettings(userID string) *UserNotificationSettings {
	return &UserNotificationSettings{
		UserID:       userID,
		WinNotify:    true,
		StartNotify:  true,
		FinishNotify: true,
		WidgetNotify: true,
		Banner:       true,
		Sound:        true,
	}
}
