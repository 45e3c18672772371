package dto

import "time"

// CreateNotificationRequest - создание обычного уведомления.
// Числовой идентификатор назначает клиент, дубликат отклоняется.
type CreateNotificationRequest struct {
	ID        int    `json:"id" validate:"required"`
	Type      string `json:"type" validate:"required,is-notification-type"`
	Title     string `json:"title" validate:"required,min=1,max=200"`
	Message   string `json:"message" validate:"required,min=1,max=1000"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"` // ISO-строка; пустая - время сервера
}

type UpdateNotificationRequest struct {
	Type    *string `json:"type" validate:"omitempty,is-notification-type"`
	Title   *string `json:"title" validate:"omitempty,min=1,max=200"`
	Message *string `json:"message" validate:"omitempty,min=1,max=1000"`
	IsRead  *bool   `json:"is_read"`
}

type NotificationResponse struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
}

// NotificationSettingsRequest - настройки уведомлений пользователя.
// Все переключатели опциональны: не переданные сохраняют прежние значения.
type NotificationSettingsRequest struct {
	WinNotify    *bool      `json:"win_notify"`
	StartNotify  *bool      `json:"start_notify"`
	FinishNotify *bool      `json:"finish_notify"`
	WidgetNotify *bool      `json:"widget_notify"`
	Banner       *bool      `json:"banner"`
	Sound        *bool      `json:"sound"`
	DndUntil     *time.Time `json:"dnd_until"`
}

type NotificationSettingsResponse struct {
	WinNotify    bool       `json:"win_notify"`
	StartNotify  bool       `json:"start_notify"`
	FinishNotify bool       `json:"finish_notify"`
	WidgetNotify bool       `json:"widget_notify"`
	Banner       bool       `json:"banner"`
	Sound        bool       `json:"sound"`
	DndUntil     *time.Time `json:"dnd_until"`
}
