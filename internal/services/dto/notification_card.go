package dto

import (
	"encoding/json"
	"fmt"
)

// Карточки уведомлений - размеченное объединение трех вариантов.
// Дискриминант - поле "type", разбор и сериализация происходят
// только здесь, на границе JSON.

type CompletedNotificationCard struct {
	Type              string   `json:"type"` // "completed"
	RaffleID          int      `json:"raffleId"`
	ParticipantsCount int      `json:"participantsCount"`
	Winners           []string `json:"winners"`
	ReasonEnd         string   `json:"reasonEnd"`
	New               bool     `json:"new"`
}

type WarningNotificationCard struct {
	Type               string   `json:"type"` // "warning"
	WarningTitle       string   `json:"warningTitle"`
	WarningDescription []string `json:"warningDescription"`
	New                bool     `json:"new"`
}

type ErrorNotificationCard struct {
	Type             string `json:"type"` // "error"
	ErrorTitle       string `json:"errorTitle"`
	ErrorDescription string `json:"errorDescription"`
	New              bool   `json:"new"`
}

// NotificationCardPayload - объединение вариантов карточки.
// Заполнен ровно один из указателей.
type NotificationCardPayload struct {
	Completed *CompletedNotificationCard
	Warning   *WarningNotificationCard
	Error     *ErrorNotificationCard
}

// Kind возвращает значение дискриминанта
func (p NotificationCardPayload) Kind() string {
	switch {
	case p.Completed != nil:
		return "completed"
	case p.Warning != nil:
		return "warning"
	case p.Error != nil:
		return "error"
	}
	return ""
}

func (p NotificationCardPayload) MarshalJSON() ([]byte, error) {
	switch {
	case p.Completed != nil:
		return json.Marshal(p.Completed)
	case p.Warning != nil:
		return json.Marshal(p.Warning)
	case p.Error != nil:
		return json.Marshal(p.Error)
	}
	return nil, fmt.Errorf("notification card: empty payload")
}

func (p *NotificationCardPayload) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch probe.Type {
	case "completed":
		var v CompletedNotificationCard
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		p.Completed = &v
	case "warning":
		var v WarningNotificationCard
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		p.Warning = &v
	case "error":
		var v ErrorNotificationCard
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		p.Error = &v
	default:
		return fmt.Errorf("notification card: unknown type %q", probe.Type)
	}
	return nil
}

// CreateNotificationCardRequest - создание карточки: id + полезная нагрузка
type CreateNotificationCardRequest struct {
	ID      int `json:"id" validate:"required"`
	Payload NotificationCardPayload
}

func (r *CreateNotificationCardRequest) UnmarshalJSON(data []byte) error {
	var probe struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	r.ID = probe.ID
	return json.Unmarshal(data, &r.Payload)
}

type NotificationCardResponse struct {
	Notification NotificationCardPayload `json:"notification"`
}

type NotificationCardListResponse struct {
	Notifications []NotificationCardPayload `json:"notifications"`
}
