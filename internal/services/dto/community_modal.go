package dto

import (
	"encoding/json"
	"fmt"

	"vk_randomizer_backend/internal/models"
)

// Модальные окна сообществ - размеченное объединение select/permission/success.
// Хранятся целиком в памяти (kvstore), поэтому dto-тип одновременно
// является хранимым представлением.

type SelectModal struct {
	ID          string   `json:"id" validate:"required"`
	Type        string   `json:"type"` // "select"
	Placeholder string   `json:"placeholder"`
	Options     []string `json:"options"`
}

type Subscriber struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type PermissionModal struct {
	ID              string       `json:"id" validate:"required"`
	Type            string       `json:"type"` // "permission"
	CommunityName   string       `json:"communityName"`
	CommunityAvatar string       `json:"communityAvatar"`
	Subscribers     []Subscriber `json:"subscribers"`
}

type SuccessModal struct {
	ID              string `json:"id" validate:"required"`
	Type            string `json:"type"` // "success"
	CommunityName   string `json:"communityName"`
	CommunityAvatar string `json:"communityAvatar"`
}

// CommunityModal - объединение вариантов. Заполнен ровно один указатель.
type CommunityModal struct {
	Select     *SelectModal
	Permission *PermissionModal
	Success    *SuccessModal
}

// ModalID возвращает идентификатор активного варианта
func (m CommunityModal) ModalID() string {
	switch {
	case m.Select != nil:
		return m.Select.ID
	case m.Permission != nil:
		return m.Permission.ID
	case m.Success != nil:
		return m.Success.ID
	}
	return ""
}

// Kind возвращает значение дискриминанта
func (m CommunityModal) Kind() string {
	switch {
	case m.Select != nil:
		return string(models.ModalTypeSelect)
	case m.Permission != nil:
		return string(models.ModalTypePermission)
	case m.Success != nil:
		return string(models.ModalTypeSuccess)
	}
	return ""
}

func (m CommunityModal) MarshalJSON() ([]byte, error) {
	switch {
	case m.Select != nil:
		return json.Marshal(m.Select)
	case m.Permission != nil:
		return json.Marshal(m.Permission)
	case m.Success != nil:
		return json.Marshal(m.Success)
	}
	return nil, fmt.Errorf("community modal: empty payload")
}

func (m *CommunityModal) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch models.ModalType(probe.Type) {
	case models.ModalTypeSelect:
		var v SelectModal
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		m.Select = &v
	case models.ModalTypePermission:
		var v PermissionModal
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		m.Permission = &v
	case models.ModalTypeSuccess:
		var v SuccessModal
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		m.Success = &v
	default:
		return fmt.Errorf("community modal: unknown type %q", probe.Type)
	}
	return nil
}

type CommunityModalResponse struct {
	Modal CommunityModal `json:"modal"`
}

type CommunityModalListResponse struct {
	Modals []CommunityModal `json:"modals"`
}
