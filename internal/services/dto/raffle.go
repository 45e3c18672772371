package dto

import "time"

// CreateRaffleRequest - создание розыгрыша. Статус и счетчики клиент
// передать не может: статус всегда форсируется в draft.
type CreateRaffleRequest struct {
	VkUserID    string   `json:"vk_user_id" validate:"required"`
	Name        string   `json:"name" validate:"required,max=200"`
	CommunityID string   `json:"community_id" validate:"required"`
	ContestText string   `json:"contest_text" validate:"required"`
	Photos      []string `json:"photos" validate:"max=5"`

	// Обязательные условия участия
	RequireCommunitySubscription *bool    `json:"require_community_subscription"`
	RequireTelegramSubscription  bool     `json:"require_telegram_subscription"`
	TelegramChannel              *string  `json:"telegram_channel"`
	RequiredCommunities          []string `json:"required_communities" validate:"required"`
	PartnerTags                  []string `json:"partner_tags"`

	// Основные параметры
	WinnersCount          int      `json:"winners_count" validate:"required,min=1,max=100"`
	BlacklistParticipants []string `json:"blacklist_participants"`

	// Условия завершения
	StartDate       DateTime `json:"start_date" validate:"required"`
	EndDate         DateTime `json:"end_date" validate:"required"`
	MaxParticipants *int     `json:"max_participants" validate:"omitempty,min=1"`

	// Дополнительные настройки
	PublishResults        *bool `json:"publish_results"`
	HideParticipantsCount bool  `json:"hide_participants_count"`
	ExcludeMe             bool  `json:"exclude_me"`
	ExcludeAdmins         bool  `json:"exclude_admins"`
}

// UpdateRaffleRequest - обновление розыгрыша. Применяются только
// переданные поля, отсутствующие сохраняют прежние значения
// (семантика PUT и PATCH совпадает, см. DESIGN.md).
type UpdateRaffleRequest struct {
	VkUserID    *string   `json:"vk_user_id"`
	Name        *string   `json:"name" validate:"omitempty,max=200"`
	CommunityID *string   `json:"community_id"`
	ContestText *string   `json:"contest_text"`
	Photos      *[]string `json:"photos" validate:"omitempty,max=5"`

	RequireCommunitySubscription *bool     `json:"require_community_subscription"`
	RequireTelegramSubscription  *bool     `json:"require_telegram_subscription"`
	TelegramChannel              *string   `json:"telegram_channel"`
	RequiredCommunities          *[]string `json:"required_communities"`
	PartnerTags                  *[]string `json:"partner_tags"`

	WinnersCount          *int      `json:"winners_count" validate:"omitempty,min=1,max=100"`
	BlacklistParticipants *[]string `json:"blacklist_participants"`

	StartDate       *DateTime `json:"start_date"`
	EndDate         *DateTime `json:"end_date"`
	MaxParticipants *int      `json:"max_participants" validate:"omitempty,min=1"`

	PublishResults        *bool `json:"publish_results"`
	HideParticipantsCount *bool `json:"hide_participants_count"`
	ExcludeMe             *bool `json:"exclude_me"`
	ExcludeAdmins         *bool `json:"exclude_admins"`
}

// ChangeRaffleStatusRequest - смена статуса розыгрыша
type ChangeRaffleStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft active paused completed cancelled"`
}

type RaffleResponse struct {
	ID          string   `json:"id"`
	VkUserID    string   `json:"vk_user_id"`
	Name        string   `json:"name"`
	CommunityID string   `json:"community_id"`
	ContestText string   `json:"contest_text"`
	Photos      []string `json:"photos"`

	RequireCommunitySubscription bool     `json:"require_community_subscription"`
	RequireTelegramSubscription  bool     `json:"require_telegram_subscription"`
	TelegramChannel              *string  `json:"telegram_channel"`
	RequiredCommunities          []string `json:"required_communities"`
	PartnerTags                  []string `json:"partner_tags"`

	WinnersCount          int      `json:"winners_count"`
	BlacklistParticipants []string `json:"blacklist_participants"`

	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	MaxParticipants *int      `json:"max_participants"`

	PublishResults        bool `json:"publish_results"`
	HideParticipantsCount bool `json:"hide_participants_count"`
	ExcludeMe             bool `json:"exclude_me"`
	ExcludeAdmins         bool `json:"exclude_admins"`

	Status            string    `json:"status"`
	ParticipantsCount int       `json:"participants_count"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type RaffleListResponse struct {
	Raffles []RaffleResponse `json:"raffles"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	PerPage int              `json:"per_page"`
}
