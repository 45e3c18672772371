package models

type RaffleStatus string
type AdminRole string
type CommunityStatus string
type NotificationType string
type NotificationCardType string
type ModalType string

const (
	RaffleStatusDraft     RaffleStatus = "draft"
	RaffleStatusActive    RaffleStatus = "active"
	RaffleStatusPaused    RaffleStatus = "paused"
	RaffleStatusCompleted RaffleStatus = "completed"
	RaffleStatusCancelled RaffleStatus = "cancelled"

	AdminRoleOwner      AdminRole = "owner"
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleEditor     AdminRole = "editor"
	AdminRoleModerator  AdminRole = "moderator"
	AdminRoleMember     AdminRole = "member"
	AdminRoleAdvertiser AdminRole = "advertiser"

	// Индикатор состояния подключенного сообщества
	CommunityStatusGreen  CommunityStatus = "green"
	CommunityStatusYellow CommunityStatus = "yellow"
	CommunityStatusRed    CommunityStatus = "red"

	NotificationTypeInfo    NotificationType = "INFO"
	NotificationTypeWarning NotificationType = "WARNING"
	NotificationTypeError   NotificationType = "ERROR"
	NotificationTypeSuccess NotificationType = "SUCCESS"

	// Карточки уведомлений - отдельное семейство со своими типами
	NotificationCardCompleted NotificationCardType = "completed"
	NotificationCardWarning   NotificationCardType = "warning"
	NotificationCardError     NotificationCardType = "error"

	ModalTypeSelect     ModalType = "select"
	ModalTypePermission ModalType = "permission"
	ModalTypeSuccess    ModalType = "success"
)

// IsValid проверяет, что статус розыгрыша входит в допустимое множество
func (s RaffleStatus) IsValid() bool {
	switch s {
	case RaffleStatusDraft, RaffleStatusActive, RaffleStatusPaused,
		RaffleStatusCompleted, RaffleStatusCancelled:
		return true
	}
	return false
}
