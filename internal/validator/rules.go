package validator

import (
	"log"

	"vk_randomizer_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует доменные правила валидации.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Невозможность зарегистрировать правило - ошибка конфигурации,
			// приложение не должно запускаться.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-raffle-status", validateRaffleStatus)
	mustRegister("is-admin-role", validateAdminRole)
	mustRegister("is-community-status", validateCommunityStatus)
	mustRegister("is-notification-type", validateNotificationType)
}

func validateRaffleStatus(fl validator.FieldLevel) bool {
	return models.RaffleStatus(fl.Field().String()).IsValid()
}

func validateAdminRole(fl validator.FieldLevel) bool {
	switch models.AdminRole(fl.Field().String()) {
	case models.AdminRoleOwner, models.AdminRoleAdmin, models.AdminRoleEditor,
		models.AdminRoleModerator, models.AdminRoleMember, models.AdminRoleAdvertiser:
		return true
	}
	return false
}

func validateCommunityStatus(fl validator.FieldLevel) bool {
	switch models.CommunityStatus(fl.Field().String()) {
	case models.CommunityStatusGreen, models.CommunityStatusYellow, models.CommunityStatusRed:
		return true
	}
	return false
}

func validateNotificationType(fl validator.FieldLevel) bool {
	switch models.NotificationType(fl.Field().String()) {
	case models.NotificationTypeInfo, models.NotificationTypeWarning,
		models.NotificationTypeError, models.NotificationTypeSuccess:
		return true
	}
	return false
}
