package services

import (
	"vk_randomizer_backend/internal/models"
	"vk_randomizer_backend/internal/repositories"
	"vk_randomizer_backend/internal/services/dto"
	"vk_randomizer_backend/pkg/apperrors"
)

type NotificationCardService interface {
	Create(req *dto.CreateNotificationCardRequest) (*dto.NotificationCardPayload, error)
	List() (*dto.NotificationCardListResponse, error)
	Get(id int) (*dto.NotificationCardPayload, error)
	Update(id int, payload *dto.NotificationCardPayload) (*dto.NotificationCardPayload, error)
	Delete(id int) error
}

type notificationCardService struct {
	cardRepo repositories.NotificationCardRepository
}

func NewNotificationCardService(cardRepo repositories.NotificationCardRepository) NotificationCardService {
	return &notificationCardService{cardRepo: cardRepo}
}

func (s *notificationCardService) Create(req *dto.CreateNotificationCardRequest) (*dto.NotificationCardPayload, error) {
	card, err := cardModelFromPayload(req.ID, &req.Payload)
	if err != nil {
		return nil, err
	}

	if err := s.cardRepo.Create(card); err != nil {
		if err == repositories.ErrNotificationCardAlreadyExists {
			return nil, apperrors.ErrAlreadyExists(err, "notification_card", "Notification card with this id already exists")
		}
		return nil, apperrors.ErrDatabase(err, "notification_card")
	}

	return cardPayloadFromModel(card), nil
}

func (s *notificationCardService) List() (*dto.NotificationCardListResponse, error) {
	cards, err := s.cardRepo.FindAll()
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "notification_card")
	}

	items := make([]dto.NotificationCardPayload, 0, len(cards))
	for i := range cards {
		items = append(items, *cardPayloadFromModel(&cards[i]))
	}
	return &dto.NotificationCardListResponse{Notifications: items}, nil
}

func (s *notificationCardService) Get(id int) (*dto.NotificationCardPayload, error) {
	card, err := s.cardRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrNotificationCardNotFound {
			return nil, apperrors.ErrNotFound(err, "notification_card", "Notification card not found")
		}
		return nil, apperrors.ErrDatabase(err, "notification_card")
	}
	return cardPayloadFromModel(card), nil
}

// Update полностью заменяет полезную нагрузку карточки: варианты
// взаимоисключающие, сливать поля разных вариантов бессмысленно.
func (s *notificationCardService) Update(id int, payload *dto.NotificationCardPayload) (*dto.NotificationCardPayload, error) {
	if _, err := s.cardRepo.FindByID(id); err != nil {
		if err == repositories.ErrNotificationCardNotFound {
			return nil, apperrors.ErrNotFound(err, "notification_card", "Notification card not found")
		}
		return nil, apperrors.ErrDatabase(err, "notification_card")
	}

	card, err := cardModelFromPayload(id, payload)
	if err != nil {
		return nil, err
	}

	if err := s.cardRepo.Save(card); err != nil {
		return nil, apperrors.ErrDatabase(err, "notification_card")
	}
	return cardPayloadFromModel(card), nil
}

func (s *notificationCardService) Delete(id int) error {
	if err := s.cardRepo.Delete(id); err != nil {
		if err == repositories.ErrNotificationCardNotFound {
			return apperrors.ErrNotFound(err, "notification_card", "Notification card not found")
		}
		return apperrors.ErrDatabase(err, "notification_card")
	}
	return nil
}

// cardModelFromPayload переводит размеченное объединение в строку таблицы.
// Заполняются только колонки активного варианта.
func cardModelFromPayload(id int, payload *dto.NotificationCardPayload) (*models.NotificationCard, error) {
	switch {
	case payload.Completed != nil:
		v := payload.Completed
		return &models.NotificationCard{
			ID:                id,
			Type:              models.NotificationCardCompleted,
			RaffleID:          &v.RaffleID,
			ParticipantsCount: &v.ParticipantsCount,
			Winners:           toJSONList(v.Winners),
			ReasonEnd:         &v.ReasonEnd,
			New:               v.New,
		}, nil
	case payload.Warning != nil:
		v := payload.Warning
		return &models.NotificationCard{
			ID:                 id,
			Type:               models.NotificationCardWarning,
			WarningTitle:       &v.WarningTitle,
			WarningDescription: toJSONList(v.WarningDescription),
			New:                v.New,
		}, nil
	case payload.Error != nil:
		v := payload.Error
		return &models.NotificationCard{
			ID:               id,
			Type:             models.NotificationCardError,
			ErrorTitle:       &v.ErrorTitle,
			ErrorDescription: &v.ErrorDescription,
			New:              v.New,
		}, nil
	}
	return nil, apperrors.ValidationError(map[string]string{
		"type": "Must be one of: completed, warning, error",
	})
}

// cardPayloadFromModel восстанавливает объединение из строки таблицы
func cardPayloadFromModel(card *models.NotificationCard) *dto.NotificationCardPayload {
	switch card.Type {
	case models.NotificationCardCompleted:
		raffleID := 0
		if card.RaffleID != nil {
			raffleID = *card.RaffleID
		}
		participants := 0
		if card.ParticipantsCount != nil {
			participants = *card.ParticipantsCount
		}
		reason := ""
		if card.ReasonEnd != nil {
			reason = *card.ReasonEnd
		}
		return &dto.NotificationCardPayload{Completed: &dto.CompletedNotificationCard{
			Type:              "completed",
			RaffleID:          raffleID,
			ParticipantsCount: participants,
			Winners:           fromJSONList(card.Winners),
			ReasonEnd:         reason,
			New:               card.New,
		}}
	case models.NotificationCardWarning:
		title := ""
		if card.WarningTitle != nil {
			title = *card.WarningTitle
		}
		return &dto.NotificationCardPayload{Warning: &dto.WarningNotificationCard{
			Type:               "warning",
			WarningTitle:       title,
			WarningDescription: fromJSONList(card.WarningDescription),
			New:                card.New,
		}}
	default:
		title := ""
		if card.ErrorTitle != nil {
			title = *card.ErrorTitle
		}
		description := ""
		if card.ErrorDescription != nil {
			description = *card.ErrorDescription
		}
		return &dto.NotificationCardPayload{Error: &dto.ErrorNotificationCard{
			Type:             "error",
			ErrorTitle:       title,
			ErrorDescription: description,
			New:              card.New,
		}}
	}
}
