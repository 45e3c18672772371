package services

import (
	"time"

	"vk_randomizer_backend/internal/models"
	"vk_randomizer_backend/internal/repositories"
	"vk_randomizer_backend/internal/services/dto"
	"vk_randomizer_backend/pkg/apperrors"
)

type NotificationService interface {
	Create(req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error)
	List(criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error)
	Get(id int) (*dto.NotificationResponse, error)
	Update(id int, req *dto.UpdateNotificationRequest) (*dto.NotificationResponse, error)
	MarkAsRead(id int) error
	Delete(id int) error

	GetSettings(userID string) (*dto.NotificationSettingsResponse, error)
	UpdateSettings(userID string, req *dto.NotificationSettingsRequest) (*dto.NotificationSettingsResponse, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) Create(req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	createdAt := time.Now()
	if req.CreatedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.CreatedAt)
		if err != nil {
			return nil, apperrors.ValidationError(map[string]string{
				"created_at": "Must be an RFC3339 timestamp",
			})
		}
		createdAt = parsed
	}

	notification := &models.Notification{
		ID:        req.ID,
		Type:      models.NotificationType(req.Type),
		Title:     req.Title,
		Message:   req.Message,
		IsRead:    req.IsRead,
		CreatedAt: createdAt,
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		if err == repositories.ErrNotificationAlreadyExists {
			return nil, apperrors.ErrAlreadyExists(err, "notification", "Notification with this id already exists")
		}
		return nil, apperrors.ErrDatabase(err, "notification")
	}

	return buildNotificationResponse(notification), nil
}

func (s *notificationService) List(criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.FindAll(criteria)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "notification")
	}

	items := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, *buildNotificationResponse(&notifications[i]))
	}
	return &dto.NotificationListResponse{Notifications: items, Total: len(items)}, nil
}

func (s *notificationService) Get(id int) (*dto.NotificationResponse, error) {
	notification, err := s.notificationRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrNotificationNotFound {
			return nil, apperrors.ErrNotFound(err, "notification", "Notification not found")
		}
		return nil, apperrors.ErrDatabase(err, "notification")
	}
	return buildNotificationResponse(notification), nil
}

func (s *notificationService) Update(id int, req *dto.UpdateNotificationRequest) (*dto.NotificationResponse, error) {
	notification, err := s.notificationRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrNotificationNotFound {
			return nil, apperrors.ErrNotFound(err, "notification", "Notification not found")
		}
		return nil, apperrors.ErrDatabase(err, "notification")
	}

	if req.Type != nil {
		notification.Type = models.NotificationType(*req.Type)
	}
	if req.Title != nil {
		notification.Title = *req.Title
	}
	if req.Message != nil {
		notification.Message = *req.Message
	}
	if req.IsRead != nil {
		notification.IsRead = *req.IsRead
	}

	if err := s.notificationRepo.Save(notification); err != nil {
		return nil, apperrors.ErrDatabase(err, "notification")
	}
	return buildNotificationResponse(notification), nil
}

func (s *notificationService) MarkAsRead(id int) error {
	if err := s.notificationRepo.MarkAsRead(id); err != nil {
		if err == repositories.ErrNotificationNotFound {
			return apperrors.ErrNotFound(err, "notification", "Notification not found")
		}
		return apperrors.ErrDatabase(err, "notification")
	}
	return nil
}

func (s *notificationService) Delete(id int) error {
	if err := s.notificationRepo.Delete(id); err != nil {
		if err == repositories.ErrNotificationNotFound {
			return apperrors.ErrNotFound(err, "notification", "Notification not found")
		}
		return apperrors.ErrDatabase(err, "notification")
	}
	return nil
}

// --- Настройки ---

// GetSettings возвращает настройки пользователя; если строки нет,
// отдаются значения по умолчанию без записи в БД.
func (s *notificationService) GetSettings(userID string) (*dto.NotificationSettingsResponse, error) {
	settings, err := s.notificationRepo.FindSettings(userID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "notification")
	}
	return buildSettingsResponse(settings), nil
}

// UpdateSettings применяет переданные переключатели поверх текущих
// (или дефолтных) настроек и лениво создает строку при первой записи.
func (s *notificationService) UpdateSettings(userID string, req *dto.NotificationSettingsRequest) (*dto.NotificationSettingsResponse, error) {
	settings, err := s.notificationRepo.FindSettings(userID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "notification")
	}

	if req.WinNotify != nil {
		settings.WinNotify = *req.WinNotify
	}
	if req.StartNotify != nil {
		settings.StartNotify = *req.StartNotify
	}
	if req.FinishNotify != nil {
		settings.FinishNotify = *req.FinishNotify
	}
	if req.WidgetNotify != nil {
		settings.WidgetNotify = *req.WidgetNotify
	}
	if req.Banner != nil {
		settings.Banner = *req.Banner
	}
	if req.Sound != nil {
		settings.Sound = *req.Sound
	}
	if req.DndUntil != nil {
		settings.DndUntil = req.DndUntil
	}

	if err := s.notificationRepo.SaveSettings(settings); err != nil {
		return nil, apperrors.ErrDatabase(err, "notification")
	}
	return buildSettingsResponse(settings), nil
}

func buildNotificationResponse(notification *models.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        notification.ID,
		Type:      string(notification.Type),
		Title:     notification.Title,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}

func buildSettingsResponse(settings *models.UserNotificationSettings) *dto.NotificationSettingsResponse {
	return &dto.NotificationSettingsResponse{
		WinNotify:    settings.WinNotify,
		StartNotify:  settings.StartNotify,
		FinishNotify: settings.FinishNotify,
		WidgetNotify: settings.WidgetNotify,
		Banner:       settings.Banner,
		Sound:        settings.Sound,
		DndUntil:     settings.DndUntil,
	}
}
