package repositories

import (
	"errors"

	"vk_randomizer_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound      = errors.New("notification not found")
	ErrNotificationAlreadyExists = errors.New("notification already exists")
)

// Критерии поиска уведомлений
type NotificationCriteria struct {
	UnreadOnly bool   `form:"unread_only"`
	Type       string `form:"type"`
}

type NotificationRepository interface {
	// Обычные уведомления
	Create(notification *models.Notification) error
	FindByID(id int) (*models.Notification, error)
	FindAll(criteria NotificationCriteria) ([]models.Notification, error)
	Save(notification *models.Notification) error
	MarkAsRead(id int) error
	Delete(id int) error

	// Настройки уведомлений пользователя
	FindSettings(userID string) (*models.UserNotificationSettings, error)
	SaveSettings(settings *models.UserNotificationSettings) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	var count int64
	if err := r.db.Model(&models.Notification{}).Where("id = ?", notification.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrNotificationAlreadyExists
	}
	return r.db.Create(notification).Error
}

func (r *notificationRepository) FindByID(id int) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) FindAll(criteria NotificationCriteria) ([]models.Notification, error) {
	query := r.db.Model(&models.Notification{})

	if criteria.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}
	if criteria.Type != "" {
		query = query.Where("type = ?", criteria.Type)
	}

	var notifications []models.Notification
	err := query.Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) Save(notification *models.Notification) error {
	return r.db.Save(notification).Error
}

func (r *notificationRepository) MarkAsRead(id int) error {
	result := r.db.Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepository) Delete(id int) error {
	result := r.db.Delete(&models.Notification{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// --- Настройки ---

func (r *notificationRepository) FindSettings(userID string) (*models.UserNotificationSettings, error) {
	var settings models.UserNotificationSettings
	err := r.db.First(&settings, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Строки нет - отдаем значения по умолчанию, ничего не создавая
			return models.DefaultNotificationSettings(userID), nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *notificationRepository) SaveSettings(settings *models.UserNotificationSettings) error {
	// Ленивое создание строки при первой записи
	return r.db.Save(settings).Error
}
