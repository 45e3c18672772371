package repositories

import (
	"errors"

	"vk_randomizer_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNotificationCardNotFound      = errors.New("notification card not found")
	ErrNotificationCardAlreadyExists = errors.New("notification card already exists")
)

type NotificationCardRepository interface {
	Create(card *models.NotificationCard) error
	FindByID(id int) (*models.NotificationCard, error)
	FindAll() ([]models.NotificationCard, error)
	Save(card *models.NotificationCard) error
	Delete(id int) error
}

type notificationCardRepository struct {
	db *gorm.DB
}

func NewNotificationCardRepository(db *gorm.DB) NotificationCardRepository {
	return &notificationCardRepository{db: db}
}

func (r *notificationCardRepository) Create(card *models.NotificationCard) error {
	var count int64
	if err := r.db.Model(&models.NotificationCard{}).Where("id = ?", card.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrNotificationCardAlreadyExists
	}
	return r.db.Create(card).Error
}

func (r *notificationCardRepository) FindByID(id int) (*models.NotificationCard, error) {
	var card models.NotificationCard
	err := r.db.First(&card, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

func (r *notificationCardRepository) FindAll() ([]models.NotificationCard, error) {
	var cards []models.NotificationCard
	err := r.db.Find(&cards).Error
	return cards, err
}

func (r *notificationCardRepository) Save(card *models.NotificationCard) error {
	return r.db.Save(card).Error
}

func (r *notificationCardRepository) Delete(id int) error {
	result := r.db.Delete(&models.NotificationCard{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationCardNotFound
	}
	return nil
}
