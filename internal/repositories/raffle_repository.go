package repositories

import (
	"errors"

	"vk_randomizer_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRaffleNotFound      = errors.New("raffle not found")
	ErrRaffleAlreadyExists = errors.New("raffle already exists")
)

// Критерии поиска розыгрышей. Все фильтры опциональны и объединяются по AND.
type RaffleCriteria struct {
	Status      string `form:"status"`
	CommunityID string `form:"community_id"`
	VkUserID    string `form:"vk_user_id"`
	Page        int    `form:"page"`
	PerPage     int    `form:"per_page"`
}

type RaffleRepository interface {
	Create(raffle *models.Raffle) error
	FindByID(id string) (*models.Raffle, error)
	FindAll(criteria RaffleCriteria) ([]models.Raffle, int64, error)
	FindAllByUser(vkUserID string) ([]models.Raffle, error)
	Save(raffle *models.Raffle) error
	Delete(id string) error
}

type raffleRepository struct {
	db *gorm.DB
}

func NewRaffleRepository(db *gorm.DB) RaffleRepository {
	return &raffleRepository{db: db}
}

func (r *raffleRepository) Create(raffle *models.Raffle) error {
	var count int64
	if err := r.db.Model(&models.Raffle{}).Where("id = ?", raffle.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrRaffleAlreadyExists
	}
	return r.db.Create(raffle).Error
}

func (r *raffleRepository) FindByID(id string) (*models.Raffle, error) {
	var raffle models.Raffle
	err := r.db.First(&raffle, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRaffleNotFound
		}
		return nil, err
	}
	return &raffle, nil
}

func (r *raffleRepository) FindAll(criteria RaffleCriteria) ([]models.Raffle, int64, error) {
	query := r.db.Model(&models.Raffle{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.CommunityID != "" {
		query = query.Where("community_id = ?", criteria.CommunityID)
	}
	if criteria.VkUserID != "" {
		query = query.Where("vk_user_id = ?", criteria.VkUserID)
	}

	// Общее количество подходящих строк, а не размер страницы
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PerPage
	offset := (criteria.Page - 1) * criteria.PerPage

	var raffles []models.Raffle
	err := query.Limit(limit).Offset(offset).Find(&raffles).Error
	return raffles, total, err
}

func (r *raffleRepository) FindAllByUser(vkUserID string) ([]models.Raffle, error) {
	var raffles []models.Raffle
	query := r.db.Model(&models.Raffle{})
	if vkUserID != "" {
		query = query.Where("vk_user_id = ?", vkUserID)
	}
	err := query.Find(&raffles).Error
	return raffles, err
}

func (r *raffleRepository) Save(raffle *models.Raffle) error {
	return r.db.Save(raffle).Error
}

func (r *raffleRepository) Delete(id string) error {
	result := r.db.Delete(&models.Raffle{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRaffleNotFound
	}
	return nil
}
