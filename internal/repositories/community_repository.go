package repositories

import (
	"errors"

	"vk_randomizer_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCommunityNotFound      = errors.New("community not found")
	ErrCommunityAlreadyExists = errors.New("community already exists")
)

type CommunityRepository interface {
	Create(community *models.Community) error
	FindByID(id string) (*models.Community, error)
	FindByNickname(nickname string) (*models.Community, error)
	FindAll(vkUserID string) ([]models.Community, error)
	Save(community *models.Community) error
	Delete(id string) error
}

type communityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) Create(community *models.Community) error {
	var count int64
	err := r.db.Model(&models.Community{}).
		Where("id = ? OR nickname = ?", community.ID, community.Nickname).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCommunityAlreadyExists
	}
	return r.db.Create(community).Error
}

func (r *communityRepository) FindByID(id string) (*models.Community, error) {
	var community models.Community
	err := r.db.First(&community, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommunityNotFound
		}
		return nil, err
	}
	return &community, nil
}

func (r *communityRepository) FindByNickname(nickname string) (*models.Community, error) {
	var community models.Community
	err := r.db.First(&community, "nickname = ?", nickname).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommunityNotFound
		}
		return nil, err
	}
	return &community, nil
}

func (r *communityRepository) FindAll(vkUserID string) ([]models.Community, error) {
	var communities []models.Community
	query := r.db.Model(&models.Community{})
	if vkUserID != "" {
		query = query.Where("vk_user_id = ?", vkUserID)
	}
	err := query.Find(&communities).Error
	return communities, err
}

func (r *communityRepository) Save(community *models.Community) error {
	return r.db.Save(community).Error
}

func (r *communityRepository) Delete(id string) error {
	result := r.db.Delete(&models.Community{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommunityNotFound
	}
	return nil
}
