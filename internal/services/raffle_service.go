package services

import (
	"vk_randomizer_backend/internal/models"
	"vk_randomizer_backend/internal/repositories"
	"vk_randomizer_backend/internal/services/dto"
	"vk_randomizer_backend/pkg/apperrors"

	"github.com/google/uuid"
)

const maxRafflePhotos = 5

type RaffleService interface {
	Create(req *dto.CreateRaffleRequest) (*dto.RaffleResponse, error)
	List(criteria repositories.RaffleCriteria) (*dto.RaffleListResponse, error)
	ListAll(vkUserID string) ([]dto.RaffleResponse, error)
	Get(id string) (*dto.RaffleResponse, error)
	Update(id string, req *dto.UpdateRaffleRequest) (*dto.RaffleResponse, error)
	ChangeStatus(id string, newStatus models.RaffleStatus) (*dto.RaffleResponse, error)
	Delete(id string) error
}

type raffleService struct {
	raffleRepo repositories.RaffleRepository
}

func NewRaffleService(raffleRepo repositories.RaffleRepository) RaffleService {
	return &raffleService{raffleRepo: raffleRepo}
}

// Create создает розыгрыш. Статус клиента игнорируется: новый розыгрыш
// всегда draft с нулевым счетчиком участников.
func (s *raffleService) Create(req *dto.CreateRaffleRequest) (*dto.RaffleResponse, error) {
	if err := validateRaffleFields(len(req.Photos), req.WinnersCount); err != nil {
		return nil, err
	}
	if !req.EndDate.Time.After(req.StartDate.Time) {
		return nil, apperrors.ValidationError(map[string]string{
			"end_date": "Must be strictly after start_date",
		})
	}

	// Флаги с default=true приходят указателями, чтобы отличить
	// "не передан" от "передан false"
	requireCommunity := true
	if req.RequireCommunitySubscription != nil {
		requireCommunity = *req.RequireCommunitySubscription
	}
	publishResults := true
	if req.PublishResults != nil {
		publishResults = *req.PublishResults
	}

	raffle := &models.Raffle{
		ID:          uuid.NewString(),
		VkUserID:    req.VkUserID,
		Name:        req.Name,
		CommunityID: req.CommunityID,
		ContestText: req.ContestText,
		Photos:      toJSONList(req.Photos),

		RequireCommunitySubscription: requireCommunity,
		RequireTelegramSubscription:  req.RequireTelegramSubscription,
		TelegramChannel:              req.TelegramChannel,
		RequiredCommunities:          toJSONList(req.RequiredCommunities),
		PartnerTags:                  toJSONList(req.PartnerTags),

		WinnersCount:          req.WinnersCount,
		BlacklistParticipants: toJSONList(req.BlacklistParticipants),

		StartDate:       req.StartDate.Time,
		EndDate:         req.EndDate.Time,
		MaxParticipants: req.MaxParticipants,

		PublishResults:        publishResults,
		HideParticipantsCount: req.HideParticipantsCount,
		ExcludeMe:             req.ExcludeMe,
		ExcludeAdmins:         req.ExcludeAdmins,

		Status:            models.RaffleStatusDraft,
		ParticipantsCount: 0,
	}

	if err := s.raffleRepo.Create(raffle); err != nil {
		if err == repositories.ErrRaffleAlreadyExists {
			return nil, apperrors.ErrAlreadyExists(err, "raffle", "Raffle with this id already exists")
		}
		return nil, apperrors.ErrDatabase(err, "raffle")
	}

	return buildRaffleResponse(raffle), nil
}

func (s *raffleService) List(criteria repositories.RaffleCriteria) (*dto.RaffleListResponse, error) {
	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.PerPage < 1 {
		criteria.PerPage = 20
	}
	if criteria.PerPage > 100 {
		criteria.PerPage = 100
	}

	raffles, total, err := s.raffleRepo.FindAll(criteria)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "raffle")
	}

	items := make([]dto.RaffleResponse, 0, len(raffles))
	for i := range raffles {
		items = append(items, *buildRaffleResponse(&raffles[i]))
	}

	return &dto.RaffleListResponse{
		Raffles: items,
		Total:   total,
		Page:    criteria.Page,
		PerPage: criteria.PerPage,
	}, nil
}

func (s *raffleService) ListAll(vkUserID string) ([]dto.RaffleResponse, error) {
	raffles, err := s.raffleRepo.FindAllByUser(vkUserID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "raffle")
	}

	items := make([]dto.RaffleResponse, 0, len(raffles))
	for i := range raffles {
		items = append(items, *buildRaffleResponse(&raffles[i]))
	}
	return items, nil
}

func (s *raffleService) Get(id string) (*dto.RaffleResponse, error) {
	raffle, err := s.raffleRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrRaffleNotFound {
			return nil, apperrors.ErrNotFound(err, "raffle", "Raffle not found")
		}
		return nil, apperrors.ErrDatabase(err, "raffle")
	}
	return buildRaffleResponse(raffle), nil
}

// Update применяет только переданные поля; отсутствующие сохраняют
// прежние значения. Проверка end > start выполняется над итоговой
// парой дат до записи в хранилище.
func (s *raffleService) Update(id string, req *dto.UpdateRaffleRequest) (*dto.RaffleResponse, error) {
	raffle, err := s.raffleRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrRaffleNotFound {
			return nil, apperrors.ErrNotFound(err, "raffle", "Raffle not found")
		}
		return nil, apperrors.ErrDatabase(err, "raffle")
	}

	photosCount := len(fromJSONList(raffle.Photos))
	if req.Photos != nil {
		photosCount = len(*req.Photos)
	}
	winnersCount := raffle.WinnersCount
	if req.WinnersCount != nil {
		winnersCount = *req.WinnersCount
	}
	if err := validateRaffleFields(photosCount, winnersCount); err != nil {
		return nil, err
	}

	startDate := raffle.StartDate
	if req.StartDate != nil {
		startDate = req.StartDate.Time
	}
	endDate := raffle.EndDate
	if req.EndDate != nil {
		endDate = req.EndDate.Time
	}
	if !endDate.After(startDate) {
		return nil, apperrors.ValidationError(map[string]string{
			"end_date": "Must be strictly after start_date",
		})
	}

	if req.VkUserID != nil {
		raffle.VkUserID = *req.VkUserID
	}
	if req.Name != nil {
		raffle.Name = *req.Name
	}
	if req.CommunityID != nil {
		raffle.CommunityID = *req.CommunityID
	}
	if req.ContestText != nil {
		raffle.ContestText = *req.ContestText
	}
	if req.Photos != nil {
		raffle.Photos = toJSONList(*req.Photos)
	}
	if req.RequireCommunitySubscription != nil {
		raffle.RequireCommunitySubscription = *req.RequireCommunitySubscription
	}
	if req.RequireTelegramSubscription != nil {
		raffle.RequireTelegramSubscription = *req.RequireTelegramSubscription
	}
	if req.TelegramChannel != nil {
		raffle.TelegramChannel = req.TelegramChannel
	}
	if req.RequiredCommunities != nil {
		raffle.RequiredCommunities = toJSONList(*req.RequiredCommunities)
	}
	if req.PartnerTags != nil {
		raffle.PartnerTags = toJSONList(*req.PartnerTags)
	}
	if req.WinnersCount != nil {
		raffle.WinnersCount = *req.WinnersCount
	}
	if req.BlacklistParticipants != nil {
		raffle.BlacklistParticipants = toJSONList(*req.BlacklistParticipants)
	}
	raffle.StartDate = startDate
	raffle.EndDate = endDate
	if req.MaxParticipants != nil {
		raffle.MaxParticipants = req.MaxParticipants
	}
	if req.PublishResults != nil {
		raffle.PublishResults = *req.PublishResults
	}
	if req.HideParticipantsCount != nil {
		raffle.HideParticipantsCount = *req.HideParticipantsCount
	}
	if req.ExcludeMe != nil {
		raffle.ExcludeMe = *req.ExcludeMe
	}
	if req.ExcludeAdmins != nil {
		raffle.ExcludeAdmins = *req.ExcludeAdmins
	}

	if err := s.raffleRepo.Save(raffle); err != nil {
		return nil, apperrors.ErrDatabase(err, "raffle")
	}

	return buildRaffleResponse(raffle), nil
}

// ChangeStatus переводит розыгрыш в новый статус.
// Единственное ограничение состояний: completed терминален, из него
// разрешен только повторный перевод в completed (идемпотентный no-op).
func (s *raffleService) ChangeStatus(id string, newStatus models.RaffleStatus) (*dto.RaffleResponse, error) {
	raffle, err := s.raffleRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrRaffleNotFound {
			return nil, apperrors.ErrNotFound(err, "raffle", "Raffle not found")
		}
		return nil, apperrors.ErrDatabase(err, "raffle")
	}

	if raffle.Status == models.RaffleStatusCompleted && newStatus != models.RaffleStatusCompleted {
		return nil, apperrors.ErrInvalidStatus("raffle", "Cannot change status of a completed raffle")
	}

	raffle.Status = newStatus
	if err := s.raffleRepo.Save(raffle); err != nil {
		return nil, apperrors.ErrDatabase(err, "raffle")
	}

	return buildRaffleResponse(raffle), nil
}

func (s *raffleService) Delete(id string) error {
	if err := s.raffleRepo.Delete(id); err != nil {
		if err == repositories.ErrRaffleNotFound {
			return apperrors.ErrNotFound(err, "raffle", "Raffle not found")
		}
		return apperrors.ErrDatabase(err, "raffle")
	}
	return nil
}

// validateRaffleFields проверяет границы полей, общие для create и update.
// Проверка дублирует теги DTO намеренно: сервис не полагается на то,
// каким путем пришел запрос.
func validateRaffleFields(photosCount, winnersCount int) error {
	if photosCount > maxRafflePhotos {
		return apperrors.ValidationError(map[string]string{
			"photos": "Must be at most 5 items",
		})
	}
	if winnersCount < 1 || winnersCount > 100 {
		return apperrors.ValidationError(map[string]string{
			"winners_count": "Must be between 1 and 100",
		})
	}
	return nil
}

func buildRaffleResponse(raffle *models.Raffle) *dto.RaffleResponse {
	return &dto.RaffleResponse{
		ID:          raffle.ID,
		VkUserID:    raffle.VkUserID,
		Name:        raffle.Name,
		CommunityID: raffle.CommunityID,
		ContestText: raffle.ContestText,
		Photos:      fromJSONList(raffle.Photos),

		RequireCommunitySubscription: raffle.RequireCommunitySubscription,
		RequireTelegramSubscription:  raffle.RequireTelegramSubscription,
		TelegramChannel:              raffle.TelegramChannel,
		RequiredCommunities:          fromJSONList(raffle.RequiredCommunities),
		PartnerTags:                  fromJSONList(raffle.PartnerTags),

		WinnersCount:          raffle.WinnersCount,
		BlacklistParticipants: fromJSONList(raffle.BlacklistParticipants),

		StartDate:       raffle.StartDate,
		EndDate:         raffle.EndDate,
		MaxParticipants: raffle.MaxParticipants,

		PublishResults:        raffle.PublishResults,
		HideParticipantsCount: raffle.HideParticipantsCount,
		ExcludeMe:             raffle.ExcludeMe,
		ExcludeAdmins:         raffle.ExcludeAdmins,

		Status:            string(raffle.Status),
		ParticipantsCount: raffle.ParticipantsCount,
		CreatedAt:         raffle.CreatedAt,
		UpdatedAt:         raffle.UpdatedAt,
	}
}
