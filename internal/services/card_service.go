package services

import (
	"fmt"
	"strconv"
	"time"

	"vk_randomizer_backend/internal/models"
	"vk_randomizer_backend/internal/repositories"
	"vk_randomizer_backend/internal/services/dto"
	"vk_randomizer_backend/pkg/apperrors"
)

// CardService отдает read-only проекции для UI-карточек. Карточки не
// хранятся отдельно - они собираются из розыгрышей и сообществ на лету,
// поэтому отдельные "карточные" маршруты не могут разойтись с основными.
type CardService interface {
	ListRaffleCards() (*dto.RaffleCardListResponse, error)
	GetRaffleCard(raffleID string) (*dto.RaffleCardResponse, error)
	ListCarouselCards() (*dto.RaffleCarouselCardListResponse, error)
	GetCarouselCard(raffleID string) (*dto.RaffleCarouselCardResponse, error)
	ListNestedCommunityCards() (*dto.NestedCommunityCardListResponse, error)
	GetNestedCommunityCard(nickname string) (*dto.NestedCommunityCardResponse, error)
}

type cardService struct {
	raffleRepo    repositories.RaffleRepository
	communityRepo repositories.CommunityRepository

	// подменяется в тестах для детерминированных timeLeft/progress
	now func() time.Time
}

func NewCardService(raffleRepo repositories.RaffleRepository, communityRepo repositories.CommunityRepository) CardService {
	return &cardService{
		raffleRepo:    raffleRepo,
		communityRepo: communityRepo,
		now:           time.Now,
	}
}

func (s *cardService) ListRaffleCards() (*dto.RaffleCardListResponse, error) {
	raffles, err := s.raffleRepo.FindAllByUser("")
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "card")
	}

	cards := make([]dto.RaffleCard, 0, len(raffles))
	for i := range raffles {
		cards = append(cards, s.buildRaffleCard(&raffles[i]))
	}
	return &dto.RaffleCardListResponse{Raffles: cards}, nil
}

func (s *cardService) GetRaffleCard(raffleID string) (*dto.RaffleCardResponse, error) {
	raffle, err := s.findRaffle(raffleID)
	if err != nil {
		return nil, err
	}
	return &dto.RaffleCardResponse{Raffle: s.buildRaffleCard(raffle)}, nil
}

func (s *cardService) ListCarouselCards() (*dto.RaffleCarouselCardListResponse, error) {
	raffles, err := s.raffleRepo.FindAllByUser("")
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "card")
	}

	cards := make([]dto.RaffleCarouselCard, 0, len(raffles))
	for i := range raffles {
		cards = append(cards, s.buildCarouselCard(&raffles[i]))
	}
	return &dto.RaffleCarouselCardListResponse{Raffles: cards}, nil
}

func (s *cardService) GetCarouselCard(raffleID string) (*dto.RaffleCarouselCardResponse, error) {
	raffle, err := s.findRaffle(raffleID)
	if err != nil {
		return nil, err
	}
	return &dto.RaffleCarouselCardResponse{Raffle: s.buildCarouselCard(raffle)}, nil
}

func (s *cardService) ListNestedCommunityCards() (*dto.NestedCommunityCardListResponse, error) {
	communities, err := s.communityRepo.FindAll("")
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "card")
	}

	cards := make([]dto.NestedCommunityCard, 0, len(communities))
	for i := range communities {
		cards = append(cards, buildNestedCommunityCard(&communities[i]))
	}
	return &dto.NestedCommunityCardListResponse{Cards: cards}, nil
}

func (s *cardService) GetNestedCommunityCard(nickname string) (*dto.NestedCommunityCardResponse, error) {
	community, err := s.communityRepo.FindByNickname(nickname)
	if err != nil {
		if err == repositories.ErrCommunityNotFound {
			return nil, apperrors.ErrNotFound(err, "card", "Community not found")
		}
		return nil, apperrors.ErrDatabase(err, "card")
	}
	card := buildNestedCommunityCard(community)
	return &dto.NestedCommunityCardResponse{Card: card}, nil
}

func (s *cardService) findRaffle(raffleID string) (*models.Raffle, error) {
	raffle, err := s.raffleRepo.FindByID(raffleID)
	if err != nil {
		if err == repositories.ErrRaffleNotFound {
			return nil, apperrors.ErrNotFound(err, "card", "Raffle not found")
		}
		return nil, apperrors.ErrDatabase(err, "card")
	}
	return raffle, nil
}

func (s *cardService) buildRaffleCard(raffle *models.Raffle) dto.RaffleCard {
	card := dto.RaffleCard{
		RaffleID:        raffle.ID,
		Name:            raffle.Name,
		TextRaffleState: RaffleStateText(raffle.Status),
		WinnersCount:    raffle.WinnersCount,
		Mode:            raffleMode(raffle),
		Progress:        s.raffleProgress(raffle),
		LastModified:    raffle.UpdatedAt.Format("02.01.2006 15:04"),
		ModifiedBy:      RoleDisplayName(models.AdminRoleAdmin),
	}

	if raffle.MaxParticipants != nil {
		card.MemberCount = strconv.Itoa(*raffle.MaxParticipants)
	}
	if raffle.Status == models.RaffleStatusActive {
		card.TimeLeft = formatTimeLeft(raffle.EndDate.Sub(s.now()))
	}

	// Сведения о сообществе, если оно подключено
	community, err := s.communityRepo.FindByID(raffle.CommunityID)
	if err == nil {
		card.Name = community.Name
		card.StatusCommunity = communityConnectionStatus(community.Status)
		card.StatusNestedCard = string(community.Status)
		card.StatusNestedText = community.StateText
		card.Nickname = community.Nickname
		card.MembersCountNested = community.MembersCount
		card.ModifiedBy = RoleDisplayName(community.AdminType)
	} else {
		card.StatusCommunity = "notConfig"
	}
	return card
}

func (s *cardService) buildCarouselCard(raffle *models.Raffle) dto.RaffleCarouselCard {
	card := dto.RaffleCarouselCard{
		RaffleID:  raffle.ID,
		Name:      raffle.Name,
		Status:    string(raffle.Status),
		StateText: RaffleStateText(raffle.Status),
		Members:   "—",
		EndDate:   "—",
		UpdatedAt: raffle.UpdatedAt.Format("02.01.2006 15:04"),
	}
	if raffle.Status != models.RaffleStatusDraft {
		card.Members = formatMembers(raffle.ParticipantsCount)
		card.EndDate = raffle.EndDate.Format("02.01 15:04")
	}
	if community, err := s.communityRepo.FindByID(raffle.CommunityID); err == nil {
		card.Name = community.Name
	}
	return card
}

func buildNestedCommunityCard(community *models.Community) dto.NestedCommunityCard {
	return dto.NestedCommunityCard{
		Status:       string(community.Status),
		StatusText:   community.StateText,
		Name:         community.Name,
		Nickname:     community.Nickname,
		AdminType:    string(community.AdminType),
		MembersCount: community.MembersCount,
	}
}

// RoleDisplayName переводит код роли в отображаемое имя
func RoleDisplayName(role models.AdminRole) string {
	switch role {
	case models.AdminRoleOwner:
		return "Владелец"
	case models.AdminRoleAdmin:
		return "Администратор"
	case models.AdminRoleEditor:
		return "Редактор"
	case models.AdminRoleModerator:
		return "Модератор"
	case models.AdminRoleMember:
		return "Участник"
	case models.AdminRoleAdvertiser:
		return "Рекламодатель"
	}
	return "Неизвестная роль"
}

// RaffleStateText переводит статус в текст состояния для карточки
func RaffleStateText(status models.RaffleStatus) string {
	switch status {
	case models.RaffleStatusDraft:
		return "Черновик"
	case models.RaffleStatusActive:
		return "Активно"
	case models.RaffleStatusPaused:
		return "Приостановлено"
	case models.RaffleStatusCompleted:
		return "Завершено"
	case models.RaffleStatusCancelled:
		return "Отменено"
	}
	return string(status)
}

// communityConnectionStatus - состояние подключения сообщества для карточки
func communityConnectionStatus(status models.CommunityStatus) string {
	switch status {
	case models.CommunityStatusGreen:
		return "connected"
	case models.CommunityStatusRed:
		return "error"
	}
	return "notConfig"
}

// raffleMode - по каким условиям завершается розыгрыш:
// по времени и количеству участников либо только по времени
func raffleMode(raffle *models.Raffle) string {
	if raffle.MaxParticipants != nil {
		return "both"
	}
	return "time"
}

// raffleProgress - процент заполнения лимита участников; без лимита -
// доля прошедшего времени розыгрыша
func (s *cardService) raffleProgress(raffle *models.Raffle) int {
	if raffle.MaxParticipants != nil && *raffle.MaxParticipants > 0 {
		return clampPercent(raffle.ParticipantsCount * 100 / *raffle.MaxParticipants)
	}

	total := raffle.EndDate.Sub(raffle.StartDate)
	if total <= 0 {
		return 0
	}
	elapsed := s.now().Sub(raffle.StartDate)
	return clampPercent(int(elapsed * 100 / total))
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// formatTimeLeft печатает остаток времени в виде "2Д 9Ч 21М".
// Нулевые старшие разряды опускаются, истекший срок - "0М".
func formatTimeLeft(d time.Duration) string {
	if d <= 0 {
		return "0М"
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dД %dЧ %dМ", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dЧ %dМ", hours, minutes)
	}
	return fmt.Sprintf("%dМ", minutes)
}

// formatMembers печатает счетчик вида "4 280 участников"
func formatMembers(count int) string {
	digits := strconv.Itoa(count)
	var grouped []byte
	for i, c := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ' ')
		}
		grouped = append(grouped, c)
	}
	return string(grouped) + " участников"
}
