package services

import (
	"vk_randomizer_backend/internal/models"
	"vk_randomizer_backend/internal/repositories"
	"vk_randomizer_backend/internal/services/dto"
	"vk_randomizer_backend/pkg/apperrors"
)

type CommunityService interface {
	Create(req *dto.CreateCommunityRequest) (*dto.CommunityResponse, error)
	List(vkUserID string) (*dto.CommunityListResponse, error)
	Get(id string) (*dto.CommunityResponse, error)
	Update(id string, req *dto.UpdateCommunityRequest) (*dto.CommunityResponse, error)
	Delete(id string) error
}

type communityService struct {
	communityRepo repositories.CommunityRepository
}

func NewCommunityService(communityRepo repositories.CommunityRepository) CommunityService {
	return &communityService{communityRepo: communityRepo}
}

func (s *communityService) Create(req *dto.CreateCommunityRequest) (*dto.CommunityResponse, error) {
	community := &models.Community{
		ID:           req.ID,
		VkUserID:     req.VkUserID,
		Name:         req.Name,
		Nickname:     req.Nickname,
		MembersCount: req.MembersCount,
		RaffleCount:  req.RaffleCount,
		AdminType:    models.AdminRole(req.AdminType),
		AvatarURL:    req.AvatarURL,
		Status:       models.CommunityStatus(req.Status),
		ButtonDesc:   req.ButtonDesc,
		StateText:    req.StateText,
	}

	if err := s.communityRepo.Create(community); err != nil {
		if err == repositories.ErrCommunityAlreadyExists {
			return nil, apperrors.ErrAlreadyExists(err, "community", "Community with this id or nickname already exists")
		}
		return nil, apperrors.ErrDatabase(err, "community")
	}

	return buildCommunityResponse(community), nil
}

func (s *communityService) List(vkUserID string) (*dto.CommunityListResponse, error) {
	communities, err := s.communityRepo.FindAll(vkUserID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "community")
	}

	items := make([]dto.CommunityResponse, 0, len(communities))
	for i := range communities {
		items = append(items, *buildCommunityResponse(&communities[i]))
	}
	return &dto.CommunityListResponse{Communities: items, Total: len(items)}, nil
}

func (s *communityService) Get(id string) (*dto.CommunityResponse, error) {
	community, err := s.communityRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrCommunityNotFound {
			return nil, apperrors.ErrNotFound(err, "community", "Community not found")
		}
		return nil, apperrors.ErrDatabase(err, "community")
	}
	return buildCommunityResponse(community), nil
}

func (s *communityService) Update(id string, req *dto.UpdateCommunityRequest) (*dto.CommunityResponse, error) {
	community, err := s.communityRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrCommunityNotFound {
			return nil, apperrors.ErrNotFound(err, "community", "Community not found")
		}
		return nil, apperrors.ErrDatabase(err, "community")
	}

	if req.VkUserID != nil {
		community.VkUserID = *req.VkUserID
	}
	if req.Name != nil {
		community.Name = *req.Name
	}
	if req.Nickname != nil {
		community.Nickname = *req.Nickname
	}
	if req.MembersCount != nil {
		community.MembersCount = *req.MembersCount
	}
	if req.RaffleCount != nil {
		community.RaffleCount = *req.RaffleCount
	}
	if req.AdminType != nil {
		community.AdminType = models.AdminRole(*req.AdminType)
	}
	if req.AvatarURL != nil {
		community.AvatarURL = *req.AvatarURL
	}
	if req.Status != nil {
		community.Status = models.CommunityStatus(*req.Status)
	}
	if req.ButtonDesc != nil {
		community.ButtonDesc = *req.ButtonDesc
	}
	if req.StateText != nil {
		community.StateText = *req.StateText
	}

	if err := s.communityRepo.Save(community); err != nil {
		return nil, apperrors.ErrDatabase(err, "community")
	}
	return buildCommunityResponse(community), nil
}

func (s *communityService) Delete(id string) error {
	if err := s.communityRepo.Delete(id); err != nil {
		if err == repositories.ErrCommunityNotFound {
			return apperrors.ErrNotFound(err, "community", "Community not found")
		}
		return apperrors.ErrDatabase(err, "community")
	}
	return nil
}

func buildCommunityResponse(community *models.Community) *dto.CommunityResponse {
	return &dto.CommunityResponse{
		ID:           community.ID,
		VkUserID:     community.VkUserID,
		Name:         community.Name,
		Nickname:     community.Nickname,
		MembersCount: community.MembersCount,
		RaffleCount:  community.RaffleCount,
		AdminType:    string(community.AdminType),
		AvatarURL:    community.AvatarURL,
		Status:       string(community.Status),
		ButtonDesc:   community.ButtonDesc,
		StateText:    community.StateText,
	}
}
