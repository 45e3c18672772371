package services

import (
	"sort"

	"vk_randomizer_backend/internal/services/dto"
	"vk_randomizer_backend/pkg/apperrors"
	"vk_randomizer_backend/pkg/kvstore"
)

type CommunityModalService interface {
	Create(modal *dto.CommunityModal) (*dto.CommunityModal, error)
	List() (*dto.CommunityModalListResponse, error)
	Get(id string) (*dto.CommunityModal, error)
	Update(id string, modal *dto.CommunityModal) (*dto.CommunityModal, error)
	Delete(id string) error
}

type communityModalService struct {
	store *kvstore.Store[dto.CommunityModal]
}

func NewCommunityModalService(store *kvstore.Store[dto.CommunityModal]) CommunityModalService {
	return &communityModalService{store: store}
}

func (s *communityModalService) Create(modal *dto.CommunityModal) (*dto.CommunityModal, error) {
	id := modal.ModalID()
	if id == "" {
		return nil, apperrors.ValidationError(map[string]string{"id": "This field is required"})
	}
	if s.store.Exists(id) {
		return nil, apperrors.ErrConflict("community_modal", "Modal with this id already exists")
	}
	s.store.Put(id, *modal)
	return modal, nil
}

func (s *communityModalService) List() (*dto.CommunityModalListResponse, error) {
	modals := s.store.List()
	// xsync не гарантирует порядок обхода, сортируем для стабильного ответа
	sort.Slice(modals, func(i, j int) bool {
		return modals[i].ModalID() < modals[j].ModalID()
	})
	return &dto.CommunityModalListResponse{Modals: modals}, nil
}

func (s *communityModalService) Get(id string) (*dto.CommunityModal, error) {
	modal, ok := s.store.Get(id)
	if !ok {
		return nil, apperrors.ErrNotFound(nil, "community_modal", "Modal not found")
	}
	return &modal, nil
}

// Update заменяет модальное окно целиком, включая смену варианта.
// Идентификатор в теле должен совпадать с идентификатором в пути.
func (s *communityModalService) Update(id string, modal *dto.CommunityModal) (*dto.CommunityModal, error) {
	if !s.store.Exists(id) {
		return nil, apperrors.ErrNotFound(nil, "community_modal", "Modal not found")
	}
	if modal.ModalID() != id {
		return nil, apperrors.ValidationError(map[string]string{"id": "Must match the id in the path"})
	}
	s.store.Put(id, *modal)
	return modal, nil
}

func (s *communityModalService) Delete(id string) error {
	if !s.store.Delete(id) {
		return apperrors.ErrNotFound(nil, "community_modal", "Modal not found")
	}
	return nil
}
