package handlers

import (
	"net/http"

	"vk_randomizer_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CardHandler отдает read-only проекции карточек. Все маршруты
// ходят в один сервис, чтобы карточные представления не расходились
// с основными сущностями.
type CardHandler struct {
	*BaseHandler
	cardService services.CardService
}

func NewCardHandler(base *BaseHandler, cardService services.CardService) *CardHandler {
	return &CardHandler{
		BaseHandler: base,
		cardService: cardService,
	}
}

func (h *CardHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/raffle-cards", h.ListRaffleCards)
	r.GET("/raffle-cards/:raffleId", h.GetRaffleCard)
	r.GET("/raffle-carousel-cards", h.ListCarouselCards)
	r.GET("/raffle-carousel-cards/:raffleId", h.GetCarouselCard)
	r.GET("/nested-community-cards", h.ListNestedCommunityCards)
	r.GET("/nested-community-cards/:nickname", h.GetNestedCommunityCard)
}

func (h *CardHandler) ListRaffleCards(c *gin.Context) {
	result, err := h.cardService.ListRaffleCards()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CardHandler) GetRaffleCard(c *gin.Context) {
	result, err := h.cardService.GetRaffleCard(c.Param("raffleId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CardHandler) ListCarouselCards(c *gin.Context) {
	result, err := h.cardService.ListCarouselCards()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CardHandler) GetCarouselCard(c *gin.Context) {
	result, err := h.cardService.GetCarouselCard(c.Param("raffleId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CardHandler) ListNestedCommunityCards(c *gin.Context) {
	result, err := h.cardService.ListNestedCommunityCards()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CardHandler) GetNestedCommunityCard(c *gin.Context) {
	result, err := h.cardService.GetNestedCommunityCard(c.Param("nickname"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
