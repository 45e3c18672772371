package handlers

import (
	"net/http"

	"vk_randomizer_backend/internal/models"
	"vk_randomizer_backend/internal/repositories"
	"vk_randomizer_backend/internal/services"
	"vk_randomizer_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RaffleHandler struct {
	*BaseHandler
	raffleService services.RaffleService
}

func NewRaffleHandler(base *BaseHandler, raffleService services.RaffleService) *RaffleHandler {
	return &RaffleHandler{
		BaseHandler:   base,
		raffleService: raffleService,
	}
}

func (h *RaffleHandler) RegisterRoutes(r *gin.RouterGroup) {
	raffles := r.Group("/raffles")
	{
		raffles.POST("", h.CreateRaffle)
		raffles.GET("", h.ListRaffles)
		raffles.GET("/all", h.ListAllRaffles)
		raffles.GET("/:id", h.GetRaffle)
		raffles.PUT("/:id", h.UpdateRaffle)
		raffles.PATCH("/:id", h.UpdateRaffle)
		raffles.PATCH("/:id/status", h.ChangeRaffleStatus)
		raffles.DELETE("/:id", h.DeleteRaffle)
	}
}

func (h *RaffleHandler) CreateRaffle(c *gin.Context) {
	var req dto.CreateRaffleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	raffle, err := h.raffleService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, raffle)
}

func (h *RaffleHandler) ListRaffles(c *gin.Context) {
	var criteria repositories.RaffleCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}
	criteria.Page, criteria.PerPage = ParsePagination(c)

	result, err := h.raffleService.List(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *RaffleHandler) ListAllRaffles(c *gin.Context) {
	raffles, err := h.raffleService.ListAll(c.Query("vk_user_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"raffles": raffles})
}

func (h *RaffleHandler) GetRaffle(c *gin.Context) {
	raffle, err := h.raffleService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, raffle)
}

func (h *RaffleHandler) UpdateRaffle(c *gin.Context) {
	var req dto.UpdateRaffleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	raffle, err := h.raffleService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, raffle)
}

func (h *RaffleHandler) ChangeRaffleStatus(c *gin.Context) {
	var req dto.ChangeRaffleStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	raffle, err := h.raffleService.ChangeStatus(c.Param("id"), models.RaffleStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, raffle)
}

func (h *RaffleHandler) DeleteRaffle(c *gin.Context) {
	if err := h.raffleService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
