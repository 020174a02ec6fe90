package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/models"
	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/services"
)

type statsApplicationService interface {
	GetGlobalStats(ctx context.Context) models.GlobalStats
}

type StatsHandler struct {
	service statsApplicationService
}

func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) GetGlobalStats(c *fiber.Ctx) error {
	return c.JSON(h.service.GetGlobalStats(c.Context()))
}
