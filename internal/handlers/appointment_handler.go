package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/models"
	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/repository"
)

type appointmentReader interface {
	GetDetailByID(ctx context.Context, appointmentID int64) (*models.AppointmentDetail, error)
}

type AppointmentHandler struct {
	appointments appointmentReader
}

func NewAppointmentHandler(appointments *repository.AppointmentRepository) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

func (h *AppointmentHandler) GetAppointment(c *fiber.Ctx) error {
	appointmentID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || appointmentID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid appointment id"})
	}

	detail, err := h.appointments.GetDetailByID(c.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load appointment"})
	}

	return c.JSON(fiber.Map{"appointment": detail})
}
