package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/services"
)

type checkoutApplicationService interface {
	CreateCheckoutSession(ctx context.Context, appointmentID int64, returnURL string) (string, error)
}

type CheckoutHandler struct {
	service checkoutApplicationService
}

func NewCheckoutHandler(service *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

type createCheckoutSessionRequest struct {
	AppointmentID int64  `json:"appointment_id"`
	ReturnURL     string `json:"return_url"`
}

func (h *CheckoutHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	var req createCheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	url, err := h.service.CreateCheckoutSession(c.Context(), req.AppointmentID, req.ReturnURL)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "appointment_id must be greater than 0"})
		case errors.Is(err, services.ErrAppointmentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
		default:
			// The caller checks the error field of the result; hand it the
			// failure reason rather than a fixed string.
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(fiber.Map{"url": url})
}
