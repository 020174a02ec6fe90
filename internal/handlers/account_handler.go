package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/models"
	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/services"
)

type accountApplicationService interface {
	CreateUser(ctx context.Context, input services.CreateUserInput) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateAccount(ctx context.Context, userID int64, input services.UpdateAccountInput) (*models.User, error)
}

type AccountHandler struct {
	service accountApplicationService
}

func NewAccountHandler(service *services.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

type createUserRequest struct {
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Role     string  `json:"role"`
}

type updateAccountRequest struct {
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

func (h *AccountHandler) CreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := h.service.CreateUser(c.Context(), services.CreateUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		return mapAccountError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}

func (h *AccountHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.Context())
	if err != nil {
		return mapAccountError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

func (h *AccountHandler) UpdateAccount(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req updateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := h.service.UpdateAccount(c.Context(), userID, services.UpdateAccountInput{
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return mapAccountError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "user": user})
}

func mapAccountError(c *fiber.Ctx, err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	case errors.As(err, &pgErr) && pgErr.Code == "23505":
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process account request"})
	}
}
