package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/models"
)

const searchPath = "/patient/search"

type refCodeResolver interface {
	GetByRefCode(ctx context.Context, refCode string) (*models.Psychologist, error)
}

type ReferralHandler struct {
	psychologists refCodeResolver
}

func NewReferralHandler(psychologists refCodeResolver) *ReferralHandler {
	return &ReferralHandler{psychologists: psychologists}
}

// Redirect resolves a shared ref code to the search page with the matching
// psychologist pre-selected. Unknown codes and lookup failures fall back to
// the bare search page; the client never sees an error.
func (h *ReferralHandler) Redirect(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("code"))
	if code == "" {
		return c.Redirect(searchPath, fiber.StatusFound)
	}

	psychologist, err := h.psychologists.GetByRefCode(c.Context(), code)
	if err != nil {
		return c.Redirect(searchPath, fiber.StatusFound)
	}

	return c.Redirect(fmt.Sprintf("%s?ref=%d", searchPath, psychologist.ID), fiber.StatusFound)
}
