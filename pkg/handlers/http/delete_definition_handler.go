package http

import (
	"errors"

	"github.com/OpenFunnel/ActionGate/pkg/app/definition"
	"github.com/OpenFunnel/ActionGate/pkg/domain"
	"github.com/OpenFunnel/ActionGate/pkg/domain/endpoint"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type deleteDefinitionHandler struct {
	logger *logrus.Logger
	repo   endpoint.Repository
	finder definition.Finder
}

func NewDeleteDefinitionHandler(
	logger *logrus.Logger,
	repo endpoint.Repository,
	finder definition.Finder,
) Handler {
	return &deleteDefinitionHandler{
		logger: logger,
		repo:   repo,
		finder: finder,
	}
}

func (h *deleteDefinitionHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid definition ID"})
	}

	existing, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDefinitionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Definition not found"})
		}
		h.logger.WithError(err).Error("failed to get definition")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get definition"})
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrDefinitionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Definition not found"})
		}
		h.logger.WithError(err).Error("failed to delete definition")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete definition"})
	}

	h.finder.Invalidate(c.Context(), existing.Slug)

	return c.SendStatus(fiber.StatusNoContent)
}
