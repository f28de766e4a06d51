package http

import (
	"errors"

	"github.com/OpenFunnel/ActionGate/pkg/domain"
	"github.com/OpenFunnel/ActionGate/pkg/domain/endpoint"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type getDefinitionHandler struct {
	logger *logrus.Logger
	repo   endpoint.Repository
}

func NewGetDefinitionHandler(logger *logrus.Logger, repo endpoint.Repository) Handler {
	return &getDefinitionHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *getDefinitionHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid definition ID"})
	}

	definition, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDefinitionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Definition not found"})
		}
		h.logger.WithError(err).Error("failed to get definition")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get definition"})
	}

	return c.Status(fiber.StatusOK).JSON(definition)
}
