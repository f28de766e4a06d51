package http

import (
	"github.com/OpenFunnel/ActionGate/pkg/domain/endpoint"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listDefinitionsHandler struct {
	logger *logrus.Logger
	repo   endpoint.Repository
}

func NewListDefinitionsHandler(logger *logrus.Logger, repo endpoint.Repository) Handler {
	return &listDefinitionsHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *listDefinitionsHandler) Handle(c *fiber.Ctx) error {
	definitions, err := h.repo.List(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list definitions")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list definitions"})
	}
	return c.Status(fiber.StatusOK).JSON(definitions)
}
