package http

import (
	"strings"

	"github.com/OpenFunnel/ActionGate/pkg/domain/endpoint"
	"github.com/OpenFunnel/ActionGate/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createDefinitionHandler struct {
	logger *logrus.Logger
	repo   endpoint.Repository
}

func NewCreateDefinitionHandler(logger *logrus.Logger, repo endpoint.Repository) Handler {
	return &createDefinitionHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *createDefinitionHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateDefinitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	definition := req.ToDefinition()
	if err := h.repo.Create(c.Context(), definition); err != nil {
		if isDuplicateKey(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Slug already exists"})
		}
		h.logger.WithError(err).Error("failed to create definition")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(definition)
}

// isDuplicateKey matches the postgres unique-violation message since gorm
// does not surface a typed error for it.
func isDuplicateKey(err error) bool {
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "23505")
}
