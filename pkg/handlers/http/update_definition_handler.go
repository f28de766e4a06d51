package http

import (
	"errors"

	"github.com/OpenFunnel/ActionGate/pkg/app/definition"
	"github.com/OpenFunnel/ActionGate/pkg/domain"
	"github.com/OpenFunnel/ActionGate/pkg/domain/endpoint"
	"github.com/OpenFunnel/ActionGate/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type updateDefinitionHandler struct {
	logger *logrus.Logger
	repo   endpoint.Repository
	finder definition.Finder
}

func NewUpdateDefinitionHandler(
	logger *logrus.Logger,
	repo endpoint.Repository,
	finder definition.Finder,
) Handler {
	return &updateDefinitionHandler{
		logger: logger,
		repo:   repo,
		finder: finder,
	}
}

func (h *updateDefinitionHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid definition ID"})
	}

	var req request.UpdateDefinitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	existing, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDefinitionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Definition not found"})
		}
		h.logger.WithError(err).Error("failed to get definition")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get definition"})
	}

	previousSlug := existing.Slug
	req.ApplyTo(existing)

	if err := h.repo.Update(c.Context(), existing); err != nil {
		if errors.Is(err, domain.ErrDefinitionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Definition not found"})
		}
		if isDuplicateKey(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Slug already exists"})
		}
		h.logger.WithError(err).Error("failed to update definition")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Invalidate the old slug too so a rename does not leave the previous
	// route serving from cache.
	h.finder.Invalidate(c.Context(), previousSlug)
	if existing.Slug != previousSlug {
		h.finder.Invalidate(c.Context(), existing.Slug)
	}

	return c.Status(fiber.StatusOK).JSON(existing)
}
