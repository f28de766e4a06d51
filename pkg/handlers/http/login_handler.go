package http

import (
	"crypto/subtle"

	"github.com/OpenFunnel/ActionGate/pkg/config"
	"github.com/OpenFunnel/ActionGate/pkg/infra/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type loginHandler struct {
	logger     *logrus.Logger
	config     *config.ServerConfig
	jwtManager jwt.Manager
}

func NewLoginHandler(
	logger *logrus.Logger,
	config *config.ServerConfig,
	jwtManager jwt.Manager,
) Handler {
	return &loginHandler{
		logger:     logger,
		config:     config,
		jwtManager: jwtManager,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

func (h *loginHandler) Handle(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	// Empty configured password disables admin login entirely.
	if h.config.AdminPassword == "" || req.Password == "" ||
		subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.config.AdminPassword)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	token, err := h.jwtManager.CreateToken()
	if err != nil {
		h.logger.WithError(err).Error("failed to create admin token")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}
