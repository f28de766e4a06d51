package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(c *fiber.Ctx) error
}

type HandlerTransport struct {
	// Invocation surfaces
	InvokeEndpointHandler Handler
	InvokeWebhookHandler  Handler
	// Admin
	LoginHandler            Handler
	CreateDefinitionHandler Handler
	ListDefinitionsHandler  Handler
	GetDefinitionHandler    Handler
	UpdateDefinitionHandler Handler
	DeleteDefinitionHandler Handler
}
