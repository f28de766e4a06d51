package server

import (
	"fmt"

	"github.com/OpenFunnel/ActionGate/pkg/config"
	handlers "github.com/OpenFunnel/ActionGate/pkg/handlers/http"
	"github.com/OpenFunnel/ActionGate/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	GatewayServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	GatewayServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewGatewayServer(di GatewayServerDI) *GatewayServer {
	return &GatewayServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *GatewayServer) Run() error {
	// Set up routes
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()
	// Start the server
	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("Starting gateway server")
	return s.Router.Listen(addr)
}

func (s *GatewayServer) setupRoutes() {
	baseRouter := s.Router.Group("")
	s.addRoutes(baseRouter)
}

func (s *GatewayServer) addRoutes(router fiber.Router) {
	// Invocation surfaces; the method gate runs against the stored
	// definition, not the route table.
	router.All("/endpoints/:slug", s.handlerTransport.InvokeEndpointHandler.Handle)
	router.Post("/webhooks/:slug", s.handlerTransport.InvokeWebhookHandler.Handle)

	v1 := router.Group("/api/v1")
	{
		v1.Post("/auth/login", s.handlerTransport.LoginHandler.Handle)

		definitions := v1.Group("/definitions", s.middlewareTransport.AdminAuthMiddleware.Middleware())
		{
			definitions.Post("", s.handlerTransport.CreateDefinitionHandler.Handle)
			definitions.Get("", s.handlerTransport.ListDefinitionsHandler.Handle)
			definitions.Get("/:id", s.handlerTransport.GetDefinitionHandler.Handle)
			definitions.Put("/:id", s.handlerTransport.UpdateDefinitionHandler.Handle)
			definitions.Delete("/:id", s.handlerTransport.DeleteDefinitionHandler.Handle)
		}
	}
}

func (s *GatewayServer) Shutdown() error {
	return s.Router.Shutdown()
}
