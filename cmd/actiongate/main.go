package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OpenFunnel/ActionGate/pkg/app/definition"
	"github.com/OpenFunnel/ActionGate/pkg/cache"
	"github.com/OpenFunnel/ActionGate/pkg/common"
	"github.com/OpenFunnel/ActionGate/pkg/config"
	handlers "github.com/OpenFunnel/ActionGate/pkg/handlers/http"
	"github.com/OpenFunnel/ActionGate/pkg/infra/crm"
	"github.com/OpenFunnel/ActionGate/pkg/infra/database"
	"github.com/OpenFunnel/ActionGate/pkg/infra/jwt"
	infraLogger "github.com/OpenFunnel/ActionGate/pkg/infra/logger"
	"github.com/OpenFunnel/ActionGate/pkg/infra/metrics"
	"github.com/OpenFunnel/ActionGate/pkg/infra/repository"
	"github.com/OpenFunnel/ActionGate/pkg/middleware"
	"github.com/OpenFunnel/ActionGate/pkg/pipeline"
	"github.com/OpenFunnel/ActionGate/pkg/server"
	"github.com/joho/godotenv"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	// Load configuration
	if err := config.Load("./config"); err != nil {
		log.Printf("config: %v", err)
	}
	cfg := config.GetConfig()

	logger := infraLogger.NewLogger(cfg.Server.LogLevel)

	// Initialize database
	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	cacheInstance, err := cache.NewCache(common.CacheConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize cache: %v", err)
	}

	metrics.Initialize()

	// repository
	endpointRepository := repository.NewEndpointRepository(db.DB)

	// service
	definitionFinder := definition.NewFinder(endpointRepository, cacheInstance, logger)
	jwtManager := jwt.NewJwtManager(&cfg.Server)
	authGate := pipeline.NewAuthGate(jwtManager)
	crmClient := crm.NewClient(cfg.CRM, logger)
	executor := pipeline.NewExecutor(
		logger,
		crmClient,
		&http.Client{Timeout: 30 * time.Second},
		cfg.CRM.LocationID,
	)

	// middleware
	middlewareTransport := middleware.Transport{
		AdminAuthMiddleware: middleware.NewAdminAuthMiddleware(logger, jwtManager),
	}

	// Handler Transport
	handlerTransport := handlers.HandlerTransport{
		// Invocation
		InvokeEndpointHandler: handlers.NewInvokeEndpointHandler(logger, definitionFinder, authGate, executor),
		InvokeWebhookHandler:  handlers.NewInvokeWebhookHandler(logger, definitionFinder, authGate, executor),
		// Admin
		LoginHandler:            handlers.NewLoginHandler(logger, &cfg.Server, jwtManager),
		CreateDefinitionHandler: handlers.NewCreateDefinitionHandler(logger, endpointRepository),
		ListDefinitionsHandler:  handlers.NewListDefinitionsHandler(logger, endpointRepository),
		GetDefinitionHandler:    handlers.NewGetDefinitionHandler(logger, endpointRepository),
		UpdateDefinitionHandler: handlers.NewUpdateDefinitionHandler(logger, endpointRepository, definitionFinder),
		DeleteDefinitionHandler: handlers.NewDeleteDefinitionHandler(logger, endpointRepository, definitionFinder),
	}

	srv := server.NewGatewayServer(server.GatewayServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}
