package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"chaibisket/internal/handler"
	"chaibisket/internal/repositories"
	"chaibisket/internal/router"
	"chaibisket/internal/service"
	"chaibisket/pkg/consul"
	"chaibisket/pkg/database"
	"chaibisket/pkg/envconfig"
	"chaibisket/pkg/flags"
	"chaibisket/pkg/logger"
	"chaibisket/pkg/shutdownsetup"
	"chaibisket/pkg/storage"
	"chaibisket/pkg/storage/filestore"
	"chaibisket/pkg/storage/postgresstore"
	"chaibisket/pkg/storage/redisstore"
)

func main() {
	flagConfig := flags.Parse()

	if err := flagConfig.Validate(); err != nil {
		fmt.Printf("Configuration error: %v\n", err)
		return
	}

	envErr := envconfig.LoadEnvFile(".env")

	loggerConfig := logger.Config{
		Level:        envconfig.GetLogLevel(),
		Format:       envconfig.GetEnv("LOG_FORMAT", "json"),
		Output:       envconfig.GetEnv("LOG_OUTPUT", "stdout"),
		EnableCaller: envconfig.GetEnvBool("LOG_ENABLE_CALLER", true),
		Environment:  envconfig.GetEnv("ENVIRONMENT", "development"),
	}

	appLogger := logger.New(loggerConfig)

	if envErr != nil {
		appLogger.Warn("Failed to load .env file", "error", envErr)
	} else {
		appLogger.Debug(".env file loaded successfully")
	}

	appLogger.Info("Starting Chai Bisket ordering service",
		"environment", loggerConfig.Environment,
		"log_level", loggerConfig.Level,
		"storage", flagConfig.Storage)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, cleanups, err := openStore(ctx, flagConfig, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open storage backend", "error", err)
	}
	cleanups = append(cleanups, store.Close)

	menuRepo := repositories.NewMenuRepository(appLogger)
	cartRepo := repositories.NewCartRepository(store, appLogger)
	accountRepo := repositories.NewAccountRepository(store, appLogger)
	orderRepo := repositories.NewOrderRepository(store, appLogger)
	checkoutRepo := repositories.NewCheckoutRepository(store, appLogger)

	menuService := service.NewMenuService(menuRepo, appLogger)
	cartService := service.NewCartService(cartRepo, menuRepo, appLogger)
	accountService := service.NewAccountService(accountRepo, appLogger)
	orderService := service.NewOrderService(orderRepo, accountRepo, appLogger)
	checkoutService := service.NewCheckoutService(cartRepo, menuRepo, orderRepo, accountRepo, checkoutRepo, appLogger)
	contactService := service.NewContactService(envconfig.LoadContactConfig(), nil, appLogger)

	menuService.Refresh(time.Now())
	menuService.StartClock(ctx)

	handlers := router.Handlers{
		Menu:     handler.NewMenuHandler(menuService, appLogger),
		Cart:     handler.NewCartHandler(cartService, appLogger),
		Checkout: handler.NewCheckoutHandler(checkoutService, appLogger),
		Account:  handler.NewAccountHandler(accountService, orderService, appLogger),
		Order:    handler.NewOrderHandler(orderService, appLogger),
		Contact:  handler.NewContactHandler(contactService, appLogger),
		Health:   handler.NewHealthHandler(appLogger),
	}

	host := envconfig.GetEnv("HOST", "")
	port := flagConfig.Port
	if port == "" {
		port = envconfig.GetEnv("PORT", "8080")
	}

	server := &http.Server{
		Addr:         host + ":" + port,
		Handler:      router.New(handlers, appLogger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if consul.Enabled() {
		portNum, _ := strconv.Atoi(port)
		consulClient, err := consul.NewClient(portNum, appLogger)
		if err != nil {
			appLogger.Error("Failed to create Consul client", "error", err)
		} else if err := consulClient.WaitForConsul(5); err != nil {
			appLogger.Error("Consul agent not reachable", "error", err)
		} else if err := consulClient.RegisterService(); err != nil {
			appLogger.Error("Failed to register with Consul", "error", err)
		} else {
			cleanups = append(cleanups, consulClient.DeregisterService)
		}
	}

	go func() {
		appLogger.Info("Starting HTTP server", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Server error", "error", err)
		}
	}()

	shutdownsetup.SetupGracefulShutdown(server, appLogger, cleanups...)
}

// openStore selects the storage driver picked on the command line.
// Cleanups are returned separately so the shutdown hook can close
// connections the store does not own, like the shared Postgres pool.
func openStore(ctx context.Context, flagConfig flags.Config, log *logger.Logger) (storage.Store, []func() error, error) {
	switch flagConfig.Storage {
	case "postgres":
		db, err := database.NewConnection(envconfig.LoadDatabaseConfig(), log)
		if err != nil {
			return nil, nil, err
		}
		store, err := postgresstore.New(db, log)
		if err != nil {
			if closeErr := db.Close(); closeErr != nil {
				log.Error("Failed to close database connection", "error", closeErr)
			}
			return nil, nil, err
		}
		// store.Close owns the connection from here on.
		return store, nil, nil

	case "redis":
		store, err := redisstore.New(ctx, redisstore.Config{
			Addr:     envconfig.GetEnv("REDIS_ADDR", "localhost:6379"),
			Password: envconfig.GetEnv("REDIS_PASSWORD", ""),
			DB:       envconfig.GetEnvInt("REDIS_DB", 0),
		}, log)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil

	default:
		store, err := filestore.New(flagConfig.DataDir, log)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	}
}
