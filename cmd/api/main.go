package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "limpeza_xpto/docs"
	"limpeza_xpto/internal/adapter/http/routes"
	"limpeza_xpto/internal/infrastructure/config"
	"limpeza_xpto/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Limpeza Booking API
// @version         1.0
// @description     Cleaning-service bookings: crew assignment, customer mirrors, crew ledgers and payments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewLogger("production", "info").Fatal("[main] invalid configuration", "error", err)
	}
	log := logger.NewLogger(cfg.AppEnv, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := routes.NewServer(ctx, cfg, log)
	if err != nil {
		log.Fatal("[main] failed to startup the application", "error", err)
	}
	if err := srv.Run(ctx); err != nil {
		log.Error("[main] server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("[main] server stopped")
}
