package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"asaas-integration-service/internal/client"
	"asaas-integration-service/internal/config"
	"asaas-integration-service/internal/repository"
	"asaas-integration-service/internal/server"
	"asaas-integration-service/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		log.WithError(err).Fatal("failed to parse config")
	}

	setupLogger(&cfg.Log)

	environment := "sandbox"
	if cfg.Asaas.UseProduction {
		environment = "production"
	}
	log.WithFields(log.Fields{
		"environment": environment,
		"api_key":     maskKey(cfg.Asaas.APIKey()),
		"base_url":    cfg.Asaas.BaseURL(),
	}).Info("asaas gateway configured")

	db := client.InitMysqlClient(cfg.DatabaseURL)
	asaasClient := client.NewAsaasClient(&cfg.Asaas)

	paymentRepo := repository.NewPaymentRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	emailConfigRepo := repository.NewEmailConfigRepository(db)

	paymentService := service.NewPaymentService(
		asaasClient,
		cfg.Asaas.APIKey(),
		paymentRepo,
		orderRepo,
		emailConfigRepo,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(paymentService)

	log.WithField("addr", serverAddr).Info("starting HTTP server")
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.WithError(err).Fatal("HTTP server shutdown error")
	}
}

func setupLogger(cfg *config.Log) {
	log.SetOutput(os.Stdout)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) > 8 {
		key = key[:8]
	}
	return key + "..."
}
