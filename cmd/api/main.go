package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"storefront-checkout/internal/client"
	"storefront-checkout/internal/config"
	"storefront-checkout/internal/logger"
	"storefront-checkout/internal/pricing"
	"storefront-checkout/internal/repository"
	"storefront-checkout/internal/server"
	"storefront-checkout/internal/service"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Environment, cfg.Log)
	if err != nil {
		fmt.Printf("Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	policy, err := pricing.NewPolicy(map[string]pricing.Rule{
		client.GatewayYoco:     pricing.Rule(cfg.Shipping.Yoco),
		client.GatewaySnapscan: pricing.Rule(cfg.Shipping.Snapscan),
	})
	if err != nil {
		log.Fatal("invalid shipping rules", zap.Error(err))
	}

	db, err := client.InitDBClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}

	yocoClient := client.NewYocoClient(&cfg.Yoco, cfg.HTTP.ClientTimeout, log)
	snapscanClient := client.NewSnapscanClient(&cfg.Snapscan, cfg.HTTP.ClientTimeout, log)
	paystackClient := client.NewPaystackClient(&cfg.Paystack, cfg.HTTP.ClientTimeout, log)
	mailClient := client.NewSMTPMailClient(&cfg.SMTP, cfg.Mail.From)

	notificationLogRepo := repository.NewNotificationLogRepository(db)

	yocoService := service.NewYocoService(
		yocoClient,
		policy.For(client.GatewayYoco),
		cfg.Yoco.CallbackURL,
		log,
	)
	snapscanService := service.NewSnapscanService(
		snapscanClient,
		mailClient,
		notificationLogRepo,
		policy.For(client.GatewaySnapscan),
		cfg.Snapscan.MerchantID,
		cfg.Snapscan.ReturnURL,
		cfg.Mail.MerchantEmail,
		log,
	)
	paystackService := service.NewPaystackService(paystackClient, log)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(yocoService, snapscanService, paystackService, log)

	log.Info("starting HTTP server",
		zap.String("addr", serverAddr),
		zap.String("yoco_rule", cfg.Shipping.Yoco),
		zap.String("snapscan_rule", cfg.Shipping.Snapscan),
	)
	go func() {
		if err := srv.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	}
	if err := mailClient.Close(); err != nil {
		log.Error("mail client close error", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info("shutdown complete")
}
