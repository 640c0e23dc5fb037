package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mpayalal/bridge-lotso-delete/internal/auth"
	"github.com/mpayalal/bridge-lotso-delete/internal/client"
	"github.com/mpayalal/bridge-lotso-delete/internal/config"
	"github.com/mpayalal/bridge-lotso-delete/internal/core/port"
	"github.com/mpayalal/bridge-lotso-delete/internal/core/service"
	"github.com/mpayalal/bridge-lotso-delete/internal/infrastructure/amqp"
	"github.com/mpayalal/bridge-lotso-delete/internal/server"
	"github.com/mpayalal/bridge-lotso-delete/internal/storage"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	amqpClient := amqp.NewClient(cfg.Broker.URL(), cfg.Broker.DialTimeout)
	defer amqpClient.Close()

	// Declare the queues up front so consumers can bind before the first
	// request. A broker that is still starting up only delays us until the
	// dial timeout; the gateway keeps retrying on demand afterwards.
	topologyCtx, topologyCancel := context.WithTimeout(context.Background(), cfg.Broker.DialTimeout)
	if err := amqp.NewTopologyManager(amqpClient).Setup(topologyCtx); err != nil {
		log.WithError(err).Warn("AMQP topology setup deferred; queues will be declared on first publish")
	}
	topologyCancel()

	publisher := amqp.NewPublisher(amqpClient, cfg.Broker.PublishTimeout)
	notifier := client.NewAMQPNotifier(publisher)
	events := service.NewEventService(notifier)

	var users port.UserStorage
	var files port.FileStorage
	if cfg.Database != nil {
		db, err := storage.NewPostgresDB(context.Background(), cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		users = storage.NewUsersStorage(db)
		files = storage.NewFilesStorage(db)
	}

	var verifier auth.TokenVerifier
	if cfg.AllowUnverifiedTokens {
		log.Warn("Token signature verification is disabled")
		verifier = auth.UnverifiedParser{}
	} else {
		verifier = auth.NewHMACVerifier(cfg.JWTSecret)
	}
	resolver := auth.NewResolver(verifier, users)

	httpServer := server.NewHTTPServer(resolver, events, files)

	go func() {
		if err := httpServer.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	log.Info("Event gateway started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down event gateway...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
}
