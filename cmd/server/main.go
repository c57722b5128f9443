package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardlink/internal/cache"
	"cardlink/internal/config"
	"cardlink/internal/handler"
	"cardlink/internal/kafka"
	"cardlink/internal/observability"
	"cardlink/internal/outbox"
	"cardlink/internal/repository"
	"cardlink/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	// Observability
	observability.InitLogger(cfg.ServiceName)
	log := observability.Log

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	db, err := repository.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db open failed", zap.Error(err))
	}

	// HTTP server for observability (metrics & health)
	obsMux := chi.NewRouter()
	if cfg.MetricsEnabled {
		obsMux.Use(observability.MetricsMiddleware(cfg.ServiceName))
	}
	obsMux.Handle("/metrics", promhttp.Handler())
	obsMux.Get("/health/live", observability.HealthLiveHandler)
	obsMux.Get("/health/ready", observability.HealthReadyHandler(db))

	go func() {
		log.Info("HTTP observability server started", zap.String("addr", cfg.ObsHTTPAddr))
		if err := http.ListenAndServe(cfg.ObsHTTPAddr, obsMux); err != nil {
			log.Error("HTTP observability server failed", zap.Error(err))
		}
	}()

	// Redis
	rdb := cache.New(cfg.RedisAddr)
	cardCache := &cache.CardCache{R: rdb}

	// Repositories
	profileRepo := &repository.ProfileRepo{DB: db}
	connectionRepo := &repository.ConnectionRepo{DB: db}
	outboxRepo := outbox.NewRepository(db)

	// Services
	profileSvc := &service.ProfileService{
		Repo:   profileRepo,
		Cache:  cardCache,
		Outbox: outboxRepo,
	}
	cardSvc := &service.CardService{
		Repo:  profileRepo,
		Cache: cardCache,
	}
	connectionSvc := &service.ConnectionService{
		Repo:        connectionRepo,
		ProfileRepo: profileRepo,
		Outbox:      outboxRepo,
	}

	// Kafka producer + outbox publisher
	producer := kafka.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	publisher := outbox.NewPublisher(outboxRepo, producer)
	go publisher.Start(ctx)

	// Kafka consumer — seed profile rows on user registration
	go kafka.StartUserCreatedConsumer(ctx, cfg.KafkaBrokers, profileRepo)

	// HTTP server
	mux := handler.NewRouter(cfg, profileSvc, cardSvc, connectionSvc, db)
	srv := &http.Server{Addr: ":" + cfg.HTTPPort, Handler: mux}

	go func() {
		log.Info("cardlink HTTP started", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("received signal, initiating shutdown")
	cancel() // stop outbox publisher + kafka consumer

	ctxShut, shutCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutCancel()

	_ = srv.Shutdown(ctxShut)
	log.Info("cardlink stopped")
}
