package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatorder-service/config"
	_ "chatorder-service/docs"
	"chatorder-service/internal/cache"
	"chatorder-service/internal/database"
	"chatorder-service/internal/logger"
	"chatorder-service/internal/paystack"
	"chatorder-service/internal/producer"
	"chatorder-service/internal/repository"
	"chatorder-service/internal/service"
	transport "chatorder-service/internal/transport/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @Title ChatOrder API
// @Version 1.0
// @Description Conversational restaurant ordering with Paystack payments
// @BasePath /
func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)

	var menuCache service.MenuCache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			time.Duration(cfg.Redis.TTLSeconds)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		menuCache = redisClient
	}

	// Event bus is optional: without brokers configured, publishing is off
	var events service.EventBus
	if len(cfg.Kafka.Brokers) > 0 {
		orderEvents := producer.NewOrderEventProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer orderEvents.Close()
		events = orderEvents
		log.Info("kafka order events enabled", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	var gateway service.PaymentGateway
	if cfg.Paystack.SecretKey != "" {
		gateway = paystack.New(cfg.Paystack.SecretKey, cfg.Paystack.BaseURL, log)
		log.Info("paystack gateway configured")
	} else {
		log.Warn("PAYSTACK_SECRET_KEY is not set, payment operations will be rejected")
	}

	menuSvc := service.NewMenuService(repos.MenuItems, menuCache, log)
	orderSvc := service.NewOrderService(repos, events)
	paymentSvc := service.NewPaymentService(repos, gateway, events, cfg.Paystack.CallbackURL, log)
	chatSvc := service.NewChatService(repos.Sessions, menuSvc, orderSvc, paymentSvc, log)

	r := transport.Router(chatSvc, orderSvc, menuSvc, paymentSvc, log)

	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("starting chat-order HTTP server", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down chat-order HTTP server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}
	log.Info("chat-order HTTP server stopped gracefully")
}
