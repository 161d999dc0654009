package config

import (
	"os"
	"strconv"
	"strings"

	"chatorder-service/internal/database"

	"go.uber.org/zap"
)

type Config struct {
	Port string
	DB   DB

	Redis    Redis
	Kafka    Kafka
	Paystack Paystack
}

type DB struct {
	database.Config
}

type Redis struct {
	Enabled    bool
	Addr       string
	Password   string
	DB         int
	TTLSeconds int
}

type Kafka struct {
	Brokers []string
	Topic   string
}

type Paystack struct {
	// SecretKey may be empty: the service runs without payments and reports
	// the gateway as not configured on payment operations.
	SecretKey   string
	BaseURL     string
	CallbackURL string
}

func Load(log *zap.Logger) *Config {
	return &Config{
		Port: getEnv("APP_PORT", log),
		DB: DB{
			Config: database.Config{
				Host:     getEnv("DB_HOST", log),
				Port:     getEnv("DB_PORT", log),
				User:     getEnv("DB_USER", log),
				Password: getEnv("DB_PASSWORD", log),
				Name:     getEnv("DB_NAME", log),
				SSLMode:  getEnv("DB_SSLMODE", log),
			},
		},
		Redis: Redis{
			Enabled:    os.Getenv("REDIS_ENABLED") == "true",
			Addr:       getEnvDefault("REDIS_ADDR", "localhost:6379"),
			Password:   os.Getenv("REDIS_PASSWORD"),
			DB:         atoiDefault(os.Getenv("REDIS_DB"), 0),
			TTLSeconds: atoiDefault(os.Getenv("CACHE_TTL_SECONDS"), 60),
		},
		Kafka: Kafka{
			Brokers: splitAndTrim(os.Getenv("KAFKA_BROKERS")),
			Topic:   getEnvDefault("KAFKA_TOPIC_ORDER_EVENTS", "order-events"),
		},
		Paystack: Paystack{
			SecretKey:   os.Getenv("PAYSTACK_SECRET_KEY"),
			BaseURL:     os.Getenv("PAYSTACK_BASE_URL"),
			CallbackURL: getEnvDefault("FRONTEND_URL", "http://localhost:3000"),
		},
	}
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("required environment variable is not set", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
