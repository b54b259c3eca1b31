package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DB            DBConfig
	RedisAddr     string
	KafkaBrokers  string // comma-separated; empty disables order events
	AdminPassword string
	JWTSecret     string
	OfferPrice    float64
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("DB_PORT", "3306"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	offerPrice, err := strconv.ParseFloat(getEnv("OFFER_PRICE", "5.00"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFER_PRICE: %w", err)
	}
	if offerPrice < 0 {
		return nil, fmt.Errorf("OFFER_PRICE must be >= 0")
	}

	return &Config{
		Port: getEnv("PORT", "8080"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASS", ""),
			Database: getEnv("DB_NAME", "lunchmenu"),
		},
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers:  getEnv("KAFKA_BROKERS", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		OfferPrice:    offerPrice,
	}, nil
}

// DSN returns a go-sql-driver/mysql connection string. parseTime is required
// so TIMESTAMP columns scan into time.Time.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", c.User, c.Password, c.Host, c.Port, c.Database)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
