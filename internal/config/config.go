package config

import (
	"fmt"
	"os"

	"monedero/internal/domain"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all application configuration
type Config struct {
	BotToken string
	Database DatabaseConfig
	Rates    domain.ExchangeRates
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "monedero"),
			User:     getEnv("DB_USER", "monedero"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	usd, err := parseRate("TASA_USD", "370")
	if err != nil {
		return nil, err
	}
	mlc, err := parseRate("TASA_MLC", "260")
	if err != nil {
		return nil, err
	}
	cfg.Rates = domain.ExchangeRates{USD: usd, MLC: mlc}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func parseRate(key, defaultValue string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(getEnv(key, defaultValue))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s must be a number: %w", key, err)
	}
	if !rate.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%s must be positive", key)
	}
	return rate, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
