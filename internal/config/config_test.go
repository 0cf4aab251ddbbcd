package config

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "test_db_password")
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "TASA_USD", "TASA_MLC"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	setTestEnv(t)

	cfg, err := Load()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "monedero", cfg.Database.Name)
	assert.Equal(t, "monedero", cfg.Database.User)
	assert.True(t, cfg.Rates.USD.Equal(decimal.NewFromInt(370)))
	assert.True(t, cfg.Rates.MLC.Equal(decimal.NewFromInt(260)))
}

func TestLoad_CustomRates(t *testing.T) {
	setTestEnv(t)
	t.Setenv("TASA_USD", "395.5")
	t.Setenv("TASA_MLC", "275")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.True(t, cfg.Rates.USD.Equal(decimal.RequireFromString("395.5")))
	assert.True(t, cfg.Rates.MLC.Equal(decimal.NewFromInt(275)))
}

func TestLoad_InvalidRate(t *testing.T) {
	setTestEnv(t)
	t.Setenv("TASA_USD", "not-a-number")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "TASA_USD")
}

func TestLoad_NonPositiveRate(t *testing.T) {
	setTestEnv(t)
	t.Setenv("TASA_MLC", "0")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "TASA_MLC")
}

func TestLoad_MissingBotToken(t *testing.T) {
	setTestEnv(t)
	os.Unsetenv("BOT_TOKEN")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_MissingDBPassword(t *testing.T) {
	setTestEnv(t)
	os.Unsetenv("DB_PASSWORD")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}
