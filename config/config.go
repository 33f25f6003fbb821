package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"time"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	ForecastBaseURL  string
	GeocodingBaseURL string

	SessionTTL             time.Duration
	SessionCleanupInterval time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-widget")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 15)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FORECAST_BASE_URL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("GEOCODING_BASE_URL", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("SESSION_TTL", 12*time.Hour)
	v.SetDefault("SESSION_CLEANUP_INTERVAL", 10*time.Minute)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:            v.GetString("SERVICE_NAME"),
		ServerAddress:          v.GetString("SERVER_ADDRESS"),
		DBName:                 v.GetString("DATABASE_NAME"),
		DBPassword:             v.GetString("DATABASE_PASSWORD"),
		DBUser:                 v.GetString("DATABASE_USER"),
		DBPort:                 v.GetString("DATABASE_PORT"),
		DBHost:                 v.GetString("DATABASE_HOST"),
		Env:                    v.GetString("ENV"),
		LogLevel:               v.GetString("LOG_LEVEL"),
		HTTPTimeout:            v.GetInt32("HTTP_TIMEOUT"),
		ForecastBaseURL:        v.GetString("FORECAST_BASE_URL"),
		GeocodingBaseURL:       v.GetString("GEOCODING_BASE_URL"),
		SessionTTL:             v.GetDuration("SESSION_TTL"),
		SessionCleanupInterval: v.GetDuration("SESSION_CLEANUP_INTERVAL"),
	}

	if config.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be positive, got %d", config.HTTPTimeout)
	}
	if config.SessionTTL <= 0 || config.SessionCleanupInterval <= 0 {
		return nil, fmt.Errorf("SESSION_TTL and SESSION_CLEANUP_INTERVAL must be positive")
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// UseDatabase reports whether the theme preference is kept in Postgres.
func (c *Config) UseDatabase() bool {
	return c.DBHost != ""
}
