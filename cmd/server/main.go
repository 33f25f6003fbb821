package main

import (
	"context"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"
	"ulascansenturk/weather-widget/config"
	"ulascansenturk/weather-widget/internal/api/v1/handlers"
	"ulascansenturk/weather-widget/internal/db/preference"
	"ulascansenturk/weather-widget/internal/providers"
	"ulascansenturk/weather-widget/internal/service"
	"ulascansenturk/weather-widget/internal/sessionstore"
	"ulascansenturk/weather-widget/internal/theme"
	"ulascansenturk/weather-widget/internal/view"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	prefStore, err := initializePreferenceStore(conf)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize preference store")
	}

	settings := theme.NewSettings(prefStore)
	if err := settings.Init(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to load theme preference")
	}

	fetcher := providers.NewJSONClient(conf.HTTPTimeoutDuration())
	geocoder := providers.NewGeocodingClient(fetcher, conf.GeocodingBaseURL)
	forecaster := providers.NewForecastClient(fetcher, conf.ForecastBaseURL)

	weatherService := service.NewWeatherService(geocoder, forecaster)

	sessions := sessionstore.NewInMemoryStore(conf.SessionTTL, conf.SessionCleanupInterval)
	defer sessions.Close()

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load page templates")
	}

	handler := handlers.NewWidgetHandler(
		conf.ServiceName,
		weatherService,
		sessions,
		settings,
		renderer,
		conf.HTTPTimeoutDuration(),
	)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	go shutdownOnSignal(ctx, mainCtxStop, httpServer)

	log.Info().Str("address", conf.ServerAddress).Msg("widget server started")

	if serverErr := httpServer.ListenAndServe(); serverErr != nil && serverErr != http.ErrServerClosed {
		log.Err(serverErr).Msg("server stopped")
		mainCtxStop()
	}
	<-ctx.Done()
}

func initializePreferenceStore(config *config.Config) (theme.PreferenceStore, error) {
	if !config.UseDatabase() {
		log.Warn().Msg("DATABASE_HOST not set, theme preference is kept in memory only")
		return theme.NewMemoryStore(), nil
	}

	db, err := initializeDatabase(config)
	if err != nil {
		return nil, err
	}
	return preference.NewRepository(db), nil
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&preference.Preference{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

// shutdownOnSignal drains the server on the first termination signal and then
// releases the main context.
func shutdownOnSignal(ctx context.Context, stop context.CancelFunc, server *http.Server) {
	const shutdownDuration = 30 * time.Second

	sigCtx, sigStop := signal.NotifyContext(ctx, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer sigStop()

	<-sigCtx.Done()
	defer stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownDuration)
	defer cancel()

	log.Info().Msg("shutting down")
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
