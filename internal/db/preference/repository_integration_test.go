package preference_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
	"ulascansenturk/weather-widget/internal/db/preference"
	"ulascansenturk/weather-widget/internal/theme"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgTestContainers "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	dbName     = "test_widget_database"
	dbUser     = "test_user"
	dbPassword = "test_password"
)

func setupPostgres(t *testing.T) *gorm.DB {
	ctx := context.Background()

	container, err := pgTestContainers.Run(ctx,
		"postgres:13.3",
		pgTestContainers.WithDatabase(dbName),
		pgTestContainers.WithUsername(dbUser),
		pgTestContainers.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	parts := strings.Split(endpoint, ":")
	port := parts[len(parts)-1]

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, dbUser, dbPassword, dbName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&preference.Preference{}))

	return db
}

func TestThemePersistsInPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	db := setupPostgres(t)
	ctx := context.Background()
	repo := preference.NewRepository(db)

	settings := theme.NewSettings(repo)
	require.NoError(t, settings.Init(ctx))
	require.Equal(t, theme.Light, settings.Current(false))

	_, err := settings.Toggle(ctx, false)
	require.NoError(t, err)
	_, err = settings.Toggle(ctx, false)
	require.NoError(t, err)
	next, err := settings.Toggle(ctx, false)
	require.NoError(t, err)
	require.Equal(t, theme.Dark, next)

	var count int64
	require.NoError(t, db.Model(&preference.Preference{}).Count(&count).Error)
	require.Equal(t, int64(1), count)

	reloaded := theme.NewSettings(preference.NewRepository(db))
	require.NoError(t, reloaded.Init(ctx))
	require.Equal(t, theme.Dark, reloaded.Current(false))
}
