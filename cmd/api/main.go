package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lokoloapp/lokolo-backend/api/controllers"
	"github.com/lokoloapp/lokolo-backend/api/routes"
	"github.com/lokoloapp/lokolo-backend/internal/businesses"
	"github.com/lokoloapp/lokolo-backend/internal/dashboard"
	"github.com/lokoloapp/lokolo-backend/internal/favorites"
	"github.com/lokoloapp/lokolo-backend/internal/photos"
	"github.com/lokoloapp/lokolo-backend/internal/search"
	"github.com/lokoloapp/lokolo-backend/internal/users"
	"github.com/lokoloapp/lokolo-backend/pkg/config"
	"github.com/lokoloapp/lokolo-backend/pkg/db"
	"github.com/lokoloapp/lokolo-backend/pkg/logger"
	"github.com/lokoloapp/lokolo-backend/pkg/maps"
	"github.com/lokoloapp/lokolo-backend/pkg/metrics"
	"github.com/lokoloapp/lokolo-backend/pkg/migrate"
	"github.com/lokoloapp/lokolo-backend/pkg/redis"
	"github.com/lokoloapp/lokolo-backend/pkg/storage/gcs"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	gcsClient, err := gcs.NewClient(context.Background(), cfg.GCS, cfg.GCP, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap gcs", err)
		os.Exit(1)
	}

	var placesClient *maps.Client
	if cfg.GoogleMaps.APIKey != "" {
		placesClient, err = maps.NewClient(cfg.GoogleMaps.APIKey)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap google maps", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "google maps api key missing, place enrichment disabled")
	}

	usersService, err := users.NewService(users.NewRepository(dbClient.DB()), cfg.FeatureFlags.SyncFallback, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	photosService, err := photos.NewService(photos.NewRepository(dbClient.DB()), gcsClient, cfg.Photos, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create photos service", err)
		os.Exit(1)
	}

	var places businesses.PlaceResolver
	if placesClient != nil {
		places = placesClient
	}
	businessesService, err := businesses.NewService(businesses.NewRepository(dbClient.DB()), places, photosService, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create businesses service", err)
		os.Exit(1)
	}

	searchService, err := search.NewService(search.NewRepository(dbClient.DB()), cfg.Search, cfg.FeatureFlags.SearchFallback, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create search service", err)
		os.Exit(1)
	}

	favoritesService, err := favorites.NewService(favorites.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create favorites service", err)
		os.Exit(1)
	}

	dashboardService, err := dashboard.NewService(dashboard.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	deps := routes.Dependencies{
		Redis:       redisClient,
		HTTPMetrics: httpMetrics,
		Gatherer:    registry,
		Health: map[string]controllers.HealthPinger{
			"database": dbClient,
			"redis":    redisClient,
			"gcs":      gcsClient,
		},
	}
	svcs := routes.Services{
		Users:      usersService,
		Businesses: businessesService,
		Search:     searchService,
		Photos:     photosService,
		Favorites:  favoritesService,
		Dashboard:  dashboardService,
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, deps, svcs),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
