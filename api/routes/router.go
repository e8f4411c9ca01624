package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lokoloapp/lokolo-backend/api/controllers"
	"github.com/lokoloapp/lokolo-backend/api/middleware"
	"github.com/lokoloapp/lokolo-backend/internal/businesses"
	"github.com/lokoloapp/lokolo-backend/internal/dashboard"
	"github.com/lokoloapp/lokolo-backend/internal/favorites"
	"github.com/lokoloapp/lokolo-backend/internal/photos"
	"github.com/lokoloapp/lokolo-backend/internal/search"
	"github.com/lokoloapp/lokolo-backend/internal/users"
	"github.com/lokoloapp/lokolo-backend/pkg/config"
	"github.com/lokoloapp/lokolo-backend/pkg/logger"
	"github.com/lokoloapp/lokolo-backend/pkg/metrics"
	"github.com/lokoloapp/lokolo-backend/pkg/redis"
)

// Dependencies carries the infrastructure handles the router needs beyond
// the domain services.
type Dependencies struct {
	Redis       *redis.Client
	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer
	Health      map[string]controllers.HealthPinger
}

// Services groups the domain services exposed over HTTP.
type Services struct {
	Users      users.Service
	Businesses businesses.Service
	Search     search.Service
	Photos     photos.Service
	Favorites  favorites.Service
	Dashboard  dashboard.Service
}

func NewRouter(cfg *config.Config, logg *logger.Logger, deps Dependencies, svcs Services) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)
	if deps.HTTPMetrics != nil {
		r.Use(middleware.Metrics(deps.HTTPMetrics))
	}

	syncPolicy := middleware.NewAuthRateLimitPolicy(
		"sync",
		cfg.AuthRateLimit.SyncWindow,
		cfg.AuthRateLimit.SyncIPLimit,
		cfg.AuthRateLimit.SyncUIDLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.Health))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Identity(cfg.Auth, logg))

		if deps.Redis != nil {
			r.With(middleware.AuthRateLimit(syncPolicy, deps.Redis, logg)).
				Post("/auth/sync-user", controllers.AuthSyncUser(svcs.Users, logg))
		} else {
			r.Post("/auth/sync-user", controllers.AuthSyncUser(svcs.Users, logg))
		}

		r.Route("/users/{uid}", func(r chi.Router) {
			r.Get("/", controllers.UserGet(svcs.Users, logg))
			r.Put("/", controllers.UserUpdate(svcs.Users, logg))
		})

		r.Route("/businesses", func(r chi.Router) {
			r.Post("/", controllers.BusinessCreate(svcs.Businesses, logg))
			r.Get("/", controllers.BusinessList(svcs.Businesses, logg))
			r.Get("/search", controllers.SearchBrowse(svcs.Search, logg))
			r.Post("/search", controllers.SearchRadius(svcs.Search, logg))
			r.Route("/{businessId}", func(r chi.Router) {
				r.Get("/", controllers.BusinessGet(svcs.Businesses, logg))
				r.Put("/", controllers.BusinessUpdate(svcs.Businesses, logg))
				r.Delete("/", controllers.BusinessDelete(svcs.Businesses, logg))
				r.Get("/photos", controllers.PhotoList(svcs.Photos, logg))
			})
		})

		r.Route("/upload", func(r chi.Router) {
			r.Post("/", controllers.PhotoUpload(svcs.Photos, logg))
			r.Delete("/", controllers.PhotoDelete(svcs.Photos, logg))
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", controllers.FavoriteList(svcs.Favorites, logg))
			r.Post("/", controllers.FavoriteAdd(svcs.Favorites, logg))
			r.Delete("/", controllers.FavoriteRemove(svcs.Favorites, logg))
		})

		r.Get("/consumer/favorites", controllers.ConsumerFavoriteList(svcs.Favorites, logg))
		r.Get("/supplier/dashboard", controllers.SupplierDashboard(svcs.Dashboard, logg))
	})

	return r
}
