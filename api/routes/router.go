package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/RostislavK636/B2B-marketplace/api/controllers"
	"github.com/RostislavK636/B2B-marketplace/api/middleware"
	authsvc "github.com/RostislavK636/B2B-marketplace/internal/auth"
	"github.com/RostislavK636/B2B-marketplace/internal/catalog"
	"github.com/RostislavK636/B2B-marketplace/internal/lots"
	product "github.com/RostislavK636/B2B-marketplace/internal/products"
	"github.com/RostislavK636/B2B-marketplace/internal/sellers"
	"github.com/RostislavK636/B2B-marketplace/pkg/auth/session"
	"github.com/RostislavK636/B2B-marketplace/pkg/config"
	"github.com/RostislavK636/B2B-marketplace/pkg/db"
	"github.com/RostislavK636/B2B-marketplace/pkg/logger"
	"github.com/RostislavK636/B2B-marketplace/pkg/metrics"
	"github.com/RostislavK636/B2B-marketplace/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          *db.Client
	Redis       *redis.Client
	Sessions    *session.Manager
	HTTPMetrics *metrics.HTTPMetrics

	AuthService    authsvc.Service
	ProductService product.Service
	SellersService sellers.Service
	CatalogService catalog.Service
	LotsService    lots.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.CORS),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, deps.Redis, logg)).
			Post("/registration", controllers.AuthRegister(deps.AuthService, deps.Sessions, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).
			Post("/login", controllers.AuthLogin(deps.AuthService, deps.Sessions, logg))
		r.Get("/auth", controllers.AuthSession(deps.AuthService, deps.Sessions, logg))
		r.Post("/auth/logout", controllers.AuthLogout(deps.AuthService, deps.Sessions, logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.CatalogBrowse(deps.CatalogService, logg))
			r.Get("/products/{productId}", controllers.CatalogProduct(deps.CatalogService, logg))
		})

		r.Route("/lots", func(r chi.Router) {
			r.Get("/", controllers.LotsList(deps.LotsService, logg))
			r.Get("/{lotId}", controllers.LotDetail(deps.LotsService, logg))
			r.Get("/{lotId}/quote", controllers.LotQuote(deps.LotsService, logg))
		})

		r.Get("/sellers", controllers.SellersList(deps.SellersService, logg))
		r.Get("/sellers/{sellerId}", controllers.SellerDetail(deps.SellersService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuth(cfg.Session.CookieName, deps.Sessions, logg))

			r.Get("/sellers/current", controllers.SellerCurrent(deps.SellersService, logg))

			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.SellerListProducts(deps.ProductService, logg))
				r.Post("/", controllers.SellerCreateProduct(deps.ProductService, logg))
				r.Delete("/", controllers.SellerClearProducts(deps.ProductService, logg))
				r.Delete("/{productId}", controllers.SellerDeleteProduct(deps.ProductService, logg))
			})
		})
	})

	return r
}
