package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/rogerio-castellano/catalog-aggregator/docs"
	"github.com/rogerio-castellano/catalog-aggregator/internal/http/handlers"
	rl "github.com/rogerio-castellano/catalog-aggregator/internal/http/rate_limiter"
)

// NewRouter mounts the catalog API. limiter may be nil to disable rate limiting.
func NewRouter(srv *handlers.Server, limiter *rl.Limiter, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log.Named("request")))
	r.Use(Recovery(log))

	r.Get("/healthz", srv.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware(srv.TooManyRequests))
		}
		r.Get("/categories/{category}/products", srv.ListCategoryProductsHandler)
		r.Get("/categories/{category}/products/{id}", srv.GetCategoryProductHandler)
		r.Get("/metrics/providers", srv.GetProviderMetricsHandler)
	})

	return r
}
