package app

import (
	"net/http"

	"github.com/Black-And-White-Club/golf-trip/internal/httpx"
	"github.com/Black-And-White-Club/golf-trip/internal/observability"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

// Router builds the chi router with the API under /api/trips.
func (app *App) Router() http.Handler {
	limiter := httpx.NewClientLimiter(rate.Limit(app.Config.HTTP.RateLimit), app.Config.HTTP.RateBurst)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(app.httpMetrics.Middleware)
	r.Use(httpx.CORSMiddleware(app.Config.HTTP.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if app.Config.Observability.MetricsAddress == "" {
		r.Handle("/metrics", observability.Handler(app.Registry))
	}

	r.Route("/api/trips", func(r chi.Router) {
		r.Use(httpx.RateLimitMiddleware(limiter))
		app.Modules.Routes(r)
	})

	return otelhttp.NewHandler(r, "golf-trip-api", otelhttp.WithTracerProvider(app.tracerProvider))
}
