package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/alfagnish/places-api/internal/config"
	_ "github.com/alfagnish/places-api/internal/docs"
	"github.com/alfagnish/places-api/internal/handlers"
	"github.com/alfagnish/places-api/internal/logger"
	"github.com/alfagnish/places-api/internal/middleware"
	"github.com/alfagnish/places-api/internal/store"
)

// New creates a fully-configured chi router with all route groups,
// middleware, and handlers wired together.
func New(cfg *config.Config, log *logger.Logger, users *store.UserStore, places *store.PlaceStore) http.Handler {
	r := chi.NewRouter()

	// ── Middleware ───────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(requestLogger(log))
	r.Use(middleware.Metrics)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestSize(cfg.MaxBodyBytes))

	// ── Handlers ────────────────────────────────────────────
	systemH := handlers.NewSystemHandler(users, places, log)
	usersH := handlers.NewUsersHandler(users, log)
	placesH := handlers.NewPlacesHandler(places, log)

	r.NotFound(systemH.NotFound)
	r.MethodNotAllowed(systemH.MethodNotAllowed)

	// ── Routes ──────────────────────────────────────────────
	r.Get("/", systemH.Home)
	r.Get("/index", systemH.Index)
	r.Get("/health", systemH.Health)

	r.Route("/data", usersH.Routes)
	r.Route("/places", placesH.Routes)

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/api-docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api-docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/api-docs/*", httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json")))

	return r
}

// requestLogger logs each HTTP request with method, path, status code, and
// duration. Metrics scrapes and documentation assets are skipped.
func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			if r.URL.Path == "/metrics" || strings.HasPrefix(r.URL.Path, "/api-docs/") {
				return
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.WithFields(r.Context(), logger.Fields{"remote": r.RemoteAddr}).Infof("%s %s %d %s",
				r.Method,
				r.URL.Path,
				status,
				time.Since(start).Round(time.Millisecond),
			)
		})
	}
}
