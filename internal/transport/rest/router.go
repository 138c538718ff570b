package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/seo-review-backend/internal/config"
	"github.com/heartmarshall/seo-review-backend/internal/metrics"
	"github.com/heartmarshall/seo-review-backend/internal/transport/middleware"
)

// RouterDeps bundles what NewRouter needs to assemble the HTTP surface.
type RouterDeps struct {
	Metadata    *MetadataHandler
	Auth        *AuthHandler
	Health      *HealthHandler
	Tokens      middleware.TokenValidator
	RateLimiter *middleware.RateLimiter
	Config      *config.Config
	Logger      *slog.Logger
}

// NewRouter registers every route and wraps the mux in the global middleware
// chain.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()
	protected := middleware.RequireAuth

	mux.Handle("GET /api/metadata", protected(http.HandlerFunc(d.Metadata.List)))
	mux.Handle("GET /api/metadata/export", protected(http.HandlerFunc(d.Metadata.Export)))
	mux.Handle("GET /api/metadata/{id}", protected(http.HandlerFunc(d.Metadata.Get)))
	mux.Handle("POST /api/metadata/{id}", protected(http.HandlerFunc(d.Metadata.Decide)))

	login := http.Handler(http.HandlerFunc(d.Auth.Login))
	if d.RateLimiter != nil {
		login = d.RateLimiter.Limit(d.Config.Auth.LoginRateLimit)(login)
	}
	mux.Handle("POST /api/auth/login", login)
	mux.Handle("GET /api/auth/session", protected(http.HandlerFunc(d.Auth.Session)))
	mux.HandleFunc("POST /api/auth/logout", d.Auth.Logout)

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	if d.Config.Metrics.Enabled {
		mux.Handle("GET "+d.Config.Metrics.Path, metrics.Handler())
	}

	// Metrics reads the matched pattern, so it must sit directly on the mux.
	// Logger runs after Auth so the user is known.
	chain := middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.CORS(d.Config.CORS),
		middleware.Auth(d.Tokens, d.Config.Auth.CookieName),
		middleware.Logger(d.Logger),
		middleware.Metrics,
	)

	return chain(mux)
}
