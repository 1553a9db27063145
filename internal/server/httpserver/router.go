// Package httpserver provides the HTTP/HTTPS server for idmint.
package httpserver

import (
	"net/http"

	"github.com/sylvite/idmint-go/internal/core/service"
	"github.com/sylvite/idmint-go/internal/server/httpserver/handler"
	"github.com/sylvite/idmint-go/internal/telemetry/logger"
	"github.com/sylvite/idmint-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// MintService handles key minting.
	MintService *service.MintService

	// Logger for request logging.
	Logger logger.Logger

	// Metrics is the metrics registry; also serves /metrics.
	Metrics *metric.Registry

	// CORSAllowedOrigins is the list of allowed CORS origins
	// (empty = CORS off).
	CORSAllowedOrigins []string

	// RateLimit is the per-IP rate limit in requests/second
	// (zero = off). Health and metrics endpoints are exempt.
	RateLimit int
}

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	h := handler.New(cfg.MintService, log)

	// Order: Recover -> CORS -> RequestID -> Metrics -> RateLimit ->
	// AccessLog -> handler.
	api := []Middleware{
		Recover(log),
	}
	if len(cfg.CORSAllowedOrigins) > 0 {
		api = append(api, CORS(cfg.CORSAllowedOrigins))
	}
	api = append(api, RequestID())
	if cfg.Metrics != nil {
		api = append(api, Metrics(cfg.Metrics))
	}
	if cfg.RateLimit > 0 {
		api = append(api, RateLimit(cfg.RateLimit))
	}
	api = append(api, AccessLog(log))

	apiHandler := Chain(h, api...)

	// Health endpoints bypass rate limiting and access logging so
	// orchestrator probes stay cheap and quiet.
	probeHandler := Chain(h, Recover(log), RequestID())

	mux := http.NewServeMux()

	mux.Handle("GET /health", probeHandler)
	mux.Handle("GET /ready", probeHandler)

	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", Chain(cfg.Metrics.Handler(), Recover(log)))
	}

	mux.Handle("POST /v1/keys", apiHandler)
	mux.Handle("GET /v1/profiles", apiHandler)
	mux.Handle("GET /v1/profiles/{name}", apiHandler)

	return mux
}

// DefaultRouterConfig returns default router configuration.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		RateLimit: 100,
	}
}
