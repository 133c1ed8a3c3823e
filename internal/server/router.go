package server

import (
	"net/http"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/murmur-im/groupuser/api/groupuser/v1/groupuserv1connect"
	groupsvc "github.com/murmur-im/groupuser/internal/services/group"
)

// RouterOptions controls the construction of the HTTP router. The zero
// value is valid; defaults are applied where fields are not set.
type RouterOptions struct {
	Service             *groupsvc.Service
	CORSOptions         *cors.Options
	Middleware          []func(http.Handler) http.Handler
	ConnectInterceptors []connect.Interceptor
	HealthHandler       http.HandlerFunc
	ExtraRoutes         func(chi.Router)
}

// DefaultCORSOptions returns the shared development CORS policy.
func DefaultCORSOptions() cors.Options {
	return cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Content-Type",
			"Connect-Protocol-Version",
			"Connect-Timeout-Ms",
			"Connect-Protocol",
			"Connect-Content-Encoding",
			"Grpc-Timeout",
			"X-Grpc-Web",
			"X-User-Agent",
		},
		ExposedHeaders: []string{
			"Connect-Protocol-Version",
			"Connect-Content-Encoding",
			"Connect-Protocol",
			"Grpc-Status",
			"Grpc-Message",
			"Grpc-Status-Details-Bin",
		},
		MaxAge: 300,
	}
}

func defaultHealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// NewRouter assembles a chi.Router with shared middleware, CORS policy,
// and the GroupUser handler mounted. The router can be tailored via
// RouterOptions for CLI usage, tests, or other entrypoints.
func NewRouter(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	// Baseline middleware shared across entrypoints.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsCfg := DefaultCORSOptions()
	if opts.CORSOptions != nil {
		corsCfg = *opts.CORSOptions
	}
	r.Use(cors.Handler(corsCfg))

	for _, mw := range opts.Middleware {
		if mw != nil {
			r.Use(mw)
		}
	}

	if opts.Service != nil {
		MountConnectHandlers(r, opts)
	}

	healthHandler := opts.HealthHandler
	if healthHandler == nil {
		healthHandler = defaultHealthHandler
	}
	r.Get("/health", healthHandler)

	if opts.ExtraRoutes != nil {
		opts.ExtraRoutes(r)
	}

	return r
}

// NewH2CHandler wraps the router with an h2c server so gRPC clients can
// speak HTTP/2 over cleartext connections.
func NewH2CHandler(opts RouterOptions) http.Handler {
	router := NewRouter(opts)
	return h2c.NewHandler(router, &http2.Server{})
}

// MountConnectHandlers mounts the Connect RPC handler on the router.
func MountConnectHandlers(r chi.Router, opts RouterOptions) {
	path, handler := groupuserv1connect.NewGroupUserServiceHandler(
		NewGroupUserServiceHandler(opts.Service),
		connect.WithInterceptors(opts.ConnectInterceptors...),
	)
	r.Mount(path, handler)
}
