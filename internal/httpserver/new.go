package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"collab-dashboard/internal/session"
	"collab-dashboard/pkg/apigateway"
	"collab-dashboard/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Remote API
	gateway      *apigateway.Client
	defaultToken string

	// Per-client state
	sessions        *session.Store
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Gateway      *apigateway.Client
	DefaultToken string

	SessionTTL        time.Duration
	SessionMaxEntries int
	RateLimitPerMin   int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		gateway:         cfg.Gateway,
		defaultToken:    cfg.DefaultToken,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.sessions = session.NewStore(cfg.SessionMaxEntries, cfg.SessionTTL, session.NewBuilder(srv.gateway, logger), logger)

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.gateway == nil {
		return errors.New("gateway is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
