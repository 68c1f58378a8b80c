// Package server exposes the shared JavaScript namespace over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/itsmostafa/runcode/internal/repl"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "127.0.0.1:5000"

// Config holds the server configuration
type Config struct {
	// Addr is the host:port to listen on
	Addr string

	// Debug switches gin into debug mode
	Debug bool

	// Output receives the startup header and request log lines
	Output io.Writer
}

// Server serves the code execution endpoints against a single namespace.
type Server struct {
	cfg    Config
	ns     *repl.Namespace
	engine *gin.Engine
}

// New creates a Server that runs every request against ns.
func New(cfg Config, ns *repl.Namespace) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{cfg: cfg, ns: ns}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestID())
	engine.Use(requestLogger(cfg.Output))
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Content-Type"},
		ExposeHeaders:   []string{requestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	engine.GET("/", s.HomeHandler)
	engine.POST("/run_code", s.RunCodeHandler)

	s.engine = engine
	return s
}

// Handler returns the http.Handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address until ctx is cancelled, then
// shuts the listener down.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.engine,
	}

	FormatHeader(s.cfg.Output, s.cfg)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	FormatShutdown(s.cfg.Output)
	return nil
}
