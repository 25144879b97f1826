// Package httpserver exposes the MindMate auth endpoint over HTTP using gin.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/mindmate/internal/logging"
	"github.com/dmitrijs2005/mindmate/internal/server/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Authenticator logs a user in, registering the account on first contact.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, bool, error)
}

// Options configures routing and lifecycle of an HTTPServer.
type Options struct {
	Collection      string
	CORSOrigin      string
	ShutdownTimeout time.Duration
}

type HTTPServer struct {
	address string
	users   Authenticator
	logger  logging.Logger
	opts    Options
	router  *gin.Engine
}

func NewHTTPServer(address string, l logging.Logger, users Authenticator, opts Options) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)

	s := &HTTPServer{
		address: address,
		users:   users,
		logger:  l.With("module", "http_server"),
		opts:    opts,
	}
	s.router = s.newRouter()
	return s
}

// Handler returns the configured router, for embedding or tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

func (s *HTTPServer) newRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestIDMiddleware(), s.accessLogMiddleware(), cors.New(s.corsConfig()))

	r.GET("/", s.root)
	r.GET("/health", s.health)
	r.POST("/api/"+s.opts.Collection, s.authenticate)

	return r
}

func (s *HTTPServer) corsConfig() cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if s.opts.CORSOrigin == "" || s.opts.CORSOrigin == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = []string{s.opts.CORSOrigin}
	}
	return c
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to ShutdownTimeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address, "route", "/api/"+s.opts.Collection)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
