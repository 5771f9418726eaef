// Package httpapi exposes the login and save-geometry endpoints over HTTP
// using gin.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/geoportal/internal/logging"
	"github.com/dmitrijs2005/geoportal/internal/server/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

type authService interface {
	Login(ctx context.Context, userName, password string) (*models.User, error)
}

type geometryService interface {
	Save(ctx context.Context, geometry json.RawMessage) (int64, error)
}

type HTTPServer struct {
	address    string
	origin     string
	auth       authService
	geometries geometryService
	logger     logging.Logger
}

// NewHTTPServer builds a server listening on address that accepts
// cross-origin requests from origin only.
func NewHTTPServer(address, origin string, l logging.Logger, as authService, gs geometryService) *HTTPServer {
	return &HTTPServer{
		address:    address,
		origin:     origin,
		logger:     l.With("module", "http_server"),
		auth:       as,
		geometries: gs,
	}
}

// Router returns the gin engine with middleware and routes registered.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), cors.New(corsConfig(s.origin)))

	r.GET("/health", s.Health)

	api := r.Group("/api")
	api.POST("/login", s.Login)
	api.POST("/save-geometry", s.SaveGeometry)

	return r
}

func corsConfig(origin string) cors.Config {
	return cors.Config{
		AllowOrigins: []string{origin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *HTTPServer) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-stopped
	return nil
}
