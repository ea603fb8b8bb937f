// Package httpapi exposes the file service over HTTP. The protocol is a
// single endpoint dispatching on the "command" query parameter; results
// travel as a JSON body with a success flag, the HTTP status being fixed
// per command (200 for reads, 201 for writes).
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dpetrovs/filebox/internal/logging"
	"github.com/dpetrovs/filebox/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Server hosts the command endpoint.
type Server struct {
	address         string
	shutdownTimeout time.Duration
	logger          logging.Logger
	users           *services.UserService
	files           *services.FileService
}

func NewServer(address string, shutdownTimeout time.Duration, l logging.Logger,
	us *services.UserService, fs *services.FileService) *Server {
	return &Server{
		address:         address,
		shutdownTimeout: shutdownTimeout,
		logger:          l.With("module", "httpapi"),
		users:           us,
		files:           fs,
	}
}

// Router builds the gin engine. Split out from Run so tests can drive the
// handler with httptest.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/", s.dispatch)
	r.POST("/", s.dispatch)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.Router()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// requestLogger tags every request with an id and logs the outcome.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-Id", requestID)

		start := time.Now()
		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"id", requestID,
			"method", c.Request.Method,
			"command", c.Query("command"),
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
