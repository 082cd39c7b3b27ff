// Package httpapi exposes the auth service over HTTP/JSON.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jcruzdev/ipnavigator/internal/logging"
	"github.com/jcruzdev/ipnavigator/internal/server/accounts"
	"github.com/jcruzdev/ipnavigator/internal/server/auth"
)

type Server struct {
	address  string
	accounts *accounts.Service
	codec    auth.Codec
	logger   logging.Logger

	// verifyTokens routes the token-verified endpoints. Off by default: the
	// legacy codec issues tokens nothing can verify, and the original service
	// never re-validated a token after issuing it.
	verifyTokens bool
}

func NewServer(a string, l logging.Logger, svc *accounts.Service, codec auth.Codec, verifyTokens bool) *Server {
	return &Server{
		address:      a,
		logger:       l.With("module", "http_server"),
		accounts:     svc,
		codec:        codec,
		verifyTokens: verifyTokens,
	}
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.POST("/login", s.handleLogin)

	if s.verifyTokens {
		api.GET("/me", s.requireToken(), s.handleMe)
	}

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
