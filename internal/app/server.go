package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

// writeTimeoutSlack keeps the server write deadline past the request timeout so
// timeout responses still reach the client.
const writeTimeoutSlack = 5 * time.Second

// ShutdownHook runs after the HTTP server has stopped accepting requests.
type ShutdownHook func(ctx context.Context) error

// Server wraps http.Server with graceful shutdown capabilities.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	hooks           []ShutdownHook
	hooksOnce       sync.Once
}

// NewServer creates a new Server instance. requestTimeout sizes the write deadline.
func NewServer(handler http.Handler, port string, requestTimeout time.Duration, hooks ...ShutdownHook) *Server {
	writeTimeout := 15 * time.Second
	if requestTimeout+writeTimeoutSlack > writeTimeout {
		writeTimeout = requestTimeout + writeTimeoutSlack
	}

	return &Server{
		httpServer: &http.Server{
			Addr:           ":" + port,
			Handler:        handler,
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   writeTimeout,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1MB
		},
		shutdownTimeout: 10 * time.Second,
		hooks:           hooks,
	}
}

// Run starts the server and blocks until a shutdown signal is received.
func (s *Server) Run() error {
	errChan := make(chan error, 1)

	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("Server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errChan:
		s.runHooks()
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Received signal, initiating graceful shutdown")
	}

	return s.Shutdown()
}

// Shutdown stops accepting requests, waits for in-flight ones and then runs
// the shutdown hooks.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		s.runHooks()
		return err
	}

	s.runHooks()
	log.Info().Msg("Server stopped gracefully")
	return nil
}

func (s *Server) runHooks() {
	s.hooksOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		for _, hook := range s.hooks {
			if err := hook(ctx); err != nil {
				log.Warn().Err(err).Msg("Shutdown hook failed")
			}
		}
	})
}
