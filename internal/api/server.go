package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"gungnir/internal/engine"
)

const shutdownGrace = 5 * time.Second

// Server is the HTTP shell in front of the matching engine. It owns no book
// state; every request resolves a pair through the registry and runs exactly
// one engine operation.
type Server struct {
	registry *engine.Registry
	router   *mux.Router
	secret   []byte
	addr     string
}

func NewServer(addr string, secret []byte, registry *engine.Registry) *Server {
	s := &Server{
		registry: registry,
		router:   mux.NewRouter(),
		secret:   secret,
		addr:     addr,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	s.router.HandleFunc("/auth", s.handleAuth).Methods(http.MethodGet)

	s.router.HandleFunc("/{pair}/orderbook", s.requireToken(s.handleOrderBook)).Methods(http.MethodGet)
	s.router.HandleFunc("/{pair}/tradehistory", s.requireToken(s.handleTradeHistory)).Methods(http.MethodGet)
	s.router.HandleFunc("/{pair}/submitlimitorder", s.requireToken(s.handleSubmitLimitOrder)).Methods(http.MethodPost)
	s.router.HandleFunc("/{pair}/cancelorder/{orderId}", s.requireToken(s.handleCancelOrder)).Methods(http.MethodDelete)
}

// Run serves until the context is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	t, _ := tomb.WithContext(ctx)

	c := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	srv := &http.Server{
		Addr:    s.addr,
		Handler: c.Handler(logRequests(s.router)),
	}

	t.Go(func() error {
		log.Info().Str("addr", s.addr).Msg("api server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	t.Go(func() error {
		<-t.Dying()
		log.Info().Msg("api server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	// Context cancellation is the normal way down, not a failure.
	if err := t.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request served")
	})
}
