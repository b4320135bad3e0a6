// Command lookup-server runs the lookup endpoint on a plain HTTP listener for
// local development. Requests go through the same gateway router the lambda
// uses.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/prognoshealth/rbxlookup/config"
	"github.com/prognoshealth/rbxlookup/lambdautils"
	"github.com/prognoshealth/rbxlookup/lookup"
	"github.com/prognoshealth/rbxlookup/proxy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed loading configuration")
	}

	if err := lambdautils.SetupLogging(lambdautils.ConsoleWriter(), cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("failed setting up logging")
	}

	router := lookup.NewRouter(cfg.NewHandler())
	if !router.Valid() {
		log.Fatal().Err(router.BuildErrors()).Msg("failed building router")
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           newMux(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("lookup server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

func newMux(router *proxy.Router) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(preflightOnly(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})))

	r.Handle("/*", proxy.HTTPHandler(router))

	return r
}

// preflightOnly limits mw to CORS preflight requests. Every other response
// carries only the headers the lookup sets, as it does behind API Gateway.
func preflightOnly(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		preflight := mw(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				preflight.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger forwards chi's request id to the gateway adapter and puts a
// logger carrying it on the request context.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := middleware.GetReqID(r.Context())
		if id != "" {
			r.Header.Set("X-Request-Id", id)
		}

		logger := log.With().Str("request_id", id).Str("remote", r.RemoteAddr).Logger()
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context())))
	})
}
