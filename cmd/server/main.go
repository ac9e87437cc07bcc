// Command server exposes Italian verse scansion as a JSON REST API.
//
// Endpoints:
//
//	GET    /api/syllabify?word=<word>
//	GET    /api/rhyme?word=<word>
//	POST   /api/verse      body: {"verse":"..."}
//	POST   /api/poem       body: {"text":"..."}
//	POST   /api/poems      body: {"title":"...","text":"..."}
//	GET    /api/poems
//	GET    /api/poems/{id}
//	DELETE /api/poems/{id}
//	GET    /metrics
//	GET    /healthz
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/cours-de-latin/metrica/store"
)

// newHandler builds the API router wrapped in the CORS handler.
func newHandler(cfg Config, st *store.PoemStore) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "no such endpoint")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, r.Method+" not allowed")
	})

	r.Use(metricsMiddleware)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", handleHealth()).Methods(http.MethodGet)

	r.HandleFunc("/api/syllabify", handleSyllabify()).Methods(http.MethodGet)
	r.HandleFunc("/api/rhyme", handleRhyme()).Methods(http.MethodGet)
	r.HandleFunc("/api/verse", handleVerse(cfg.MaxBodyBytes)).Methods(http.MethodPost)
	r.HandleFunc("/api/poem", handlePoem(cfg.MaxBodyBytes)).Methods(http.MethodPost)
	r.HandleFunc("/api/poems", handleSavePoem(st, cfg.MaxBodyBytes)).Methods(http.MethodPost)
	r.HandleFunc("/api/poems", handleListPoems(st)).Methods(http.MethodGet)
	r.HandleFunc("/api/poems/{id}", handleLoadPoem(st)).Methods(http.MethodGet)
	r.HandleFunc("/api/poems/{id}", handleDeletePoem(st)).Methods(http.MethodDelete)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file")
	addr := flag.String("addr", "", "listen address (overrides the configuration file)")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	level, err := cfg.slogLevel()
	if err != nil {
		slog.Error("invalid log level", slog.Any("error", err))
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	st, err := store.Open(cfg.Store.Path, cfg.Store.InMemory)
	if err != nil {
		slog.Error("failed to open poem store", slog.Any("error", err))
		os.Exit(1)
	}
	defer st.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(cfg, st),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("listening", slog.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
			shutdown <- syscall.SIGTERM
		}
	}()

	<-shutdown
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", slog.Any("error", err))
	}
}
