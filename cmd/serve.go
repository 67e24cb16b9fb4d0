package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/terralens-cli/internal/analysis"
	"github.com/sells-group/terralens-cli/internal/model"
	"github.com/sells-group/terralens-cli/internal/raster"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for analysis requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		engine, err := buildEngine(cfg)
		if err != nil {
			return err
		}
		res, err := buildResolver(cfg)
		if err != nil {
			return err
		}

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))

		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Get("/api/resolve", func(w http.ResponseWriter, req *http.Request) {
			location := req.URL.Query().Get("location")
			if location == "" {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "location is required"})
				return
			}
			writeJSON(w, http.StatusOK, res.Resolve(req.Context(), location))
		})

		r.Post("/api/analyze", func(w http.ResponseWriter, req *http.Request) {
			var areq analysis.Request
			if err := json.NewDecoder(req.Body).Decode(&areq); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
				return
			}
			if areq.Location == "" {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "location is required"})
				return
			}

			result, err := engine.Run(req.Context(), areq)
			if err != nil {
				status := http.StatusInternalServerError
				if eris.Is(err, model.ErrInvalidTimePeriod) || eris.Is(err, raster.ErrMissingLayer) {
					status = http.StatusBadRequest
				}
				zap.L().Error("analyze request failed",
					zap.String("location", areq.Location),
					zap.Error(err),
				)
				writeJSON(w, status, map[string]string{"error": err.Error()})
				return
			}
			writeJSON(w, http.StatusOK, result)
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			_ = srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
