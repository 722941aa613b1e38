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

	"github.com/mouzayen1/SalesApexAi2.5/internal/finance"
	"github.com/mouzayen1/SalesApexAi2.5/internal/model"
	"github.com/mouzayen1/SalesApexAi2.5/internal/refdata"
	"github.com/mouzayen1/SalesApexAi2.5/internal/rehash"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the deal-structuring HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.Server.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))

		r.Get("/health", handleHealth)
		r.Get("/api/vehicles/reliability", handleReliability)
		r.Post("/api/rehash", handleRehash)
		r.Post("/api/triage", handleTriage)
		r.Post("/api/payment", handlePayment)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleRehash(w http.ResponseWriter, r *http.Request) {
	var in model.DealInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	applyConfigDefaults(&in)
	in.ApplyDefaults()
	if err := in.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := rehash.Run(in, time.Time{})
	respondJSON(w, http.StatusOK, result)
}

func handleTriage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Deals             []model.DealCandidate `json:"deals"`
		TargetPayment     float64               `json:"targetPayment"`
		MandatoryProducts []string              `json:"mandatoryProducts"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	decision := rehash.TriageDeals(req.Deals, req.TargetPayment, req.MandatoryProducts)
	respondJSON(w, http.StatusOK, decision)
}

func handlePayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Price       float64 `json:"price"`
		DownPayment float64 `json:"downPayment"`
		APRPercent  float64 `json:"aprPercent"`
		TermMonths  int     `json:"termMonths"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Price <= 0 {
		respondError(w, http.StatusBadRequest, "price must be positive")
		return
	}
	if req.APRPercent == 0 {
		req.APRPercent = 7
	}
	if req.TermMonths == 0 {
		req.TermMonths = 60
	}

	monthly := finance.SimplePayment(req.Price, req.DownPayment, req.APRPercent, req.TermMonths)
	respondJSON(w, http.StatusOK, map[string]float64{"monthlyPayment": monthly})
}

func handleReliability(w http.ResponseWriter, r *http.Request) {
	vehicleMake := r.URL.Query().Get("make")
	vehicleModel := r.URL.Query().Get("model")
	if vehicleMake == "" {
		respondError(w, http.StatusBadRequest, "make is required")
		return
	}

	entry, ok := refdata.Reliability(vehicleMake, vehicleModel)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown vehicle")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"make":             entry.Make,
		"model":            entry.Model,
		"reliabilityScore": entry.ReliabilityScore,
		"knownIssues":      entry.KnownIssues,
	})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
