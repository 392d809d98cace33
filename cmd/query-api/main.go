package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/catalog"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/config"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/httpx"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/logging"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/pipeline"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/risk"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/sensing"
)

func main() {
	_ = godotenv.Load()
	logging.Init("query-api")
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Shared engines are read-only after construction, so one instance
	// serves all requests. Simulation builds its own orchestrator per
	// request because agents carry rng state.
	normalizer := sensing.NewNormalizer(cfg.Sensing)
	impact := risk.NewImpactAnalyzer(nil)
	geo := risk.NewGeoCorrelator(nil)
	scorer := risk.NewScorer(cfg.Scoring)
	classifier := risk.NewClassifier()
	alerts := risk.NewAlertGenerator(cfg.Alerts)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(15 * time.Second))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "service": "query-api"})
	})

	router.Get("/v1/suppliers", func(w http.ResponseWriter, _ *http.Request) {
		suppliers := catalog.Suppliers()
		items := make([]contracts.SupplierRecord, 0, len(suppliers))
		var totalSpend float64
		for _, s := range suppliers {
			items = append(items, s.Record())
			totalSpend += s.AnnualSpend
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"items":              items,
			"count":              len(items),
			"total_annual_spend": totalSpend,
		})
	})

	router.Get("/v1/backups", func(w http.ResponseWriter, _ *http.Request) {
		backups := catalog.BackupSuppliers()
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"items": backups, "count": len(backups)})
	})

	router.Get("/v1/concentration", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, geo.Concentration())
	})

	router.Post("/v1/analyze", func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if strings.TrimSpace(req.Title) == "" {
			httpx.WriteError(w, http.StatusBadRequest, "title is required")
			return
		}

		normalized := normalizer.Normalize([]sensing.Event{req.event()})
		if len(normalized) == 0 {
			httpx.WriteError(w, http.StatusUnprocessableEntity, "event confidence is below the analysis threshold")
			return
		}
		ev := normalized[0]

		affected := impact.AffectedSuppliers(ev)
		analysis := geo.GeographicRisk(ev)
		scored := scorer.Build(ev, affected, analysis)

		response := map[string]any{
			"event":          ev,
			"risk":           scored.Record(),
			"classification": classifier.Classify(scored),
			"geographic":     analysis,
		}
		if alert := alerts.Generate(scored); alert != nil {
			response["alert"] = alert.Record()
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	})

	router.Post("/v1/simulate", func(w http.ResponseWriter, r *http.Request) {
		type req struct {
			Seed int64 `json:"seed"`
		}
		var body req
		_ = httpx.DecodeJSON(w, r, &body)

		if body.Seed == 0 {
			body.Seed = time.Now().UnixNano()
		}

		orch := pipeline.NewOrchestrator(cfg, rand.New(rand.NewSource(body.Seed)))
		httpx.WriteJSON(w, http.StatusOK, orch.RunCycle(r.Context()))
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	slog.Info("query-api listening", "addr", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("query-api server error", "error", err)
		os.Exit(1)
	}
}

type analyzeRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Severity    string   `json:"severity"`
	Country     string   `json:"country"`
	Region      string   `json:"region"`
	City        string   `json:"city"`
	Confidence  float64  `json:"confidence"`
	Keywords    []string `json:"keywords"`
	SourceURL   string   `json:"source_url"`
}

// event converts the request into a raw detection with the same
// defaulting an agent applies: unknown severities fall back to medium,
// unknown categories to other, missing confidence to a cautious 0.6.
func (req analyzeRequest) event() sensing.Event {
	confidence := req.Confidence
	if confidence <= 0 {
		confidence = 0.6
	}
	if confidence > 1 {
		confidence = 1
	}

	now := time.Now().UTC()
	return sensing.Event{
		EventID:     uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		SourceType:  contracts.SourceNews,
		Category:    contracts.ParseCategory(req.Category),
		Severity:    contracts.ParseSeverity(req.Severity),
		Location:    contracts.Location{Country: req.Country, Region: req.Region, City: req.City},
		Confidence:  confidence,
		Keywords:    req.Keywords,
		SourceURL:   req.SourceURL,
		Timestamp:   now,
		DetectedAt:  now,
	}
}
