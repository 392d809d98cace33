package pipeline

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/config"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/drafting"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/recovery"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/risk"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/sensing"
)

// Orchestrator sequences the four pipeline stages: sense disruption
// events, analyze risk, plan recovery, draft contracts. Stages run
// synchronously and a failed stage degrades the cycle instead of
// aborting it, so the report always carries all four stage results.
type Orchestrator struct {
	cfg        config.Config
	agents     []sensing.Agent
	normalizer *sensing.Normalizer
	impact     *risk.ImpactAnalyzer
	geo        *risk.GeoCorrelator
	scorer     *risk.Scorer
	alertGen   *risk.AlertGenerator
	planner    *recovery.Planner
	generator  *drafting.Generator
}

// NewOrchestrator wires the full pipeline from config. The rng seeds
// the simulated sensing agents; pass explicit agents to replace the
// default news and weather pair.
func NewOrchestrator(cfg config.Config, rng *rand.Rand, agents ...sensing.Agent) *Orchestrator {
	if len(agents) == 0 {
		agents = []sensing.Agent{
			sensing.NewNewsAgent(cfg.Sensing.News, rng),
			sensing.NewWeatherAgent(cfg.Sensing.Weather, rng),
		}
	}
	return &Orchestrator{
		cfg:        cfg,
		agents:     agents,
		normalizer: sensing.NewNormalizer(cfg.Sensing),
		impact:     risk.NewImpactAnalyzer(nil),
		geo:        risk.NewGeoCorrelator(nil),
		scorer:     risk.NewScorer(cfg.Scoring),
		alertGen:   risk.NewAlertGenerator(cfg.Alerts),
		planner:    recovery.NewPlanner(recovery.NewEvaluator(cfg.Recovery, nil)),
		generator:  drafting.NewGenerator(cfg.Drafting, nil),
	}
}

// RunCycle executes one complete sensing-to-contract cycle.
func (o *Orchestrator) RunCycle(ctx context.Context) Report {
	start := time.Now()
	var report Report

	var events []contracts.Event
	report.addStage(execute(StageEventSensing, func() (int, error) {
		events = o.senseEvents(ctx)
		return len(events), nil
	}))

	var (
		risks  []contracts.RiskRecord
		alerts []contracts.AlertRecord
	)
	report.addStage(execute(StageRiskAnalysis, func() (int, error) {
		risks, alerts = o.analyzeRisks(events)
		return len(risks), nil
	}))

	var plans []contracts.PlanRecord
	report.addStage(execute(StageRecoveryPlanning, func() (int, error) {
		plans = o.planRecovery(risks)
		return len(plans), nil
	}))

	var drafted []contracts.ContractRecord
	report.addStage(execute(StageContractDrafting, func() (int, error) {
		var err error
		drafted, err = o.draftContracts(plans)
		return len(drafted), err
	}))

	report.Success = len(report.Errors) == 0
	report.EventsDetected = len(events)
	report.RisksIdentified = len(risks)
	report.RecoveryPlansGenerated = len(plans)
	report.ContractsDrafted = len(drafted)
	report.Events = emptyIfNil(events)
	report.Risks = emptyIfNil(risks)
	report.Alerts = emptyIfNil(alerts)
	report.Plans = emptyIfNil(plans)
	report.Contracts = emptyIfNil(drafted)
	report.TotalDurationSeconds = round2(time.Since(start).Seconds())

	slog.Info("pipeline cycle finished",
		"success", report.Success,
		"events", report.EventsDetected,
		"risks", report.RisksIdentified,
		"plans", report.RecoveryPlansGenerated,
		"contracts", report.ContractsDrafted,
		"duration_s", report.TotalDurationSeconds)
	return report
}

// senseEvents runs every agent once, aggregates with dedup, and hands
// the highest-priority slice of the buffer to the normalizer. Each
// cycle gets a fresh aggregator, so dedup applies within a single
// cycle only and cycles stay independent.
func (o *Orchestrator) senseEvents(ctx context.Context) []contracts.Event {
	agg := sensing.NewAggregator(o.cfg.Sensing)
	for _, agent := range o.agents {
		agg.AddBatch(sensing.RunCycle(ctx, agent))
	}

	events := agg.Events()
	if max := o.cfg.Pipeline.MaxEventsPerCycle; max > 0 && len(events) > max {
		events = events[:max]
	}
	return o.normalizer.Normalize(events)
}

// analyzeRisks scores each event against the supplier catalog and
// raises alerts for risks that clear the alert thresholds.
func (o *Orchestrator) analyzeRisks(events []contracts.Event) ([]contracts.RiskRecord, []contracts.AlertRecord) {
	records := make([]contracts.RiskRecord, 0, len(events))
	alerts := make([]contracts.AlertRecord, 0, len(events))

	for _, ev := range events {
		affected := o.impact.AffectedSuppliers(ev)
		geo := o.geo.GeographicRisk(ev)
		r := o.scorer.Build(ev, affected, geo)
		records = append(records, r.Record())

		if alert := o.alertGen.Generate(r); alert != nil {
			alerts = append(alerts, alert.Record())
		}
	}
	return records, alerts
}

// planRecovery plans recovery for the leading risks, capped per
// cycle. Risks arrive in sensed priority order, so the cap keeps the
// most severe events.
func (o *Orchestrator) planRecovery(risks []contracts.RiskRecord) []contracts.PlanRecord {
	if max := o.cfg.Pipeline.MaxRisksForPlanning; max > 0 && len(risks) > max {
		risks = risks[:max]
	}

	plans := o.planner.GeneratePlans(risks)
	records := make([]contracts.PlanRecord, 0, len(plans))
	for _, p := range plans {
		records = append(records, p.Record())
	}
	return records
}

func (o *Orchestrator) draftContracts(plans []contracts.PlanRecord) ([]contracts.ContractRecord, error) {
	drafted, err := o.generator.DraftAll(plans, o.cfg.Pipeline.MaxContracts)
	if err != nil {
		return nil, err
	}

	records := make([]contracts.ContractRecord, 0, len(drafted))
	for _, c := range drafted {
		records = append(records, c.Record())
	}
	return records, nil
}
