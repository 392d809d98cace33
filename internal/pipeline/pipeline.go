package pipeline

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
)

// Stage names one step of the self-healing cycle.
type Stage string

const (
	StageEventSensing     Stage = "event_sensing"
	StageRiskAnalysis     Stage = "risk_analysis"
	StageRecoveryPlanning Stage = "recovery_planning"
	StageContractDrafting Stage = "contract_drafting"
)

// StageResult records a single stage execution within a cycle.
type StageResult struct {
	Stage      Stage     `json:"stage"`
	Success    bool      `json:"success"`
	Count      int       `json:"count"`
	Error      string    `json:"error,omitempty"`
	DurationMS float64   `json:"duration_ms"`
	Timestamp  time.Time `json:"timestamp"`
}

// Report is the outcome of one full cycle: per-stage results plus
// every record the stages produced.
type Report struct {
	Success                bool                       `json:"success"`
	EventsDetected         int                        `json:"events_detected"`
	RisksIdentified        int                        `json:"risks_identified"`
	RecoveryPlansGenerated int                        `json:"recovery_plans_generated"`
	ContractsDrafted       int                        `json:"contracts_drafted"`
	TotalDurationSeconds   float64                    `json:"total_duration_seconds"`
	StagesCompleted        []string                   `json:"stages_completed"`
	Errors                 []string                   `json:"errors,omitempty"`
	Stages                 []StageResult              `json:"stages"`
	Events                 []contracts.Event          `json:"events"`
	Risks                  []contracts.RiskRecord     `json:"risks"`
	Alerts                 []contracts.AlertRecord    `json:"alerts"`
	Plans                  []contracts.PlanRecord     `json:"recovery_plans"`
	Contracts              []contracts.ContractRecord `json:"contracts"`
}

func (r *Report) addStage(res StageResult) {
	r.Stages = append(r.Stages, res)
	if res.Success {
		r.StagesCompleted = append(r.StagesCompleted, string(res.Stage))
		return
	}
	r.Errors = append(r.Errors, string(res.Stage)+": "+res.Error)
}

// execute runs one stage body with error and panic capture. A failed
// stage is logged and reported, never fatal: downstream stages run on
// whatever the body managed to produce, usually nothing.
func execute(stage Stage, fn func() (int, error)) StageResult {
	start := time.Now()
	count, err := guard(fn)

	res := StageResult{
		Stage:      stage,
		Success:    err == nil,
		Count:      count,
		DurationMS: round2(float64(time.Since(start).Nanoseconds()) / 1e6),
		Timestamp:  start,
	}
	if err != nil {
		res.Error = err.Error()
		slog.Error("pipeline stage failed", "stage", stage, "error", err)
		return res
	}
	slog.Info("pipeline stage completed", "stage", stage, "count", count, "duration_ms", res.DurationMS)
	return res
}

func guard(fn func() (int, error)) (count int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panicked: %v", rec)
		}
	}()
	return fn()
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
