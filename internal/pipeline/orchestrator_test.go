package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/config"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/sensing"
)

type scriptedAgent struct {
	events []sensing.Event
	panics bool
}

func (a scriptedAgent) Name() string  { return "scripted" }
func (a scriptedAgent) Enabled() bool { return true }

func (a scriptedAgent) Sense(ctx context.Context) ([]sensing.Event, error) {
	if a.panics {
		panic("sensor backend unavailable")
	}
	return a.events, nil
}

func portStrikeEvent() sensing.Event {
	now := time.Now()
	return sensing.Event{
		EventID:     "evt-rotterdam-1",
		Title:       "Rotterdam Port Workers Announce Strike",
		Description: "Dock workers at the largest European port announce a 48-hour strike.",
		SourceType:  contracts.SourceNews,
		Category:    contracts.CategoryLogistics,
		Severity:    contracts.SeverityHigh,
		Location:    contracts.Location{Country: "Netherlands", City: "Rotterdam"},
		Confidence:  0.9,
		Keywords:    []string{"port", "strike"},
		Timestamp:   now,
		DetectedAt:  now,
	}
}

func TestRunCycleEndToEnd(t *testing.T) {
	agent := scriptedAgent{events: []sensing.Event{portStrikeEvent()}}
	orch := NewOrchestrator(config.Default(), rand.New(rand.NewSource(1)), agent)

	report := orch.RunCycle(context.Background())

	require.True(t, report.Success)
	assert.Empty(t, report.Errors)
	assert.Equal(t, []string{"event_sensing", "risk_analysis", "recovery_planning", "contract_drafting"}, report.StagesCompleted)

	require.Equal(t, 1, report.EventsDetected)
	assert.InDelta(t, 0.675, report.Events[0].ImpactScore, 1e-9)

	require.Equal(t, 1, report.RisksIdentified)
	riskRec := report.Risks[0]
	assert.Equal(t, "Supply Chain Risk: Rotterdam Port Workers Announce Strike", riskRec.Title)
	assert.InDelta(t, 0.711, riskRec.RiskScore, 1e-9)
	assert.Equal(t, "high", riskRec.RiskLevel)
	assert.Equal(t, "logistics", riskRec.RiskType)
	assert.Equal(t, "immediate", riskRec.MitigationUrgency)
	assert.Equal(t, "Rotterdam, Netherlands", riskRec.GeographicScope)
	require.Equal(t, 4, riskRec.AffectedSupplierCount)
	assert.Equal(t, "Rotterdam Logistics BV", riskRec.AffectedSuppliers[0].Name)
	assert.True(t, riskRec.HasCriticalSuppliers)
	assert.Equal(t, 10_300_000.0, riskRec.TotalAffectedSpend)
	assert.InDelta(t, 620560.14, riskRec.EstimatedFinancialImpact, 0.01)
	assert.Equal(t, 12, riskRec.EstimatedDelayDays)
	assert.InDelta(t, 0.9, riskRec.Confidence, 1e-9)

	require.Len(t, report.Alerts, 1)
	assert.Equal(t, "P1", report.Alerts[0].Priority)
	assert.Equal(t, riskRec.RiskID, report.Alerts[0].RiskID)
	assert.Equal(t, "CRITICAL | Supply Chain Risk: Rotterdam Port Workers Announce Strike", report.Alerts[0].Title)

	require.Equal(t, 1, report.RecoveryPlansGenerated)
	plan := report.Plans[0]
	assert.Equal(t, "Recovery Plan: Supply Chain Risk: Rotterdam Port Workers Announce", plan.Title)
	assert.Equal(t, riskRec.RiskID, plan.RiskID)
	assert.Equal(t, "Rotterdam Logistics BV", plan.AffectedSupplierName)
	assert.Equal(t, 12, plan.EstimatedRecoveryDays)
	assert.Equal(t, 65_000.0, plan.TotalEstimatedCost)
	assert.Len(t, plan.Actions, 7)
	require.NotEmpty(t, plan.RecommendedSuppliers)
	assert.Equal(t, "Mexico Logistics Partner", plan.RecommendedSuppliers[0].Name)

	require.Equal(t, 1, report.ContractsDrafted)
	contract := report.Contracts[0]
	assert.Equal(t, "Mexico Logistics Partner", contract.SupplierName)
	assert.Equal(t, "expedited_purchase", contract.ContractType)
	assert.InDelta(t, 74_750, contract.TotalValue, 1e-6)
	assert.Equal(t, plan.PlanID, contract.RecoveryPlanID)
	assert.Len(t, contract.Sections, 8)
}

func TestRunCycleStageFailure(t *testing.T) {
	orch := NewOrchestrator(config.Default(), rand.New(rand.NewSource(1)), scriptedAgent{panics: true})

	report := orch.RunCycle(context.Background())

	assert.False(t, report.Success)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "event_sensing: panicked: sensor backend unavailable", report.Errors[0])
	assert.Equal(t, []string{"risk_analysis", "recovery_planning", "contract_drafting"}, report.StagesCompleted)

	require.Len(t, report.Stages, 4)
	assert.False(t, report.Stages[0].Success)
	for _, res := range report.Stages[1:] {
		assert.True(t, res.Success, "stage %s", res.Stage)
		assert.Zero(t, res.Count)
	}

	assert.Zero(t, report.EventsDetected)
	assert.Zero(t, report.RisksIdentified)
	assert.Zero(t, report.RecoveryPlansGenerated)
	assert.Zero(t, report.ContractsDrafted)

	require.NotNil(t, report.Events)
	assert.Empty(t, report.Events)
	require.NotNil(t, report.Risks)
	assert.Empty(t, report.Risks)
	require.NotNil(t, report.Contracts)
	assert.Empty(t, report.Contracts)
}

func TestRunCycleQuiet(t *testing.T) {
	orch := NewOrchestrator(config.Default(), rand.New(rand.NewSource(1)), scriptedAgent{})

	report := orch.RunCycle(context.Background())

	assert.True(t, report.Success)
	assert.Len(t, report.StagesCompleted, 4)
	assert.Zero(t, report.EventsDetected)
	assert.Zero(t, report.RisksIdentified)
	assert.Zero(t, report.RecoveryPlansGenerated)
	assert.Zero(t, report.ContractsDrafted)
	assert.Empty(t, report.Alerts)
}

func TestRunCycleCapsStages(t *testing.T) {
	var events []sensing.Event
	for i := 0; i < 7; i++ {
		now := time.Now()
		events = append(events, sensing.Event{
			EventID:    fmt.Sprintf("evt-%d", i),
			Title:      fmt.Sprintf("Regional Disruption %d", i),
			SourceType: contracts.SourceNews,
			Category:   contracts.CategoryLogistics,
			Severity:   contracts.SeverityHigh,
			Location:   contracts.Location{Country: "Iceland", City: "Reykjavik"},
			Confidence: 0.9,
			Timestamp:  now,
			DetectedAt: now,
		})
	}

	cfg := config.Default()
	orch := NewOrchestrator(cfg, rand.New(rand.NewSource(1)), scriptedAgent{events: events})

	report := orch.RunCycle(context.Background())

	require.True(t, report.Success)
	assert.Equal(t, cfg.Pipeline.MaxEventsPerCycle, report.EventsDetected)
	assert.Equal(t, cfg.Pipeline.MaxEventsPerCycle, report.RisksIdentified)
	assert.Equal(t, cfg.Pipeline.MaxRisksForPlanning, report.RecoveryPlansGenerated)
	assert.Equal(t, cfg.Pipeline.MaxContracts, report.ContractsDrafted)
}

func TestRunCycleSeededAgentsAreDeterministic(t *testing.T) {
	cfg := config.Default()
	first := NewOrchestrator(cfg, rand.New(rand.NewSource(42))).RunCycle(context.Background())
	second := NewOrchestrator(cfg, rand.New(rand.NewSource(42))).RunCycle(context.Background())

	assert.True(t, first.Success)
	assert.True(t, second.Success)
	assert.Equal(t, first.EventsDetected, second.EventsDetected)
	assert.Equal(t, first.RisksIdentified, second.RisksIdentified)
	assert.Equal(t, first.RecoveryPlansGenerated, second.RecoveryPlansGenerated)
	assert.Equal(t, first.ContractsDrafted, second.ContractsDrafted)
	assert.LessOrEqual(t, first.EventsDetected, cfg.Pipeline.MaxEventsPerCycle)

	titles := func(r Report) []string {
		out := make([]string, 0, len(r.Events))
		for _, ev := range r.Events {
			out = append(out, ev.Title)
		}
		return out
	}
	assert.ElementsMatch(t, titles(first), titles(second))
}

func TestExecuteCapturesError(t *testing.T) {
	res := execute(StageContractDrafting, func() (int, error) {
		return 0, errors.New("template corrupted")
	})

	assert.False(t, res.Success)
	assert.Equal(t, "template corrupted", res.Error)
	assert.Zero(t, res.Count)

	var report Report
	report.addStage(res)
	assert.Equal(t, []string{"contract_drafting: template corrupted"}, report.Errors)
	assert.Empty(t, report.StagesCompleted)
}
