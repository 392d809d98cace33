package recovery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
)

func logisticsRisk() contracts.RiskRecord {
	return contracts.RiskRecord{
		RiskID:             "risk-1",
		Title:              "Supply Chain Risk: Rotterdam Port Workers Announce Strike",
		RiskLevel:          "critical",
		RiskType:           "logistics",
		EstimatedDelayDays: 26,
		AffectedSuppliers: []contracts.SupplierRecord{
			{
				SupplierID: "sup-1",
				Name:       "Rotterdam Logistics BV",
				Country:    "Netherlands",
				Categories: []string{"freight", "logistics", "warehousing"},
			},
		},
	}
}

func TestGeneratePlanSevereRisk(t *testing.T) {
	plan := NewPlanner(nil).GeneratePlan(logisticsRisk())

	assert.Equal(t, "risk-1", plan.RiskID)
	assert.Equal(t, "Recovery Plan: Supply Chain Risk: Rotterdam Port Workers Announce", plan.Title)
	assert.Equal(t, "Recovery actions for Rotterdam Logistics BV disruption", plan.Description)
	assert.Equal(t, "Rotterdam Logistics BV", plan.AffectedSupplierName)
	assert.Equal(t, 26, plan.EstimatedRecoveryDays)
	assert.Equal(t, "draft", plan.Status)

	require.Len(t, plan.Actions, 7)
	types := make([]ActionType, 0, len(plan.Actions))
	for _, a := range plan.Actions {
		types = append(types, a.Type)
	}
	assert.Equal(t, []ActionType{
		ActionActivateBackup,
		ActionExpediteOrder,
		ActionIncreaseInventory,
		ActionDualSource,
		ActionRerouteShipment,
		ActionNegotiateTerms,
		ActionSplitOrder,
	}, types)

	assert.Equal(t, PriorityHigh, plan.Actions[2].Priority)
	assert.InDelta(t, 65000, plan.TotalEstimatedCost, 1e-9)

	require.Len(t, plan.RecommendedSuppliers, 2)
	assert.Equal(t, "Mexico Logistics Partner", plan.RecommendedSuppliers[0].Name)
	assert.InDelta(t, 0.935, plan.RecommendedSuppliers[0].EvaluationScore, 1e-9)
	assert.Equal(t, "Highly Recommended - Activate immediately", plan.RecommendedSuppliers[0].Recommendation)
	assert.Equal(t, "Poland Distribution Hub", plan.RecommendedSuppliers[1].Name)
}

func TestGeneratePlanWithoutSuppliers(t *testing.T) {
	risk := contracts.RiskRecord{
		RiskID:    "risk-2",
		Title:     "Supply Chain Risk: Currency Collapse",
		RiskLevel: "medium",
		RiskType:  "financial",
	}

	plan := NewPlanner(nil).GeneratePlan(risk)

	assert.Equal(t, "Unknown Supplier", plan.AffectedSupplierName)
	assert.Equal(t, 14, plan.EstimatedRecoveryDays)

	require.Len(t, plan.Actions, 4)
	assert.Equal(t, ActionIncreaseInventory, plan.Actions[0].Type)
	assert.Equal(t, PriorityMedium, plan.Actions[0].Priority)
	assert.InDelta(t, 37000, plan.TotalEstimatedCost, 1e-9)

	// Neutral category match keeps the whole pool eligible.
	require.Len(t, plan.RecommendedSuppliers, 3)
	assert.Equal(t, "Mexico Logistics Partner", plan.RecommendedSuppliers[0].Name)
}

func TestGeneratePlanTruncatesTitle(t *testing.T) {
	risk := logisticsRisk()
	risk.Title = strings.Repeat("x", 80)

	plan := NewPlanner(nil).GeneratePlan(risk)

	assert.Equal(t, "Recovery Plan: "+strings.Repeat("x", 50), plan.Title)
}

func TestGeneratePlanDefaults(t *testing.T) {
	plan := NewPlanner(nil).GeneratePlan(contracts.RiskRecord{})

	assert.Equal(t, "unknown", plan.RiskID)
	assert.Equal(t, "Recovery Plan: Supply Disruption", plan.Title)
}

func TestGeneratePlansOrdersByRecovery(t *testing.T) {
	fast := logisticsRisk()
	fast.RiskID = "risk-fast"
	fast.EstimatedDelayDays = 5

	slow := logisticsRisk()
	slow.RiskID = "risk-slow"
	slow.EstimatedDelayDays = 20

	plans := NewPlanner(nil).GeneratePlans([]contracts.RiskRecord{slow, fast})

	require.Len(t, plans, 2)
	assert.Equal(t, "risk-fast", plans[0].RiskID)
	assert.Equal(t, "risk-slow", plans[1].RiskID)
}

func TestPlanAccessors(t *testing.T) {
	plan := NewPlanner(nil).GeneratePlan(logisticsRisk())

	critical := plan.CriticalActions()
	require.Len(t, critical, 2)
	assert.Equal(t, ActionActivateBackup, critical[0].Type)

	byPriority := plan.ActionsByPriority()
	require.Len(t, byPriority, 4)
	assert.Len(t, byPriority["critical"], 2)
	assert.Len(t, byPriority["high"], 3)
	assert.Len(t, byPriority["medium"], 1)
	assert.Len(t, byPriority["low"], 1)
}

func TestPlanRecord(t *testing.T) {
	plan := NewPlanner(nil).GeneratePlan(logisticsRisk())

	rec := plan.Record()

	assert.Equal(t, plan.PlanID, rec.PlanID)
	assert.Equal(t, "risk-1", rec.RiskID)
	assert.Equal(t, []string{"freight", "logistics", "warehousing"}, rec.AffectedCategories)
	assert.InDelta(t, 65000, rec.TotalEstimatedCost, 1e-9)
	require.Len(t, rec.Actions, 7)
	assert.Equal(t, "activate_backup", rec.Actions[0].ActionType)
	assert.Equal(t, "pending", rec.Actions[0].Status)
	assert.Equal(t, 1, rec.Actions[0].DeadlineDays)
	assert.Equal(t, rec.Actions[0].Deadline, plan.Actions[0].Deadline())
	require.Len(t, rec.RecommendedSuppliers, 2)
}
