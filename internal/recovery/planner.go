package recovery

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/config"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
)

// Planner turns analyzed risks into recovery plans.
type Planner struct {
	evaluator *Evaluator
}

func NewPlanner(evaluator *Evaluator) *Planner {
	if evaluator == nil {
		evaluator = NewEvaluator(config.Default().Recovery, nil)
	}
	return &Planner{evaluator: evaluator}
}

// GeneratePlan builds the recovery plan for one risk. The first
// affected supplier anchors the plan and its categories drive the
// backup search, which excludes the supplier's own country.
func (p *Planner) GeneratePlan(risk contracts.RiskRecord) *Plan {
	riskID := risk.RiskID
	if riskID == "" {
		riskID = "unknown"
	}

	supplierName := "Unknown Supplier"
	var affectedCountry string
	var categories []string
	if len(risk.AffectedSuppliers) > 0 {
		primary := risk.AffectedSuppliers[0]
		if primary.Name != "" {
			supplierName = primary.Name
		}
		affectedCountry = primary.Country
		categories = primary.Categories
	}

	title := risk.Title
	if title == "" {
		title = "Supply Disruption"
	}

	recoveryDays := risk.EstimatedDelayDays
	if recoveryDays <= 0 {
		recoveryDays = 14
	}

	plan := NewPlan(
		riskID,
		"Recovery Plan: "+truncate(title, 50),
		fmt.Sprintf("Recovery actions for %s disruption", supplierName),
		supplierName,
		categories,
		recoveryDays,
	)

	for _, action := range actionsFor(risk) {
		plan.AddAction(action)
	}

	for _, candidate := range p.evaluator.FindAlternatives(categories, affectedCountry, 3) {
		plan.AddRecommendation(candidate.Record())
	}

	slog.Info("recovery plan generated",
		"plan_id", plan.PlanID,
		"risk_id", riskID,
		"actions", len(plan.Actions),
		"recommended", len(plan.RecommendedSuppliers))
	return plan
}

// GeneratePlans plans every risk and orders the result by estimated
// recovery time, shortest first.
func (p *Planner) GeneratePlans(risks []contracts.RiskRecord) []*Plan {
	plans := make([]*Plan, 0, len(risks))
	for _, risk := range risks {
		plans = append(plans, p.GeneratePlan(risk))
	}

	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].EstimatedRecoveryDays < plans[j].EstimatedRecoveryDays
	})
	return plans
}

// actionsFor builds the action list. Severe risks get backup activation
// and order expediting up front; every plan carries inventory, dual
// sourcing, negotiation and order splitting work.
func actionsFor(risk contracts.RiskRecord) []Action {
	severe := risk.RiskLevel == "critical" || risk.RiskLevel == "high"

	var actions []Action
	if severe {
		actions = append(actions,
			NewAction(ActionActivateBackup, "Activate pre-qualified backup supplier", PriorityCritical, "Procurement Lead", 1, 5000),
			NewAction(ActionExpediteOrder, "Expedite existing orders with alternative suppliers", PriorityCritical, "Supply Chain Manager", 2, 15000),
		)
	}

	inventoryPriority := PriorityMedium
	if severe {
		inventoryPriority = PriorityHigh
	}
	actions = append(actions,
		NewAction(ActionIncreaseInventory, "Assess and increase safety stock levels", inventoryPriority, "Inventory Manager", 3, 25000),
		NewAction(ActionDualSource, "Implement dual-sourcing strategy for critical items", PriorityHigh, "Category Manager", 7, 10000),
	)

	if risk.RiskType == "logistics" {
		actions = append(actions,
			NewAction(ActionRerouteShipment, "Identify alternative shipping routes and carriers", PriorityHigh, "Logistics Coordinator", 2, 8000))
	}

	actions = append(actions,
		NewAction(ActionNegotiateTerms, "Negotiate expedited terms with backup suppliers", PriorityMedium, "Procurement Specialist", 5, 2000),
		NewAction(ActionSplitOrder, "Split future orders across multiple suppliers", PriorityLow, "Strategic Sourcing", 14, 0),
	)

	return actions
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
