package recovery

import (
	"time"

	"github.com/google/uuid"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
)

type ActionType string

const (
	ActionActivateBackup    ActionType = "activate_backup"
	ActionExpediteOrder     ActionType = "expedite_order"
	ActionIncreaseInventory ActionType = "increase_inventory"
	ActionRerouteShipment   ActionType = "reroute_shipment"
	ActionNegotiateTerms    ActionType = "negotiate_terms"
	ActionSplitOrder        ActionType = "split_order"
	ActionDualSource        ActionType = "dual_source"
)

type ActionPriority string

const (
	PriorityCritical ActionPriority = "critical"
	PriorityHigh     ActionPriority = "high"
	PriorityMedium   ActionPriority = "medium"
	PriorityLow      ActionPriority = "low"
)

// Action is a single step in a recovery plan. Actions start pending;
// execution tracking lives outside this module.
type Action struct {
	ActionID         string
	Type             ActionType
	Description      string
	Priority         ActionPriority
	Owner            string
	DeadlineDays     int
	EstimatedCost    float64
	BackupSupplierID string
	Status           string
	CreatedAt        time.Time
}

func NewAction(t ActionType, description string, priority ActionPriority, owner string, deadlineDays int, cost float64) Action {
	return Action{
		ActionID:      uuid.NewString(),
		Type:          t,
		Description:   description,
		Priority:      priority,
		Owner:         owner,
		DeadlineDays:  deadlineDays,
		EstimatedCost: cost,
		Status:        "pending",
		CreatedAt:     time.Now(),
	}
}

func (a Action) Deadline() time.Time {
	return a.CreatedAt.AddDate(0, 0, a.DeadlineDays)
}

func (a Action) Record() contracts.ActionRecord {
	return contracts.ActionRecord{
		ActionID:         a.ActionID,
		ActionType:       string(a.Type),
		Description:      a.Description,
		Priority:         string(a.Priority),
		Owner:            a.Owner,
		DeadlineDays:     a.DeadlineDays,
		Deadline:         a.Deadline(),
		EstimatedCost:    a.EstimatedCost,
		BackupSupplierID: a.BackupSupplierID,
		Status:           a.Status,
	}
}

// Plan is the recovery response for one risk: ordered actions plus the
// backup suppliers recommended to replace the affected one.
type Plan struct {
	PlanID                string
	RiskID                string
	Title                 string
	Description           string
	AffectedSupplierName  string
	AffectedCategories    []string
	EstimatedRecoveryDays int
	TotalEstimatedCost    float64
	Actions               []Action
	RecommendedSuppliers  []contracts.CandidateRecord
	Status                string
	CreatedAt             time.Time
}

func NewPlan(riskID, title, description, supplierName string, categories []string, recoveryDays int) *Plan {
	return &Plan{
		PlanID:                uuid.NewString(),
		RiskID:                riskID,
		Title:                 title,
		Description:           description,
		AffectedSupplierName:  supplierName,
		AffectedCategories:    categories,
		EstimatedRecoveryDays: recoveryDays,
		Status:                "draft",
		CreatedAt:             time.Now(),
	}
}

// AddAction appends the action and rolls its cost into the plan total.
func (p *Plan) AddAction(a Action) {
	p.Actions = append(p.Actions, a)
	p.TotalEstimatedCost += a.EstimatedCost
}

func (p *Plan) AddRecommendation(c contracts.CandidateRecord) {
	p.RecommendedSuppliers = append(p.RecommendedSuppliers, c)
}

func (p *Plan) CriticalActions() []Action {
	var out []Action
	for _, a := range p.Actions {
		if a.Priority == PriorityCritical {
			out = append(out, a)
		}
	}
	return out
}

func (p *Plan) ActionsByPriority() map[string][]Action {
	out := map[string][]Action{
		string(PriorityCritical): {},
		string(PriorityHigh):     {},
		string(PriorityMedium):   {},
		string(PriorityLow):      {},
	}
	for _, a := range p.Actions {
		out[string(a.Priority)] = append(out[string(a.Priority)], a)
	}
	return out
}

func (p *Plan) Record() contracts.PlanRecord {
	actions := make([]contracts.ActionRecord, 0, len(p.Actions))
	for _, a := range p.Actions {
		actions = append(actions, a.Record())
	}

	return contracts.PlanRecord{
		PlanID:                p.PlanID,
		RiskID:                p.RiskID,
		Title:                 p.Title,
		Description:           p.Description,
		AffectedSupplierName:  p.AffectedSupplierName,
		AffectedCategories:    p.AffectedCategories,
		EstimatedRecoveryDays: p.EstimatedRecoveryDays,
		TotalEstimatedCost:    p.TotalEstimatedCost,
		Actions:               actions,
		RecommendedSuppliers:  p.RecommendedSuppliers,
		Status:                p.Status,
		CreatedAt:             p.CreatedAt,
	}
}
