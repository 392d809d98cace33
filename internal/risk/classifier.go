package risk

import (
	"fmt"
	"log/slog"
	"sort"
)

var mitigationStrategies = map[Type][]string{
	TypeSupply: {
		"Activate backup suppliers",
		"Increase safety stock levels",
		"Expedite existing orders",
		"Source from alternative regions",
	},
	TypeLogistics: {
		"Reroute shipments via alternative routes",
		"Switch transportation modes",
		"Pre-position inventory at alternative hubs",
		"Coordinate with logistics partners",
	},
	TypeFinancial: {
		"Review hedging positions",
		"Assess cost pass-through options",
		"Negotiate payment terms",
		"Evaluate pricing adjustments",
	},
	TypeOperational: {
		"Implement contingency procedures",
		"Cross-train staff for critical functions",
		"Review BCP documentation",
		"Coordinate with operations teams",
	},
	TypeGeopolitical: {
		"Monitor regulatory developments",
		"Diversify supplier base",
		"Review compliance requirements",
		"Engage government affairs team",
	},
}

// Classifier turns a scored risk into an actionable classification:
// numeric priority, mitigation strategies, owned action items and an
// escalation path.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

type ActionItem struct {
	Action   string `json:"action"`
	Owner    string `json:"owner"`
	Priority int    `json:"priority"`
}

type Classification struct {
	RiskID             string       `json:"risk_id"`
	Level              Level        `json:"level"`
	Type               Type         `json:"type"`
	Urgency            Urgency      `json:"urgency"`
	Priority           int          `json:"priority"`
	PriorityLabel      string       `json:"priority_label"`
	Deadline           string       `json:"deadline"`
	Strategies         []string     `json:"strategies"`
	ActionItems        []ActionItem `json:"action_items"`
	EscalationRequired bool         `json:"escalation_required"`
	EscalationLevel    string       `json:"escalation_level"`
}

// Classify is deterministic: the same risk always yields the same
// priority and action ordering.
func (c *Classifier) Classify(r Risk) Classification {
	priority := priorityFor(r)
	strategies := strategiesFor(r.Type)

	classification := Classification{
		RiskID:             r.RiskID,
		Level:              r.Level,
		Type:               r.Type,
		Urgency:            r.Urgency,
		Priority:           priority,
		PriorityLabel:      priorityLabel(priority),
		Deadline:           r.Urgency.Deadline(),
		Strategies:         strategies,
		ActionItems:        actionItems(r, strategies),
		EscalationRequired: r.Level == LevelCritical || r.Level == LevelHigh,
		EscalationLevel:    escalationLevel(r),
	}

	slog.Debug("risk classified", "risk_id", r.RiskID, "priority", priority, "label", classification.PriorityLabel)
	return classification
}

// priorityFor computes the action priority; lower handles first.
func priorityFor(r Risk) int {
	var base int
	switch r.Level {
	case LevelCritical:
		base = 1
	case LevelHigh:
		base = 4
	case LevelMedium:
		base = 7
	case LevelLow:
		base = 10
	default:
		base = 7
	}

	adjust := 0
	switch r.Urgency {
	case UrgencyImmediate:
		adjust = -1
	case UrgencyMediumTerm:
		adjust = 1
	case UrgencyLongTerm:
		adjust = 2
	}

	if r.HasCriticalSuppliers() {
		adjust--
	}
	if r.EstimatedFinancialImpact > 1_000_000 {
		adjust--
	}

	if priority := base + adjust; priority > 1 {
		return priority
	}
	return 1
}

func priorityLabel(priority int) string {
	switch {
	case priority <= 3:
		return "IMMEDIATE"
	case priority <= 6:
		return "HIGH"
	case priority <= 9:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// strategiesFor returns the top three mitigation strategies for a risk
// type. Types without a template (quality) get none.
func strategiesFor(t Type) []string {
	strategies := mitigationStrategies[t]
	if len(strategies) > 3 {
		strategies = strategies[:3]
	}
	return strategies
}

// actionItems lists supplier contacts first, then strategy work, then a
// standing monitor action, with priorities assigned in sequence.
func actionItems(r Risk, strategies []string) []ActionItem {
	var items []ActionItem

	suppliers := r.AffectedSuppliers
	if len(suppliers) > 3 {
		suppliers = suppliers[:3]
	}
	for _, s := range suppliers {
		items = append(items, ActionItem{
			Action:   fmt.Sprintf("Contact %s for status update", s.Name),
			Owner:    "Procurement",
			Priority: len(items) + 1,
		})
	}

	for _, strategy := range strategies {
		items = append(items, ActionItem{
			Action:   strategy,
			Owner:    "Supply Chain",
			Priority: len(items) + 1,
		})
	}

	items = append(items, ActionItem{
		Action:   "Monitor situation for updates",
		Owner:    "Risk Management",
		Priority: len(items) + 1,
	})

	return items
}

func escalationLevel(r Risk) string {
	switch {
	case r.Level == LevelCritical:
		return "Executive Leadership"
	case r.Level == LevelHigh && r.HasCriticalSuppliers():
		return "VP Supply Chain"
	case r.Level == LevelHigh:
		return "Director Level"
	case r.Level == LevelMedium:
		return "Manager Level"
	default:
		return "Team Lead"
	}
}

type MatrixEntry struct {
	RiskID            string  `json:"risk_id"`
	Title             string  `json:"title"`
	Type              string  `json:"type"`
	Score             float64 `json:"score"`
	Priority          int     `json:"priority"`
	AffectedSuppliers int     `json:"affected_suppliers"`
	Deadline          string  `json:"deadline"`
}

// RiskMatrix buckets an assessment by level, each bucket ordered by
// priority.
func (c *Classifier) RiskMatrix(assessment *Assessment) map[string][]MatrixEntry {
	matrix := map[string][]MatrixEntry{
		"critical": {},
		"high":     {},
		"medium":   {},
		"low":      {},
	}

	for _, r := range assessment.Risks {
		classification := c.Classify(r)
		matrix[string(r.Level)] = append(matrix[string(r.Level)], MatrixEntry{
			RiskID:            r.RiskID,
			Title:             r.Title,
			Type:              string(r.Type),
			Score:             r.Score.Composite,
			Priority:          classification.Priority,
			AffectedSuppliers: r.AffectedSupplierCount(),
			Deadline:          classification.Deadline,
		})
	}

	for level := range matrix {
		entries := matrix[level]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Priority < entries[j].Priority
		})
	}

	return matrix
}
