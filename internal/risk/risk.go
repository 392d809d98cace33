package risk

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/catalog"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
)

type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// LevelFromScore maps a composite score to a level. Boundary values
// belong to the higher tier.
func LevelFromScore(score float64) Level {
	switch {
	case score >= 0.8:
		return LevelCritical
	case score >= 0.6:
		return LevelHigh
	case score >= 0.4:
		return LevelMedium
	default:
		return LevelLow
	}
}

func (l Level) Rank() int {
	switch l {
	case LevelCritical:
		return 3
	case LevelHigh:
		return 2
	case LevelMedium:
		return 1
	default:
		return 0
	}
}

type Type string

const (
	TypeSupply       Type = "supply"
	TypeLogistics    Type = "logistics"
	TypeFinancial    Type = "financial"
	TypeOperational  Type = "operational"
	TypeQuality      Type = "quality"
	TypeGeopolitical Type = "geopolitical"
)

// TypeForCategory maps an event category to the kind of supply chain
// risk it creates.
func TypeForCategory(category contracts.Category) Type {
	switch category {
	case contracts.CategoryLogistics, contracts.CategoryInfrastructure:
		return TypeLogistics
	case contracts.CategoryNaturalDisaster:
		return TypeSupply
	case contracts.CategoryLabor:
		return TypeOperational
	case contracts.CategoryGeopolitical:
		return TypeGeopolitical
	case contracts.CategoryEconomic:
		return TypeFinancial
	default:
		return TypeOperational
	}
}

type Urgency string

const (
	UrgencyImmediate  Urgency = "immediate"
	UrgencyShortTerm  Urgency = "short_term"
	UrgencyMediumTerm Urgency = "medium_term"
	UrgencyLongTerm   Urgency = "long_term"
)

// Deadline is the response window communicated for this urgency.
func (u Urgency) Deadline() string {
	switch u {
	case UrgencyImmediate:
		return "Within 24 hours"
	case UrgencyShortTerm:
		return "Within 1 week"
	case UrgencyMediumTerm:
		return "Within 1 month"
	case UrgencyLongTerm:
		return "Within 3 months"
	default:
		return "To be determined"
	}
}

// Score carries the composite risk score and the component scores it
// was blended from, all in [0,1].
type Score struct {
	Severity    float64 `json:"severity"`
	Criticality float64 `json:"supplier_criticality"`
	Financial   float64 `json:"financial_exposure"`
	Geographic  float64 `json:"geographic"`
	Composite   float64 `json:"composite"`
}

// Risk is an analyzed supply chain risk derived from one disruption
// event. Affected suppliers are shared references into the catalog.
type Risk struct {
	RiskID                   string
	SourceEventID            string
	Title                    string
	Description              string
	Score                    Score
	Level                    Level
	Type                     Type
	AffectedSuppliers        []catalog.Supplier
	GeographicScope          string
	Urgency                  Urgency
	EstimatedFinancialImpact float64
	EstimatedDelayDays       int
	Confidence               float64
	CreatedAt                time.Time
}

func NewRisk(sourceEventID, title, description string, score Score, riskType Type) Risk {
	return Risk{
		RiskID:        uuid.NewString(),
		SourceEventID: sourceEventID,
		Title:         title,
		Description:   description,
		Score:         score,
		Level:         LevelFromScore(score.Composite),
		Type:          riskType,
		Confidence:    1.0,
		CreatedAt:     time.Now(),
	}
}

func (r Risk) AffectedSupplierCount() int {
	return len(r.AffectedSuppliers)
}

func (r Risk) HasCriticalSuppliers() bool {
	for _, s := range r.AffectedSuppliers {
		if s.Criticality == catalog.CriticalityCritical {
			return true
		}
	}
	return false
}

func (r Risk) TotalAffectedSpend() float64 {
	total := 0.0
	for _, s := range r.AffectedSuppliers {
		total += s.AnnualSpend
	}
	return total
}

func (r Risk) SupplierNames() []string {
	names := make([]string, 0, len(r.AffectedSuppliers))
	for _, s := range r.AffectedSuppliers {
		names = append(names, s.Name)
	}
	return names
}

// Record is the serialized form handed to downstream stages.
func (r Risk) Record() contracts.RiskRecord {
	suppliers := make([]contracts.SupplierRecord, 0, len(r.AffectedSuppliers))
	for _, s := range r.AffectedSuppliers {
		suppliers = append(suppliers, s.Record())
	}

	return contracts.RiskRecord{
		RiskID:                   r.RiskID,
		SourceEventID:            r.SourceEventID,
		Title:                    r.Title,
		Description:              r.Description,
		RiskScore:                round3(r.Score.Composite),
		RiskLevel:                string(r.Level),
		RiskType:                 string(r.Type),
		AffectedSuppliers:        suppliers,
		AffectedSupplierCount:    r.AffectedSupplierCount(),
		GeographicScope:          r.GeographicScope,
		MitigationUrgency:        string(r.Urgency),
		EstimatedFinancialImpact: r.EstimatedFinancialImpact,
		EstimatedDelayDays:       r.EstimatedDelayDays,
		Confidence:               round3(r.Confidence),
		HasCriticalSuppliers:     r.HasCriticalSuppliers(),
		TotalAffectedSpend:       r.TotalAffectedSpend(),
		CreatedAt:                r.CreatedAt,
	}
}

// Assessment collects the risks from one analysis cycle.
type Assessment struct {
	AssessmentID string
	Risks        []Risk
	CreatedAt    time.Time
}

func NewAssessment() *Assessment {
	return &Assessment{
		AssessmentID: uuid.NewString(),
		CreatedAt:    time.Now(),
	}
}

func (a *Assessment) Add(r Risk) {
	a.Risks = append(a.Risks, r)
}

func (a *Assessment) Len() int {
	return len(a.Risks)
}

func (a *Assessment) CriticalRisks() []Risk {
	return a.byLevel(LevelCritical)
}

func (a *Assessment) HighRisks() []Risk {
	return a.byLevel(LevelHigh)
}

func (a *Assessment) byLevel(level Level) []Risk {
	var out []Risk
	for _, r := range a.Risks {
		if r.Level == level {
			out = append(out, r)
		}
	}
	return out
}

func (a *Assessment) ImmediateActionRequired() []Risk {
	var out []Risk
	for _, r := range a.Risks {
		if r.Urgency == UrgencyImmediate {
			out = append(out, r)
		}
	}
	return out
}

type AssessmentSummary struct {
	AssessmentID         string         `json:"assessment_id"`
	TotalRisks           int            `json:"total_risks"`
	RisksByLevel         map[string]int `json:"risks_by_level"`
	RisksByType          map[string]int `json:"risks_by_type"`
	CriticalCount        int            `json:"critical_count"`
	ImmediateActionCount int            `json:"immediate_action_count"`
	TotalEstimatedImpact float64        `json:"total_estimated_impact"`
	MaxDelayDays         int            `json:"max_delay_days"`
	CreatedAt            time.Time      `json:"created_at"`
}

func (a *Assessment) Summary() AssessmentSummary {
	summary := AssessmentSummary{
		AssessmentID: a.AssessmentID,
		TotalRisks:   len(a.Risks),
		RisksByLevel: make(map[string]int),
		RisksByType:  make(map[string]int),
		CreatedAt:    a.CreatedAt,
	}

	for _, r := range a.Risks {
		summary.RisksByLevel[string(r.Level)]++
		summary.RisksByType[string(r.Type)]++
		summary.TotalEstimatedImpact += r.EstimatedFinancialImpact
		if r.EstimatedDelayDays > summary.MaxDelayDays {
			summary.MaxDelayDays = r.EstimatedDelayDays
		}
	}
	summary.CriticalCount = len(a.CriticalRisks())
	summary.ImmediateActionCount = len(a.ImmediateActionRequired())
	return summary
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
