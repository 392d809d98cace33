package risk

import (
	"math"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/catalog"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/config"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
)

// Scorer blends event severity, supplier criticality, financial
// exposure and geographic concentration into one composite risk score.
type Scorer struct {
	weights config.ScoringConfig
}

func NewScorer(cfg config.ScoringConfig) *Scorer {
	return &Scorer{weights: cfg}
}

// Result is the full scoring outcome for one event. Component scores
// are rounded for reporting; level, urgency and estimates are derived
// from the raw values.
type Result struct {
	Score                    Score
	Level                    Level
	Urgency                  Urgency
	EstimatedFinancialImpact float64
	EstimatedDelayDays       int
}

func (s *Scorer) Calculate(ev contracts.Event, affected []catalog.Supplier, geoFactor float64) Result {
	severity := severityScore(ev)
	criticality := criticalityScore(affected)
	financial := financialScore(affected)

	composite := s.weights.SeverityWeight*severity +
		s.weights.CriticalityWeight*criticality +
		s.weights.FinancialWeight*financial +
		s.weights.GeographicWeight*geoFactor
	composite = clamp(composite, 0, 1)

	return Result{
		Score: Score{
			Severity:    round3(severity),
			Criticality: round3(criticality),
			Financial:   round3(financial),
			Geographic:  round3(geoFactor),
			Composite:   round3(composite),
		},
		Level:                    LevelFromScore(composite),
		Urgency:                  urgencyFor(composite, criticality),
		EstimatedFinancialImpact: estimateFinancialImpact(affected, composite),
		EstimatedDelayDays:       estimateDelayDays(ev.Severity, composite),
	}
}

// Build assembles the Risk handed to classification, alerting and
// recovery planning.
func (s *Scorer) Build(ev contracts.Event, affected []catalog.Supplier, geo GeoAnalysis) Risk {
	result := s.Calculate(ev, affected, geo.RiskFactor)

	r := NewRisk(ev.EventID, "Supply Chain Risk: "+ev.Title, ev.Description, result.Score, TypeForCategory(ev.Category))
	r.AffectedSuppliers = affected
	r.GeographicScope = geo.AffectedRegion
	r.Urgency = result.Urgency
	r.EstimatedFinancialImpact = result.EstimatedFinancialImpact
	r.EstimatedDelayDays = result.EstimatedDelayDays
	r.Confidence = clamp(eventConfidence(ev), 0, 1)
	return r
}

// severityScore combines the event's severity weight with its assessed
// impact, discounted by source confidence.
func severityScore(ev contracts.Event) float64 {
	impact := ev.ImpactScore
	if impact <= 0 {
		impact = 0.5
	}
	score := (ev.Severity.Weight()*0.5 + impact*0.5) * eventConfidence(ev)
	return clamp(score, 0, 1)
}

// criticalityScore takes the most critical affected supplier and adds a
// small bonus per additional supplier, capped at 0.2.
func criticalityScore(suppliers []catalog.Supplier) float64 {
	if len(suppliers) == 0 {
		return 0
	}

	maxValue := 0.0
	for _, s := range suppliers {
		if v := s.Criticality.Value(); v > maxValue {
			maxValue = v
		}
	}

	bonus := math.Min(0.2, float64(len(suppliers))*0.05)
	return clamp(maxValue+bonus, 0, 1)
}

// financialScore is a step function on total affected annual spend. An
// empty supplier set still carries the 0.2 floor rather than zero.
func financialScore(suppliers []catalog.Supplier) float64 {
	total := totalSpend(suppliers)
	switch {
	case total >= 10_000_000:
		return 1.0
	case total >= 5_000_000:
		return 0.7
	case total >= 1_000_000:
		return 0.4
	default:
		return 0.2
	}
}

func urgencyFor(composite, criticality float64) Urgency {
	switch {
	case composite >= 0.8 || criticality >= 0.9:
		return UrgencyImmediate
	case composite >= 0.6:
		return UrgencyShortTerm
	case composite >= 0.4:
		return UrgencyMediumTerm
	default:
		return UrgencyLongTerm
	}
}

// estimateFinancialImpact models one to four weeks of annualized spend
// exposed, scaled by the composite score.
func estimateFinancialImpact(suppliers []catalog.Supplier, composite float64) float64 {
	if len(suppliers) == 0 {
		return 0
	}
	weekly := totalSpend(suppliers) / 52
	weeks := 1 + composite*3
	return round2(weekly * weeks)
}

func estimateDelayDays(sev contracts.Severity, composite float64) int {
	var base float64
	switch sev {
	case contracts.SeverityCritical:
		base = 14
	case contracts.SeverityHigh:
		base = 7
	case contracts.SeverityMedium:
		base = 3
	case contracts.SeverityLow:
		base = 1
	default:
		base = 3
	}
	return int(math.Round(base * (1 + composite)))
}

func eventConfidence(ev contracts.Event) float64 {
	if ev.Confidence <= 0 {
		return 1.0
	}
	return ev.Confidence
}

func totalSpend(suppliers []catalog.Supplier) float64 {
	total := 0.0
	for _, s := range suppliers {
		total += s.AnnualSpend
	}
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
