package sensing

import (
	"log/slog"
	"math"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/config"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
)

// Normalizer turns raw detections into the normalized records consumed
// by risk analysis: low-confidence events are dropped, the rest get an
// impact score, a priority rank and routing hints.
type Normalizer struct {
	confidenceThreshold float64
}

func NewNormalizer(cfg config.SensingConfig) *Normalizer {
	return &Normalizer{confidenceThreshold: cfg.ConfidenceThreshold}
}

func (n *Normalizer) Normalize(events []Event) []contracts.Event {
	out := make([]contracts.Event, 0, len(events))
	for _, ev := range events {
		if ev.Confidence < n.confidenceThreshold {
			slog.Debug("event below confidence threshold", "title", ev.Title, "confidence", ev.Confidence)
			continue
		}
		out = append(out, n.normalizeEvent(ev))
	}
	if dropped := len(events) - len(out); dropped > 0 {
		slog.Info("events normalized", "kept", len(out), "dropped", dropped)
	}
	return out
}

func (n *Normalizer) normalizeEvent(ev Event) contracts.Event {
	impact := impactScore(ev)
	return contracts.Event{
		EventID:                 ev.EventID,
		Title:                   ev.Title,
		Description:             ev.Description,
		SourceType:              ev.SourceType,
		Category:                ev.Category,
		Severity:                ev.Severity,
		Confidence:              round3(ev.Confidence),
		ImpactScore:             round3(impact),
		PriorityRank:            priorityRank(ev.Severity, impact),
		Location:                ev.Location,
		Keywords:                ev.Keywords,
		SourceURL:               ev.SourceURL,
		Timestamp:               ev.Timestamp,
		DetectedAt:              ev.DetectedAt,
		RequiresAnalysis:        impact >= 0.5,
		RequiresImmediateAction: ev.Severity == contracts.SeverityCritical,
	}
}

// impactScore estimates supply chain exposure from category, severity
// and source confidence.
func impactScore(ev Event) float64 {
	impact := ev.Category.Weight() * ev.Severity.Weight() * ev.Confidence
	if impact > 1.0 {
		return 1.0
	}
	return impact
}

// priorityRank orders events for processing; 1 is highest priority.
func priorityRank(sev contracts.Severity, impact float64) int {
	var base int
	switch sev {
	case contracts.SeverityCritical:
		base = 1
	case contracts.SeverityHigh:
		base = 10
	case contracts.SeverityMedium:
		base = 20
	case contracts.SeverityLow:
		base = 30
	default:
		base = 25
	}

	rank := base - int(impact*5)
	if rank < 1 {
		return 1
	}
	return rank
}

type NormalizedSummary struct {
	TotalEvents    int            `json:"total_events"`
	BySeverity     map[string]int `json:"events_by_severity"`
	AverageImpact  float64        `json:"average_impact"`
	CriticalEvents int            `json:"critical_events"`
	RequiresAction int            `json:"requires_action"`
}

func Summarize(events []contracts.Event) NormalizedSummary {
	summary := NormalizedSummary{
		TotalEvents: len(events),
		BySeverity:  make(map[string]int),
	}
	if len(events) == 0 {
		return summary
	}

	total := 0.0
	for _, ev := range events {
		summary.BySeverity[string(ev.Severity)]++
		total += ev.ImpactScore
		if ev.Severity == contracts.SeverityCritical {
			summary.CriticalEvents++
		}
		if ev.RequiresImmediateAction {
			summary.RequiresAction++
		}
	}
	summary.AverageImpact = round3(total / float64(len(events)))
	return summary
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
