package contracts

import (
	"strings"
	"time"
)

type SourceType string

const (
	SourceNews     SourceType = "news"
	SourceWeather  SourceType = "weather"
	SourceEconomic SourceType = "economic"
	SourceSocial   SourceType = "social"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func SeverityFromScore(score float64) Severity {
	switch {
	case score >= 0.8:
		return SeverityCritical
	case score >= 0.6:
		return SeverityHigh
	case score >= 0.4:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func ParseSeverity(s string) Severity {
	switch Severity(strings.ToLower(s)) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return Severity(strings.ToLower(s))
	default:
		return SeverityMedium
	}
}

// Rank gives the total order used for cross-component comparisons:
// higher rank means more severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}

func (s Severity) Weight() float64 {
	switch s {
	case SeverityCritical:
		return 1.0
	case SeverityHigh:
		return 0.75
	case SeverityMedium:
		return 0.5
	case SeverityLow:
		return 0.25
	default:
		return 0.5
	}
}

type Category string

const (
	CategoryLogistics       Category = "logistics"
	CategoryNaturalDisaster Category = "natural_disaster"
	CategoryGeopolitical    Category = "geopolitical"
	CategoryEconomic        Category = "economic"
	CategoryLabor           Category = "labor"
	CategoryInfrastructure  Category = "infrastructure"
	CategoryOther           Category = "other"
)

func ParseCategory(s string) Category {
	switch Category(strings.ToLower(s)) {
	case CategoryLogistics, CategoryNaturalDisaster, CategoryGeopolitical,
		CategoryEconomic, CategoryLabor, CategoryInfrastructure:
		return Category(strings.ToLower(s))
	default:
		return CategoryOther
	}
}

// Weight reflects how strongly a disruption category tends to hit the
// supply chain; logistics events weigh highest.
func (c Category) Weight() float64 {
	switch c {
	case CategoryLogistics:
		return 1.0
	case CategoryNaturalDisaster:
		return 0.9
	case CategoryInfrastructure:
		return 0.85
	case CategoryLabor:
		return 0.75
	case CategoryGeopolitical:
		return 0.7
	case CategoryEconomic:
		return 0.6
	case CategoryOther:
		return 0.4
	default:
		return 0.5
	}
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Location struct {
	Country     string       `json:"country,omitempty"`
	Region      string       `json:"region,omitempty"`
	City        string       `json:"city,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

func (l Location) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.City, l.Region, l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "Unknown"
	}
	return strings.Join(parts, ", ")
}

// Event is the normalized record the sensing stage hands to risk analysis.
type Event struct {
	EventID                 string     `json:"event_id"`
	Title                   string     `json:"title"`
	Description             string     `json:"description"`
	SourceType              SourceType `json:"source_type"`
	Category                Category   `json:"category"`
	Severity                Severity   `json:"severity"`
	Confidence              float64    `json:"confidence"`
	ImpactScore             float64    `json:"impact_score"`
	PriorityRank            int        `json:"priority_rank"`
	Location                Location   `json:"location"`
	Keywords                []string   `json:"keywords,omitempty"`
	SourceURL               string     `json:"source_url,omitempty"`
	Timestamp               time.Time  `json:"timestamp"`
	DetectedAt              time.Time  `json:"detected_at"`
	RequiresAnalysis        bool       `json:"requires_analysis"`
	RequiresImmediateAction bool       `json:"requires_immediate_action"`
}
