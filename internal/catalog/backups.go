package catalog

import (
	"strings"

	"github.com/google/uuid"
)

type BackupStatus string

const (
	BackupActive      BackupStatus = "active"
	BackupStandby     BackupStatus = "standby"
	BackupQualified   BackupStatus = "qualified"
	BackupProspective BackupStatus = "prospective"
)

// Bonus is the readiness adjustment applied by the candidate evaluator.
func (s BackupStatus) Bonus() float64 {
	switch s {
	case BackupActive:
		return 0.1
	case BackupStandby:
		return 0.05
	case BackupQualified:
		return 0.0
	case BackupProspective:
		return -0.05
	default:
		return 0.0
	}
}

type BackupSupplier struct {
	SupplierID       string       `json:"supplier_id"`
	Name             string       `json:"name"`
	Country          string       `json:"country"`
	City             string       `json:"city,omitempty"`
	Categories       []string     `json:"categories"`
	Status           BackupStatus `json:"status"`
	CapacityScore    float64      `json:"capacity_score"`
	QualityScore     float64      `json:"quality_score"`
	LeadTimeDays     int          `json:"lead_time_days"`
	CostPremiumPct   float64      `json:"cost_premium_pct"`
	MinOrderValue    float64      `json:"min_order_value"`
	MaxCapacityUnits int          `json:"max_capacity_units"`
	Certifications   []string     `json:"certifications,omitempty"`
}

func (b BackupSupplier) LocationString() string {
	if b.City != "" && b.Country != "" {
		return b.City + ", " + b.Country
	}
	if b.Country != "" {
		return b.Country
	}
	return "Unknown"
}

// CanSupply reports whether any of the backup's categories overlaps the
// requested category, matching substrings in either direction.
func (b BackupSupplier) CanSupply(category string) bool {
	want := strings.ToLower(strings.TrimSpace(category))
	if want == "" {
		return false
	}
	for _, c := range b.Categories {
		have := strings.ToLower(c)
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return true
		}
	}
	return false
}

// OverallScore blends quality, capacity and cost premium into a single
// readiness figure.
func (b BackupSupplier) OverallScore() float64 {
	premium := 1.0 - b.CostPremiumPct/50.0
	if premium < 0 {
		premium = 0
	}
	return 0.4*b.QualityScore + 0.3*b.CapacityScore + 0.3*premium
}

var backups = buildBackups()

// BackupSuppliers returns the backup supplier pool. The underlying
// records are shared and read-only.
func BackupSuppliers() []BackupSupplier {
	out := make([]BackupSupplier, len(backups))
	copy(out, backups)
	return out
}

func buildBackups() []BackupSupplier {
	base := []BackupSupplier{
		{
			Name:           "Vietnam Electronics Co",
			Country:        "Vietnam",
			City:           "Ho Chi Minh City",
			Categories:     []string{"electronics", "semiconductors", "components"},
			Status:         BackupQualified,
			CapacityScore:  0.75,
			QualityScore:   0.80,
			LeadTimeDays:   25,
			CostPremiumPct: 8,
			Certifications: []string{"ISO 9001", "ISO 14001"},
		},
		{
			Name:           "Malaysia Precision Parts",
			Country:        "Malaysia",
			City:           "Penang",
			Categories:     []string{"precision components", "machinery", "electronics"},
			Status:         BackupStandby,
			CapacityScore:  0.85,
			QualityScore:   0.88,
			LeadTimeDays:   20,
			CostPremiumPct: 12,
			Certifications: []string{"ISO 9001", "AS9100"},
		},
		{
			Name:           "Indonesia Manufacturing",
			Country:        "Indonesia",
			City:           "Jakarta",
			Categories:     []string{"manufacturing", "assembly", "textiles"},
			Status:         BackupQualified,
			CapacityScore:  0.70,
			QualityScore:   0.75,
			LeadTimeDays:   28,
			CostPremiumPct: 5,
			Certifications: []string{"ISO 9001"},
		},
		{
			Name:           "Mexico Logistics Partner",
			Country:        "Mexico",
			City:           "Monterrey",
			Categories:     []string{"logistics", "freight", "warehousing"},
			Status:         BackupActive,
			CapacityScore:  0.80,
			QualityScore:   0.82,
			LeadTimeDays:   14,
			CostPremiumPct: 15,
			Certifications: []string{"C-TPAT", "ISO 9001"},
		},
		{
			Name:           "Poland Distribution Hub",
			Country:        "Poland",
			City:           "Warsaw",
			Categories:     []string{"logistics", "distribution", "freight"},
			Status:         BackupStandby,
			CapacityScore:  0.78,
			QualityScore:   0.85,
			LeadTimeDays:   12,
			CostPremiumPct: 18,
			Certifications: []string{"AEO", "ISO 9001"},
		},
		{
			Name:           "South Korea Semiconductors",
			Country:        "South Korea",
			City:           "Seoul",
			Categories:     []string{"semiconductors", "chips", "electronics"},
			Status:         BackupQualified,
			CapacityScore:  0.90,
			QualityScore:   0.92,
			LeadTimeDays:   22,
			CostPremiumPct: 20,
			Certifications: []string{"ISO 9001", "IATF 16949"},
		},
		{
			Name:           "India Tech Solutions",
			Country:        "India",
			City:           "Bangalore",
			Categories:     []string{"components", "electronics", "software"},
			Status:         BackupQualified,
			CapacityScore:  0.72,
			QualityScore:   0.78,
			LeadTimeDays:   24,
			CostPremiumPct: 6,
			Certifications: []string{"ISO 9001", "ISO 27001"},
		},
		{
			Name:           "Philippines Assembly Corp",
			Country:        "Philippines",
			City:           "Manila",
			Categories:     []string{"assembly", "manufacturing", "components"},
			Status:         BackupProspective,
			CapacityScore:  0.68,
			QualityScore:   0.74,
			LeadTimeDays:   26,
			CostPremiumPct: 4,
			Certifications: []string{"ISO 9001"},
		},
	}

	for i := range base {
		base[i].SupplierID = uuid.NewString()
		if base[i].MinOrderValue == 0 {
			base[i].MinOrderValue = 10_000
		}
		if base[i].MaxCapacityUnits == 0 {
			base[i].MaxCapacityUnits = 1_000
		}
	}
	return base
}
