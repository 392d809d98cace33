package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
)

type Criticality string

const (
	CriticalityLow      Criticality = "low"
	CriticalityMedium   Criticality = "medium"
	CriticalityHigh     Criticality = "high"
	CriticalityCritical Criticality = "critical"
)

func CriticalityFromScore(score float64) Criticality {
	switch {
	case score >= 0.9:
		return CriticalityCritical
	case score >= 0.7:
		return CriticalityHigh
	case score >= 0.4:
		return CriticalityMedium
	default:
		return CriticalityLow
	}
}

func (c Criticality) Rank() int {
	switch c {
	case CriticalityCritical:
		return 3
	case CriticalityHigh:
		return 2
	case CriticalityMedium:
		return 1
	default:
		return 0
	}
}

// Value is the criticality component used by the risk scorer.
func (c Criticality) Value() float64 {
	switch c {
	case CriticalityCritical:
		return 1.0
	case CriticalityHigh:
		return 0.75
	case CriticalityMedium:
		return 0.5
	case CriticalityLow:
		return 0.25
	default:
		return 0.5
	}
}

// Multiplier scales per-supplier impact in the impact analyzer.
func (c Criticality) Multiplier() float64 {
	switch c {
	case CriticalityCritical:
		return 1.5
	case CriticalityHigh:
		return 1.25
	case CriticalityMedium:
		return 1.0
	case CriticalityLow:
		return 0.75
	default:
		return 1.0
	}
}

type Tier string

const (
	Tier1 Tier = "tier_1"
	Tier2 Tier = "tier_2"
	Tier3 Tier = "tier_3"
)

type Supplier struct {
	SupplierID   string
	Name         string
	Country      string
	Region       string
	City         string
	Coordinates  *contracts.Coordinates
	Criticality  Criticality
	Tier         Tier
	Categories   []string
	LeadTimeDays int
	AnnualSpend  float64
}

func (s Supplier) LocationString() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{s.City, s.Region, s.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "Unknown"
	}
	return strings.Join(parts, ", ")
}

func (s Supplier) InCountry(country string) bool {
	return country != "" && strings.EqualFold(s.Country, country)
}

func (s Supplier) InRegion(region string) bool {
	return region != "" && s.Region != "" && strings.EqualFold(s.Region, region)
}

func (s Supplier) InCity(city string) bool {
	return city != "" && s.City != "" && strings.EqualFold(s.City, city)
}

func (s Supplier) MatchesLocation(country, region, city string) bool {
	if s.InCity(city) {
		return true
	}
	if s.InRegion(region) {
		return true
	}
	return s.InCountry(country)
}

func (s Supplier) Record() contracts.SupplierRecord {
	return contracts.SupplierRecord{
		SupplierID:   s.SupplierID,
		Name:         s.Name,
		Country:      s.Country,
		Region:       s.Region,
		City:         s.City,
		Coordinates:  s.Coordinates,
		Criticality:  string(s.Criticality),
		Tier:         string(s.Tier),
		Categories:   s.Categories,
		LeadTimeDays: s.LeadTimeDays,
		AnnualSpend:  s.AnnualSpend,
	}
}

// suppliers is built once at process start; ids are stable for the
// lifetime of the process and the catalog is read-only.
var suppliers = buildSuppliers()

// Suppliers returns the supplier catalog. Callers get a fresh slice but
// share the underlying records, which are never mutated.
func Suppliers() []Supplier {
	out := make([]Supplier, len(suppliers))
	copy(out, suppliers)
	return out
}

func buildSuppliers() []Supplier {
	base := []Supplier{
		{
			Name:         "TechParts Asia",
			Country:      "China",
			City:         "Shenzhen",
			Region:       "Guangdong",
			Coordinates:  &contracts.Coordinates{Latitude: 22.54, Longitude: 114.06},
			Criticality:  CriticalityHigh,
			Tier:         Tier1,
			Categories:   []string{"electronics", "semiconductors", "components"},
			LeadTimeDays: 21,
			AnnualSpend:  5_000_000,
		},
		{
			Name:         "Rotterdam Logistics BV",
			Country:      "Netherlands",
			City:         "Rotterdam",
			Coordinates:  &contracts.Coordinates{Latitude: 51.92, Longitude: 4.48},
			Criticality:  CriticalityCritical,
			Tier:         Tier1,
			Categories:   []string{"freight", "logistics", "warehousing"},
			LeadTimeDays: 7,
			AnnualSpend:  3_000_000,
		},
		{
			Name:         "Singapore Shipping Corp",
			Country:      "Singapore",
			City:         "Singapore",
			Coordinates:  &contracts.Coordinates{Latitude: 1.29, Longitude: 103.85},
			Criticality:  CriticalityHigh,
			Tier:         Tier1,
			Categories:   []string{"maritime", "shipping", "freight"},
			LeadTimeDays: 14,
			AnnualSpend:  4_000_000,
		},
		{
			Name:         "Mumbai Components Ltd",
			Country:      "India",
			City:         "Mumbai",
			Region:       "Maharashtra",
			Coordinates:  &contracts.Coordinates{Latitude: 18.95, Longitude: 72.95},
			Criticality:  CriticalityMedium,
			Tier:         Tier2,
			Categories:   []string{"manufacturing", "components", "assembly"},
			LeadTimeDays: 28,
			AnnualSpend:  1_500_000,
		},
		{
			Name:         "Texas Energy Solutions",
			Country:      "USA",
			City:         "Houston",
			Region:       "Texas",
			Coordinates:  &contracts.Coordinates{Latitude: 29.76, Longitude: -95.37},
			Criticality:  CriticalityHigh,
			Tier:         Tier1,
			Categories:   []string{"energy", "petrochemicals", "raw materials"},
			LeadTimeDays: 10,
			AnnualSpend:  6_000_000,
		},
		{
			Name:         "Japan Precision Industries",
			Country:      "Japan",
			City:         "Osaka",
			Region:       "Kansai",
			Coordinates:  &contracts.Coordinates{Latitude: 34.69, Longitude: 135.50},
			Criticality:  CriticalityCritical,
			Tier:         Tier1,
			Categories:   []string{"precision components", "machinery", "electronics"},
			LeadTimeDays: 18,
			AnnualSpend:  8_000_000,
		},
		{
			Name:         "Bangkok Manufacturing",
			Country:      "Thailand",
			City:         "Bangkok",
			Coordinates:  &contracts.Coordinates{Latitude: 13.75, Longitude: 100.52},
			Criticality:  CriticalityMedium,
			Tier:         Tier2,
			Categories:   []string{"manufacturing", "assembly", "textiles"},
			LeadTimeDays: 25,
			AnnualSpend:  1_200_000,
		},
		{
			Name:         "Taiwan Semiconductor",
			Country:      "Taiwan",
			City:         "Taipei",
			Coordinates:  &contracts.Coordinates{Latitude: 25.03, Longitude: 121.57},
			Criticality:  CriticalityCritical,
			Tier:         Tier1,
			Categories:   []string{"semiconductors", "chips", "electronics"},
			LeadTimeDays: 30,
			AnnualSpend:  12_000_000,
		},
		{
			Name:         "Kolkata Port Services",
			Country:      "India",
			City:         "Kolkata",
			Region:       "West Bengal",
			Coordinates:  &contracts.Coordinates{Latitude: 22.57, Longitude: 88.36},
			Criticality:  CriticalityMedium,
			Tier:         Tier2,
			Categories:   []string{"port services", "freight", "logistics"},
			LeadTimeDays: 14,
			AnnualSpend:  800_000,
		},
		{
			Name:         "Dubai Logistics Hub",
			Country:      "UAE",
			City:         "Dubai",
			Coordinates:  &contracts.Coordinates{Latitude: 25.01, Longitude: 55.07},
			Criticality:  CriticalityHigh,
			Tier:         Tier1,
			Categories:   []string{"logistics", "freight", "distribution"},
			LeadTimeDays: 12,
			AnnualSpend:  2_500_000,
		},
	}

	for i := range base {
		base[i].SupplierID = uuid.NewString()
	}
	return base
}
