package risk

import (
	"math"
	"sort"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/catalog"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
)

// GeoCorrelator measures how concentrated the supplier base is in an
// event's region, and how exposed spend is to correlated disruption.
type GeoCorrelator struct {
	suppliers []catalog.Supplier
	byCountry map[string]*countryStats
}

type countryStats struct {
	supplierCount int
	totalSpend    float64
	suppliers     []string
}

func NewGeoCorrelator(suppliers []catalog.Supplier) *GeoCorrelator {
	if suppliers == nil {
		suppliers = catalog.Suppliers()
	}

	byCountry := make(map[string]*countryStats)
	for _, s := range suppliers {
		stats, ok := byCountry[s.Country]
		if !ok {
			stats = &countryStats{}
			byCountry[s.Country] = stats
		}
		stats.supplierCount++
		stats.totalSpend += s.AnnualSpend
		stats.suppliers = append(stats.suppliers, s.Name)
	}

	return &GeoCorrelator{suppliers: suppliers, byCountry: byCountry}
}

// GeoAnalysis is the regional exposure picture for one event.
// Concentration figures are percentages of the whole supplier base.
type GeoAnalysis struct {
	RiskFactor            float64 `json:"risk_factor"`
	AffectedRegion        string  `json:"affected_region"`
	AffectedCountry       string  `json:"affected_country,omitempty"`
	ConcentrationRisk     string  `json:"concentration_risk"`
	SuppliersInRegion     int     `json:"suppliers_in_region"`
	SpendAtRisk           float64 `json:"spend_at_risk"`
	SupplierConcentration float64 `json:"supplier_concentration"`
	SpendConcentration    float64 `json:"spend_concentration"`
}

// GeographicRisk computes the concentration risk factor for an event's
// location. Unknown locations get a fixed moderate factor, not zero.
func (g *GeoCorrelator) GeographicRisk(ev contracts.Event) GeoAnalysis {
	country := ev.Location.Country
	if country == "" {
		return GeoAnalysis{
			RiskFactor:        0.3,
			AffectedRegion:    "Unknown",
			ConcentrationRisk: "unknown",
		}
	}

	var inCountry int
	var spendInCountry float64
	if stats, ok := g.byCountry[country]; ok {
		inCountry = stats.supplierCount
		spendInCountry = stats.totalSpend
	}

	var concentration, spendConcentration float64
	if len(g.suppliers) > 0 {
		concentration = float64(inCountry) / float64(len(g.suppliers))
	}
	if total := g.totalSpend(); total > 0 {
		spendConcentration = spendInCountry / total
	}

	riskFactor := concentration*0.4 + spendConcentration*0.6
	riskFactor *= geoSeverityMultiplier(ev.Severity)
	riskFactor = clamp(riskFactor, 0, 1)

	level := "low"
	switch {
	case concentration >= 0.3:
		level = "high"
	case concentration >= 0.15:
		level = "medium"
	}

	return GeoAnalysis{
		RiskFactor:            round3(riskFactor),
		AffectedRegion:        ev.Location.String(),
		AffectedCountry:       country,
		ConcentrationRisk:     level,
		SuppliersInRegion:     inCountry,
		SpendAtRisk:           spendInCountry,
		SupplierConcentration: round1(concentration * 100),
		SpendConcentration:    round1(spendConcentration * 100),
	}
}

func geoSeverityMultiplier(sev contracts.Severity) float64 {
	switch sev {
	case contracts.SeverityCritical:
		return 1.3
	case contracts.SeverityHigh:
		return 1.15
	case contracts.SeverityMedium:
		return 1.0
	case contracts.SeverityLow:
		return 0.8
	default:
		return 1.0
	}
}

// SupplierDistance pairs a supplier with its distance from an event.
type SupplierDistance struct {
	Supplier   catalog.Supplier
	DistanceKM float64
}

// NearbySuppliers finds suppliers within radiusKM of the event, sorted
// nearest first. Events without coordinates yield nothing; there is no
// country fallback on this path.
func (g *GeoCorrelator) NearbySuppliers(ev contracts.Event, radiusKM float64) []SupplierDistance {
	coords := ev.Location.Coordinates
	if coords == nil {
		return nil
	}

	var nearby []SupplierDistance
	for _, s := range g.suppliers {
		if s.Coordinates == nil {
			continue
		}
		distance := haversineKM(coords.Latitude, coords.Longitude, s.Coordinates.Latitude, s.Coordinates.Longitude)
		if distance <= radiusKM {
			nearby = append(nearby, SupplierDistance{Supplier: s, DistanceKM: distance})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKM < nearby[j].DistanceKM
	})
	return nearby
}

// haversineKM is the great-circle distance with Earth radius 6371 km.
func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKM = 6371

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}

type CountryConcentration struct {
	Country            string   `json:"country"`
	SupplierCount      int      `json:"supplier_count"`
	TotalSpend         float64  `json:"total_spend"`
	SupplierPercentage float64  `json:"supplier_percentage"`
	SpendPercentage    float64  `json:"spend_percentage"`
	Suppliers          []string `json:"suppliers"`
}

type ConcentrationReport struct {
	TotalSuppliers  int                    `json:"total_suppliers"`
	TotalSpend      float64                `json:"total_spend"`
	UniqueCountries int                    `json:"unique_countries"`
	Regions         []CountryConcentration `json:"regions"`
}

// Concentration snapshots the whole supplier distribution, heaviest
// spend share first.
func (g *GeoCorrelator) Concentration() ConcentrationReport {
	totalSuppliers := len(g.suppliers)
	totalSpend := g.totalSpend()

	regions := make([]CountryConcentration, 0, len(g.byCountry))
	for country, stats := range g.byCountry {
		var supplierPct, spendPct float64
		if totalSuppliers > 0 {
			supplierPct = float64(stats.supplierCount) / float64(totalSuppliers) * 100
		}
		if totalSpend > 0 {
			spendPct = stats.totalSpend / totalSpend * 100
		}

		regions = append(regions, CountryConcentration{
			Country:            country,
			SupplierCount:      stats.supplierCount,
			TotalSpend:         stats.totalSpend,
			SupplierPercentage: round1(supplierPct),
			SpendPercentage:    round1(spendPct),
			Suppliers:          stats.suppliers,
		})
	}

	sort.Slice(regions, func(i, j int) bool {
		if regions[i].SpendPercentage != regions[j].SpendPercentage {
			return regions[i].SpendPercentage > regions[j].SpendPercentage
		}
		return regions[i].Country < regions[j].Country
	})

	return ConcentrationReport{
		TotalSuppliers:  totalSuppliers,
		TotalSpend:      totalSpend,
		UniqueCountries: len(g.byCountry),
		Regions:         regions,
	}
}

func (g *GeoCorrelator) totalSpend() float64 {
	total := 0.0
	for _, s := range g.suppliers {
		total += s.AnnualSpend
	}
	return total
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
