package risk

import (
	"log/slog"
	"strings"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/catalog"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
)

// keywordCategories maps event keywords to supplier categories they
// implicate even without direct text overlap.
var keywordCategories = map[string][]string{
	"port":          {"logistics", "freight", "shipping", "maritime"},
	"shipping":      {"logistics", "freight", "maritime"},
	"freight":       {"logistics", "shipping"},
	"manufacturing": {"components", "assembly"},
	"semiconductor": {"electronics", "chips"},
	"energy":        {"petrochemicals", "raw materials"},
	"cyclone":       {"port services", "logistics", "shipping"},
	"flood":         {"manufacturing", "logistics"},
	"earthquake":    {"manufacturing", "components"},
}

// ImpactAnalyzer maps disruption events onto the suppliers they touch,
// by location or by category overlap.
type ImpactAnalyzer struct {
	suppliers []catalog.Supplier
}

func NewImpactAnalyzer(suppliers []catalog.Supplier) *ImpactAnalyzer {
	if suppliers == nil {
		suppliers = catalog.Suppliers()
	}
	return &ImpactAnalyzer{suppliers: suppliers}
}

// AffectedSuppliers returns every supplier matched by location or
// category, preserving catalog order.
func (a *ImpactAnalyzer) AffectedSuppliers(ev contracts.Event) []catalog.Supplier {
	var affected []catalog.Supplier

	for _, s := range a.suppliers {
		geoMatch := s.MatchesLocation(ev.Location.Country, ev.Location.Region, ev.Location.City)
		categoryMatch := matchesCategories(s, ev.Keywords)

		if geoMatch || categoryMatch {
			affected = append(affected, s)
			slog.Debug("supplier affected", "supplier", s.Name, "geo", geoMatch, "category", categoryMatch)
		}
	}

	if len(affected) > 0 {
		slog.Info("affected suppliers identified", "count", len(affected), "event", ev.Title)
	}
	return affected
}

// matchesCategories checks supplier categories against event keywords:
// direct hits, substring containment either way, then the keyword
// synonym table.
func matchesCategories(s catalog.Supplier, keywords []string) bool {
	if len(keywords) == 0 || len(s.Categories) == 0 {
		return false
	}

	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}

	for _, category := range s.Categories {
		category = strings.ToLower(category)
		for _, kw := range lowered {
			if category == kw || strings.Contains(category, kw) || strings.Contains(kw, category) {
				return true
			}
		}
	}

	for _, kw := range lowered {
		for _, mapped := range keywordCategories[kw] {
			for _, category := range s.Categories {
				if strings.ToLower(category) == mapped {
					return true
				}
			}
		}
	}

	return false
}

// SupplierImpact is the per-supplier impact assessment for one event.
type SupplierImpact struct {
	SupplierID            string   `json:"supplier_id"`
	SupplierName          string   `json:"supplier_name"`
	ImpactSeverity        float64  `json:"impact_severity"`
	ImpactLevel           string   `json:"impact_level"`
	EstimatedRecoveryDays int      `json:"estimated_recovery_days"`
	FinancialExposure     float64  `json:"financial_exposure"`
	IsCritical            bool     `json:"is_critical"`
	Recommendations       []string `json:"recommendations"`
}

// ImpactSeverity assesses how hard one supplier is hit: event severity
// scaled by supplier criticality, with recovery estimated from lead
// time.
func (a *ImpactAnalyzer) ImpactSeverity(s catalog.Supplier, ev contracts.Event) SupplierImpact {
	impact := ev.Severity.Weight() * s.Criticality.Multiplier()
	if impact > 1.0 {
		impact = 1.0
	}

	recoveryDays := int(float64(s.LeadTimeDays) * (0.5 + impact*0.5))

	level := "low"
	switch {
	case impact >= 0.7:
		level = "high"
	case impact >= 0.4:
		level = "medium"
	}

	return SupplierImpact{
		SupplierID:            s.SupplierID,
		SupplierName:          s.Name,
		ImpactSeverity:        impact,
		ImpactLevel:           level,
		EstimatedRecoveryDays: recoveryDays,
		FinancialExposure:     s.AnnualSpend,
		IsCritical:            s.Criticality == catalog.CriticalityCritical,
		Recommendations:       recommendations(s, impact),
	}
}

// recommendations builds the mitigation list. Thresholds are additive;
// several may fire for one supplier.
func recommendations(s catalog.Supplier, impact float64) []string {
	var recs []string

	if impact >= 0.8 {
		recs = append(recs, "Activate backup supplier immediately")
		recs = append(recs, "Expedite existing orders if possible")
	}
	if s.Criticality == catalog.CriticalityCritical {
		recs = append(recs, "Escalate to executive leadership")
		recs = append(recs, "Review business continuity plan")
	}
	if impact >= 0.5 {
		recs = append(recs, "Contact supplier for status update")
		recs = append(recs, "Assess inventory buffer levels")
	}
	if s.LeadTimeDays > 20 {
		recs = append(recs, "Consider air freight alternatives")
	}

	return recs
}

func (a *ImpactAnalyzer) SupplierByID(id string) (catalog.Supplier, bool) {
	for _, s := range a.suppliers {
		if s.SupplierID == id {
			return s, true
		}
	}
	return catalog.Supplier{}, false
}

func (a *ImpactAnalyzer) SuppliersByCountry(country string) []catalog.Supplier {
	var out []catalog.Supplier
	for _, s := range a.suppliers {
		if s.InCountry(country) {
			out = append(out, s)
		}
	}
	return out
}

func (a *ImpactAnalyzer) CriticalSuppliers() []catalog.Supplier {
	var out []catalog.Supplier
	for _, s := range a.suppliers {
		if s.Criticality == catalog.CriticalityCritical {
			out = append(out, s)
		}
	}
	return out
}
