package recovery

import (
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/catalog"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/config"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
)

// Candidate is an evaluated backup supplier for one disruption.
type Candidate struct {
	Supplier        catalog.BackupSupplier
	EvaluationScore float64
	CategoryMatch   float64
	Recommendation  string
}

func (c Candidate) Record() contracts.CandidateRecord {
	return contracts.CandidateRecord{
		SupplierID:      c.Supplier.SupplierID,
		Name:            c.Supplier.Name,
		Country:         c.Supplier.Country,
		City:            c.Supplier.City,
		EvaluationScore: round3(c.EvaluationScore),
		CategoryMatch:   round3(c.CategoryMatch),
		QualityScore:    c.Supplier.QualityScore,
		CapacityScore:   c.Supplier.CapacityScore,
		LeadTimeDays:    c.Supplier.LeadTimeDays,
		CostPremiumPct:  c.Supplier.CostPremiumPct,
		Status:          string(c.Supplier.Status),
		Certifications:  c.Supplier.Certifications,
		Recommendation:  c.Recommendation,
	}
}

// Evaluator ranks backup suppliers by their fit to cover for a
// disrupted one.
type Evaluator struct {
	backups         []catalog.BackupSupplier
	maxLeadTimeDays int
	minQualityScore float64
	maxCandidates   int
}

func NewEvaluator(cfg config.RecoveryConfig, backups []catalog.BackupSupplier) *Evaluator {
	if backups == nil {
		backups = catalog.BackupSuppliers()
	}
	return &Evaluator{
		backups:         backups,
		maxLeadTimeDays: cfg.MaxLeadTimeDays,
		minQualityScore: cfg.MinQualityScore,
		maxCandidates:   cfg.MaxCandidates,
	}
}

// FindAlternatives filters and ranks the backup pool for the required
// categories. Suppliers in the affected country are excluded so the
// replacement does not share the disruption. A limit of zero falls back
// to the configured maximum.
func (e *Evaluator) FindAlternatives(requiredCategories []string, affectedCountry string, limit int) []Candidate {
	if limit <= 0 {
		limit = e.maxCandidates
	}

	var candidates []Candidate
	for _, s := range e.backups {
		if affectedCountry != "" && strings.EqualFold(s.Country, affectedCountry) {
			continue
		}
		if s.QualityScore < e.minQualityScore {
			continue
		}
		if s.LeadTimeDays > e.maxLeadTimeDays {
			continue
		}

		match := categoryMatch(s.Categories, requiredCategories)
		if match == 0 {
			continue
		}

		score := evaluationScore(s, match)
		candidates = append(candidates, Candidate{
			Supplier:        s,
			EvaluationScore: score,
			CategoryMatch:   match,
			Recommendation:  recommendationFor(score),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].EvaluationScore > candidates[j].EvaluationScore
	})

	slog.Info("backup suppliers evaluated", "candidates", len(candidates), "affected_country", affectedCountry)

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// categoryMatch is the fraction of required categories the supplier can
// cover. Without requirements every supplier gets a neutral 0.5.
func categoryMatch(supplierCategories, requiredCategories []string) float64 {
	if len(requiredCategories) == 0 {
		return 0.5
	}

	matches := 0
	for _, required := range requiredCategories {
		req := strings.ToLower(required)
		for _, category := range supplierCategories {
			cat := strings.ToLower(category)
			if strings.Contains(cat, req) || strings.Contains(req, cat) {
				matches++
				break
			}
		}
	}

	return float64(matches) / float64(len(requiredCategories))
}

// evaluationScore blends category fit, quality, capacity, lead time and
// cost premium, with a small bonus or penalty for activation status.
// Lead time is normalized so 10 days scores 1.0 and 30 days 0; premiums
// of 30% and above score 0.
func evaluationScore(s catalog.BackupSupplier, match float64) float64 {
	leadTimeScore := math.Max(0, 1-float64(s.LeadTimeDays-10)/20)
	costScore := math.Max(0, 1-s.CostPremiumPct/30)

	score := 0.30*match +
		0.25*s.QualityScore +
		0.20*s.CapacityScore +
		0.15*leadTimeScore +
		0.10*costScore +
		s.Status.Bonus()

	return clamp(score, 0, 1)
}

func recommendationFor(score float64) string {
	switch {
	case score >= 0.8:
		return "Highly Recommended - Activate immediately"
	case score >= 0.65:
		return "Recommended - Good alternative"
	case score >= 0.5:
		return "Acceptable - Consider as backup"
	default:
		return "Marginal - Use only if no alternatives"
	}
}

func (e *Evaluator) SupplierByID(id string) (catalog.BackupSupplier, bool) {
	for _, s := range e.backups {
		if s.SupplierID == id {
			return s, true
		}
	}
	return catalog.BackupSupplier{}, false
}

func (e *Evaluator) SuppliersByStatus(status catalog.BackupStatus) []catalog.BackupSupplier {
	var out []catalog.BackupSupplier
	for _, s := range e.backups {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out
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
