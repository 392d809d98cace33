package recovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/catalog"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/config"
)

var electronicsNeed = []string{"electronics", "semiconductors", "components"}

func TestFindAlternativesRanking(t *testing.T) {
	evaluator := NewEvaluator(config.Default().Recovery, nil)

	candidates := evaluator.FindAlternatives(electronicsNeed, "Taiwan", 0)

	require.Len(t, candidates, 5)

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Supplier.Name)
	}
	assert.Equal(t, []string{
		"Malaysia Precision Parts",
		"Vietnam Electronics Co",
		"South Korea Semiconductors",
		"India Tech Solutions",
		"Philippines Assembly Corp",
	}, names)

	assert.InDelta(t, 0.775, candidates[0].EvaluationScore, 0.001)
	assert.InDelta(t, 0.761, candidates[1].EvaluationScore, 0.001)
	assert.Equal(t, "Recommended - Good alternative", candidates[0].Recommendation)
	assert.Equal(t, "Marginal - Use only if no alternatives", candidates[4].Recommendation)

	// Vietnam covers every required category, Malaysia two of three.
	assert.InDelta(t, 1.0, candidates[1].CategoryMatch, 1e-9)
	assert.InDelta(t, 2.0/3.0, candidates[0].CategoryMatch, 1e-9)
}

func TestFindAlternativesLimit(t *testing.T) {
	evaluator := NewEvaluator(config.Default().Recovery, nil)

	candidates := evaluator.FindAlternatives(electronicsNeed, "", 3)

	require.Len(t, candidates, 3)
	assert.Equal(t, "Malaysia Precision Parts", candidates[0].Supplier.Name)
}

func TestFindAlternativesExcludesAffectedCountry(t *testing.T) {
	evaluator := NewEvaluator(config.Default().Recovery, nil)

	candidates := evaluator.FindAlternatives(electronicsNeed, "vietnam", 0)

	for _, c := range candidates {
		assert.NotEqual(t, "Vietnam", c.Supplier.Country)
	}
}

func TestFindAlternativesFilters(t *testing.T) {
	backups := []catalog.BackupSupplier{
		{SupplierID: "b1", Name: "Low Quality", Country: "Mexico", Categories: []string{"electronics"}, Status: catalog.BackupQualified, QualityScore: 0.65, CapacityScore: 0.9, LeadTimeDays: 10},
		{SupplierID: "b2", Name: "Slow", Country: "Poland", Categories: []string{"electronics"}, Status: catalog.BackupQualified, QualityScore: 0.9, CapacityScore: 0.9, LeadTimeDays: 35},
		{SupplierID: "b3", Name: "Wrong Categories", Country: "India", Categories: []string{"textiles"}, Status: catalog.BackupQualified, QualityScore: 0.9, CapacityScore: 0.9, LeadTimeDays: 10},
		{SupplierID: "b4", Name: "Keeper", Country: "Malaysia", Categories: []string{"electronics"}, Status: catalog.BackupActive, QualityScore: 0.9, CapacityScore: 0.9, LeadTimeDays: 10},
	}
	evaluator := NewEvaluator(config.Default().Recovery, backups)

	candidates := evaluator.FindAlternatives([]string{"electronics"}, "", 0)

	require.Len(t, candidates, 1)
	assert.Equal(t, "Keeper", candidates[0].Supplier.Name)
}

func TestCategoryMatch(t *testing.T) {
	supplier := []string{"precision components", "machinery", "electronics"}

	tests := []struct {
		name     string
		required []string
		want     float64
	}{
		{"no requirements gets neutral match", nil, 0.5},
		{"full match", []string{"electronics", "machinery"}, 1.0},
		{"partial via substring", []string{"components", "semiconductors"}, 0.5},
		{"no overlap", []string{"freight"}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, categoryMatch(supplier, tt.required), 1e-9)
		})
	}
}

func TestEvaluationScoreStatusBonus(t *testing.T) {
	base := catalog.BackupSupplier{
		QualityScore:   0.7,
		CapacityScore:  0.7,
		LeadTimeDays:   20,
		CostPremiumPct: 15,
	}

	active := base
	active.Status = catalog.BackupActive
	prospective := base
	prospective.Status = catalog.BackupProspective

	// Same profile, 0.15 apart from the status bonus alone.
	assert.InDelta(t, 0.15, evaluationScore(active, 1.0)-evaluationScore(prospective, 1.0), 1e-9)
}

func TestRecommendationFor(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.85, "Highly Recommended - Activate immediately"},
		{0.8, "Highly Recommended - Activate immediately"},
		{0.7, "Recommended - Good alternative"},
		{0.55, "Acceptable - Consider as backup"},
		{0.4, "Marginal - Use only if no alternatives"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, recommendationFor(tt.score), "score %.2f", tt.score)
	}
}

func TestCandidateRecord(t *testing.T) {
	evaluator := NewEvaluator(config.Default().Recovery, nil)

	candidates := evaluator.FindAlternatives(electronicsNeed, "Taiwan", 1)
	require.Len(t, candidates, 1)

	rec := candidates[0].Record()
	assert.Equal(t, "Malaysia Precision Parts", rec.Name)
	assert.Equal(t, "Malaysia", rec.Country)
	assert.InDelta(t, 0.775, rec.EvaluationScore, 1e-9)
	assert.InDelta(t, 0.667, rec.CategoryMatch, 1e-9)
	assert.Equal(t, "standby", rec.Status)
	assert.Equal(t, 20, rec.LeadTimeDays)
	assert.Contains(t, rec.Certifications, "AS9100")
}

func TestSupplierLookups(t *testing.T) {
	evaluator := NewEvaluator(config.Default().Recovery, nil)

	byStatus := evaluator.SuppliersByStatus(catalog.BackupActive)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Mexico Logistics Partner", byStatus[0].Name)

	s, ok := evaluator.SupplierByID(byStatus[0].SupplierID)
	require.True(t, ok)
	assert.Equal(t, byStatus[0].Name, s.Name)

	_, ok = evaluator.SupplierByID("missing")
	assert.False(t, ok)
}
