package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriticalityFromScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  Criticality
	}{
		{"critical boundary", 0.9, CriticalityCritical},
		{"above critical", 0.95, CriticalityCritical},
		{"high boundary", 0.7, CriticalityHigh},
		{"medium boundary", 0.4, CriticalityMedium},
		{"below medium", 0.39, CriticalityLow},
		{"zero", 0, CriticalityLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CriticalityFromScore(tt.score))
		})
	}
}

func TestCriticalityTables(t *testing.T) {
	assert.Equal(t, 1.0, CriticalityCritical.Value())
	assert.Equal(t, 0.75, CriticalityHigh.Value())
	assert.Equal(t, 0.5, CriticalityMedium.Value())
	assert.Equal(t, 0.25, CriticalityLow.Value())

	assert.Equal(t, 1.5, CriticalityCritical.Multiplier())
	assert.Equal(t, 1.25, CriticalityHigh.Multiplier())
	assert.Equal(t, 1.0, CriticalityMedium.Multiplier())
	assert.Equal(t, 0.75, CriticalityLow.Multiplier())

	assert.Greater(t, CriticalityCritical.Rank(), CriticalityHigh.Rank())
	assert.Greater(t, CriticalityHigh.Rank(), CriticalityMedium.Rank())
	assert.Greater(t, CriticalityMedium.Rank(), CriticalityLow.Rank())
}

func TestSupplierMatchesLocation(t *testing.T) {
	s := Supplier{Country: "India", Region: "Maharashtra", City: "Mumbai"}

	tests := []struct {
		name    string
		country string
		region  string
		city    string
		want    bool
	}{
		{"city match", "", "", "Mumbai", true},
		{"city match case-insensitive", "", "", "mumbai", true},
		{"region match", "", "maharashtra", "", true},
		{"country match", "india", "", "", true},
		{"wrong city right country", "India", "", "Kolkata", true},
		{"no match", "Japan", "Kansai", "Osaka", false},
		{"empty query", "", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.MatchesLocation(tt.country, tt.region, tt.city))
		})
	}
}

func TestSupplierLocationString(t *testing.T) {
	full := Supplier{Country: "China", Region: "Guangdong", City: "Shenzhen"}
	assert.Equal(t, "Shenzhen, Guangdong, China", full.LocationString())

	partial := Supplier{Country: "Singapore", City: "Singapore"}
	assert.Equal(t, "Singapore, Singapore", partial.LocationString())

	assert.Equal(t, "Unknown", Supplier{}.LocationString())
}

func TestSuppliersCatalog(t *testing.T) {
	got := Suppliers()
	require.Len(t, got, 10)

	seen := map[string]bool{}
	for _, s := range got {
		require.NotEmpty(t, s.SupplierID)
		assert.False(t, seen[s.SupplierID], "duplicate supplier id %s", s.SupplierID)
		seen[s.SupplierID] = true
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Country)
		assert.NotEmpty(t, s.Categories)
		assert.Positive(t, s.LeadTimeDays)
		assert.Positive(t, s.AnnualSpend)
	}

	// Callers get their own slice.
	got[0].Name = "mutated"
	assert.NotEqual(t, "mutated", Suppliers()[0].Name)
}

func TestSupplierRecord(t *testing.T) {
	s := Suppliers()[0]
	rec := s.Record()
	assert.Equal(t, s.SupplierID, rec.SupplierID)
	assert.Equal(t, s.Name, rec.Name)
	assert.Equal(t, string(s.Criticality), rec.Criticality)
	assert.Equal(t, string(s.Tier), rec.Tier)
	assert.Equal(t, s.AnnualSpend, rec.AnnualSpend)
}

func TestBackupStatusBonus(t *testing.T) {
	assert.Equal(t, 0.1, BackupActive.Bonus())
	assert.Equal(t, 0.05, BackupStandby.Bonus())
	assert.Equal(t, 0.0, BackupQualified.Bonus())
	assert.Equal(t, -0.05, BackupProspective.Bonus())
}

func TestBackupCanSupply(t *testing.T) {
	b := BackupSupplier{Categories: []string{"precision components", "machinery", "electronics"}}

	tests := []struct {
		name     string
		category string
		want     bool
	}{
		{"exact", "machinery", true},
		{"case-insensitive", "Electronics", true},
		{"query contains category", "consumer electronics", true},
		{"category contains query", "components", true},
		{"no overlap", "textiles", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.CanSupply(tt.category))
		})
	}
}

func TestBackupOverallScore(t *testing.T) {
	b := BackupSupplier{QualityScore: 0.8, CapacityScore: 0.75, CostPremiumPct: 8}
	// 0.4*0.8 + 0.3*0.75 + 0.3*(1-8/50)
	assert.InDelta(t, 0.797, b.OverallScore(), 1e-9)

	steep := BackupSupplier{QualityScore: 1, CapacityScore: 1, CostPremiumPct: 100}
	assert.InDelta(t, 0.7, steep.OverallScore(), 1e-9)
}

func TestBackupSuppliersPool(t *testing.T) {
	got := BackupSuppliers()
	require.Len(t, got, 8)
	for _, b := range got {
		require.NotEmpty(t, b.SupplierID)
		assert.NotEmpty(t, b.Categories)
		assert.Equal(t, 10_000.0, b.MinOrderValue)
		assert.Equal(t, 1_000, b.MaxCapacityUnits)
		assert.Positive(t, b.LeadTimeDays)
	}
}
