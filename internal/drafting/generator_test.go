package drafting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/config"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
)

func freightPlan() contracts.PlanRecord {
	return contracts.PlanRecord{
		PlanID:                "plan-rotterdam-1",
		RiskID:                "risk-1",
		Title:                 "Recovery Plan: Rotterdam Port Strike",
		AffectedSupplierName:  "Rotterdam Logistics BV",
		AffectedCategories:    []string{"freight", "logistics"},
		EstimatedRecoveryDays: 26,
		TotalEstimatedCost:    65000,
		RecommendedSuppliers:  []contracts.CandidateRecord{mexicoCandidate()},
		Status:                "draft",
	}
}

func mexicoCandidate() contracts.CandidateRecord {
	return contracts.CandidateRecord{
		Name:           "Mexico Logistics Partner",
		Country:        "Mexico",
		City:           "Monterrey",
		QualityScore:   0.82,
		CapacityScore:  0.80,
		LeadTimeDays:   14,
		CostPremiumPct: 15,
		Status:         "active",
		Certifications: []string{"C-TPAT", "ISO 9001"},
		Recommendation: "Highly Recommended - Activate immediately",
	}
}

func sectionContent(t *testing.T, c *Contract, name string) string {
	t.Helper()
	for _, s := range c.Sections {
		if s.Name == name {
			return s.Content
		}
	}
	t.Fatalf("section %s missing", name)
	return ""
}

func TestDraftContract(t *testing.T) {
	gen := NewGenerator(config.Default().Drafting, nil)

	c, err := gen.Draft(freightPlan(), mexicoCandidate())
	require.NoError(t, err)

	assert.Equal(t, TypeTemporaryAgreement, c.Type)
	assert.Equal(t, "Emergency Supply Agreement - Mexico Logistics Partner", c.Title)
	assert.Equal(t, "Mexico Logistics Partner", c.SupplierName)
	assert.Equal(t, "plan-rotterdam-1", c.RecoveryPlanID)
	assert.InDelta(t, 74750, c.TotalValue, 1e-6)
	assert.Equal(t, 90, c.DurationDays)
	assert.Equal(t, StatusDraft, c.Status)
	assert.Empty(t, c.Items)
}

func TestContractTypeThresholds(t *testing.T) {
	cases := []struct {
		days int
		want Type
	}{
		{3, TypeSpotBuy},
		{7, TypeSpotBuy},
		{8, TypeExpeditedPurchase},
		{14, TypeExpeditedPurchase},
		{15, TypeTemporaryAgreement},
		{26, TypeTemporaryAgreement},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, typeForRecovery(tc.days), "days=%d", tc.days)
	}
}

func TestDraftSectionOrder(t *testing.T) {
	gen := NewGenerator(config.Default().Drafting, nil)

	c, err := gen.Draft(freightPlan(), mexicoCandidate())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"HEADER", "PARTIES", "SCOPE", "PRICING",
		"DELIVERY", "QUALITY", "TERMINATION", "SIGNATURE",
	}, c.SectionNames())
}

func TestDraftSectionContent(t *testing.T) {
	gen := NewGenerator(config.Default().Drafting, nil)

	c, err := gen.Draft(freightPlan(), mexicoCandidate())
	require.NoError(t, err)

	header := sectionContent(t, c, "HEADER")
	assert.Contains(t, header, "EMERGENCY SUPPLY AGREEMENT")
	assert.Contains(t, header, "Contract Number: "+c.ContractID)
	assert.Contains(t, header, "Effective Date: "+c.CreatedAt.Format("January 2, 2006"))

	parties := sectionContent(t, c, "PARTIES")
	assert.Contains(t, parties, "BUYER: ACME Corporation")
	assert.Contains(t, parties, "Address: 123 Industrial Way, Chicago, IL 60601")
	assert.Contains(t, parties, "SUPPLIER: Mexico Logistics Partner")
	assert.Contains(t, parties, "Address: Monterrey, Mexico")
	assert.Contains(t, parties, "Country: Mexico")

	scope := sectionContent(t, c, "SCOPE")
	assert.Contains(t, scope, "Categories: freight, logistics")
	assert.Contains(t, scope, "Recovery Plan Reference: plan-rotterdam-1")

	pricing := sectionContent(t, c, "PRICING")
	assert.Contains(t, pricing, "TOTAL CONTRACT VALUE: $74,750.00")
	assert.Contains(t, pricing, "- Net 30 days from invoice date")
	assert.Contains(t, pricing, "subject to 15% expedite premium")
	assert.Contains(t, pricing, "Currency: USD")

	delivery := sectionContent(t, c, "DELIVERY")
	assert.Contains(t, delivery, "Lead Time: 14 days from order confirmation")
	assert.Contains(t, delivery, "Delivery Location: Main Distribution Center")
	assert.Contains(t, delivery, "Shipping Terms: DDP")

	quality := sectionContent(t, c, "QUALITY")
	assert.Contains(t, quality, "Supplier certifications required: C-TPAT, ISO 9001")
	assert.Contains(t, quality, "Quality inspection: Upon receipt, 24-hour acceptance window")
	assert.Contains(t, quality, "Defect tolerance: 1.0%")

	termination := sectionContent(t, c, "TERMINATION")
	assert.Contains(t, termination, "automatically expire 90 days")
	assert.Contains(t, termination, "terminate with 7 days written notice")

	signature := sectionContent(t, c, "SIGNATURE")
	assert.Contains(t, signature, "Procurement Director")
	assert.Contains(t, signature, "Authorized Representative")
}

func TestDraftTerms(t *testing.T) {
	gen := NewGenerator(config.Default().Drafting, nil)

	c, err := gen.Draft(freightPlan(), mexicoCandidate())
	require.NoError(t, err)

	assert.Equal(t, contracts.ContractTerms{
		PaymentTerms:    "Net 30",
		ShippingTerms:   "DDP (Delivered Duty Paid)",
		QualityStandard: "ISO 9001",
		LeadTimeDays:    14,
		PenaltyClause:   "2% per day late delivery",
		ForceMajeure:    "Standard clause applicable",
		Jurisdiction:    "New York, USA",
		Currency:        "USD",
	}, c.Terms)
}

func TestDraftReviewNotes(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		gen := NewGenerator(config.DraftingConfig{ReviewNotes: true}, nil)

		c, err := gen.Draft(freightPlan(), mexicoCandidate())
		require.NoError(t, err)

		assert.Contains(t, sectionContent(t, c, "SCOPE"), "[Review note: Consider adding specific SKU list and quantities]")
		assert.Contains(t, sectionContent(t, c, "PRICING"), "[Review note: Price escalation clause recommended for volatile markets]")
		assert.Contains(t, sectionContent(t, c, "QUALITY"), "[Review note: Consider third-party inspection for critical components]")
		assert.NotContains(t, sectionContent(t, c, "HEADER"), "[Review note:")
		assert.NotContains(t, sectionContent(t, c, "DELIVERY"), "[Review note:")
	})

	t.Run("disabled", func(t *testing.T) {
		gen := NewGenerator(config.DraftingConfig{}, nil)

		c, err := gen.Draft(freightPlan(), mexicoCandidate())
		require.NoError(t, err)

		assert.NotContains(t, c.FullText(), "[Review note:")
	})
}

func TestDraftDefaults(t *testing.T) {
	gen := NewGenerator(config.DraftingConfig{}, nil)

	c, err := gen.Draft(contracts.PlanRecord{}, contracts.CandidateRecord{})
	require.NoError(t, err)

	assert.Equal(t, "Unknown Supplier", c.SupplierName)
	assert.Equal(t, "Emergency Supply Agreement - Unknown Supplier", c.Title)
	assert.Equal(t, TypeSpotBuy, c.Type)
	assert.Equal(t, 50000.0, c.TotalValue)
	assert.Equal(t, 21, c.Terms.LeadTimeDays)

	assert.Contains(t, sectionContent(t, c, "PARTIES"), "BUYER: ACME Corporation")
	assert.Contains(t, sectionContent(t, c, "PARTIES"), "Address: HQ,")
	assert.Contains(t, sectionContent(t, c, "SCOPE"), "Categories: General")
	assert.Contains(t, sectionContent(t, c, "SCOPE"), "Recovery Plan Reference: N/A")
	assert.Contains(t, sectionContent(t, c, "QUALITY"), "Supplier certifications required: ISO 9001")
	assert.Contains(t, sectionContent(t, c, "DELIVERY"), "Lead Time: 21 days")
}

func TestDraftValueFallsBackToBase(t *testing.T) {
	gen := NewGenerator(config.Default().Drafting, nil)

	plan := freightPlan()
	plan.TotalEstimatedCost = 0

	c, err := gen.Draft(plan, mexicoCandidate())
	require.NoError(t, err)
	assert.InDelta(t, 57500, c.TotalValue, 1e-6)
}

func TestDraftAll(t *testing.T) {
	gen := NewGenerator(config.Default().Drafting, nil)

	noBackup := freightPlan()
	noBackup.PlanID = "plan-2"
	noBackup.RecommendedSuppliers = nil

	third := freightPlan()
	third.PlanID = "plan-3"

	plans := []contracts.PlanRecord{freightPlan(), noBackup, third}

	drafted, err := gen.DraftAll(plans, 2)
	require.NoError(t, err)
	require.Len(t, drafted, 1)
	assert.Equal(t, "plan-rotterdam-1", drafted[0].RecoveryPlanID)

	all, err := gen.DraftAll(plans, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "plan-3", all[1].RecoveryPlanID)
}

func TestRenderUnknownSection(t *testing.T) {
	engine := NewTemplateEngine()

	_, err := engine.Render("appendix", SectionContext{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown contract section")
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{999.5, "999.50"},
		{74750, "74,750.00"},
		{5000000, "5,000,000.00"},
		{1234567.891, "1,234,567.89"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatMoney(tc.in), "value=%v", tc.in)
	}
}
