package drafting

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/config"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
)

// standardDurationDays is the fixed term for emergency agreements.
const standardDurationDays = 90

// reviewNotes flag sections that need human attention before signature.
var reviewNotes = map[string]string{
	"scope":   "Consider adding specific SKU list and quantities",
	"pricing": "Price escalation clause recommended for volatile markets",
	"quality": "Consider third-party inspection for critical components",
}

// Generator drafts emergency procurement contracts from recovery plans
// and the backup suppliers recommended for them.
type Generator struct {
	engine      *TemplateEngine
	baseValue   float64
	buyer       buyer
	reviewNotes bool
}

type buyer struct {
	name             string
	address          string
	deliveryLocation string
	signatory        string
}

// NewGenerator builds a drafting generator. A nil engine gets the
// standard section templates.
func NewGenerator(cfg config.DraftingConfig, engine *TemplateEngine) *Generator {
	if engine == nil {
		engine = NewTemplateEngine()
	}
	base := cfg.BaseOrderValue
	if base <= 0 {
		base = 50_000
	}
	name := cfg.BuyerName
	if name == "" {
		name = "ACME Corporation"
	}
	address := cfg.BuyerAddress
	if address == "" {
		address = "123 Industrial Way, Chicago, IL 60601"
	}
	return &Generator{
		engine:    engine,
		baseValue: base,
		buyer: buyer{
			name:             name,
			address:          address,
			deliveryLocation: "Main Distribution Center",
			signatory:        "Procurement Director",
		},
		reviewNotes: cfg.ReviewNotes,
	}
}

// Draft produces the agreement for one recovery plan and the backup
// supplier chosen to fulfil it. The contract value is the plan's
// estimated cost marked up by the supplier's expedite premium.
func (g *Generator) Draft(plan contracts.PlanRecord, supplier contracts.CandidateRecord) (*Contract, error) {
	name := supplier.Name
	if name == "" {
		name = "Unknown Supplier"
	}

	base := plan.TotalEstimatedCost
	if base <= 0 {
		base = g.baseValue
	}
	value := base * (1 + supplier.CostPremiumPct/100)

	contract := NewContract(
		name,
		typeForRecovery(plan.EstimatedRecoveryDays),
		"Emergency Supply Agreement - "+name,
		value,
		standardDurationDays,
		standardTerms(supplier),
		plan.PlanID,
	)

	ctx := g.sectionContext(plan, supplier, contract)
	for _, section := range sectionOrder {
		content, err := g.engine.Render(section, ctx)
		if err != nil {
			return nil, fmt.Errorf("draft contract for %s: %w", name, err)
		}
		if note, ok := reviewNotes[section]; ok && g.reviewNotes {
			content += "\n[Review note: " + note + "]"
		}
		contract.AddSection(strings.ToUpper(section), content)
	}

	slog.Info("contract drafted",
		"contract_id", contract.ContractID,
		"supplier", name,
		"type", contract.Type,
		"value", contract.TotalValue)
	return contract, nil
}

// DraftAll drafts contracts for the first limit plans, skipping plans
// without a recommended supplier and using the top candidate otherwise.
// A non-positive limit drafts for every plan.
func (g *Generator) DraftAll(plans []contracts.PlanRecord, limit int) ([]*Contract, error) {
	if limit <= 0 || limit > len(plans) {
		limit = len(plans)
	}
	drafted := make([]*Contract, 0, limit)
	for _, plan := range plans[:limit] {
		if len(plan.RecommendedSuppliers) == 0 {
			continue
		}
		contract, err := g.Draft(plan, plan.RecommendedSuppliers[0])
		if err != nil {
			return nil, err
		}
		drafted = append(drafted, contract)
	}
	return drafted, nil
}

func (g *Generator) sectionContext(plan contracts.PlanRecord, supplier contracts.CandidateRecord, c *Contract) SectionContext {
	city := supplier.City
	if city == "" {
		city = "HQ"
	}
	planRef := plan.PlanID
	if planRef == "" {
		planRef = "N/A"
	}
	return SectionContext{
		ContractID:        c.ContractID,
		EffectiveDate:     c.CreatedAt.Format("January 2, 2006"),
		BuyerName:         g.buyer.name,
		BuyerAddress:      g.buyer.address,
		SupplierName:      c.SupplierName,
		SupplierAddress:   city + ", " + supplier.Country,
		SupplierCountry:   supplier.Country,
		Categories:        joinOr(plan.AffectedCategories, "General"),
		RecoveryPlanID:    planRef,
		TotalValue:        formatMoney(c.TotalValue),
		PaymentTerms:      "Payment upon delivery verification",
		PaymentDays:       30,
		PremiumPct:        supplier.CostPremiumPct,
		Currency:          c.Terms.Currency,
		LeadTimeDays:      c.Terms.LeadTimeDays,
		DeliveryLocation:  g.buyer.deliveryLocation,
		ShippingTerms:     "DDP",
		Certifications:    joinOr(supplier.Certifications, "ISO 9001"),
		InspectionTerms:   "Upon receipt, 24-hour acceptance window",
		DefectTolerance:   1.0,
		DurationDays:      c.DurationDays,
		NoticeDays:        7,
		BuyerSignatory:    g.buyer.signatory,
		SupplierSignatory: "Authorized Representative",
	}
}

// typeForRecovery picks the agreement form from how quickly supply must
// be restored.
func typeForRecovery(recoveryDays int) Type {
	switch {
	case recoveryDays <= 7:
		return TypeSpotBuy
	case recoveryDays <= 14:
		return TypeExpeditedPurchase
	default:
		return TypeTemporaryAgreement
	}
}

// standardTerms are fixed for emergency procurement; only the lead time
// follows the chosen supplier.
func standardTerms(supplier contracts.CandidateRecord) contracts.ContractTerms {
	leadTime := supplier.LeadTimeDays
	if leadTime <= 0 {
		leadTime = 21
	}
	return contracts.ContractTerms{
		PaymentTerms:    "Net 30",
		ShippingTerms:   "DDP (Delivered Duty Paid)",
		QualityStandard: "ISO 9001",
		LeadTimeDays:    leadTime,
		PenaltyClause:   "2% per day late delivery",
		ForceMajeure:    "Standard clause applicable",
		Jurisdiction:    "New York, USA",
		Currency:        "USD",
	}
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

// formatMoney renders an amount with thousands separators and cents.
func formatMoney(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	whole, cents := s[:dot], s[dot:]
	for i := len(whole) - 3; i > 0; i -= 3 {
		whole = whole[:i] + "," + whole[i:]
	}
	return whole + cents
}
