package drafting

import (
	"bytes"
	"fmt"
	"text/template"
)

// SectionContext carries every value the section templates reference.
// TotalValue arrives pre-formatted with thousands separators.
type SectionContext struct {
	ContractID        string
	EffectiveDate     string
	BuyerName         string
	BuyerAddress      string
	SupplierName      string
	SupplierAddress   string
	SupplierCountry   string
	Categories        string
	RecoveryPlanID    string
	TotalValue        string
	PaymentTerms      string
	PaymentDays       int
	PremiumPct        float64
	Currency          string
	LeadTimeDays      int
	DeliveryLocation  string
	ShippingTerms     string
	Certifications    string
	InspectionTerms   string
	DefectTolerance   float64
	DurationDays      int
	NoticeDays        int
	BuyerSignatory    string
	SupplierSignatory string
}

// sectionOrder fixes the document layout.
var sectionOrder = []string{
	"header", "parties", "scope", "pricing",
	"delivery", "quality", "termination", "signature",
}

var sectionTemplates = template.Must(template.New("contract").Parse(`
{{define "header"}}
EMERGENCY SUPPLY AGREEMENT
Contract Number: {{.ContractID}}
Effective Date: {{.EffectiveDate}}

This Emergency Supply Agreement ("Agreement") is entered into as of
the Effective Date by and between the parties identified below.
{{end}}

{{define "parties"}}
BUYER: {{.BuyerName}}
Address: {{.BuyerAddress}}

SUPPLIER: {{.SupplierName}}
Address: {{.SupplierAddress}}
Country: {{.SupplierCountry}}
{{end}}

{{define "scope"}}
This Agreement covers the emergency procurement of the following
items/services due to supply chain disruption:

Categories: {{.Categories}}
Recovery Plan Reference: {{.RecoveryPlanID}}

The Supplier agrees to provide the items listed in Schedule A
attached hereto.
{{end}}

{{define "pricing"}}
TOTAL CONTRACT VALUE: ${{.TotalValue}}

Payment Terms:
- {{.PaymentTerms}}
- Net {{.PaymentDays}} days from invoice date
- Emergency orders may be subject to {{.PremiumPct}}% expedite premium

Currency: {{.Currency}}
{{end}}

{{define "delivery"}}
DELIVERY REQUIREMENTS:

Lead Time: {{.LeadTimeDays}} days from order confirmation
Delivery Location: {{.DeliveryLocation}}
Shipping Terms: {{.ShippingTerms}}

Time is of the essence for all deliveries under this Agreement.
{{end}}

{{define "quality"}}
QUALITY REQUIREMENTS:

- All items must meet specifications in Schedule B
- Supplier certifications required: {{.Certifications}}
- Quality inspection: {{.InspectionTerms}}
- Defect tolerance: {{printf "%.1f" .DefectTolerance}}%
{{end}}

{{define "termination"}}
TERMINATION:

This Agreement shall automatically expire {{.DurationDays}} days
from the Effective Date unless extended in writing.

Either party may terminate with {{.NoticeDays}} days written notice.
{{end}}

{{define "signature"}}
IN WITNESS WHEREOF, the parties have executed this Agreement.

BUYER:                          SUPPLIER:
_____________________          _____________________
{{.BuyerSignatory}}              {{.SupplierSignatory}}
Date: ______________           Date: ______________
{{end}}
`))

// TemplateEngine renders the standard contract sections.
type TemplateEngine struct {
	tmpl *template.Template
}

func NewTemplateEngine() *TemplateEngine {
	return &TemplateEngine{tmpl: sectionTemplates}
}

// Render fills the named section template from ctx.
func (e *TemplateEngine) Render(section string, ctx SectionContext) (string, error) {
	if e.tmpl.Lookup(section) == nil {
		return "", fmt.Errorf("unknown contract section %q", section)
	}
	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, section, ctx); err != nil {
		return "", fmt.Errorf("render %s section: %w", section, err)
	}
	return buf.String(), nil
}
