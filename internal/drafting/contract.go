package drafting

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
)

// Type categorizes an emergency agreement by how quickly supply has to
// be restored.
type Type string

const (
	TypeExpeditedPurchase  Type = "expedited_purchase"
	TypeSpotBuy            Type = "spot_buy"
	TypeEmergencyService   Type = "emergency_service"
	TypeTemporaryAgreement Type = "temporary_agreement"
)

// Status tracks the contract lifecycle.
type Status string

const (
	StatusDraft         Status = "draft"
	StatusPendingReview Status = "pending_review"
	StatusApproved      Status = "approved"
	StatusExecuted      Status = "executed"
	StatusExpired       Status = "expired"
)

// Section is one named block of contract text. Sections keep the order
// they were added in.
type Section struct {
	Name    string
	Content string
}

// Contract is an emergency supplier agreement drafted from a recovery
// plan. New contracts start in draft status.
type Contract struct {
	ContractID     string
	RecoveryPlanID string
	SupplierName   string
	Type           Type
	Title          string
	TotalValue     float64
	DurationDays   int
	Items          []contracts.ContractItem
	Terms          contracts.ContractTerms
	Sections       []Section
	Status         Status
	CreatedAt      time.Time
}

func NewContract(supplierName string, contractType Type, title string, totalValue float64, durationDays int, terms contracts.ContractTerms, recoveryPlanID string) *Contract {
	return &Contract{
		ContractID:     uuid.NewString(),
		RecoveryPlanID: recoveryPlanID,
		SupplierName:   supplierName,
		Type:           contractType,
		Title:          title,
		TotalValue:     totalValue,
		DurationDays:   durationDays,
		Terms:          terms,
		Status:         StatusDraft,
		CreatedAt:      time.Now().UTC(),
	}
}

// AddSection appends a named section, replacing the content of an
// earlier section with the same name.
func (c *Contract) AddSection(name, content string) {
	for i := range c.Sections {
		if c.Sections[i].Name == name {
			c.Sections[i].Content = content
			return
		}
	}
	c.Sections = append(c.Sections, Section{Name: name, Content: content})
}

// ExpiryDate is when the agreement lapses unless extended in writing.
func (c *Contract) ExpiryDate() time.Time {
	return c.CreatedAt.AddDate(0, 0, c.DurationDays)
}

// SectionNames lists the section names in document order.
func (c *Contract) SectionNames() []string {
	names := make([]string, len(c.Sections))
	for i, s := range c.Sections {
		names[i] = s.Name
	}
	return names
}

// FullText assembles the complete agreement, each section under an
// underlined heading.
func (c *Contract) FullText() string {
	parts := make([]string, len(c.Sections))
	for i, s := range c.Sections {
		parts[i] = "\n" + s.Name + "\n" + strings.Repeat("=", len(s.Name)) + "\n" + s.Content
	}
	return strings.Join(parts, "\n")
}

func (c *Contract) Record() contracts.ContractRecord {
	items := c.Items
	if items == nil {
		items = []contracts.ContractItem{}
	}
	return contracts.ContractRecord{
		ContractID:     c.ContractID,
		RecoveryPlanID: c.RecoveryPlanID,
		SupplierName:   c.SupplierName,
		ContractType:   string(c.Type),
		Title:          c.Title,
		TotalValue:     c.TotalValue,
		DurationDays:   c.DurationDays,
		Items:          items,
		Terms:          c.Terms,
		Status:         string(c.Status),
		CreatedAt:      c.CreatedAt,
		ExpiryDate:     c.ExpiryDate(),
		Sections:       c.SectionNames(),
	}
}
